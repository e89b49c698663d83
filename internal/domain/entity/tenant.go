package entity

import "time"

// Tenant representa un restaurante de la plataforma. El slug es el
// identificador público que viaja en los códigos QR de las mesas.
type Tenant struct {
	ID        string
	Slug      string
	Name      string
	Active    bool
	CreatedAt time.Time
}
