package repository

import (
	"context"

	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
)

// TenantRepository puerto de lectura de restaurantes (DIP).
// Devuelve nil sin error cuando no hay coincidencia.
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error)
}
