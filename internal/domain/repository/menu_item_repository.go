package repository

import (
	"context"

	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
)

// MenuItemRepository puerto de lectura del catálogo de carta. Este núcleo
// nunca escribe en él.
type MenuItemRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*entity.MenuItem, error)
	// GetByIDs carga todos los artículos referenciados en una sola consulta
	// (nunca N+1 por línea de pedido). IDs desconocidos simplemente no
	// aparecen en el resultado.
	GetByIDs(ctx context.Context, tenantID string, ids []string) ([]*entity.MenuItem, error)
}
