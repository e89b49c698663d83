package recipe

import (
	"context"

	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de recetas atado a esa tx. Garantiza que el reemplazo
// delete-then-insert de una receta sea una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(recipes repository.RecipeRepository) error) error
}
