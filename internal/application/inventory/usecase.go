package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
	"github.com/thefrankalbert/attabl-saas-sub000/pkg/logger"
)

// UseCase libro de inventario: ajustes manuales, saldo inicial, descuento por
// pedido y proyección de stock bajo. Toda escritura de stock pasa por los
// procedimientos atómicos del StockRepository; este caso de uso no hace nunca
// read-modify-write sobre current_stock.
type UseCase struct {
	ingredients repository.IngredientRepository
	stock       repository.StockRepository
	movements   repository.StockMovementRepository
	orders      repository.OrderRepository
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(
	ingredients repository.IngredientRepository,
	stock repository.StockRepository,
	movements repository.StockMovementRepository,
	orders repository.OrderRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		ingredients: ingredients,
		stock:       stock,
		movements:   movements,
		orders:      orders,
		log:         log,
	}
}

// AdjustStock registra un ajuste manual. Quantity llega como magnitud
// positiva; el signo del delta se deriva del tipo de movimiento
// (manual_add suma, manual_remove y waste restan). El procedimiento del lado
// de la base actualiza el contador e inserta el movimiento como una sola
// unidad atómica.
func (uc *UseCase) AdjustStock(ctx context.Context, tenantID, userID string, in dto.AdjustStockRequest) error {
	if !entity.ValidMovementType(in.MovementType) {
		return domain.Validationf("tipo de movimiento desconocido: %q", in.MovementType)
	}
	if in.MovementType == entity.MovementTypeDestock {
		return domain.Validation("los movimientos destock solo los genera la confirmación de pedidos")
	}
	if in.MovementType == entity.MovementTypeOpening {
		return domain.Validation("el saldo inicial se fija con la operación de apertura")
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.Validation("la cantidad debe ser mayor que 0")
	}

	ing, err := uc.ingredients.GetByID(ctx, tenantID, in.IngredientID)
	if err != nil {
		return domain.Internal("consultar insumo", err)
	}
	if ing == nil {
		return domain.NotFound("insumo no encontrado")
	}

	delta := entity.SignedQuantity(in.MovementType, in.Quantity)
	var createdBy *string
	if userID != "" {
		createdBy = &userID
	}
	if err := uc.stock.AdjustStock(ctx, tenantID, in.IngredientID, delta, in.MovementType, in.Notes, createdBy); err != nil {
		return domain.Internal("ajustar stock", err)
	}

	uc.log.Info().Str("tenant_id", tenantID).Str("ingredient_id", in.IngredientID).
		Str("type", in.MovementType).Str("delta", delta.String()).
		Msg("stock ajustado")
	return nil
}

// SetOpeningStock fija el saldo inicial de un insumo vía el procedimiento
// atómico set_opening_stock (sin read-then-write del lado de la aplicación).
func (uc *UseCase) SetOpeningStock(ctx context.Context, tenantID string, in dto.OpeningStockRequest) error {
	if in.Quantity.IsNegative() {
		return domain.Validation("el saldo inicial no puede ser negativo")
	}
	ing, err := uc.ingredients.GetByID(ctx, tenantID, in.IngredientID)
	if err != nil {
		return domain.Internal("consultar insumo", err)
	}
	if ing == nil {
		return domain.NotFound("insumo no encontrado")
	}
	if err := uc.stock.SetOpeningStock(ctx, tenantID, in.IngredientID, in.Quantity); err != nil {
		return domain.Internal("fijar saldo inicial", err)
	}
	return nil
}

// DestockOrder descuenta los insumos que consume un pedido ya persistido:
// cada línea se resuelve a su receta y la suma por insumo se aplica como un
// movimiento destock. Atómico por llamada; el caller debe invocarlo
// exactamente una vez por pedido (en la transición a preparación), no hay
// idempotencia derivada de los datos.
func (uc *UseCase) DestockOrder(ctx context.Context, orderID, tenantID string) (int, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return 0, domain.Internal("consultar pedido", err)
	}
	if order == nil || order.TenantID != tenantID {
		return 0, domain.NotFound("pedido no encontrado")
	}

	count, err := uc.stock.DestockOrder(ctx, orderID, tenantID)
	if err != nil {
		return 0, domain.Internal("descontar insumos del pedido", err)
	}
	uc.log.Info().Str("order_id", orderID).Str("tenant_id", tenantID).
		Int("ingredients", count).Msg("insumos descontados")
	return count, nil
}

// GetStockStatus proyección de solo lectura: insumos en o por debajo de su
// umbral de alerta. No muta nada.
func (uc *UseCase) GetStockStatus(ctx context.Context, tenantID string) ([]dto.StockStatusDTO, error) {
	low, err := uc.ingredients.ListLowStock(ctx, tenantID)
	if err != nil {
		return nil, domain.Internal("consultar estado de stock", err)
	}
	out := make([]dto.StockStatusDTO, 0, len(low))
	for _, ing := range low {
		out = append(out, dto.StockStatusDTO{
			IngredientID:  ing.ID,
			Name:          ing.Name,
			Unit:          ing.Unit,
			CurrentStock:  ing.CurrentStock,
			MinStockAlert: ing.MinStockAlert,
		})
	}
	return out, nil
}

// ListMovements lista el libro de un insumo para auditoría.
func (uc *UseCase) ListMovements(ctx context.Context, tenantID, ingredientID string, page dto.PageRequest) ([]dto.StockMovementDTO, error) {
	page.DefaultPage()
	list, err := uc.movements.ListByIngredient(ctx, tenantID, ingredientID, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.Internal("listar movimientos", err)
	}
	out := make([]dto.StockMovementDTO, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMovementDTO{
			ID:           m.ID,
			IngredientID: m.IngredientID,
			Quantity:     m.Quantity,
			Type:         m.Type,
			Notes:        m.Notes,
			CreatedBy:    m.CreatedBy,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out, nil
}
