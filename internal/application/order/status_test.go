package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/inventory"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/pkg/logger"
)

// Stubs mínimos para armar un inventory.UseCase real dentro del caso de uso
// de estados; solo interesa observar las llamadas a DestockOrder.
type stubIngredientRepo struct{}

func (stubIngredientRepo) GetByID(_ context.Context, _, _ string) (*entity.Ingredient, error) {
	return nil, nil
}
func (stubIngredientRepo) List(_ context.Context, _ string) ([]*entity.Ingredient, error) {
	return nil, nil
}
func (stubIngredientRepo) ListLowStock(_ context.Context, _ string) ([]*entity.Ingredient, error) {
	return nil, nil
}

type stubStockRepo struct {
	destocked []string
}

func (s *stubStockRepo) AdjustStock(_ context.Context, _, _ string, _ decimal.Decimal, _ string, _, _ *string) error {
	return nil
}
func (s *stubStockRepo) SetOpeningStock(_ context.Context, _, _ string, _ decimal.Decimal) error {
	return nil
}
func (s *stubStockRepo) DestockOrder(_ context.Context, orderID, _ string) (int, error) {
	s.destocked = append(s.destocked, orderID)
	return 1, nil
}

type stubMovementRepo struct{}

func (stubMovementRepo) ListByIngredient(_ context.Context, _, _ string, _, _ int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func newStatusFixture() (*StatusUseCase, *fakeOrderRepo, *stubStockRepo) {
	orders := newFakeOrderRepo()
	orders.headers["o-1"] = &entity.Order{
		ID: "o-1", TenantID: testTenantID, OrderNumber: "CMD-X",
		Status: entity.OrderStatusPending, Total: dec("28.50"),
	}
	stock := &stubStockRepo{}
	inv := inventory.NewUseCase(stubIngredientRepo{}, stock, stubMovementRepo{}, orders, logger.Nop())
	return NewStatusUseCase(orders, inv, logger.Nop()), orders, stock
}

func TestUpdateStatus_ConfirmarDescuentaInsumos(t *testing.T) {
	uc, orders, stock := newStatusFixture()

	err := uc.UpdateStatus(context.Background(), testTenantID, "o-1", entity.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, orders.headers["o-1"].Status)
	assert.Equal(t, []string{"o-1"}, stock.destocked)
}

func TestUpdateStatus_SoloLaConfirmacionDescuenta(t *testing.T) {
	uc, _, stock := newStatusFixture()
	ctx := context.Background()

	require.NoError(t, uc.UpdateStatus(ctx, testTenantID, "o-1", entity.OrderStatusPreparing))
	require.NoError(t, uc.UpdateStatus(ctx, testTenantID, "o-1", entity.OrderStatusReady))
	require.NoError(t, uc.UpdateStatus(ctx, testTenantID, "o-1", entity.OrderStatusDelivered))

	// tres transiciones, un solo destock
	assert.Equal(t, []string{"o-1"}, stock.destocked)
}

func TestUpdateStatus_TransicionNoPermitida(t *testing.T) {
	uc, _, stock := newStatusFixture()

	err := uc.UpdateStatus(context.Background(), testTenantID, "o-1", entity.OrderStatusDelivered)
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Empty(t, stock.destocked)
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc, _, _ := newStatusFixture()

	err := uc.UpdateStatus(context.Background(), testTenantID, "o-1", "bogus")
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestUpdateStatus_PedidoDeOtroTenant(t *testing.T) {
	uc, _, _ := newStatusFixture()

	err := uc.UpdateStatus(context.Background(), "t-otro", "o-1", entity.OrderStatusPreparing)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestGet_PedidoConLineas(t *testing.T) {
	uc, orders, _ := newStatusFixture()
	notes := "Grande"
	orders.items["o-1"] = []*entity.OrderItem{
		{ID: "oi-1", OrderID: "o-1", MenuItemID: "mi-pizza", Name: "Pizza Margherita", Quantity: 2, Price: dec("10.00")},
		{ID: "oi-2", OrderID: "o-1", MenuItemID: "mi-pasta", Name: "Pasta Carbonara", Quantity: 1, Price: dec("8.50"), Notes: &notes},
	}

	out, err := uc.Get(context.Background(), testTenantID, "o-1")
	require.NoError(t, err)
	assert.Equal(t, "CMD-X", out.OrderNumber)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Price.Equal(dec("10.00")))
	require.NotNil(t, out.Items[1].Notes)
	assert.Equal(t, "Grande", *out.Items[1].Notes)
}

func TestGet_PedidoInexistente(t *testing.T) {
	uc, _, _ := newStatusFixture()

	_, err := uc.Get(context.Background(), testTenantID, "o-nada")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
