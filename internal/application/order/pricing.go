package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
)

// priceTolerance banda de tolerancia sobre el precio esperado (1%). Existe
// para absorber redondeos flotantes del recálculo del lado del cliente, no
// para permitir descuentos.
var priceTolerance = decimal.NewFromFloat(0.01)

// PricingService rederiva el total autoritativo de un carrito contra el
// catálogo del servidor. Puro: valida sobre una lectura, sin efectos.
type PricingService struct {
	tenants   repository.TenantRepository
	menuItems repository.MenuItemRepository
}

// NewPricingService construye el servicio de validación de precios.
func NewPricingService(tenants repository.TenantRepository, menuItems repository.MenuItemRepository) *PricingService {
	return &PricingService{tenants: tenants, menuItems: menuItems}
}

// Validate revalida cada línea del carrito contra el catálogo y devuelve el
// total calculado por el servidor. Acumula todas las violaciones antes de
// fallar: una sola respuesta reporta cada línea inválida, no solo la primera.
func (s *PricingService) Validate(ctx context.Context, tenantID string, items []dto.OrderItemInput) (decimal.Decimal, error) {
	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return decimal.Zero, domain.Internal("consultar restaurante", err)
	}
	if tenant == nil {
		return decimal.Zero, domain.NotFound("restaurante no encontrado")
	}
	if !tenant.Active {
		return decimal.Zero, domain.Validation("el restaurante no está activo")
	}
	if len(items) == 0 {
		return decimal.Zero, domain.Validation("el pedido no tiene artículos")
	}

	catalog, err := s.loadCatalog(ctx, tenantID, items)
	if err != nil {
		return decimal.Zero, err
	}

	var violations []string
	total := decimal.Zero
	for _, in := range items {
		if v := validateItem(in, catalog[in.ID]); v != "" {
			violations = append(violations, v)
			continue
		}
		total = total.Add(in.Price.Mul(decimal.NewFromInt(int64(in.Quantity))))
	}

	if len(violations) > 0 {
		return decimal.Zero, domain.Validationf("pedido inválido: %s", strings.Join(violations, "; "))
	}
	if !total.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.Validation("el total del pedido debe ser mayor que 0")
	}
	return total, nil
}

// loadCatalog carga todos los artículos referenciados en una sola consulta y
// los indexa por ID.
func (s *PricingService) loadCatalog(ctx context.Context, tenantID string, items []dto.OrderItemInput) (map[string]*entity.MenuItem, error) {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, in := range items {
		if _, ok := seen[in.ID]; ok {
			continue
		}
		seen[in.ID] = struct{}{}
		ids = append(ids, in.ID)
	}
	found, err := s.menuItems.GetByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, domain.Internal("consultar catálogo", err)
	}
	catalog := make(map[string]*entity.MenuItem, len(found))
	for _, mi := range found {
		catalog[mi.ID] = mi
	}
	return catalog, nil
}

// validateItem valida una línea contra su artículo de catálogo. Devuelve la
// descripción de la violación, o "" si la línea es válida.
func validateItem(in dto.OrderItemInput, catalogItem *entity.MenuItem) string {
	if catalogItem == nil {
		return fmt.Sprintf("artículo desconocido (%s)", in.ID)
	}
	if !catalogItem.Available {
		return fmt.Sprintf("'%s' no está disponible", catalogItem.Name)
	}
	if in.Quantity <= 0 {
		return fmt.Sprintf("'%s': la cantidad debe ser mayor que 0", catalogItem.Name)
	}

	// Precio esperado: el de la variante elegida si el cliente reclama una,
	// si no el precio base del catálogo.
	expected := catalogItem.Price
	if in.SelectedVariant != nil {
		expected = in.SelectedVariant.Price
	}
	if !withinTolerance(in.Price, expected) {
		return fmt.Sprintf("'%s': el precio %s difiere del precio de carta %s",
			catalogItem.Name, in.Price.StringFixed(2), expected.StringFixed(2))
	}
	return ""
}

// withinTolerance indica si claimed está dentro del 1% de expected.
// Con expected 0 la banda es 0: solo se acepta exactamente 0.
func withinTolerance(claimed, expected decimal.Decimal) bool {
	diff := claimed.Sub(expected).Abs()
	return diff.LessThanOrEqual(expected.Abs().Mul(priceTolerance))
}
