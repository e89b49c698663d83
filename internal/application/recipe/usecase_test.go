package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/application/dto"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/repository"
)

const testTenantID = "t-1"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeMenuItemRepo struct {
	items map[string]*entity.MenuItem
}

func (f *fakeMenuItemRepo) GetByID(_ context.Context, tenantID, id string) (*entity.MenuItem, error) {
	m := f.items[id]
	if m == nil || m.TenantID != tenantID {
		return nil, nil
	}
	return m, nil
}

func (f *fakeMenuItemRepo) GetByIDs(_ context.Context, tenantID string, ids []string) ([]*entity.MenuItem, error) {
	var out []*entity.MenuItem
	for _, id := range ids {
		if m := f.items[id]; m != nil && m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRecipeRepo struct {
	lines      map[string][]*entity.RecipeLine // por menuItemID
	failInsert bool
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{lines: make(map[string][]*entity.RecipeLine)}
}

func (f *fakeRecipeRepo) ListForItem(_ context.Context, tenantID, menuItemID string) ([]*entity.RecipeLine, error) {
	var out []*entity.RecipeLine
	for _, l := range f.lines[menuItemID] {
		if l.TenantID == tenantID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) DeleteForItem(_ context.Context, _, menuItemID string) error {
	delete(f.lines, menuItemID)
	return nil
}

func (f *fakeRecipeRepo) InsertLines(_ context.Context, lines []*entity.RecipeLine) error {
	if f.failInsert {
		return errors.New("insert recipe line: boom")
	}
	for _, l := range lines {
		f.lines[l.MenuItemID] = append(f.lines[l.MenuItemID], l)
	}
	return nil
}

// fakeTxRunner simula el rollback: si fn falla, restaura el estado previo del
// repositorio de recetas.
type fakeTxRunner struct {
	recipes *fakeRecipeRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.RecipeRepository) error) error {
	snapshot := make(map[string][]*entity.RecipeLine, len(f.recipes.lines))
	for k, v := range f.recipes.lines {
		snapshot[k] = append([]*entity.RecipeLine(nil), v...)
	}
	if err := fn(f.recipes); err != nil {
		f.recipes.lines = snapshot
		return err
	}
	return nil
}

func newFixture() (*UseCase, *fakeRecipeRepo) {
	menuItems := &fakeMenuItemRepo{items: map[string]*entity.MenuItem{
		"mi-pizza": {ID: "mi-pizza", TenantID: testTenantID, Name: "Pizza Margherita", Price: dec("10.00"), Available: true},
	}}
	recipes := newFakeRecipeRepo()
	recipes.lines["mi-pizza"] = []*entity.RecipeLine{
		{ID: "r-1", TenantID: testTenantID, MenuItemID: "mi-pizza", IngredientID: "ing-harina", QuantityNeeded: dec("0.25")},
	}
	uc := NewUseCase(recipes, menuItems, &fakeTxRunner{recipes: recipes})
	return uc, recipes
}

func TestGetForItem(t *testing.T) {
	uc, _ := newFixture()

	lines, err := uc.GetForItem(context.Background(), testTenantID, "mi-pizza")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "ing-harina", lines[0].IngredientID)
	assert.True(t, lines[0].QuantityNeeded.Equal(dec("0.25")))
}

func TestGetForItem_ArticuloInexistente(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.GetForItem(context.Background(), testTenantID, "mi-nada")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestSetRecipe_ReemplazaCompleto(t *testing.T) {
	uc, recipes := newFixture()

	err := uc.SetRecipe(context.Background(), testTenantID, "mi-pizza", dto.SetRecipeRequest{
		Lines: []dto.RecipeLineDTO{
			{IngredientID: "ing-tomate", QuantityNeeded: dec("0.5")},
			{IngredientID: "ing-mozzarella", QuantityNeeded: dec("0.2")},
		},
	})
	require.NoError(t, err)

	// la línea vieja de harina desaparece, quedan solo las nuevas
	got := recipes.lines["mi-pizza"]
	require.Len(t, got, 2)
	assert.Equal(t, "ing-tomate", got[0].IngredientID)
	assert.Equal(t, "ing-mozzarella", got[1].IngredientID)
}

func TestSetRecipe_VaciaLaReceta(t *testing.T) {
	uc, recipes := newFixture()

	err := uc.SetRecipe(context.Background(), testTenantID, "mi-pizza", dto.SetRecipeRequest{})
	require.NoError(t, err)
	assert.Empty(t, recipes.lines["mi-pizza"])
}

func TestSetRecipe_FallaDelInsertConservaLaRecetaAnterior(t *testing.T) {
	uc, recipes := newFixture()
	recipes.failInsert = true

	err := uc.SetRecipe(context.Background(), testTenantID, "mi-pizza", dto.SetRecipeRequest{
		Lines: []dto.RecipeLineDTO{{IngredientID: "ing-tomate", QuantityNeeded: dec("0.5")}},
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))

	// el rollback deja la receta vieja intacta
	got := recipes.lines["mi-pizza"]
	require.Len(t, got, 1)
	assert.Equal(t, "ing-harina", got[0].IngredientID)
}

func TestSetRecipe_Validaciones(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	cases := []struct {
		name  string
		lines []dto.RecipeLineDTO
	}{
		{"insumo vacio", []dto.RecipeLineDTO{{IngredientID: "", QuantityNeeded: dec("1")}}},
		{"cantidad cero", []dto.RecipeLineDTO{{IngredientID: "ing-x", QuantityNeeded: dec("0")}}},
		{"cantidad negativa", []dto.RecipeLineDTO{{IngredientID: "ing-x", QuantityNeeded: dec("-1")}}},
		{"insumo repetido", []dto.RecipeLineDTO{
			{IngredientID: "ing-x", QuantityNeeded: dec("1")},
			{IngredientID: "ing-x", QuantityNeeded: dec("2")},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.SetRecipe(ctx, testTenantID, "mi-pizza", dto.SetRecipeRequest{Lines: tc.lines})
			require.Error(t, err)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestSetRecipe_ArticuloInexistente(t *testing.T) {
	uc, _ := newFixture()

	err := uc.SetRecipe(context.Background(), testTenantID, "mi-nada", dto.SetRecipeRequest{})
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
