package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

type productFixture struct {
	uc       *usecase.ProductUseCase
	products *memProductRepo
	cats     *memCategoryRepo
	trs      *memTranslationRepo
	tx       *fakeTxRunner
}

func newProductFixture() *productFixture {
	products := newMemProductRepo()
	cats := newMemCategoryRepo()
	trs := newMemTranslationRepo()
	tx := &fakeTxRunner{cat: cats, tr: trs, prod: products, sup: newMemSupplierRepo()}
	translationUC := usecase.NewTranslationUseCase(trs, tx, "en")
	return &productFixture{
		uc:       usecase.NewProductUseCase(products, cats, translationUC, tx, "en"),
		products: products,
		cats:     cats,
		trs:      trs,
		tx:       tx,
	}
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	f := newProductFixture()
	f.products.rows["p1"] = &entity.Product{ID: "p1", SKU: "SKU-1", Name: "Zanahoria"}

	_, err := f.uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:  "SKU-1",
		Name: "Otro",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	f := newProductFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:        "SKU-1",
		Name:       "Zanahoria",
		CategoryID: "fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_ConPrecioYTraducciones(t *testing.T) {
	f := newProductFixture()
	f.cats.rows["c1"] = &entity.Category{ID: "c1", Name: "Vegetales", Slug: "vegetales", Status: entity.CategoryStatusActive}

	out, err := f.uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:        "SKU-1",
		Name:       "Carrot",
		Price:      decimal.RequireFromString("12.50"),
		CategoryID: "c1",
		Translations: dto.TranslationMap{
			"uk": {"name": "Морква"},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("12.50")))

	rows, err := f.trs.GetForEntity(out.ID, entity.EntityTypeProduct)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestProductList_PaginaLocalizada(t *testing.T) {
	f := newProductFixture()
	f.products.rows["p1"] = &entity.Product{ID: "p1", SKU: "SKU-1", Name: "Carrot"}
	f.products.rows["p2"] = &entity.Product{ID: "p2", SKU: "SKU-2", Name: "Potato"}
	require.NoError(t, f.trs.Create(&entity.Translation{
		ID: "t1", EntityID: "p1", EntityType: entity.EntityTypeProduct,
		LanguageCode: "uk", FieldName: "name", TranslationText: "Морква",
	}))

	f.trs.batchCalls = 0
	out, err := f.uc.List(10, 0, "uk")
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Морква", out.Items[0].Name)
	assert.Equal(t, "Potato", out.Items[1].Name)
	assert.Equal(t, 1, f.trs.batchCalls)
}

func TestProductDelete_LimpiaTraducciones(t *testing.T) {
	f := newProductFixture()
	f.products.rows["p1"] = &entity.Product{ID: "p1", SKU: "SKU-1", Name: "Carrot"}
	require.NoError(t, f.trs.Create(&entity.Translation{
		ID: "t1", EntityID: "p1", EntityType: entity.EntityTypeProduct,
		LanguageCode: "uk", FieldName: "name", TranslationText: "Морква",
	}))

	f.tx.runs = 0
	require.NoError(t, f.uc.Delete(context.Background(), "p1"))

	// Traducciones y fila caen juntas, dentro de una sola transacción.
	assert.Equal(t, 1, f.tx.runs)
	stored, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.Nil(t, stored)
	rows, err := f.trs.GetForEntity("p1", entity.EntityTypeProduct)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
