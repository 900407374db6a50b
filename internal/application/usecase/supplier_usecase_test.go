package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

type supplierFixture struct {
	uc        *usecase.SupplierUseCase
	suppliers *memSupplierRepo
	trs       *memTranslationRepo
	tx        *fakeTxRunner
}

func newSupplierFixture() *supplierFixture {
	suppliers := newMemSupplierRepo()
	trs := newMemTranslationRepo()
	tx := &fakeTxRunner{
		cat:  newMemCategoryRepo(),
		tr:   trs,
		prod: newMemProductRepo(),
		sup:  suppliers,
	}
	translationUC := usecase.NewTranslationUseCase(trs, tx, "en")
	return &supplierFixture{
		uc:        usecase.NewSupplierUseCase(suppliers, translationUC, tx, "en"),
		suppliers: suppliers,
		trs:       trs,
		tx:        tx,
	}
}

func TestSupplierCreate_ConTraducciones(t *testing.T) {
	f := newSupplierFixture()

	out, err := f.uc.Create(context.Background(), dto.CreateSupplierRequest{
		Name: "Green Farms",
		Translations: dto.TranslationMap{
			"uk": {"name": "Зелені ферми"},
		},
	})
	require.NoError(t, err)

	rows, err := f.trs.GetForEntity(out.ID, entity.EntityTypeSupplier)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestSupplierGetByID_AplicaOverlay(t *testing.T) {
	f := newSupplierFixture()
	f.suppliers.rows["s1"] = &entity.Supplier{ID: "s1", Name: "Green Farms", Active: true}
	require.NoError(t, f.trs.Create(&entity.Translation{
		ID: "t1", EntityID: "s1", EntityType: entity.EntityTypeSupplier,
		LanguageCode: "uk", FieldName: "name", TranslationText: "Зелені ферми",
	}))

	out, err := f.uc.GetByID("s1", "uk")
	require.NoError(t, err)
	assert.Equal(t, "Зелені ферми", out.Name)
}

func TestSupplierDelete_LimpiaTraducciones(t *testing.T) {
	f := newSupplierFixture()
	f.suppliers.rows["s1"] = &entity.Supplier{ID: "s1", Name: "Green Farms"}
	require.NoError(t, f.trs.Create(&entity.Translation{
		ID: "t1", EntityID: "s1", EntityType: entity.EntityTypeSupplier,
		LanguageCode: "uk", FieldName: "name", TranslationText: "Зелені ферми",
	}))

	f.tx.runs = 0
	require.NoError(t, f.uc.Delete(context.Background(), "s1"))

	// Traducciones y fila caen juntas, dentro de una sola transacción.
	assert.Equal(t, 1, f.tx.runs)
	stored, err := f.suppliers.GetByID("s1")
	require.NoError(t, err)
	assert.Nil(t, stored)
	rows, err := f.trs.GetForEntity("s1", entity.EntityTypeSupplier)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSupplierDelete_NoEncontrado(t *testing.T) {
	f := newSupplierFixture()
	err := f.uc.Delete(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
