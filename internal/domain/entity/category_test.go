package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func TestSlugify_CasosBasicos(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"minúsculas simples", "Vegetables", "vegetables"},
		{"espacios a guiones", "Fresh Fruits", "fresh-fruits"},
		{"diacríticos eliminados", "Café con Leche", "cafe-con-leche"},
		{"símbolos colapsan a un guion", "Árboles & Plantas", "arboles-plantas"},
		{"basura al inicio y final", "  --Hello  World!!  ", "hello-world"},
		{"dígitos conservados", "123 Go", "123-go"},
		{"vacío queda vacío", "", ""},
		{"solo símbolos queda vacío", "!!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.Slugify(tc.in))
		})
	}
}

func TestValidate_AcumulaViolaciones(t *testing.T) {
	c := &entity.Category{
		Name:      "",
		Slug:      "Bad Slug!",
		Status:    "limbo",
		SortOrder: -1,
	}
	violations := c.Validate()
	// Todas las reglas violadas deben aparecer juntas, no solo la primera.
	require.Len(t, violations, 4)
}

func TestValidate_CategoriaCorrecta(t *testing.T) {
	c := &entity.Category{
		Name:   "Vegetales",
		Slug:   "vegetales",
		Status: entity.CategoryStatusActive,
	}
	assert.Empty(t, c.Validate())
}

func TestApplyTranslations_CampoDesconocidoIgnorado(t *testing.T) {
	c := &entity.Category{Name: "Vegetables", Description: "Fresh"}
	c.ApplyTranslations(map[string]string{
		"name":        "Овочі",
		"old_tagline": "ya no existe",
		"meta_title":  "Каталог овочів",
	})
	assert.Equal(t, "Овочі", c.Name)
	assert.Equal(t, "Fresh", c.Description)
	assert.Equal(t, "Каталог овочів", c.MetaTitle)
}

func TestTranslationIsValid(t *testing.T) {
	base := entity.Translation{
		EntityID:        "e1",
		EntityType:      entity.EntityTypeCategory,
		LanguageCode:    "uk",
		FieldName:       "name",
		TranslationText: "Овочі",
	}
	assert.True(t, base.IsValid())

	blank := base
	blank.TranslationText = "   "
	assert.False(t, blank.IsValid(), "texto en blanco nunca se persiste")

	noField := base
	noField.FieldName = ""
	assert.False(t, noField.IsValid())
}
