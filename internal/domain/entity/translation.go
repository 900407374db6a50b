package entity

import (
	"strings"
	"time"
)

// DefaultLanguage es el idioma canónico: sus valores viven en la fila de la
// entidad, nunca en la tabla de traducciones.
const DefaultLanguage = "en"

// Tipos de entidad que admiten traducciones (namespace de las filas EAV).
const (
	EntityTypeCategory = "category"
	EntityTypeProduct  = "product"
	EntityTypeSupplier = "supplier"
)

// Translation representa un valor localizado de un campo de una entidad.
// La tupla (EntityID, EntityType, LanguageCode, FieldName) es única.
type Translation struct {
	ID              string
	EntityID        string
	EntityType      string
	LanguageCode    string
	FieldName       string
	TranslationText string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsValid verifica que la fila esté completa antes de persistirla. Texto en
// blanco nunca se guarda: los escritores lo filtran antes del insert.
func (t *Translation) IsValid() bool {
	return t.EntityID != "" &&
		t.EntityType != "" &&
		t.LanguageCode != "" &&
		t.FieldName != "" &&
		strings.TrimSpace(t.TranslationText) != ""
}

// TranslationQuery filtros de búsqueda administrativa sobre traducciones.
// Campos vacíos significan "sin filtro".
type TranslationQuery struct {
	EntityType   string
	EntityID     string
	LanguageCode string
	FieldName    string
	TextContains string
}
