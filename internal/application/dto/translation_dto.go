package dto

import "time"

// TranslationMap agrupa traducciones por idioma y campo:
// language_code -> field_name -> texto.
type TranslationMap map[string]map[string]string

// SaveTranslationsRequest entrada del guardado masivo (reemplazo total del
// conjunto de traducciones de la entidad).
type SaveTranslationsRequest struct {
	Translations TranslationMap `json:"translations"`
}

// SearchTranslationsRequest filtros de búsqueda administrativa.
type SearchTranslationsRequest struct {
	EntityType   string `query:"entity_type"`
	EntityID     string `query:"entity_id"`
	LanguageCode string `query:"language_code"`
	FieldName    string `query:"field_name"`
	Text         string `query:"text"`
}

// TranslationResponse salida de una fila de traducción.
type TranslationResponse struct {
	ID              string    `json:"id"`
	EntityID        string    `json:"entity_id"`
	EntityType      string    `json:"entity_type"`
	LanguageCode    string    `json:"language_code"`
	FieldName       string    `json:"field_name"`
	TranslationText string    `json:"translation_text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TranslationListResponse lista de traducciones.
type TranslationListResponse struct {
	Items []TranslationResponse `json:"items"`
}
