// Package i18n implementa el merge de overlays de traducción sobre entidades
// base. Es lógica pura: no toca persistencia ni conoce idiomas soportados.
package i18n

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// Localizable es cualquier entidad con campos traducibles. La entidad decide
// qué nombres de campo reconoce; los desconocidos se ignoran.
type Localizable interface {
	EntityID() string
	ApplyTranslations(overlay map[string]string)
}

// Index agrupa traducciones planas por entidad: entityID -> fieldName -> texto.
type Index map[string]map[string]string

// BuildIndex arma el índice en una sola pasada sobre la lista plana que
// devuelve el repositorio (O(filas)). Es el paso 3 del camino batch.
func BuildIndex(records []*entity.Translation) Index {
	idx := make(Index, len(records))
	for _, r := range records {
		fields, ok := idx[r.EntityID]
		if !ok {
			fields = make(map[string]string)
			idx[r.EntityID] = fields
		}
		fields[r.FieldName] = r.TranslationText
	}
	return idx
}

// Apply sobrepone un overlay sobre una entidad. Overlay nil o vacío deja la
// entidad con sus valores canónicos (fallback al idioma por defecto).
func Apply(e Localizable, overlay map[string]string) {
	if len(overlay) == 0 {
		return
	}
	e.ApplyTranslations(overlay)
}

// ApplyAll aplica el índice batch a cada entidad. Las entidades ausentes del
// índice quedan intactas: no tener traducción es un estado normal, no un error.
func ApplyAll[T Localizable](items []T, idx Index) {
	if len(idx) == 0 {
		return
	}
	for _, it := range items {
		Apply(it, idx[it.EntityID()])
	}
}
