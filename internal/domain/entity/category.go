package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Estados de una categoría. No hay grafo de transiciones forzado más allá de
// la regla de cascada: activar exige padre activo, desactivar cae en cascada.
const (
	CategoryStatusActive   = "active"
	CategoryStatusInactive = "inactive"
	CategoryStatusArchived = "archived"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Category representa un nodo del árbol de categorías. La relación padre/hijo
// es una referencia débil por ID: el árbol se resuelve siempre vía repositorio,
// nunca con punteros en memoria entre categorías.
type Category struct {
	ID              string
	Name            string
	Slug            string // único global, minúsculas, [a-z0-9-]+
	Description     string
	Status          string
	ImageURL        string
	ParentID        string // vacío si es categoría raíz
	SortOrder       int    // clave de orden entre hermanos, sin unicidad
	MetaTitle       string
	MetaDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CategoryTreeNode proyección de solo lectura: la categoría más sus hijos.
// Se arma bajo demanda, no se persiste.
type CategoryTreeNode struct {
	Category
	Children []*CategoryTreeNode
}

// ValidStatus verifica que el estado sea uno de los conocidos.
func ValidStatus(s string) bool {
	return s == CategoryStatusActive || s == CategoryStatusInactive || s == CategoryStatusArchived
}

// Validate devuelve la lista de reglas violadas. Las violaciones se acumulan
// (no se corta en la primera) para que el llamador vea todo de una vez.
func (c *Category) Validate() []string {
	var violations []string
	if strings.TrimSpace(c.Name) == "" {
		violations = append(violations, "name es requerido")
	}
	if strings.TrimSpace(c.Slug) == "" {
		violations = append(violations, "slug es requerido")
	} else if !slugPattern.MatchString(c.Slug) {
		violations = append(violations, "slug debe cumplir [a-z0-9-]+")
	}
	if !ValidStatus(c.Status) {
		violations = append(violations, fmt.Sprintf("status %q no es válido", c.Status))
	}
	if c.SortOrder < 0 {
		violations = append(violations, "sort_order debe ser >= 0")
	}
	return violations
}

// EntityID implementa i18n.Localizable.
func (c *Category) EntityID() string { return c.ID }

// ApplyTranslations sobrepone los campos traducibles de la categoría. Campos
// desconocidos en el overlay se ignoran (compatibilidad hacia adelante).
func (c *Category) ApplyTranslations(overlay map[string]string) {
	for field, text := range overlay {
		switch field {
		case "name":
			c.Name = text
		case "description":
			c.Description = text
		case "meta_title":
			c.MetaTitle = text
		case "meta_description":
			c.MetaDescription = text
		}
	}
}

// Slugify deriva un slug a partir del nombre: minúsculas, sin diacríticos,
// todo lo no alfanumérico colapsa a un guion.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}
