package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. La fila canónica está en el
// idioma por defecto; name y description admiten overlay de traducción.
type Product struct {
	ID          string
	SKU         string // único global
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  string // referencia débil a Category, puede estar vacía
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EntityID implementa i18n.Localizable.
func (p *Product) EntityID() string { return p.ID }

// ApplyTranslations sobrepone los campos traducibles del producto.
func (p *Product) ApplyTranslations(overlay map[string]string) {
	for field, text := range overlay {
		switch field {
		case "name":
			p.Name = text
		case "description":
			p.Description = text
		}
	}
}
