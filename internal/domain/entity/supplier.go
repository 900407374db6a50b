package entity

import "time"

// Supplier representa un proveedor del catálogo.
type Supplier struct {
	ID          string
	Name        string
	Description string
	Email       string
	Phone       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EntityID implementa i18n.Localizable.
func (s *Supplier) EntityID() string { return s.ID }

// ApplyTranslations sobrepone los campos traducibles del proveedor.
func (s *Supplier) ApplyTranslations(overlay map[string]string) {
	for field, text := range overlay {
		switch field {
		case "name":
			s.Name = text
		case "description":
			s.Description = text
		}
	}
}
