package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string         `json:"name" validate:"required,min=1,max=200"`
	Description  string         `json:"description"`
	Email        string         `json:"email" validate:"omitempty,email"`
	Phone        string         `json:"phone"`
	Translations TranslationMap `json:"translations"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name         *string        `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string        `json:"description"`
	Email        *string        `json:"email"`
	Phone        *string        `json:"phone"`
	Active       *bool          `json:"active"`
	Translations TranslationMap `json:"translations"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
