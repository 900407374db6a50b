package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. Si Slug viene vacío
// se deriva del nombre. Translations es opcional y se guarda aparte.
type CreateCategoryRequest struct {
	Name            string         `json:"name" validate:"required,min=1,max=200"`
	Slug            string         `json:"slug" validate:"omitempty,max=200"`
	Description     string         `json:"description"`
	ImageURL        string         `json:"image_url"`
	ParentID        string         `json:"parent_id"`
	SortOrder       int            `json:"sort_order" validate:"min=0"`
	MetaTitle       string         `json:"meta_title"`
	MetaDescription string         `json:"meta_description"`
	Translations    TranslationMap `json:"translations"`
}

// UpdateCategoryRequest entrada para actualizar una categoría. Campos nil no
// se tocan; ParentID apuntando a cadena vacía convierte la categoría en raíz.
type UpdateCategoryRequest struct {
	Name            *string        `json:"name" validate:"omitempty,min=1,max=200"`
	Slug            *string        `json:"slug"`
	Description     *string        `json:"description"`
	ImageURL        *string        `json:"image_url"`
	ParentID        *string        `json:"parent_id"`
	SortOrder       *int           `json:"sort_order"`
	MetaTitle       *string        `json:"meta_title"`
	MetaDescription *string        `json:"meta_description"`
	Translations    TranslationMap `json:"translations"`
}

// ToggleCategoryStatusRequest entrada del cambio de estado.
type ToggleCategoryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive archived"`
}

// ReorderCategoriesRequest secuencia de IDs; la posición define sort_order.
type ReorderCategoriesRequest struct {
	OrderedIDs []string `json:"ordered_ids" validate:"required,min=1"`
}

// CategoryResponse salida de una categoría (ya con overlay aplicado si se
// pidió un idioma distinto al por defecto).
type CategoryResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	ImageURL        string    `json:"image_url,omitempty"`
	ParentID        string    `json:"parent_id,omitempty"`
	SortOrder       int       `json:"sort_order"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CategoryTreeNodeResponse nodo del árbol con sus hijos anidados.
type CategoryTreeNodeResponse struct {
	CategoryResponse
	Children []CategoryTreeNodeResponse `json:"children"`
}

// CategoryTreeResponse árbol completo de categorías.
type CategoryTreeResponse struct {
	Items []CategoryTreeNodeResponse `json:"items"`
}

// CategoryListResponse lista plana de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
