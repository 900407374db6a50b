package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// El árbol se resuelve siempre por consultas sobre parent_id, nunca por
// referencias en memoria.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetBySlug(slug string) (*entity.Category, error)
	Update(category *entity.Category) error
	UpdateStatus(id, status string) error
	UpdateSortOrder(id string, sortOrder int) error
	ListAll() ([]*entity.Category, error)
	ListRoots() ([]*entity.Category, error)
	ListByParent(parentID string) ([]*entity.Category, error)
	ListByStatus(status string) ([]*entity.Category, error)
	CountChildren(id string) (int, error)
	Delete(id string) error
}
