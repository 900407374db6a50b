package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// TranslationRepository define el puerto de persistencia para las filas EAV de
// traducción (DIP). Las operaciones masivas son todo-o-nada: atadas a una tx
// no dejan estado parcial observable.
type TranslationRepository interface {
	Create(t *entity.Translation) error
	BulkCreate(list []*entity.Translation) error
	GetByID(id string) (*entity.Translation, error)
	Update(t *entity.Translation) error
	Delete(id string) error

	// GetForEntity devuelve todas las filas (todos los idiomas y campos) de una entidad.
	GetForEntity(entityID, entityType string) ([]*entity.Translation, error)
	// GetForEntities es la forma batch usada para evitar N+1: una sola consulta
	// para todos los IDs. languageCode vacío significa todos los idiomas.
	GetForEntities(entityIDs []string, entityType, languageCode string) ([]*entity.Translation, error)
	// DeleteByEntity borra con alcance opcional: languageCode y fieldName vacíos
	// significan "todo".
	DeleteByEntity(entityID, entityType, languageCode, fieldName string) error
	// Search búsqueda administrativa ad-hoc.
	Search(q entity.TranslationQuery) ([]*entity.Translation, error)
}
