package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TranslationUseCase punto de entrada único para leer y escribir conjuntos de
// traducciones de cualquier entidad. Es dueño de la semántica de reemplazo:
// cada guardado borra el conjunto anterior completo y lo reinserta.
type TranslationUseCase struct {
	repo        repository.TranslationRepository
	tx          TxRunner
	defaultLang string
}

// NewTranslationUseCase construye el caso de uso. defaultLang vacío cae al
// idioma por defecto del dominio. Debe ser el mismo valor que reciben los
// casos de uso que leen con overlay: el filtro de guardado y el atajo de
// lectura tienen que coincidir.
func NewTranslationUseCase(repo repository.TranslationRepository, tx TxRunner, defaultLang string) *TranslationUseCase {
	if defaultLang == "" {
		defaultLang = entity.DefaultLanguage
	}
	return &TranslationUseCase{repo: repo, tx: tx, defaultLang: defaultLang}
}

// GetEntityTranslations devuelve todas las filas (todos los idiomas) de una
// entidad, para vistas administrativas.
func (uc *TranslationUseCase) GetEntityTranslations(entityID, entityType string) (*dto.TranslationListResponse, error) {
	if entityID == "" || entityType == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.GetForEntity(entityID, entityType)
	if err != nil {
		return nil, err
	}
	return toTranslationList(list), nil
}

// GetForEntities fetch batch para el merge: una sola consulta para N entidades.
// Lo consumen los casos de uso de categoría/producto/proveedor.
func (uc *TranslationUseCase) GetForEntities(entityIDs []string, entityType, languageCode string) ([]*entity.Translation, error) {
	if len(entityIDs) == 0 {
		return nil, nil
	}
	return uc.repo.GetForEntities(entityIDs, entityType, languageCode)
}

// Save reemplaza el conjunto completo de traducciones de (entityID, entityType):
//  1. borra todas las filas existentes del alcance,
//  2. arma candidatos por cada (idioma, campo, texto) descartando en silencio
//     los textos en blanco (localización faltante no es un error),
//  3. inserta todo en un bulk.
//
// Los tres pasos corren en una sola transacción: si el insert falla no queda
// el alcance borrado sin reemplazo. Un mapa vacío equivale a limpiar todo.
func (uc *TranslationUseCase) Save(ctx context.Context, entityID, entityType string, translations dto.TranslationMap) error {
	if entityID == "" || entityType == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	var candidates []*entity.Translation
	for languageCode, fields := range translations {
		if languageCode == "" || languageCode == uc.defaultLang {
			// El idioma por defecto vive en la fila canónica, nunca en la tabla EAV.
			continue
		}
		for fieldName, text := range fields {
			t := &entity.Translation{
				ID:              uuid.New().String(),
				EntityID:        entityID,
				EntityType:      entityType,
				LanguageCode:    languageCode,
				FieldName:       fieldName,
				TranslationText: strings.TrimSpace(text),
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if !t.IsValid() {
				continue
			}
			candidates = append(candidates, t)
		}
	}
	return uc.tx.Run(ctx, func(repos TxRepos) error {
		if err := repos.Translations.DeleteByEntity(entityID, entityType, "", ""); err != nil {
			return err
		}
		if len(candidates) == 0 {
			return nil
		}
		return repos.Translations.BulkCreate(candidates)
	})
}

// Delete borra traducciones con alcance opcional por idioma y campo.
func (uc *TranslationUseCase) Delete(entityID, entityType, languageCode, fieldName string) error {
	if entityID == "" || entityType == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.DeleteByEntity(entityID, entityType, languageCode, fieldName)
}

// Search búsqueda administrativa con filtros ad-hoc.
func (uc *TranslationUseCase) Search(in dto.SearchTranslationsRequest) (*dto.TranslationListResponse, error) {
	list, err := uc.repo.Search(entity.TranslationQuery{
		EntityType:   in.EntityType,
		EntityID:     in.EntityID,
		LanguageCode: in.LanguageCode,
		FieldName:    in.FieldName,
		TextContains: in.Text,
	})
	if err != nil {
		return nil, err
	}
	return toTranslationList(list), nil
}

func toTranslationList(list []*entity.Translation) *dto.TranslationListResponse {
	items := make([]dto.TranslationResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.TranslationResponse{
			ID:              t.ID,
			EntityID:        t.EntityID,
			EntityType:      t.EntityType,
			LanguageCode:    t.LanguageCode,
			FieldName:       t.FieldName,
			TranslationText: t.TranslationText,
			CreatedAt:       t.CreatedAt,
			UpdatedAt:       t.UpdatedAt,
		})
	}
	return &dto.TranslationListResponse{Items: items}
}
