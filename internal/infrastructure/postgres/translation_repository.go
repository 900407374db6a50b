package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.TranslationRepository = (*TranslationRepo)(nil)

const translationColumns = "id, entity_id, entity_type, language_code, field_name, translation_text, created_at, updated_at"

// TranslationRepo implementación de TranslationRepository sobre PostgreSQL
// (usable con pool o tx). La tabla es EAV: una fila por (entidad, idioma, campo).
type TranslationRepo struct {
	q Querier
}

// NewTranslationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTranslationRepository(q Querier) *TranslationRepo {
	return &TranslationRepo{q: q}
}

// Create inserta una fila de traducción. Tupla duplicada -> ErrDuplicate.
func (r *TranslationRepo) Create(t *entity.Translation) error {
	query := `
		INSERT INTO translations (id, entity_id, entity_type, language_code, field_name, translation_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.EntityID, t.EntityType, t.LanguageCode, t.FieldName, t.TranslationText, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert translation: %w", err)
	}
	return nil
}

// BulkCreate inserta muchas filas en un batch. Atado a una tx el batch es
// todo-o-nada; el primer error aborta el resto.
func (r *TranslationRepo) BulkCreate(list []*entity.Translation) error {
	if len(list) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO translations (id, entity_id, entity_type, language_code, field_name, translation_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, t := range list {
		batch.Queue(query, t.ID, t.EntityID, t.EntityType, t.LanguageCode, t.FieldName, t.TranslationText, t.CreatedAt, t.UpdatedAt)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()
	for range list {
		if _, err := results.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("bulk insert translations: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una fila por ID.
func (r *TranslationRepo) GetByID(id string) (*entity.Translation, error) {
	query := `SELECT ` + translationColumns + ` FROM translations WHERE id = $1`
	t, err := scanTranslation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get translation: %w", err)
	}
	return t, nil
}

// Update actualiza el texto (y metadatos) de una fila existente.
func (r *TranslationRepo) Update(t *entity.Translation) error {
	query := `
		UPDATE translations SET language_code = $2, field_name = $3, translation_text = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		t.ID, t.LanguageCode, t.FieldName, t.TranslationText, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update translation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una fila por ID.
func (r *TranslationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM translations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete translation: %w", err)
	}
	return nil
}

// GetForEntity devuelve todas las filas de una entidad (todos los idiomas y campos).
func (r *TranslationRepo) GetForEntity(entityID, entityType string) ([]*entity.Translation, error) {
	query := `
		SELECT ` + translationColumns + `
		FROM translations WHERE entity_id = $1 AND entity_type = $2
		ORDER BY language_code, field_name`
	rows, err := r.q.Query(context.Background(), query, entityID, entityType)
	if err != nil {
		return nil, fmt.Errorf("get translations for entity: %w", err)
	}
	return collectTranslations(rows)
}

// GetForEntities forma batch: una sola consulta con = ANY para evitar N+1.
// languageCode vacío devuelve todos los idiomas.
func (r *TranslationRepo) GetForEntities(entityIDs []string, entityType, languageCode string) ([]*entity.Translation, error) {
	if len(entityIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + translationColumns + `
		FROM translations WHERE entity_id = ANY($1) AND entity_type = $2`
	args := []any{entityIDs, entityType}
	if languageCode != "" {
		query += ` AND language_code = $3`
		args = append(args, languageCode)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("get translations for entities: %w", err)
	}
	return collectTranslations(rows)
}

// DeleteByEntity borra con alcance opcional; filtros vacíos significan "todo".
func (r *TranslationRepo) DeleteByEntity(entityID, entityType, languageCode, fieldName string) error {
	query := `DELETE FROM translations WHERE entity_id = $1 AND entity_type = $2`
	args := []any{entityID, entityType}
	if languageCode != "" {
		args = append(args, languageCode)
		query += fmt.Sprintf(" AND language_code = $%d", len(args))
	}
	if fieldName != "" {
		args = append(args, fieldName)
		query += fmt.Sprintf(" AND field_name = $%d", len(args))
	}
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("delete translations by entity: %w", err)
	}
	return nil
}

// Search búsqueda administrativa con filtros dinámicos.
func (r *TranslationRepo) Search(q entity.TranslationQuery) ([]*entity.Translation, error) {
	var conditions []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if q.EntityType != "" {
		add("entity_type = $%d", q.EntityType)
	}
	if q.EntityID != "" {
		add("entity_id = $%d", q.EntityID)
	}
	if q.LanguageCode != "" {
		add("language_code = $%d", q.LanguageCode)
	}
	if q.FieldName != "" {
		add("field_name = $%d", q.FieldName)
	}
	if q.TextContains != "" {
		add("translation_text ILIKE $%d", "%"+q.TextContains+"%")
	}
	query := `SELECT ` + translationColumns + ` FROM translations`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY entity_type, entity_id, language_code, field_name"
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search translations: %w", err)
	}
	return collectTranslations(rows)
}

func scanTranslation(row pgx.Row) (*entity.Translation, error) {
	var t entity.Translation
	err := row.Scan(&t.ID, &t.EntityID, &t.EntityType, &t.LanguageCode, &t.FieldName,
		&t.TranslationText, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTranslations(rows pgx.Rows) ([]*entity.Translation, error) {
	defer rows.Close()
	var list []*entity.Translation
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
