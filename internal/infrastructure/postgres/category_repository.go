package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = "id, name, slug, description, status, image_url, parent_id, sort_order, meta_title, meta_description, created_at, updated_at"

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (usable
// con pool o tx). parent_id es NULL en las raíces; en el dominio se representa
// con cadena vacía.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría. Slug duplicado -> ErrDuplicate.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, description, status, image_url, parent_id, sort_order, meta_title, meta_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Slug, category.Description, category.Status,
		category.ImageURL, nullIfEmpty(category.ParentID), category.SortOrder,
		category.MetaTitle, category.MetaDescription, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetBySlug obtiene una categoría por slug (único global).
func (r *CategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, slug = $3, description = $4, status = $5, image_url = $6,
			parent_id = $7, sort_order = $8, meta_title = $9, meta_description = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Slug, category.Description, category.Status,
		category.ImageURL, nullIfEmpty(category.ParentID), category.SortOrder,
		category.MetaTitle, category.MetaDescription, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus actualiza solo el estado (usado por la cascada de desactivación).
func (r *CategoryRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categories SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update category status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateSortOrder actualiza solo la clave de orden entre hermanos.
func (r *CategoryRepo) UpdateSortOrder(id string, sortOrder int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categories SET sort_order = $2, updated_at = now() WHERE id = $1`,
		id, sortOrder,
	)
	if err != nil {
		return fmt.Errorf("update category sort order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll devuelve todas las categorías (para el ensamblado del árbol).
func (r *CategoryRepo) ListAll() ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return collectCategories(rows)
}

// ListRoots devuelve las categorías raíz (parent_id IS NULL).
func (r *CategoryRepo) ListRoots() ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE parent_id IS NULL ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list root categories: %w", err)
	}
	return collectCategories(rows)
}

// ListByParent devuelve los hijos directos de una categoría.
func (r *CategoryRepo) ListByParent(parentID string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE parent_id = $1 ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list categories by parent: %w", err)
	}
	return collectCategories(rows)
}

// ListByStatus devuelve las categorías con un estado dado.
func (r *CategoryRepo) ListByStatus(status string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE status = $1 ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query, status)
	if err != nil {
		return nil, fmt.Errorf("list categories by status: %w", err)
	}
	return collectCategories(rows)
}

// CountChildren cuenta los hijos directos (guardia de borrado).
func (r *CategoryRepo) CountChildren(id string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM categories WHERE parent_id = $1`, id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count category children: %w", err)
	}
	return count, nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	var parentID *string
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Status, &c.ImageURL,
		&parentID, &c.SortOrder, &c.MetaTitle, &c.MetaDescription, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if parentID != nil {
		c.ParentID = *parentID
	}
	return &c, nil
}

func collectCategories(rows pgx.Rows) ([]*entity.Category, error) {
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// nullIfEmpty convierte la cadena vacía del dominio en NULL de SQL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
