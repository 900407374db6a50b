package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Los repos devuelven copias para que los casos de uso no
// muten el "almacén" antes de persistir, igual que con una BD real.
// ──────────────────────────────────────────────────────────────────────────────

type memTranslationRepo struct {
	rows map[string]*entity.Translation // por ID
	// batchCalls cuenta los fetch batch para verificar el contrato O(1) round-trips.
	batchCalls int
}

func newMemTranslationRepo() *memTranslationRepo {
	return &memTranslationRepo{rows: map[string]*entity.Translation{}}
}

func tupleKey(t *entity.Translation) string {
	return fmt.Sprintf("%s|%s|%s|%s", t.EntityID, t.EntityType, t.LanguageCode, t.FieldName)
}

func (m *memTranslationRepo) tupleExists(t *entity.Translation) bool {
	for _, row := range m.rows {
		if row.ID != t.ID && tupleKey(row) == tupleKey(t) {
			return true
		}
	}
	return false
}

func (m *memTranslationRepo) Create(t *entity.Translation) error {
	if m.tupleExists(t) {
		return domain.ErrDuplicate
	}
	cp := *t
	m.rows[t.ID] = &cp
	return nil
}

func (m *memTranslationRepo) BulkCreate(list []*entity.Translation) error {
	// Todo-o-nada: primero se validan los duplicados, después se inserta.
	seen := map[string]bool{}
	for _, t := range list {
		if m.tupleExists(t) || seen[tupleKey(t)] {
			return domain.ErrDuplicate
		}
		seen[tupleKey(t)] = true
	}
	for _, t := range list {
		cp := *t
		m.rows[t.ID] = &cp
	}
	return nil
}

func (m *memTranslationRepo) GetByID(id string) (*entity.Translation, error) {
	t, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memTranslationRepo) Update(t *entity.Translation) error {
	if _, ok := m.rows[t.ID]; !ok {
		return domain.ErrNotFound
	}
	if m.tupleExists(t) {
		return domain.ErrDuplicate
	}
	cp := *t
	m.rows[t.ID] = &cp
	return nil
}

func (m *memTranslationRepo) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

func (m *memTranslationRepo) GetForEntity(entityID, entityType string) ([]*entity.Translation, error) {
	return m.filter(func(t *entity.Translation) bool {
		return t.EntityID == entityID && t.EntityType == entityType
	}), nil
}

func (m *memTranslationRepo) GetForEntities(entityIDs []string, entityType, languageCode string) ([]*entity.Translation, error) {
	m.batchCalls++
	ids := map[string]bool{}
	for _, id := range entityIDs {
		ids[id] = true
	}
	return m.filter(func(t *entity.Translation) bool {
		if !ids[t.EntityID] || t.EntityType != entityType {
			return false
		}
		return languageCode == "" || t.LanguageCode == languageCode
	}), nil
}

func (m *memTranslationRepo) DeleteByEntity(entityID, entityType, languageCode, fieldName string) error {
	for id, t := range m.rows {
		if t.EntityID != entityID || t.EntityType != entityType {
			continue
		}
		if languageCode != "" && t.LanguageCode != languageCode {
			continue
		}
		if fieldName != "" && t.FieldName != fieldName {
			continue
		}
		delete(m.rows, id)
	}
	return nil
}

func (m *memTranslationRepo) Search(q entity.TranslationQuery) ([]*entity.Translation, error) {
	return m.filter(func(t *entity.Translation) bool {
		if q.EntityType != "" && t.EntityType != q.EntityType {
			return false
		}
		if q.EntityID != "" && t.EntityID != q.EntityID {
			return false
		}
		if q.LanguageCode != "" && t.LanguageCode != q.LanguageCode {
			return false
		}
		if q.FieldName != "" && t.FieldName != q.FieldName {
			return false
		}
		if q.TextContains != "" && !strings.Contains(strings.ToLower(t.TranslationText), strings.ToLower(q.TextContains)) {
			return false
		}
		return true
	}), nil
}

func (m *memTranslationRepo) filter(keep func(*entity.Translation) bool) []*entity.Translation {
	var out []*entity.Translation
	for _, t := range m.rows {
		if keep(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return tupleKey(out[i]) < tupleKey(out[j]) })
	return out
}

var _ repository.TranslationRepository = (*memTranslationRepo)(nil)

type memCategoryRepo struct {
	rows map[string]*entity.Category
	// statusErr fuerza fallos en UpdateStatus para probar la cascada best-effort.
	statusErr map[string]error
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{rows: map[string]*entity.Category{}, statusErr: map[string]error{}}
}

func (m *memCategoryRepo) Create(c *entity.Category) error {
	for _, row := range m.rows {
		if row.Slug == c.Slug {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	for _, c := range m.rows {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCategoryRepo) Update(c *entity.Category) error {
	if _, ok := m.rows[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, row := range m.rows {
		if row.ID != c.ID && row.Slug == c.Slug {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memCategoryRepo) UpdateStatus(id, status string) error {
	if err := m.statusErr[id]; err != nil {
		return err
	}
	c, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = status
	return nil
}

func (m *memCategoryRepo) UpdateSortOrder(id string, sortOrder int) error {
	c, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.SortOrder = sortOrder
	return nil
}

func (m *memCategoryRepo) ListAll() ([]*entity.Category, error) {
	return m.list(func(*entity.Category) bool { return true }), nil
}

func (m *memCategoryRepo) ListRoots() ([]*entity.Category, error) {
	return m.list(func(c *entity.Category) bool { return c.ParentID == "" }), nil
}

func (m *memCategoryRepo) ListByParent(parentID string) ([]*entity.Category, error) {
	return m.list(func(c *entity.Category) bool { return c.ParentID == parentID }), nil
}

func (m *memCategoryRepo) ListByStatus(status string) ([]*entity.Category, error) {
	return m.list(func(c *entity.Category) bool { return c.Status == status }), nil
}

func (m *memCategoryRepo) CountChildren(id string) (int, error) {
	count := 0
	for _, c := range m.rows {
		if c.ParentID == id {
			count++
		}
	}
	return count, nil
}

func (m *memCategoryRepo) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

func (m *memCategoryRepo) list(keep func(*entity.Category) bool) []*entity.Category {
	var out []*entity.Category
	for _, c := range m.rows {
		if keep(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out
}

var _ repository.CategoryRepository = (*memCategoryRepo)(nil)

type memProductRepo struct {
	rows map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{rows: map[string]*entity.Product{}}
}

func (m *memProductRepo) Create(p *entity.Product) error {
	for _, row := range m.rows {
		if row.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range m.rows {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) Update(p *entity.Product) error {
	if _, ok := m.rows[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.rows {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.rows {
		if p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProductRepo) CountByCategory(categoryID string) (int, error) {
	count := 0
	for _, p := range m.rows {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *memProductRepo) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

type memSupplierRepo struct {
	rows map[string]*entity.Supplier
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{rows: map[string]*entity.Supplier{}}
}

func (m *memSupplierRepo) Create(s *entity.Supplier) error {
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := m.rows[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *memSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range m.rows {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memSupplierRepo) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

var _ repository.SupplierRepository = (*memSupplierRepo)(nil)

// fakeTxRunner ejecuta el callback directamente sobre los fakes: los tests
// corren en una sola goroutine, así que no hay ventana de carrera que cubrir.
// runs cuenta las transacciones para verificar que las operaciones compuestas
// pasen por el runner y no por llamadas sueltas.
type fakeTxRunner struct {
	cat  *memCategoryRepo
	tr   *memTranslationRepo
	prod *memProductRepo
	sup  *memSupplierRepo
	runs int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repos usecase.TxRepos) error) error {
	f.runs++
	return fn(usecase.TxRepos{
		Categories:   f.cat,
		Translations: f.tr,
		Products:     f.prod,
		Suppliers:    f.sup,
	})
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)
