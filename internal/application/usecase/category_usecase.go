package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/i18n"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// CategoryUseCase casos de uso del árbol de categorías: CRUD con invariantes
// de forma (slug único, sin ciclos, sin borrar nodos con hijos), cascada de
// estado y lecturas localizadas vía overlay de traducciones.
type CategoryUseCase struct {
	repo         repository.CategoryRepository
	products     repository.ProductRepository
	translations *TranslationUseCase
	tx           TxRunner
	defaultLang  string
	log          *logger.Logger
}

// NewCategoryUseCase construye el caso de uso. defaultLang vacío cae al idioma
// por defecto del dominio.
func NewCategoryUseCase(
	repo repository.CategoryRepository,
	products repository.ProductRepository,
	translations *TranslationUseCase,
	tx TxRunner,
	defaultLang string,
	log *logger.Logger,
) *CategoryUseCase {
	if defaultLang == "" {
		defaultLang = entity.DefaultLanguage
	}
	return &CategoryUseCase{
		repo:         repo,
		products:     products,
		translations: translations,
		tx:           tx,
		defaultLang:  defaultLang,
		log:          log,
	}
}

// Create crea una categoría. El slug se deriva del nombre si no viene; las
// traducciones opcionales se guardan aparte vía el servicio de traducciones.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	slug := in.Slug
	if slug == "" {
		slug = entity.Slugify(in.Name)
	}
	existing, err := uc.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrParentNotFound
		}
	}
	now := time.Now()
	category := &entity.Category{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Slug:            slug,
		Description:     in.Description,
		Status:          entity.CategoryStatusActive,
		ImageURL:        in.ImageURL,
		ParentID:        in.ParentID,
		SortOrder:       in.SortOrder,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if violations := category.Validate(); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	if len(in.Translations) > 0 {
		if err := uc.translations.Save(ctx, category.ID, entity.EntityTypeCategory, in.Translations); err != nil {
			return nil, err
		}
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría. Un cambio de padre pasa por verificación de
// existencia y detección de ciclos antes de persistirse.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Slug != nil && *in.Slug != category.Slug {
		other, err := uc.repo.GetBySlug(*in.Slug)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
		category.Slug = *in.Slug
	}
	if in.ParentID != nil {
		newParent := *in.ParentID
		if newParent == id {
			return nil, domain.ErrOwnParent
		}
		if newParent != "" && newParent != category.ParentID {
			parent, err := uc.repo.GetByID(newParent)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				return nil, domain.ErrParentNotFound
			}
			cycle, err := uc.wouldCreateCycle(id, newParent)
			if err != nil {
				return nil, err
			}
			if cycle {
				return nil, domain.ErrCycle
			}
		}
		category.ParentID = newParent
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.ImageURL != nil {
		category.ImageURL = *in.ImageURL
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}
	if in.MetaTitle != nil {
		category.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		category.MetaDescription = *in.MetaDescription
	}
	if violations := category.Validate(); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	if len(in.Translations) > 0 {
		if err := uc.translations.Save(ctx, category.ID, entity.EntityTypeCategory, in.Translations); err != nil {
			return nil, err
		}
	}
	return toCategoryResponse(category), nil
}

// wouldCreateCycle camina desde el nuevo padre propuesto hacia arriba por los
// punteros parent_id. Si en el camino aparece la categoría que se está
// actualizando, el cambio cerraría un ciclo. Se detiene al llegar a una raíz o
// a un nodo inexistente (parada defensiva); no asume profundidad máxima.
func (uc *CategoryUseCase) wouldCreateCycle(id, newParentID string) (bool, error) {
	current := newParentID
	for current != "" {
		if current == id {
			return true, nil
		}
		node, err := uc.repo.GetByID(current)
		if err != nil {
			return false, err
		}
		if node == nil {
			return false, nil
		}
		current = node.ParentID
	}
	return false, nil
}

// Delete elimina una categoría hoja. El borrado de la fila y de sus
// traducciones corre en una sola transacción.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	children, err := uc.repo.CountChildren(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return domain.ErrHasChildren
	}
	if uc.products != nil {
		// Guardia pre-borrado: no dejar productos apuntando a una categoría muerta.
		refs, err := uc.products.CountByCategory(id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return domain.ErrConflict
		}
	}
	return uc.tx.Run(ctx, func(repos TxRepos) error {
		if err := repos.Translations.DeleteByEntity(id, entity.EntityTypeCategory, "", ""); err != nil {
			return err
		}
		return repos.Categories.Delete(id)
	})
}

// ToggleStatus cambia el estado de una categoría. Activar exige que el padre
// esté activo; desactivar cae en cascada sobre todos los descendientes que
// sigan activos, con una actualización independiente por hijo.
func (uc *CategoryUseCase) ToggleStatus(ctx context.Context, id, status string) error {
	if !entity.ValidStatus(status) {
		return domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if status == entity.CategoryStatusActive && category.ParentID != "" {
		parent, err := uc.repo.GetByID(category.ParentID)
		if err != nil {
			return err
		}
		if parent == nil || parent.Status != entity.CategoryStatusActive {
			return domain.ErrParentInactive
		}
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return err
	}
	if status != entity.CategoryStatusInactive {
		return nil
	}
	// El padre ya quedó persistido; la cascada sobre los hijos es best-effort:
	// cada fallo se registra y se reporta al final sin frenar a los demás.
	var failed []string
	uc.deactivateDescendants(id, &failed)
	if len(failed) > 0 {
		return &domain.PartialError{Op: "desactivación en cascada", FailedIDs: failed}
	}
	return nil
}

func (uc *CategoryUseCase) deactivateDescendants(parentID string, failed *[]string) {
	children, err := uc.repo.ListByParent(parentID)
	if err != nil {
		if uc.log != nil {
			uc.log.Error().Err(err).Str("parent_id", parentID).Msg("listar hijos para cascada")
		}
		*failed = append(*failed, parentID)
		return
	}
	for _, child := range children {
		if child.Status == entity.CategoryStatusActive {
			if err := uc.repo.UpdateStatus(child.ID, entity.CategoryStatusInactive); err != nil {
				if uc.log != nil {
					uc.log.Error().Err(err).Str("category_id", child.ID).Msg("desactivar hijo en cascada")
				}
				*failed = append(*failed, child.ID)
			}
		}
		uc.deactivateDescendants(child.ID, failed)
	}
}

// Reorder asigna sort_order = posición para cada ID de la secuencia, con
// actualizaciones independientes y la misma política best-effort que la cascada.
func (uc *CategoryUseCase) Reorder(ctx context.Context, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return domain.ErrInvalidInput
	}
	var failed []string
	for i, id := range orderedIDs {
		if err := uc.repo.UpdateSortOrder(id, i); err != nil {
			if uc.log != nil {
				uc.log.Error().Err(err).Str("category_id", id).Int("sort_order", i).Msg("reordenar categoría")
			}
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return &domain.PartialError{Op: "reordenamiento", FailedIDs: failed}
	}
	return nil
}

// GetTree arma el bosque completo de categorías: una consulta para todos los
// nodos, un fetch batch de traducciones para todos los IDs y ensamblado en
// memoria por parent_id. Hermanos ordenados por (sort_order, name).
func (uc *CategoryUseCase) GetTree(languageCode string) (*dto.CategoryTreeResponse, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	if err := uc.applyOverlay(all, languageCode); err != nil {
		return nil, err
	}
	byParent := make(map[string][]*entity.Category)
	byID := make(map[string]*entity.Category, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}
	for _, c := range all {
		parent := c.ParentID
		if parent != "" {
			if _, ok := byID[parent]; !ok {
				// Padre inexistente: el nodo se expone como raíz en vez de perderse.
				parent = ""
			}
		}
		byParent[parent] = append(byParent[parent], c)
	}
	for _, siblings := range byParent {
		sortSiblings(siblings)
	}
	var build func(parentID string) []dto.CategoryTreeNodeResponse
	build = func(parentID string) []dto.CategoryTreeNodeResponse {
		nodes := make([]dto.CategoryTreeNodeResponse, 0, len(byParent[parentID]))
		for _, c := range byParent[parentID] {
			nodes = append(nodes, dto.CategoryTreeNodeResponse{
				CategoryResponse: *toCategoryResponse(c),
				Children:         build(c.ID),
			})
		}
		return nodes
	}
	return &dto.CategoryTreeResponse{Items: build("")}, nil
}

// GetByID obtiene una categoría con overlay del idioma pedido.
func (uc *CategoryUseCase) GetByID(id, languageCode string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.applyOverlay([]*entity.Category{category}, languageCode); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetBySlug obtiene una categoría por slug con overlay del idioma pedido.
func (uc *CategoryUseCase) GetBySlug(slug, languageCode string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.applyOverlay([]*entity.Category{category}, languageCode); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// ListRoots lista las categorías raíz localizadas.
func (uc *CategoryUseCase) ListRoots(languageCode string) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListRoots()
	if err != nil {
		return nil, err
	}
	return uc.localizedList(list, languageCode)
}

// ListChildren lista los hijos directos de una categoría, localizados.
func (uc *CategoryUseCase) ListChildren(parentID, languageCode string) (*dto.CategoryListResponse, error) {
	parent, err := uc.repo.GetByID(parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByParent(parentID)
	if err != nil {
		return nil, err
	}
	return uc.localizedList(list, languageCode)
}

// ListActive lista las categorías activas, localizadas.
func (uc *CategoryUseCase) ListActive(languageCode string) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListByStatus(entity.CategoryStatusActive)
	if err != nil {
		return nil, err
	}
	return uc.localizedList(list, languageCode)
}

// applyOverlay aplica el merge batch: un solo round-trip de traducciones para
// toda la lista. En el idioma por defecto no hay fetch ni merge: la fila
// canónica ya es la fuente de verdad.
func (uc *CategoryUseCase) applyOverlay(categories []*entity.Category, languageCode string) error {
	if languageCode == "" || languageCode == uc.defaultLang || len(categories) == 0 {
		return nil
	}
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	records, err := uc.translations.GetForEntities(ids, entity.EntityTypeCategory, languageCode)
	if err != nil {
		return err
	}
	i18n.ApplyAll(categories, i18n.BuildIndex(records))
	return nil
}

func (uc *CategoryUseCase) localizedList(list []*entity.Category, languageCode string) (*dto.CategoryListResponse, error) {
	if err := uc.applyOverlay(list, languageCode); err != nil {
		return nil, err
	}
	sortSiblings(list)
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

func sortSiblings(list []*entity.Category) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].Name < list[j].Name
	})
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Description:     c.Description,
		Status:          c.Status,
		ImageURL:        c.ImageURL,
		ParentID:        c.ParentID,
		SortOrder:       c.SortOrder,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
