package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/i18n"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos, con lecturas localizadas
// por el mismo overlay genérico que usan las categorías.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categories   repository.CategoryRepository
	translations *TranslationUseCase
	tx           TxRunner
	defaultLang  string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	translations *TranslationUseCase,
	tx TxRunner,
	defaultLang string,
) *ProductUseCase {
	if defaultLang == "" {
		defaultLang = entity.DefaultLanguage
	}
	return &ProductUseCase{repo: repo, categories: categories, translations: translations, tx: tx, defaultLang: defaultLang}
}

// Create crea un producto. SKU único global; la categoría referida debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CategoryID != "" {
		category, err := uc.categories.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	if len(in.Translations) > 0 {
		if err := uc.translations.Save(ctx, product.ID, entity.EntityTypeProduct, in.Translations); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con overlay del idioma pedido.
func (uc *ProductUseCase) GetByID(id, languageCode string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.applyOverlay([]*entity.Product{product}, languageCode); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (campos nil no se tocan).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			category, err := uc.categories.GetByID(*in.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	if len(in.Translations) > 0 {
		if err := uc.translations.Save(ctx, product.ID, entity.EntityTypeProduct, in.Translations); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// List lista productos paginados y localizados (un solo fetch de traducciones
// para toda la página).
func (uc *ProductUseCase) List(limit, offset int, languageCode string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	if err := uc.applyOverlay(list, languageCode); err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto y sus traducciones en una sola transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(repos TxRepos) error {
		if err := repos.Translations.DeleteByEntity(id, entity.EntityTypeProduct, "", ""); err != nil {
			return err
		}
		return repos.Products.Delete(id)
	})
}

func (uc *ProductUseCase) applyOverlay(products []*entity.Product, languageCode string) error {
	if languageCode == "" || languageCode == uc.defaultLang || len(products) == 0 {
		return nil
	}
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	records, err := uc.translations.GetForEntities(ids, entity.EntityTypeProduct, languageCode)
	if err != nil {
		return err
	}
	i18n.ApplyAll(products, i18n.BuildIndex(records))
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
