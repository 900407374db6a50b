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

// SupplierUseCase casos de uso CRUD para proveedores, con lecturas localizadas.
type SupplierUseCase struct {
	repo         repository.SupplierRepository
	translations *TranslationUseCase
	tx           TxRunner
	defaultLang  string
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, translations *TranslationUseCase, tx TxRunner, defaultLang string) *SupplierUseCase {
	if defaultLang == "" {
		defaultLang = entity.DefaultLanguage
	}
	return &SupplierUseCase{repo: repo, translations: translations, tx: tx, defaultLang: defaultLang}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Email:       in.Email,
		Phone:       in.Phone,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	if len(in.Translations) > 0 {
		if err := uc.translations.Save(ctx, supplier.ID, entity.EntityTypeSupplier, in.Translations); err != nil {
			return nil, err
		}
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor con overlay del idioma pedido.
func (uc *SupplierUseCase) GetByID(id, languageCode string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.applyOverlay([]*entity.Supplier{supplier}, languageCode); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor (campos nil no se tocan).
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Description != nil {
		supplier.Description = *in.Description
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Active != nil {
		supplier.Active = *in.Active
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	if len(in.Translations) > 0 {
		if err := uc.translations.Save(ctx, supplier.ID, entity.EntityTypeSupplier, in.Translations); err != nil {
			return nil, err
		}
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores paginados y localizados.
func (uc *SupplierUseCase) List(limit, offset int, languageCode string) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	if err := uc.applyOverlay(list, languageCode); err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proveedor y sus traducciones en una sola transacción.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(repos TxRepos) error {
		if err := repos.Translations.DeleteByEntity(id, entity.EntityTypeSupplier, "", ""); err != nil {
			return err
		}
		return repos.Suppliers.Delete(id)
	})
}

func (uc *SupplierUseCase) applyOverlay(suppliers []*entity.Supplier, languageCode string) error {
	if languageCode == "" || languageCode == uc.defaultLang || len(suppliers) == 0 {
		return nil
	}
	ids := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		ids = append(ids, s.ID)
	}
	records, err := uc.translations.GetForEntities(ids, entity.EntityTypeSupplier, languageCode)
	if err != nil {
		return err
	}
	i18n.ApplyAll(suppliers, i18n.BuildIndex(records))
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Email:       s.Email,
		Phone:       s.Phone,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
