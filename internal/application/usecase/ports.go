package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción.
type TxRepos struct {
	Categories   repository.CategoryRepository
	Translations repository.TranslationRepository
	Products     repository.ProductRepository
	Suppliers    repository.SupplierRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el borrado y la reinserción de
// traducciones (reemplazo total) sean atómicos: ningún lector observa la
// ventana vacía intermedia. Lo mismo aplica al borrado de una entidad junto
// con sus traducciones.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
