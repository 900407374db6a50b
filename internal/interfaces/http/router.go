package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	TranslationUC *usecase.TranslationUseCase
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorías: árbol, CRUD, estado y reordenamiento
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/tree", categoryHandler.GetTree)
	categories.Put("/reorder", categoryHandler.Reorder)
	categories.Get("/slug/:slug", categoryHandler.GetBySlug)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Patch("/:id/status", categoryHandler.ToggleStatus)

	// Traducciones: superficie administrativa
	translations := api.Group("/translations")
	translationHandler := NewTranslationHandler(deps.TranslationUC)
	translations.Get("/", translationHandler.Search)
	translations.Get("/entity/:type/:id", translationHandler.GetForEntity)
	translations.Put("/entity/:type/:id", translationHandler.Save)
	translations.Delete("/entity/:type/:id", translationHandler.Delete)

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Proveedores
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
}
