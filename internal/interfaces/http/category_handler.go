package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP del árbol de categorías. Todas
// las lecturas aceptan ?lang= para aplicar el overlay de traducciones.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create crea una categoría (slug derivado del nombre si no viene).
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetTree devuelve el árbol completo de categorías localizado.
func (h *CategoryHandler) GetTree(c *fiber.Ctx) error {
	out, err := h.uc.GetTree(c.Query("lang"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List devuelve las categorías raíz, o los hijos de ?parent_id=, o solo las
// activas con ?status=active.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	lang := c.Query("lang")
	if parentID := c.Query("parent_id"); parentID != "" {
		out, err := h.uc.ListChildren(parentID, lang)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	if c.Query("status") == "active" {
		out, err := h.uc.ListActive(lang)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.ListRoots(lang)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una categoría por ID.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), c.Query("lang"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBySlug obtiene una categoría por slug.
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Params("slug"), c.Query("lang"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una categoría (incluye cambio de padre con detección de ciclos).
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una categoría hoja junto con sus traducciones.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleStatus cambia el estado; desactivar cae en cascada sobre los hijos.
func (h *CategoryHandler) ToggleStatus(c *fiber.Ctx) error {
	var in dto.ToggleCategoryStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ToggleStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder asigna sort_order según la posición en la secuencia recibida.
func (h *CategoryHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderCategoriesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Reorder(c.Context(), in.OrderedIDs); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
