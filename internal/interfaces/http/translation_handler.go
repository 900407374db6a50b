package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// TranslationHandler superficie administrativa de traducciones: búsqueda,
// vista por entidad, guardado masivo y borrado con alcance.
type TranslationHandler struct {
	uc *usecase.TranslationUseCase
}

// NewTranslationHandler construye el handler.
func NewTranslationHandler(uc *usecase.TranslationUseCase) *TranslationHandler {
	return &TranslationHandler{uc: uc}
}

// Search busca traducciones con filtros opcionales por query string.
func (h *TranslationHandler) Search(c *fiber.Ctx) error {
	in := dto.SearchTranslationsRequest{
		EntityType:   c.Query("entity_type"),
		EntityID:     c.Query("entity_id"),
		LanguageCode: c.Query("language_code"),
		FieldName:    c.Query("field_name"),
		Text:         c.Query("text"),
	}
	out, err := h.uc.Search(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetForEntity devuelve todas las traducciones de una entidad (todos los idiomas).
func (h *TranslationHandler) GetForEntity(c *fiber.Ctx) error {
	out, err := h.uc.GetEntityTranslations(c.Params("id"), c.Params("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save reemplaza el conjunto completo de traducciones de la entidad. Un mapa
// vacío limpia todas sus traducciones.
func (h *TranslationHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveTranslationsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Save(c.Context(), c.Params("id"), c.Params("type"), in.Translations); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete borra traducciones de una entidad, con alcance opcional por
// ?language_code= y ?field_name=.
func (h *TranslationHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Params("id"), c.Params("type"), c.Query("language_code"), c.Query("field_name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
