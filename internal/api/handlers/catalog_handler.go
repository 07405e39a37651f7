package handlers

import (
	"errors"

	"macrolog/domain"
	"macrolog/internal/api/presenters"
	"macrolog/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		Search(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")

	results, err := h.catalogService.Search(c.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSearchCatalog, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchCatalog, err)
	}

	return presenters.SuccessResponse(c, results, fiber.StatusOK, domain.MessageSuccessSearchCatalog)
}
