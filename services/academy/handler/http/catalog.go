package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// CatalogHandlers bundles the CRUD handlers for one lookup kind so each kind
// can be mounted under its own route group
type CatalogHandlers struct {
	List   echo.HandlerFunc
	Get    echo.HandlerFunc
	Create echo.HandlerFunc
	Update echo.HandlerFunc
	Delete echo.HandlerFunc
}

// Catalog builds the handler set for a lookup kind
func (h *AcademyHandler) Catalog(kind models.CatalogKind) CatalogHandlers {
	return CatalogHandlers{
		List:   h.listCatalog(kind),
		Get:    h.getCatalog(kind),
		Create: h.createCatalog(kind),
		Update: h.updateCatalog(kind),
		Delete: h.deleteCatalog(kind),
	}
}

func (h *AcademyHandler) listCatalog(kind models.CatalogKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := h.academyUC.ListCatalogItems(c.Request().Context(), kind, utils.GetPagination(c))
		if err != nil {
			return h.mapError(c, err, "Failed to list catalog items")
		}
		return utils.SuccessResponse(c, http.StatusOK, "", items)
	}
}

func (h *AcademyHandler) getCatalog(kind models.CatalogKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid id")
		}

		item, err := h.academyUC.GetCatalogItem(c.Request().Context(), kind, id)
		if err != nil {
			return h.mapError(c, err, "Failed to get catalog item")
		}
		return utils.SuccessResponse(c, http.StatusOK, "", item)
	}
}

func (h *AcademyHandler) createCatalog(kind models.CatalogKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.CatalogItemRequest
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request payload")
		}
		if err := c.Validate(&req); err != nil {
			return utils.BadRequestResponse(c, "Title is required")
		}

		item, err := h.academyUC.CreateCatalogItem(c.Request().Context(), kind, &req)
		if err != nil {
			return h.mapError(c, err, "Failed to create catalog item")
		}
		return utils.SuccessResponse(c, http.StatusCreated, "Created", item)
	}
}

func (h *AcademyHandler) updateCatalog(kind models.CatalogKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid id")
		}

		var req models.CatalogItemRequest
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request payload")
		}

		item, err := h.academyUC.UpdateCatalogItem(c.Request().Context(), kind, id, &req)
		if err != nil {
			return h.mapError(c, err, "Failed to update catalog item")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Updated", item)
	}
}

func (h *AcademyHandler) deleteCatalog(kind models.CatalogKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid id")
		}

		if err := h.academyUC.DeleteCatalogItem(c.Request().Context(), kind, id); err != nil {
			return h.mapError(c, err, "Failed to delete catalog item")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Deleted", nil)
	}
}
