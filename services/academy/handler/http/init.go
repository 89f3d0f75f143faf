package http

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/logger"
	"github.com/markazhub/markaz/internal/utils"
	"github.com/markazhub/markaz/services/academy"
)

// AcademyHandler handles HTTP requests for the admin surface
type AcademyHandler struct {
	academyUC academy.AcademyUC
}

// NewAcademyHandler creates a new academy handler
func NewAcademyHandler(academyUC academy.AcademyUC) *AcademyHandler {
	return &AcademyHandler{academyUC: academyUC}
}

// parseID extracts the :id path parameter
func parseID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// mapError translates the error taxonomy into HTTP responses
func (h *AcademyHandler) mapError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.NotFoundResponse(c, "")
	case errors.Is(err, apperrors.ErrInvalidPhone):
		return utils.BadRequestResponse(c, "Invalid phone number format")
	case errors.Is(err, apperrors.ErrForbidden):
		return utils.ForbiddenResponse(c, "")
	default:
		logger.Error(fallback, logger.Fields{"error": err.Error()})
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
