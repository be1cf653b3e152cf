package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "shopfront/internal/delivery/context"
	"shopfront/internal/delivery/http/response"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/usecase"
)

// replaceCategoriesRequest is the payload for the replace-all operation. The
// pointer distinguishes an absent or null field from an empty list: only an
// actual JSON array is accepted.
type replaceCategoriesRequest struct {
	ActiveCategoryIDs *[]uint64 `json:"activeCategoryIds"`
}

// PreferenceHandler holds dependencies for category preference handlers.
type PreferenceHandler struct {
	uc     usecase.PreferenceUsecase
	logger *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler, injected by Fx.
func NewPreferenceHandler(uc usecase.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCategories returns every category flagged with the caller's association.
func (h *PreferenceHandler) ListCategories(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrTokenMissing)
	}

	categories, err := h.uc.ListCategories(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// ReplaceCategories overwrites the caller's category associations with the
// submitted set.
func (h *PreferenceHandler) ReplaceCategories(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrTokenMissing)
	}

	var req replaceCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "activeCategoryIds must be an array of category ids")
	}
	if req.ActiveCategoryIDs == nil {
		return response.BadRequest(c, "activeCategoryIds must be an array of category ids")
	}

	if err := h.uc.ReplaceCategories(c.Request().Context(), userID, *req.ActiveCategoryIDs); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessEmpty(c)
}
