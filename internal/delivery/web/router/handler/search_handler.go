package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/delivery/web/response"
	"redcolabora/internal/delivery/web/view"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/errors"
	"redcolabora/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SearchHandler serves the business search page and its JSON counterpart.
type SearchHandler struct {
	businesses  usecase.BusinessUsecase
	coordinator usecase.SearchCoordinator
	logger      *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(businesses usecase.BusinessUsecase, coordinator usecase.SearchCoordinator, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		businesses:  businesses,
		coordinator: coordinator,
		logger:      logger,
	}
}

type businessJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Comuna      *string   `json:"comuna"`
	Category    *string   `json:"category"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	Website     *string   `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
}

type searchJSON struct {
	// Seq echoes the client's sequence number so it can drop stale replies.
	Seq        uint64         `json:"seq"`
	Count      int            `json:"count"`
	Businesses []businessJSON `json:"businesses"`
}

// Page renders /search with the current filters.
func (h *SearchHandler) Page(c echo.Context) error {
	query, err := bindSearchQuery(c)

	data := view.SearchData{Comuna: query.Comuna, Category: query.Category}
	page := view.Page{Title: "Buscar negocios", Identity: deliverycontext.GetIdentity(c), Data: &data}

	if err != nil {
		var validationErr *domainerrors.ValidationError
		if !errors.As(err, &validationErr) {
			return err
		}
		data.Error = validationErr.Msg

		return c.Render(http.StatusBadRequest, "search", page)
	}

	ctx := c.Request().Context()
	businesses, err := h.businesses.Search(ctx, page.Identity, entity.BusinessFilter{
		Comuna:   query.Comuna,
		Category: query.Category,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			return errors.WithStack(err)
		}

		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Search failed", slog.Any("error", err))
		data.Error = appErr.Message()

		return c.Render(appErr.HTTPCode(), "search", page)
	}

	data.Businesses = businesses

	return c.Render(http.StatusOK, "search", page)
}

// API answers /api/businesses/search. Overlapping calls from the same browser
// resolve to the latest one; superseded calls get 409.
func (h *SearchHandler) API(c echo.Context) error {
	query, err := bindSearchQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.coordinator.Run(c.Request().Context(), deliverycontext.GetClientID(c), deliverycontext.GetIdentity(c), entity.BusinessFilter{
		Comuna:   query.Comuna,
		Category: query.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	out := searchJSON{
		Seq:        query.Seq,
		Count:      len(result.Businesses),
		Businesses: make([]businessJSON, 0, len(result.Businesses)),
	}
	for _, b := range result.Businesses {
		out.Businesses = append(out.Businesses, businessJSON{
			ID:          b.ID.String(),
			Name:        b.Name,
			Description: b.Description,
			Comuna:      b.Comuna,
			Category:    b.Category,
			Phone:       b.Phone,
			Email:       b.Email,
			Website:     b.Website,
			CreatedAt:   b.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, out, "")
}
