package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/delivery/web/view"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/service"
	"redcolabora/internal/errors"
	"redcolabora/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Notices shown after a redirect, keyed by the status query parameter.
var businessNotices = map[string]string{
	"review":  "¡Gracias! Tu reseña fue publicada.",
	"updated": "Los cambios del negocio fueron guardados.",
}

// BusinessHandler serves the business page and the actions posted from it.
type BusinessHandler struct {
	businesses      usecase.BusinessUsecase
	reviews         usecase.ReviewUsecase
	recommendations usecase.RecommendationUsecase
	qrCodes         service.QRCodeService
	logger          *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(
	businesses usecase.BusinessUsecase,
	reviews usecase.ReviewUsecase,
	recommendations usecase.RecommendationUsecase,
	qrCodes service.QRCodeService,
	logger *slog.Logger,
) *BusinessHandler {
	return &BusinessHandler{
		businesses:      businesses,
		reviews:         reviews,
		recommendations: recommendations,
		qrCodes:         qrCodes,
		logger:          logger,
	}
}

// Detail renders /business/:id.
func (h *BusinessHandler) Detail(c echo.Context) error {
	id, err := businessID(c)
	if err != nil {
		return err
	}

	data, err := h.loadDetail(c, id)
	if err != nil {
		return err
	}
	data.Notice = businessNotices[c.QueryParam("status")]

	return h.render(c, http.StatusOK, data)
}

// ToggleRecommendation flips the visitor's recommendation. The form carries
// the state the page was showing.
func (h *BusinessHandler) ToggleRecommendation(c echo.Context) error {
	id, err := businessID(c)
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var form recommendationForm
	if err := c.Bind(&form); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	if _, err := h.recommendations.Toggle(c.Request().Context(), identity, id, form.Recommended); err != nil {
		state, ok := formFailure(err)
		if !ok {
			return errors.WithStack(err)
		}

		h.logFailure(c, "Recommendation toggle failed", err)

		data, loadErr := h.loadDetail(c, id)
		if loadErr != nil {
			return loadErr
		}
		data.RecommendationError = state.FormError

		return h.render(c, statusOf(err), data)
	}

	return c.Redirect(http.StatusSeeOther, businessPath(id))
}

// SubmitReview stores a review and redirects back, or re-renders the page
// with the submitted values and the failing field.
func (h *BusinessHandler) SubmitReview(c echo.Context) error {
	id, err := businessID(c)
	if err != nil {
		return err
	}

	var form reviewForm
	if err := c.Bind(&form); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	_, err = h.reviews.Submit(c.Request().Context(), deliverycontext.GetIdentity(c), usecase.ReviewInput{
		BusinessID: id,
		Rating:     form.Rating,
		Comment:    form.Comment,
	})
	if err != nil {
		state, ok := formFailure(err)
		if !ok {
			return errors.WithStack(err)
		}

		h.logFailure(c, "Review submission failed", err)

		data, loadErr := h.loadDetail(c, id)
		if loadErr != nil {
			return loadErr
		}
		data.Review = view.ReviewForm{FormState: state, Rating: form.Rating, Comment: form.Comment}

		return h.render(c, statusOf(err), data)
	}

	return c.Redirect(http.StatusSeeOther, businessPath(id)+"?status=review")
}

// Edit saves the owner's changes. On failure the form keeps the unsaved values.
func (h *BusinessHandler) Edit(c echo.Context) error {
	id, err := businessID(c)
	if err != nil {
		return err
	}

	var form editForm
	if err := c.Bind(&form); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	input := usecase.BusinessProfileInput{
		BusinessID:  id,
		Name:        form.Name,
		Description: form.Description,
		Comuna:      form.Comuna,
		Category:    form.Category,
		Phone:       form.Phone,
		Email:       form.Email,
		Website:     form.Website,
	}

	if _, err := h.businesses.UpdateProfile(c.Request().Context(), deliverycontext.GetIdentity(c), input); err != nil {
		state, ok := formFailure(err)
		if !ok || errors.Is(err, domainerrors.ErrForbidden) {
			return errors.WithStack(err)
		}

		h.logFailure(c, "Business profile update failed", err)

		data, loadErr := h.loadDetail(c, id)
		if loadErr != nil {
			return loadErr
		}
		data.Edit = view.EditForm{FormState: state, Values: input}

		return h.render(c, statusOf(err), data)
	}

	return c.Redirect(http.StatusSeeOther, businessPath(id)+"?status=updated")
}

// QRCode serves a PNG that links to the business page.
func (h *BusinessHandler) QRCode(c echo.Context) error {
	id, err := businessID(c)
	if err != nil {
		return err
	}

	png, err := h.qrCodes.GenerateBusinessQR(id)
	if err != nil {
		return errors.Wrap(err, "failed to generate QR code")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *BusinessHandler) loadDetail(c echo.Context, id uuid.UUID) (*view.BusinessData, error) {
	identity := deliverycontext.GetIdentity(c)

	detail, err := h.businesses.GetDetail(c.Request().Context(), identity, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	data := &view.BusinessData{
		BusinessDetail: detail,
		ShareURL:       h.qrCodes.BusinessLink(id),
	}
	if detail.CanEdit {
		data.Edit.Values = profileValues(detail.Business)
	}

	return data, nil
}

func (h *BusinessHandler) render(c echo.Context, status int, data *view.BusinessData) error {
	return c.Render(status, "business", view.Page{
		Title:    data.Business.Name,
		Identity: deliverycontext.GetIdentity(c),
		Data:     data,
	})
}

func (h *BusinessHandler) logFailure(c echo.Context, msg string, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info(msg, slog.Any("error", err))
}

func profileValues(b *entity.Business) usecase.BusinessProfileInput {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}

		return *s
	}

	return usecase.BusinessProfileInput{
		BusinessID:  b.ID,
		Name:        b.Name,
		Description: deref(b.Description),
		Comuna:      deref(b.Comuna),
		Category:    deref(b.Category),
		Phone:       deref(b.Phone),
		Email:       deref(b.Email),
		Website:     deref(b.Website),
	}
}

func businessPath(id uuid.UUID) string {
	return "/business/" + id.String()
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
