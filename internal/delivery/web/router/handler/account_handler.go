package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/delivery/web/cookie"
	"redcolabora/internal/delivery/web/view"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/errors"
	"redcolabora/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler holds dependencies for sign-in, sign-up and sign-out.
type AccountHandler struct {
	accounts usecase.AccountUsecase
	jar      *cookie.Jar
	logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accounts usecase.AccountUsecase, jar *cookie.Jar, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		jar:      jar,
		logger:   logger,
	}
}

// LoginPage renders the sign-in form.
func (h *AccountHandler) LoginPage(c echo.Context) error {
	return h.renderLogin(c, http.StatusOK, view.LoginData{})
}

// Login exchanges the credentials for a session stored in cookies.
func (h *AccountHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	session, err := h.accounts.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			return errors.WithStack(err)
		}

		h.log(c).Info("Sign-in failed", slog.Any("error", err))

		return h.renderLogin(c, appErr.HTTPCode(), view.LoginData{
			Email:             form.Email,
			Error:             appErr.Message(),
			NeedsConfirmation: errors.Is(err, domainerrors.ErrEmailNotConfirmed),
		})
	}

	h.jar.WriteSession(c, session)

	return c.Redirect(http.StatusSeeOther, "/search")
}

// ResendConfirmation sends the sign-up email again.
func (h *AccountHandler) ResendConfirmation(c echo.Context) error {
	var form resendForm
	if err := c.Bind(&form); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	if err := h.accounts.ResendConfirmation(c.Request().Context(), form.Email); err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			return errors.WithStack(err)
		}

		h.log(c).Info("Resend confirmation failed", slog.Any("error", err))

		return h.renderLogin(c, appErr.HTTPCode(), view.LoginData{
			Email:             form.Email,
			Error:             appErr.Message(),
			NeedsConfirmation: true,
		})
	}

	return h.renderLogin(c, http.StatusOK, view.LoginData{Email: form.Email, ResendSuccess: true})
}

// RegisterPage renders the sign-up form.
func (h *AccountHandler) RegisterPage(c echo.Context) error {
	return h.renderRegister(c, http.StatusOK, view.RegisterData{})
}

// Register creates the account. The visitor stays anonymous until the email
// is confirmed.
func (h *AccountHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	err := h.accounts.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:           form.Email,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		Type:            entity.AccountType(form.Type),
		Comuna:          form.Comuna,
		Consent:         form.Consent,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			return errors.WithStack(err)
		}

		data := view.RegisterData{
			Email:   form.Email,
			Type:    form.Type,
			Comuna:  form.Comuna,
			Consent: form.Consent,
			Error:   appErr.Message(),
		}

		var validationErr *domainerrors.ValidationError
		if errors.As(err, &validationErr) {
			data.Field = validationErr.Field
		} else {
			h.log(c).Info("Sign-up failed", slog.Any("error", err))
		}

		return h.renderRegister(c, appErr.HTTPCode(), data)
	}

	return c.Redirect(http.StatusSeeOther, "/register/success")
}

// RegisterSuccess tells the visitor to check their inbox.
func (h *AccountHandler) RegisterSuccess(c echo.Context) error {
	return c.Render(http.StatusOK, "register_success", view.Page{
		Title:    "Registro exitoso",
		Identity: deliverycontext.GetIdentity(c),
	})
}

// Logout revokes the session and clears the cookies even when the auth
// service could not be reached.
func (h *AccountHandler) Logout(c echo.Context) error {
	accessToken, _ := h.jar.Tokens(c)
	if err := h.accounts.SignOut(c.Request().Context(), accessToken); err != nil {
		h.log(c).Warn("Sign-out failed", slog.Any("error", err))
	}

	h.jar.ClearSession(c)

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AccountHandler) renderLogin(c echo.Context, status int, data view.LoginData) error {
	return c.Render(status, "login", view.Page{
		Title:    "Iniciar sesión",
		Identity: deliverycontext.GetIdentity(c),
		Data:     data,
	})
}

func (h *AccountHandler) renderRegister(c echo.Context, status int, data view.RegisterData) error {
	return c.Render(status, "register", view.Page{
		Title:    "Registro",
		Identity: deliverycontext.GetIdentity(c),
		Data:     data,
	})
}

func (h *AccountHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
