package impl

import (
	"context"

	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/repository"
	"redcolabora/internal/errors"
)

// storeError maps a failure from inside a transaction onto the application error taxonomy.
// Application errors keep their meaning; anything else becomes a backend error.
func storeError(err error, message string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsAny(err, context.Canceled, context.DeadlineExceeded):
		return errors.Wrap(err, message)
	case errors.Is(err, repository.ErrBusinessNotFound):
		return errors.Wrap(domainerrors.ErrBusinessNotFound, message)
	case errors.Is(err, repository.ErrProfileNotFound):
		return errors.Wrap(domainerrors.ErrProfileNotFound, message)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, message)
	}

	return errors.Wrap(domainerrors.ErrBackend.WithDetails(err.Error()), message)
}
