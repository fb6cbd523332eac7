package service

import (
	"context"
	"errors"
)

// ErrGuardBusy is returned when the key is already held.
var ErrGuardBusy = errors.New("guard key busy")

// ToggleGuard grants at most one holder per key at a time.
type ToggleGuard interface {
	// Acquire claims key or returns ErrGuardBusy. The returned release must be called once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
