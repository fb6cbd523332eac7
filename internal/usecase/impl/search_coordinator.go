package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/domain/entity"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/usecase"

	"github.com/pkg/errors"
)

type inflightSearch struct {
	seq    uint64
	cancel context.CancelFunc
}

// searchCoordinator implements the SearchCoordinator interface.
type searchCoordinator struct {
	businesses usecase.BusinessUsecase
	logger     *slog.Logger

	mu       sync.Mutex
	seq      uint64
	inflight map[string]inflightSearch
}

// NewSearchCoordinator is the constructor for searchCoordinator.
func NewSearchCoordinator(businesses usecase.BusinessUsecase, logger *slog.Logger) usecase.SearchCoordinator {
	return &searchCoordinator{
		businesses: businesses,
		logger:     logger,
		inflight:   make(map[string]inflightSearch),
	}
}

func (sc *searchCoordinator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, sc.logger)
}

// Run issues a search under a fresh sequence number. A search still running for the
// same key is cancelled, and a search that lost its place returns ErrSearchSuperseded.
func (sc *searchCoordinator) Run(ctx context.Context, key string, identity *entity.Identity, filter entity.BusinessFilter) (*usecase.SearchResult, error) {
	searchCtx, seq := sc.begin(ctx, key)
	businesses, err := sc.businesses.Search(searchCtx, identity, filter)
	latest := sc.finish(key, seq)

	if !latest {
		sc.log(ctx).Debug("Discarding superseded search", slog.Uint64("seq", seq))

		return nil, errors.WithStack(domainerrors.ErrSearchSuperseded)
	}
	if err != nil {
		return nil, errors.Wrap(err, "search failed")
	}

	return &usecase.SearchResult{Seq: seq, Businesses: businesses}, nil
}

func (sc *searchCoordinator) begin(ctx context.Context, key string) (context.Context, uint64) {
	searchCtx, cancel := context.WithCancel(ctx)

	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.seq++
	if previous, ok := sc.inflight[key]; ok {
		previous.cancel()
	}
	sc.inflight[key] = inflightSearch{seq: sc.seq, cancel: cancel}

	return searchCtx, sc.seq
}

// finish releases the slot of seq and reports whether it was still the latest for key.
func (sc *searchCoordinator) finish(key string, seq uint64) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	current, ok := sc.inflight[key]
	if !ok || current.seq != seq {
		return false
	}

	current.cancel()
	delete(sc.inflight, key)

	return true
}
