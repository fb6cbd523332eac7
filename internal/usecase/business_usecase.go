// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"redcolabora/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BusinessProfileInput is the raw editor form. Values are trimmed by the usecase.
type BusinessProfileInput struct {
	BusinessID  uuid.UUID
	Name        string
	Description string
	Comuna      string
	Category    string
	Phone       string
	Email       string
	Website     string
}

// --- Output DTOs ---

// BusinessDetail is everything the business page renders.
type BusinessDetail struct {
	Business       *entity.Business
	Reviews        []*entity.Review
	Rating         entity.RatingSummary
	Recommendation entity.RecommendationState
	CanEdit        bool
}

// SearchResult is a search answer tagged with the sequence number it was issued under.
type SearchResult struct {
	Seq        uint64
	Businesses []*entity.Business
}

// BusinessUsecase defines the read side of the marketplace and the profile editor.
type BusinessUsecase interface {
	Search(ctx context.Context, identity *entity.Identity, filter entity.BusinessFilter) ([]*entity.Business, error)
	GetDetail(ctx context.Context, identity *entity.Identity, businessID uuid.UUID) (*BusinessDetail, error)
	UpdateProfile(ctx context.Context, identity *entity.Identity, input BusinessProfileInput) (*entity.Business, error)
}

// SearchCoordinator serializes overlapping searches issued by one browser session.
// Starting a search cancels the one still in flight for the same key, and only the
// latest search of a key returns results.
type SearchCoordinator interface {
	Run(ctx context.Context, key string, identity *entity.Identity, filter entity.BusinessFilter) (*SearchResult, error)
}
