package entity

import (
	"math"
	"strconv"
)

// RatingSummary is the aggregate shown next to a business.
type RatingSummary struct {
	Average float64
	Count   int
}

// SummarizeRatings computes the unrounded mean of the review ratings.
// An empty set yields a zero summary.
func SummarizeRatings(reviews []*Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	return RatingSummary{
		Average: float64(sum) / float64(len(reviews)),
		Count:   len(reviews),
	}
}

// HasRatings reports whether an indicator should be rendered at all.
func (s RatingSummary) HasRatings() bool {
	return s.Count > 0
}

// Display formats the average with one decimal place.
func (s RatingSummary) Display() string {
	return strconv.FormatFloat(s.Average, 'f', 1, 64)
}

// Stars rounds the average to the number of filled stars.
func (s RatingSummary) Stars() int {
	return int(math.Round(s.Average))
}

// CountLabel renders the review count in Spanish.
func (s RatingSummary) CountLabel() string {
	if s.Count == 1 {
		return "1 reseña"
	}

	return strconv.Itoa(s.Count) + " reseñas"
}
