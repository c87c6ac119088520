package performance

import "context"

// Repository defines the read operations over performance entries.
type Repository interface {
	// GlobalAverage returns the mean grade across all entries, and 0
	// when the table is empty.
	GlobalAverage(ctx context.Context) (float64, error)

	// SubjectAverages returns the mean grade per subject, ordered
	// lexicographically by subject for reproducible output.
	SubjectAverages(ctx context.Context) ([]SubjectAverage, error)

	// ListRecent returns up to limit entries, most recent insertion first.
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
}
