package trip

import (
	"fmt"

	"go.uber.org/zap"
)

// Source loads a complete trip snapshot. Implementations own all I/O; the
// itinerary engine only ever sees the resulting in-memory Data.
type Source interface {
	// FetchTrip loads the trip record and every sub-record collection
	// belonging to it.
	FetchTrip(tripID string) (*Data, error)
}

// CompositeSource implements Source with fallback strategy
// Primary: APISource (network)
// Fallback: FileSource (local snapshot)
type CompositeSource struct {
	primary  Source
	fallback Source
	logger   *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(primary, fallback Source, logger *zap.Logger) *CompositeSource {
	return &CompositeSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// FetchTrip tries the primary source and falls back to the local snapshot
func (cs *CompositeSource) FetchTrip(tripID string) (*Data, error) {
	data, err := cs.primary.FetchTrip(tripID)
	if err == nil {
		return data, nil
	}

	cs.logger.Warn("Primary trip source failed, falling back to file",
		zap.String("trip_id", tripID),
		zap.Error(err))

	data, ferr := cs.fallback.FetchTrip(tripID)
	if ferr != nil {
		return nil, fmt.Errorf("primary source failed (%v); fallback failed: %w", err, ferr)
	}
	return data, nil
}
