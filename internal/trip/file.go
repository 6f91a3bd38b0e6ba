package trip

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// FileSource implements Source using a local JSON snapshot of a trip,
// typically exported once while online and reused offline.
type FileSource struct {
	filePath string
	logger   *zap.Logger
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
	}
}

// FetchTrip loads the snapshot from disk. The tripID must match the
// snapshot's trip (an empty tripID accepts whatever the file holds).
func (fs *FileSource) FetchTrip(tripID string) (*Data, error) {
	raw, err := os.ReadFile(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trip snapshot: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse trip snapshot: %w", err)
	}

	if tripID != "" && data.Trip.ID.String() != tripID {
		return nil, fmt.Errorf("snapshot holds trip %s, not %s", data.Trip.ID, tripID)
	}

	fs.logger.Info("Trip snapshot loaded from file",
		zap.String("file", fs.filePath),
		zap.String("trip_id", data.Trip.ID.String()),
		zap.String("trip", data.Trip.Name))

	return &data, nil
}
