// Package metadata talks to the instance-admin endpoint for the live
// capacity and topology classification of an instance.
package metadata

import (
	"context"

	"github.com/spannerautoscaler/poller/models"
)

// Fetcher returns the current metadata for an instance. Implementations must
// not cache results across polls.
type Fetcher interface {
	GetMetadata(ctx context.Context, projectID, instanceID string) (models.InstanceMetadata, error)
}
