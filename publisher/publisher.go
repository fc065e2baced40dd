// Package publisher hands the per-instance scaling message to the message
// transport. Delivery is best effort: a rejected publish is logged by the
// poller and retried only by the next scheduled poll.
package publisher

import "context"

type Publisher interface {
	Publish(ctx context.Context, topic string, message []byte) error
}
