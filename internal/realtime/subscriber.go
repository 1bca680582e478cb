package realtime

import (
	"context"

	"fleetops/fleetdeck/internal/logging"

	"github.com/redis/go-redis/v9"
)

// Channel names for the row-change feed, one per watched table.
const (
	ChannelFlights  = "rowchange:flights"
	ChannelAircraft = "rowchange:aircraft"
)

// Watch subscribes to one row-change channel and feeds decoded events into
// the projection. A single goroutine reads the subscription, so events reach
// the projection queue in arrival order. Undecodable payloads are logged and
// skipped; they never stall the feed.
func Watch[T Entity](ctx context.Context, client *redis.Client, channel string,
	decode func([]byte) (Event[T], error), proj *Projection[T]) {

	sub := client.Subscribe(ctx, channel)

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				ev, err := decode([]byte(msg.Payload))
				if err != nil {
					logging.Warn("Dropping undecodable row-change payload",
						"channel", channel,
						"error", err.Error(),
					)
					continue
				}
				if !proj.Enqueue(ev) {
					logging.Warn("Row-change event not queued",
						"channel", channel,
						"action", string(ev.Action),
					)
				}
			}
		}
	}()

	logging.Info("Realtime watch started", "channel", channel, "table", proj.Name())
}
