package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	gormModels "fleetops/fleetdeck/internal/models/gorm"

	"github.com/redis/go-redis/v9"
)

// Publisher emits row-change notifications after successful writes, so every
// running instance's projections converge without polling.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

func wireFlightRow(f gormModels.Flight) FlightRow {
	return FlightRow{
		ID:             f.ID,
		AircraftID:     f.AircraftID,
		PilotID:        f.PilotID,
		Date:           f.Date.Format("2006-01-02"),
		DepartureTime:  f.DepartureTime,
		TachStart:      f.TachStart,
		TachEnd:        f.TachEnd,
		HobbsTime:      f.HobbsTime,
		FuelAdded:      f.FuelAdded,
		OilAdded:       f.OilAdded,
		PassengerCount: f.PassengerCount,
		Route:          f.Route,
		Category:       f.Category,
		Squawks:        f.Squawks,
		Notes:          f.Notes,
	}
}

func (p *Publisher) publish(ctx context.Context, channel string, action Action, row any) error {
	rowData, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}
	payload, err := json.Marshal(ChangeEnvelope{Action: string(action), Row: rowData})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}
	return nil
}

// PublishFlightChange broadcasts a flight row change.
func (p *Publisher) PublishFlightChange(ctx context.Context, action Action, f gormModels.Flight) error {
	return p.publish(ctx, ChannelFlights, action, wireFlightRow(f))
}

// PublishAircraftChange broadcasts an aircraft row change.
func (p *Publisher) PublishAircraftChange(ctx context.Context, action Action, a gormModels.Aircraft) error {
	return p.publish(ctx, ChannelAircraft, action, AircraftRow{
		ID:         a.ID,
		TailNumber: a.TailNumber,
		Make:       a.Make,
		Model:      a.Model,
		Category:   a.Category,
		IsActive:   &a.IsActive,
	})
}
