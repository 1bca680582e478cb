package entities

import "time"

type ApiKey struct {
	ApiKey string `db:"id"`
	Status bool   `db:"status"`
}

// SquawkReportRow is the joined read-model row for the safety report view.
type SquawkReportRow struct {
	FlightID   string    `db:"id" json:"flightId"`
	Date       time.Time `db:"date" json:"date"`
	Route      string    `db:"route" json:"route"`
	Squawks    string    `db:"squawks" json:"squawks"`
	Notes      string    `db:"notes" json:"notes"`
	TailNumber string    `db:"tail_number" json:"tailNumber"`
	PilotName  string    `db:"pilot_name" json:"pilotName"`
}
