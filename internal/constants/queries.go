package constants

const (
	GetStatusByApiKey = `
	SELECT id, status FROM api_keys WHERE id = $1
	`

	GetOpenSquawks = `
	SELECT f.id, f.date, f.route, f.squawks, f.notes,
	       COALESCE(a.tail_number, '') AS tail_number,
	       COALESCE(p.name, '') AS pilot_name
	FROM flights f
	LEFT JOIN aircraft a ON f.aircraft_id = a.id
	LEFT JOIN pilots p ON f.pilot_id = p.id
	WHERE f.squawks IS NOT NULL AND f.squawks <> ''
	ORDER BY f.date DESC
	`
)
