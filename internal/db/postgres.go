package db

import (
	"fmt"
	"os"
	"time"

	"fleetops/fleetdeck/internal/logging"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DB is the sqlx pool for the raw-SQL read path (api keys, squawk report).
var DB *sqlx.DB

const connectAttempts = 10

// DSNFromEnv builds the Postgres DSN from the PG_* environment variables.
// Both pools (sqlx and GORM) connect to the same database with it.
func DSNFromEnv() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("PG_USER"),
		os.Getenv("PG_PASSWORD"),
		os.Getenv("PG_HOST"),
		os.Getenv("PG_PORT"),
		os.Getenv("PG_DB"),
	)
}

// InitPostgres opens the sqlx pool, retrying while the database comes up.
func InitPostgres() error {
	dsn := DSNFromEnv()

	var err error
	for i := 0; i < connectAttempts; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			logging.Info("Postgres pool ready (sqlx)", "attempts", i+1)
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("connect postgres (sqlx) after %d attempts: %w", connectAttempts, err)
}
