package db

import (
	"fmt"

	"fleetops/fleetdeck/internal/logging"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PgDB is the GORM pool used by the entity repositories.
var PgDB *gorm.DB

// InitPostgresORM opens the GORM pool against the same PG_* environment
// configuration as the sqlx pool.
func InitPostgresORM() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSNFromEnv()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres (gorm): %w", err)
	}

	PgDB = db
	logging.Info("Postgres pool ready (GORM)")
	return db, nil
}
