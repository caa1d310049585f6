package database

import (
	"database/sql"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Open opens and pings a database for driver "postgres" or "sqlite3".
func Open(logger *zap.SugaredLogger, driver, url string) (*sql.DB, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		logger.Errorw("Failed to open database connection", "driver", driver, "error", err)
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		logger.Errorw("Failed to ping database", "driver", driver, "error", err)
		db.Close()
		return nil, err
	}

	return db, nil
}
