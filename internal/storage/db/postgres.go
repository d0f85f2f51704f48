package db

import (
	"context"
	"fmt"
	"time"

	"github.com/nsmeele/magistra/internal/config"
	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
)

const pingTimeout = 5 * time.Second

// InitDB opens the postgres pool, applies the configured limits and
// verifies the connection before handing it out. Session snapshots are
// rewritten on every answer, so the idle settings matter as much as the
// open-connection cap.
func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn(cfg.Conn))
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

func dsn(conn config.DBConn) string {
	return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		conn.Host, conn.Port, conn.Name, conn.User, conn.Password, conn.SSL)
}
