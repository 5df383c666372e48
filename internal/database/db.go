package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the tables the service needs when they do not
// exist yet.  It is safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS vehicles (
			id            VARCHAR(32)  NOT NULL,
			vehicle_number VARCHAR(32) NOT NULL,
			title         VARCHAR(255) NOT NULL,
			description   TEXT         NOT NULL,
			make          VARCHAR(64)  NOT NULL,
			model         VARCHAR(64)  NOT NULL,
			year          INT          NOT NULL,
			category      VARCHAR(32)  NOT NULL,
			image_url     VARCHAR(512) NOT NULL,
			location      VARCHAR(128) NOT NULL,
			features      TEXT         NULL,
			hourly_rate   BIGINT       NOT NULL,
			daily_rate    BIGINT       NOT NULL,
			status        VARCHAR(16)  NOT NULL,
			is_available  TINYINT(1)   NOT NULL,
			created_at    DATETIME     NOT NULL,
			last_modified DATETIME     NOT NULL,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id              VARCHAR(32)  NOT NULL,
			vehicle_id      VARCHAR(32)  NOT NULL,
			customer_name   VARCHAR(128) NOT NULL,
			customer_phone  VARCHAR(32)  NOT NULL,
			customer_address VARCHAR(255) NOT NULL,
			booking_type    VARCHAR(8)   NOT NULL,
			start_date      CHAR(10)     NOT NULL,
			end_date        CHAR(10)     NOT NULL,
			start_time      CHAR(5)      NOT NULL,
			end_time        CHAR(5)      NOT NULL,
			total_cost      BIGINT       NOT NULL,
			status          VARCHAR(16)  NOT NULL,
			created_at      DATETIME     NOT NULL,
			last_modified   DATETIME     NOT NULL,
			PRIMARY KEY (id),
			KEY idx_bookings_vehicle (vehicle_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS audit_log (
			id            VARCHAR(32)  NOT NULL,
			entity_type   VARCHAR(16)  NOT NULL,
			entity_id     VARCHAR(32)  NOT NULL,
			action        VARCHAR(16)  NOT NULL,
			admin_id      VARCHAR(32)  NOT NULL,
			admin_name    VARCHAR(128) NOT NULL,
			timestamp     DATETIME(6)  NOT NULL,
			details       VARCHAR(512) NOT NULL,
			previous_data TEXT         NULL,
			new_data      TEXT         NULL,
			PRIMARY KEY (id),
			KEY idx_audit_timestamp (timestamp)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS admins (
			id            VARCHAR(32)  NOT NULL,
			email         VARCHAR(255) NOT NULL,
			name          VARCHAR(128) NOT NULL,
			password_hash VARCHAR(128) NOT NULL,
			is_active     TINYINT(1)   NOT NULL DEFAULT 1,
			created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_admins_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS refresh_tokens (
			id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			admin_id   VARCHAR(32)  NOT NULL,
			token_hash CHAR(64)     NOT NULL,
			expires_at DATETIME     NOT NULL,
			revoked_at DATETIME     NULL,
			created_at DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_refresh_hash (token_hash),
			KEY idx_refresh_admin (admin_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
