package config

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Migrate creates the schema when missing. Statements are idempotent so the
// server can start against a fresh or an existing database.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGINT AUTO_INCREMENT PRIMARY KEY,
			username      VARCHAR(150) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			first_name    VARCHAR(100) NOT NULL DEFAULT '',
			last_name     VARCHAR(100) NOT NULL DEFAULT '',
			role          VARCHAR(20)  NOT NULL DEFAULT 'admin',
			phone         VARCHAR(32)  NOT NULL DEFAULT '',
			last_seen     DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS buildings (
			id          BIGINT AUTO_INCREMENT PRIMARY KEY,
			name        VARCHAR(100) NOT NULL UNIQUE,
			address     VARCHAR(255) NOT NULL UNIQUE,
			description TEXT         NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS rooms (
			id              BIGINT AUTO_INCREMENT PRIMARY KEY,
			building_id     BIGINT       NOT NULL,
			number          VARCHAR(10)  NOT NULL,
			capacity        INT UNSIGNED NOT NULL,
			room_type       VARCHAR(50)  NOT NULL DEFAULT '',
			room_class      VARCHAR(40)  NOT NULL DEFAULT 'standard',
			maintenance     TINYINT(1)   NOT NULL DEFAULT 0,
			description     TEXT         NOT NULL,
			price_per_night DECIMAL(8,2) NOT NULL DEFAULT 0,
			rooms_count     INT UNSIGNED NOT NULL DEFAULT 1,
			amenities       VARCHAR(255) NOT NULL DEFAULT '',
			is_deleted      TINYINT(1)   NOT NULL DEFAULT 0,
			INDEX idx_rooms_building (building_id),
			CONSTRAINT fk_rooms_building FOREIGN KEY (building_id) REFERENCES buildings(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS guests (
			id                BIGINT AUTO_INCREMENT PRIMARY KEY,
			full_name         VARCHAR(100)  NOT NULL,
			phone             VARCHAR(20)   NOT NULL DEFAULT '',
			email             VARCHAR(255)  NOT NULL DEFAULT '',
			address           VARCHAR(255)  NOT NULL DEFAULT '',
			people_count      INT UNSIGNED  NOT NULL DEFAULT 1,
			notes             TEXT          NOT NULL,
			inn               VARCHAR(20)   NOT NULL DEFAULT '',
			registration_date DATE          NOT NULL,
			total_spent       DECIMAL(10,2) NOT NULL DEFAULT 0,
			visits_count      INT UNSIGNED  NOT NULL DEFAULT 0,
			status            VARCHAR(20)   NOT NULL DEFAULT 'active',
			is_deleted        TINYINT(1)    NOT NULL DEFAULT 0
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id             BIGINT AUTO_INCREMENT PRIMARY KEY,
			reference_code VARCHAR(64)   NOT NULL DEFAULT '',
			guest_id       BIGINT        NOT NULL,
			room_id        BIGINT        NOT NULL,
			check_in       DATETIME      NOT NULL,
			check_out      DATETIME      NOT NULL,
			people_count   INT UNSIGNED  NOT NULL DEFAULT 1,
			cancelled      TINYINT(1)    NOT NULL DEFAULT 0,
			payment_status VARCHAR(20)   NOT NULL DEFAULT 'pending',
			payment_method VARCHAR(20)   NOT NULL DEFAULT 'cash',
			payment_amount DECIMAL(10,2) NOT NULL DEFAULT 0,
			total_amount   DECIMAL(10,2) NOT NULL DEFAULT 0,
			comments       TEXT          NOT NULL,
			created_by     BIGINT        NULL,
			created_at     DATETIME      NOT NULL DEFAULT CURRENT_TIMESTAMP,
			is_deleted     TINYINT(1)    NOT NULL DEFAULT 0,
			INDEX idx_bookings_guest (guest_id),
			INDEX idx_bookings_room (room_id),
			INDEX idx_bookings_dates (check_in, check_out),
			CONSTRAINT fk_bookings_guest FOREIGN KEY (guest_id) REFERENCES guests(id) ON DELETE CASCADE,
			CONSTRAINT fk_bookings_room  FOREIGN KEY (room_id)  REFERENCES rooms(id)  ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS audit_logs (
			id          BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id     BIGINT      NULL,
			action      VARCHAR(50) NOT NULL,
			object_type VARCHAR(50) NOT NULL,
			object_id   BIGINT      NOT NULL,
			details     TEXT        NOT NULL,
			created_at  DATETIME    NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_audit_created (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Seed ensures a superadmin exists so a fresh install is operable.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO users (username, password_hash, first_name, last_name, role, phone)
		VALUES ('admin', ?, 'Admin', '', 'superadmin', '')
	`, string(hash))
	if err != nil {
		return err
	}

	log.Println("seeded default superadmin (username: admin)")
	return nil
}
