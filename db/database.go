package db

import (
	"database/sql"
	"fmt"

	"harmonic/config"
	"harmonic/logger"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

var DB *sql.DB

// ConnectDB establishes a connection to the database. Failure here is fatal
// for the caller; the application does not start without storage.
func ConnectDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to the database.")
	return nil
}

// InitDB initializes the database schema, creating tables if they don't exist.
func InitDB() error {
	if err := createUsersTable(); err != nil {
		return err
	}
	if err := createMusicsTable(); err != nil {
		return err
	}
	// The favorites table is owned by the gorm side, see gorm.go.
	logger.Info("Database schema initialized.")
	return nil
}

func createUsersTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(80) NOT NULL,
		last_name VARCHAR(80) NOT NULL,
		cpf VARCHAR(14) NOT NULL UNIQUE,
		email VARCHAR(180) NOT NULL UNIQUE,
		nickname VARCHAR(80) NOT NULL UNIQUE,
		role ENUM('listener', 'artist', 'admin') NOT NULL DEFAULT 'listener',
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

func createMusicsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS musics (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(160) NOT NULL,
		genre VARCHAR(80),
		cover_url VARCHAR(4096),
		artist_name VARCHAR(120),
		artist_id INT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_musics_artist FOREIGN KEY (artist_id) REFERENCES users(id)
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create musics table: %w", err)
	}
	return nil
}
