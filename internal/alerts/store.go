package alerts

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"SignalSentry/internal/model"
)

// Store persists price-threshold alerts in SQLite. Alerts are write-once:
// there is no update operation, only create, list, and delete. A mutex
// serializes writers; the matcher is the sole deleter of fired alerts.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// NewStore opens (or creates) the SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] alert store opened: %s", dbPath)
	return s, nil
}

func (s *Store) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS alerts (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		chat_id      INTEGER NOT NULL,
		symbol       TEXT NOT NULL,
		target_price REAL NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("create alerts table: %w", err)
	}
	return nil
}

// Create persists a new alert and returns its assigned id.
func (s *Store) Create(chatID int64, symbol string, targetPrice float64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`INSERT INTO alerts (chat_id, symbol, target_price) VALUES (?, ?, ?)`,
		chatID, strings.ToUpper(symbol), targetPrice,
	)
	if err != nil {
		return 0, fmt.Errorf("insert alert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("alert id: %w", err)
	}
	return id, nil
}

// List returns all pending alerts.
func (s *Store) List() ([]model.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, chat_id, symbol, target_price FROM alerts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []model.Alert
	for rows.Next() {
		var a model.Alert
		if err := rows.Scan(&a.ID, &a.ChatID, &a.Symbol, &a.TargetPrice); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// Delete retires an alert by id.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM alerts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete alert %d: %w", id, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
