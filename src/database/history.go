// Package database records generated prompts in a local libSQL
// database so past renders can be reviewed. Persona documents
// themselves live as JSON files in the store; this log is append-only
// side data.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/tursodatabase/go-libsql"
)

type Render struct {
	ID        int64
	PersonaID string
	Context   string
	Prompt    string
	CreatedAt time.Time
}

type HistoryDB struct {
	db *sql.DB
}

// NewHistoryDB opens (or creates) the render history database
func NewHistoryDB(dbPath string) (*HistoryDB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	hdb := &HistoryDB{db: db}

	if err := hdb.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return hdb, nil
}

func (h *HistoryDB) initSchema() error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS renders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		persona_id TEXT NOT NULL,
		context TEXT,
		prompt TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := h.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create renders table: %w", err)
	}

	indexSQL := `CREATE INDEX IF NOT EXISTS idx_renders_persona ON renders(persona_id)`
	if _, err := h.db.Exec(indexSQL); err != nil {
		return fmt.Errorf("failed to create persona index: %w", err)
	}

	return nil
}

// Record appends one generated prompt to the log
func (h *HistoryDB) Record(personaID, context, prompt string) error {
	insertSQL := `INSERT INTO renders (persona_id, context, prompt) VALUES (?, ?, ?)`
	if _, err := h.db.Exec(insertSQL, personaID, context, prompt); err != nil {
		return fmt.Errorf("failed to record render: %w", err)
	}
	return nil
}

// Recent returns the latest renders across all personas
func (h *HistoryDB) Recent(limit int) ([]Render, error) {
	querySQL := `
	SELECT id, persona_id, context, prompt, created_at
	FROM renders ORDER BY id DESC LIMIT ?`

	rows, err := h.db.Query(querySQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query renders: %w", err)
	}
	defer rows.Close()

	return scanRenders(rows)
}

// ForPersona returns the latest renders for one persona
func (h *HistoryDB) ForPersona(personaID string, limit int) ([]Render, error) {
	querySQL := `
	SELECT id, persona_id, context, prompt, created_at
	FROM renders WHERE persona_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := h.db.Query(querySQL, personaID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query renders: %w", err)
	}
	defer rows.Close()

	return scanRenders(rows)
}

func scanRenders(rows *sql.Rows) ([]Render, error) {
	var renders []Render
	for rows.Next() {
		var r Render
		if err := rows.Scan(&r.ID, &r.PersonaID, &r.Context, &r.Prompt, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan render: %w", err)
		}
		renders = append(renders, r)
	}
	return renders, rows.Err()
}

func (h *HistoryDB) Close() error {
	return h.db.Close()
}
