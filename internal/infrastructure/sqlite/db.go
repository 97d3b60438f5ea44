// Package sqlite implementa el repositorio de experiencias sobre SQLite
// (driver puro Go modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath abre una base en memoria (una sola conexión para no perder el esquema).
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS WorkExperiences (
	Id               INTEGER PRIMARY KEY AUTOINCREMENT,
	CompanyName      TEXT NOT NULL,
	JobTitle         TEXT NOT NULL,
	WorkCityLocation TEXT NOT NULL,
	StartDate        TEXT NOT NULL,
	EndDate          TEXT NOT NULL,
	Description      TEXT NOT NULL
);`

// Open abre (o crea) la base SQLite en path y asegura la tabla WorkExperiences.
// El *sql.DB devuelto es propiedad del llamador, que debe cerrarlo.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("crear directorio de la base: %w", err)
			}
		}
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return db, nil
}
