package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"reorder-service/internal/order/model"
)

// Archive — журнал сгенерированных строк заказа (только запись + чтение по run).
type Archive struct {
	conn *sql.DB
}

type ArchivedLine struct {
	RunID     string
	Source    string
	Vendor    string
	Text      string
	CreatedAt time.Time
}

func Open(path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}
	a := &Archive{conn: conn}
	if err := a.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return a, nil
}

func (a *Archive) Close() error {
	return a.conn.Close()
}

func (a *Archive) init() error {
	_, err := a.conn.Exec(`
CREATE TABLE IF NOT EXISTS order_runs (
  runId TEXT PRIMARY KEY,
  source TEXT NOT NULL,
  includeSpec INTEGER NOT NULL,
  defaultUnit TEXT NOT NULL,
  sourceRows INTEGER NOT NULL,
  catalogEntries INTEGER NOT NULL,
  createdAt TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS order_lines (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  runId TEXT NOT NULL,
  position INTEGER NOT NULL,
  vendor TEXT NOT NULL,
  text TEXT NOT NULL,
  FOREIGN KEY(runId) REFERENCES order_runs(runId)
);
CREATE INDEX IF NOT EXISTS idx_order_lines_run ON order_lines(runId);
`)
	return err
}

// SaveRun пишет прогон в одной транзакции и возвращает его runId.
func (a *Archive) SaveRun(ctx context.Context, source string, res model.Result) (string, error) {
	runID := res.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	tx, err := a.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO order_runs(runId, source, includeSpec, defaultUnit, sourceRows, catalogEntries, createdAt) VALUES(?,?,?,?,?,?,?)`,
		runID, source, boolInt(res.Opts.IncludeSpec), res.Opts.DefaultUnit, res.SourceRows, res.CatalogEntries,
		time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	for i, l := range res.Lines {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_lines(runId, position, vendor, text) VALUES(?,?,?,?)`,
			runID, i, l.Vendor, l.Text,
		); err != nil {
			return "", fmt.Errorf("insert line: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// Lines — строки прогона в исходном (отсортированном) порядке.
func (a *Archive) Lines(ctx context.Context, runID string) ([]ArchivedLine, error) {
	rows, err := a.conn.QueryContext(ctx, `
SELECT l.runId, r.source, l.vendor, l.text, r.createdAt
FROM order_lines l JOIN order_runs r ON r.runId = l.runId
WHERE l.runId = ?
ORDER BY l.position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ArchivedLine
	for rows.Next() {
		var (
			l  ArchivedLine
			ts string
		)
		if err := rows.Scan(&l.RunID, &l.Source, &l.Vendor, &l.Text, &ts); err != nil {
			return nil, err
		}
		l.CreatedAt, _ = time.Parse(time.RFC3339Nano, ts)
		out = append(out, l)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
