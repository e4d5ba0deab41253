package sqlscript

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes for schema objects that already exist. Scripts
// are expected to be re-run against a provisioned schema, so these are
// benign.
const (
	codeDuplicateTable  = "42P07"
	codeDuplicateObject = "42710"
)

// Execer is the slice of *sql.DB the runner needs. Each ExecContext on a
// plain connection commits or rolls back on its own, which gives every
// statement its own transaction.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Runner struct {
	db  Execer
	log *slog.Logger
}

func NewRunner(db Execer, log *slog.Logger) *Runner {
	return &Runner{db: db, log: log}
}

// RunScript executes every non-blank statement of the script in order.
// A statement failing because its schema object already exists is logged
// and skipped; any other failure aborts the remaining statements and is
// returned with the failing statement logged.
func (r *Runner) RunScript(ctx context.Context, script string) error {
	for _, raw := range Split(script) {
		stmt := strings.TrimSpace(raw)
		if stmt == "" {
			continue
		}

		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			if isDuplicateObject(err) {
				r.log.Warn("schema object already exists, skipping statement", "error", err)
				continue
			}

			r.log.Error("statement failed", "statement", stmt, "error", err)

			return fmt.Errorf("executing statement: %w", err)
		}
	}

	return nil
}

// RunFile executes the script at the given path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script %s: %w", path, err)
	}

	r.log.Info("executing sql script", "path", path)

	if err := r.RunScript(ctx, string(script)); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}

	return nil
}

func isDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == codeDuplicateTable || pgErr.Code == codeDuplicateObject
}
