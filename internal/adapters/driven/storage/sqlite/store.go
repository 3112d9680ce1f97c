package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/netwiz-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Store is a SQLite-backed store for recorded validation runs.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.netwiz/data/netwiz.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".netwiz", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "netwiz.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SubmissionStore returns a SubmissionStore interface backed by this store.
func (s *Store) SubmissionStore() driven.SubmissionStore {
	return &submissionStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Submission Store ====================

// submissionStore implements driven.SubmissionStore.
type submissionStore struct {
	store *Store
}

var _ driven.SubmissionStore = (*submissionStore)(nil)

// Save records a submission.
func (s *submissionStore) Save(ctx context.Context, submission *domain.NetlistSubmission) error {
	if submission == nil || submission.ID == "" {
		return fmt.Errorf("submission must have an ID: %w", domain.ErrInvalidInput)
	}

	netlistJSON, err := json.Marshal(submission.Netlist)
	if err != nil {
		return fmt.Errorf("marshalling netlist: %w", err)
	}
	resultJSON, err := json.Marshal(submission.Result)
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO submissions (id, raw_text, netlist, filename, submitted_at, result)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			raw_text = excluded.raw_text,
			netlist = excluded.netlist,
			filename = excluded.filename,
			submitted_at = excluded.submitted_at,
			result = excluded.result
	`, submission.ID, submission.RawText, string(netlistJSON),
		nullString(submission.Filename), submission.SubmittedAt.UTC(), string(resultJSON))

	if err != nil {
		return fmt.Errorf("saving submission: %w", err)
	}
	return nil
}

// Get retrieves a submission by ID.
func (s *submissionStore) Get(ctx context.Context, id string) (*domain.NetlistSubmission, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, raw_text, netlist, filename, submitted_at, result
		FROM submissions WHERE id = ?
	`, id)

	submission, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return submission, nil
}

// List returns submissions newest first, up to limit entries.
func (s *submissionStore) List(ctx context.Context, limit int) ([]domain.NetlistSubmission, error) {
	query := `
		SELECT id, raw_text, netlist, filename, submitted_at, result
		FROM submissions ORDER BY submitted_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var submissions []domain.NetlistSubmission
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return submissions, nil
}

// Delete removes a submission. Deleting a missing submission is not an
// error.
func (s *submissionStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM submissions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting submission: %w", err)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*domain.NetlistSubmission, error) {
	var submission domain.NetlistSubmission
	var netlistJSON, resultJSON sql.NullString
	var filename sql.NullString
	var submittedAt sql.NullTime

	if err := row.Scan(&submission.ID, &submission.RawText, &netlistJSON,
		&filename, &submittedAt, &resultJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}

	if netlistJSON.Valid && netlistJSON.String != jsonNull {
		if err := json.Unmarshal([]byte(netlistJSON.String), &submission.Netlist); err != nil {
			return nil, fmt.Errorf("unmarshaling netlist: %w", err)
		}
	}
	if resultJSON.Valid && resultJSON.String != jsonNull {
		if err := json.Unmarshal([]byte(resultJSON.String), &submission.Result); err != nil {
			return nil, fmt.Errorf("unmarshaling result: %w", err)
		}
	}
	submission.Filename = filename.String
	if submittedAt.Valid {
		submission.SubmittedAt = submittedAt.Time
	}
	return &submission, nil
}

// nullString converts an empty string to a SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
