// Package store persists scored assessments for team dashboards.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/schema"
)

// submissionsTable is the name of the table holding scored assessments.
const submissionsTable = "xray_submissions"

// sqliteTimeFormat keeps a fixed width so text timestamps sort chronologically.
const sqliteTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// StoreManager holds the active SubmissionStore.
type StoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	submissions  contract.SubmissionStore
}

var _ contract.StoreManager = &StoreManager{} // Compile-time check

// NewStoreManager wraps an already opened store.
func NewStoreManager(s contract.SubmissionStore) *StoreManager {
	return &StoreManager{submissions: s}
}

// GetSubmissionStore returns the SubmissionStore.
func (mgr *StoreManager) GetSubmissionStore() contract.SubmissionStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.submissions
}

// SubmissionStoreImpl implements the SubmissionStore interface over database/sql.
type SubmissionStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.SubmissionStore = &SubmissionStoreImpl{} // Compile-time check

// driverName maps a backend to its registered database/sql driver.
func driverName(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return "mysql"
	case schema.PostgreSQLBackend:
		return "pgx"
	default:
		return "sqlite"
	}
}

// openDB opens and pings a database for the backend.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetDBFilePath()
		}
		db, err = sql.Open(driverName(backend), dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		dsn, dsnErr := mysqlDSN(connStr)
		if dsnErr != nil {
			return nil, dsnErr
		}
		db, err = sql.Open(driverName(backend), dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		db, err = sql.Open(driverName(backend), connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=... user=...", err)
		}

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}
	return db, nil
}

// mysqlDSN forces parseTime so DATETIME columns scan into time.Time.
func mysqlDSN(connStr string) (string, error) {
	cfg, err := mysql.ParseDSN(connStr)
	if err != nil {
		return "", fmt.Errorf("invalid MySQL connection string: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// NewSubmissionStore creates a new SubmissionStore with the specified backend.
// The none backend returns a store that accepts writes and lists nothing.
func NewSubmissionStore(backend schema.DatabaseBackend, connStr string) (contract.SubmissionStore, error) {
	if backend == schema.NoneBackend {
		return &SubmissionStoreImpl{backend: backend}, nil
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := createTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create submission tables: %w", err)
	}

	return &SubmissionStoreImpl{db: db, backend: backend}, nil
}

// createTables creates the submissions table and its team index.
func createTables(db *sql.DB, backend schema.DatabaseBackend) error {
	if _, err := db.Exec(getCreateSubmissionsQuery(backend)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", submissionsTable, err)
	}
	// MySQL has no CREATE INDEX IF NOT EXISTS, so its index lives in the table definition.
	if backend != schema.MySQLBackend {
		query := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_team ON %s (team_code)",
			submissionsTable, quoteTableName(submissionsTable, backend))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create team index: %w", err)
		}
	}
	return nil
}

// getCreateSubmissionsQuery returns the CREATE TABLE query for xray_submissions.
func getCreateSubmissionsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(submissionsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id VARCHAR(36) PRIMARY KEY,
				user_name VARCHAR(255) NOT NULL,
				team_code VARCHAR(64) NOT NULL,
				archetype_id VARCHAR(32) NOT NULL,
				score_b INT NOT NULL,
				score_f INT NOT NULL,
				score_p INT NOT NULL,
				lowest_pillar CHAR(1) NOT NULL,
				confidence INT NOT NULL,
				submitted_at DATETIME(6) NOT NULL,
				INDEX idx_xray_submissions_team (team_code)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id VARCHAR(36) PRIMARY KEY,
				user_name TEXT NOT NULL,
				team_code TEXT NOT NULL,
				archetype_id TEXT NOT NULL,
				score_b INT NOT NULL,
				score_f INT NOT NULL,
				score_p INT NOT NULL,
				lowest_pillar TEXT NOT NULL,
				confidence INT NOT NULL,
				submitted_at TIMESTAMPTZ NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				user_name TEXT NOT NULL,
				team_code TEXT NOT NULL,
				archetype_id TEXT NOT NULL,
				score_b INTEGER NOT NULL,
				score_f INTEGER NOT NULL,
				score_p INTEGER NOT NULL,
				lowest_pillar TEXT NOT NULL,
				confidence INTEGER NOT NULL,
				submitted_at TEXT NOT NULL
			);
		`, quotedTableName)
	}
}

// RecordSubmission stores one scored assessment.
func (s *SubmissionStoreImpl) RecordSubmission(ctx context.Context, sub schema.Submission) error {
	// Skip for NoneBackend
	if s.backend == schema.NoneBackend || s.db == nil {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_name, team_code, archetype_id, score_b, score_f, score_p,
		                lowest_pillar, confidence, submitted_at)
		VALUES (%s)
	`, quoteTableName(submissionsTable, s.backend), placeholders(s.backend, 10))

	_, err := s.db.ExecContext(ctx, query,
		sub.ID, sub.UserName, sub.TeamCode, string(sub.ArchetypeID),
		sub.Scores.B, sub.Scores.F, sub.Scores.P,
		string(sub.LowestPillar), sub.Confidence, formatTime(sub.SubmittedAt, s.backend),
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// ListSubmissions returns submissions newest first. An empty teamCode lists every team.
func (s *SubmissionStoreImpl) ListSubmissions(ctx context.Context, teamCode string) ([]schema.Submission, error) {
	// Skip for NoneBackend
	if s.backend == schema.NoneBackend || s.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT id, user_name, team_code, archetype_id, score_b, score_f, score_p,
		lowest_pillar, confidence, submitted_at FROM %s`, quoteTableName(submissionsTable, s.backend))
	var args []any
	if teamCode != "" {
		query += " WHERE team_code = " + placeholders(s.backend, 1)
		args = append(args, teamCode)
	}
	query += " ORDER BY submitted_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.Submission
	for rows.Next() {
		var (
			sub       schema.Submission
			archetype string
			lowest    string
		)
		dest := []any{&sub.ID, &sub.UserName, &sub.TeamCode, &archetype,
			&sub.Scores.B, &sub.Scores.F, &sub.Scores.P, &lowest, &sub.Confidence}

		switch s.backend {
		case schema.SQLiteBackend:
			var submittedAt string
			if err := rows.Scan(append(dest, &submittedAt)...); err != nil {
				return nil, fmt.Errorf("failed to scan submission: %w", err)
			}
			t, err := parseTime(submittedAt)
			if err != nil {
				return nil, fmt.Errorf("failed to parse submitted_at: %w", err)
			}
			sub.SubmittedAt = t
		default: // MySQL and PostgreSQL store as native datetime
			if err := rows.Scan(append(dest, &sub.SubmittedAt)...); err != nil {
				return nil, fmt.Errorf("failed to scan submission: %w", err)
			}
			sub.SubmittedAt = sub.SubmittedAt.UTC()
		}

		sub.ArchetypeID = schema.ArchetypeID(archetype)
		sub.LowestPillar = schema.Pillar(lowest)
		results = append(results, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submissions: %w", err)
	}
	return results, nil
}

// GetStatus returns status information about the submission store.
func (s *SubmissionStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
	}

	if s.backend == schema.NoneBackend || s.db == nil {
		return status, nil
	}

	quoted := quoteTableName(submissionsTable, s.backend)
	row := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*), COUNT(DISTINCT team_code) FROM %s", quoted))
	if err := row.Scan(&status.TotalSubmissions, &status.TotalTeams); err != nil {
		return status, fmt.Errorf("failed to get submission counts: %w", err)
	}
	if status.TotalSubmissions == 0 {
		return status, nil
	}

	row = s.db.QueryRow(fmt.Sprintf("SELECT MAX(submitted_at), MIN(submitted_at) FROM %s", quoted))
	switch s.backend {
	case schema.SQLiteBackend:
		var lastStr, oldestStr string
		if err := row.Scan(&lastStr, &oldestStr); err != nil {
			return status, fmt.Errorf("failed to get submission times: %w", err)
		}
		var err error
		if status.LastSubmission, err = parseTime(lastStr); err != nil {
			return status, fmt.Errorf("failed to parse last submission time: %w", err)
		}
		if status.OldestSubmission, err = parseTime(oldestStr); err != nil {
			return status, fmt.Errorf("failed to parse oldest submission time: %w", err)
		}
	default: // MySQL and PostgreSQL store as native datetime
		if err := row.Scan(&status.LastSubmission, &status.OldestSubmission); err != nil {
			return status, fmt.Errorf("failed to get submission times: %w", err)
		}
	}

	return status, nil
}

// Close closes the underlying connection.
func (s *SubmissionStoreImpl) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}

// placeholders returns n comma-separated bind parameters in the backend's dialect.
func placeholders(backend schema.DatabaseBackend, n int) string {
	parts := make([]string, n)
	for i := range parts {
		if backend == schema.PostgreSQLBackend {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(sqliteTimeFormat)
	default:
		return t.UTC()
	}
}

// parseTime reads a SQLite text timestamp.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
