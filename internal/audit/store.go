// Package audit keeps a local SQLite trail of every analysis, keyed by the
// hash of the analyzed document.
package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/report"
	"github.com/ppiankov/contractlens/internal/util"
)

// ErrNotFound is returned when no entry has the requested ID
var ErrNotFound = errors.New("audit entry not found")

// AnalysisFull marks entries written by a complete analysis
const AnalysisFull = "full_analysis"

// DefaultExportLimit caps an export without explicit IDs
const DefaultExportLimit = 100

const table = "audit_entries"

const schema = `
CREATE TABLE IF NOT EXISTS audit_entries (
	id            TEXT PRIMARY KEY,
	created_at    INTEGER NOT NULL,
	user_id       TEXT NOT NULL,
	report_id     TEXT NOT NULL,
	file_name     TEXT NOT NULL,
	source        TEXT NOT NULL,
	file_hash     TEXT NOT NULL,
	analysis_type TEXT NOT NULL,
	risk_score    REAL NOT NULL,
	risk_level    TEXT NOT NULL,
	contract_type TEXT NOT NULL,
	risky_clauses INTEGER NOT NULL,
	version       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_entries_hash ON audit_entries(file_hash);
CREATE INDEX IF NOT EXISTS idx_audit_entries_created ON audit_entries(created_at);
`

var columns = []string{
	"id", "created_at", "user_id", "report_id", "file_name", "source", "file_hash",
	"analysis_type", "risk_score", "risk_level", "contract_type", "risky_clauses", "version",
}

// Entry is one audit record
type Entry struct {
	ID           string             `json:"entry_id"`
	Timestamp    time.Time          `json:"timestamp"`
	UserID       string             `json:"user_id"`
	ReportID     string             `json:"report_id"`
	FileName     string             `json:"file_name"`
	Source       string             `json:"source"`
	FileHash     string             `json:"file_hash"`
	AnalysisType string             `json:"analysis_type"`
	Summary      model.AuditSummary `json:"results_summary"`
	Version      string             `json:"version"`
}

// Store persists entries in SQLite
type Store struct {
	db     *sql.DB
	path   string
	user   string
	logger *slog.Logger
	now    func() time.Time
}

// Open opens or creates the audit database at path. An empty user is recorded as "anonymous".
func Open(path, user string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if user == "" {
		user = "anonymous"
	}

	path, err := util.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create audit dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open audit database: %w", err)
	}
	// Batch workers record concurrently; one connection serializes writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create audit schema: %w", err)
	}

	return &Store{db: db, path: path, user: user, logger: logger, now: time.Now}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// Record writes an entry for a finished report
func (s *Store) Record(ctx context.Context, r *model.Report, source string) error {
	_, err := s.Add(ctx, r, source)
	return err
}

// Add writes an entry for a finished report and returns it
func (s *Store) Add(ctx context.Context, r *model.Report, source string) (*Entry, error) {
	e := Entry{
		ID:           uuid.NewString(),
		Timestamp:    s.now().UTC(),
		UserID:       s.user,
		ReportID:     r.ID,
		FileName:     r.ContractInfo.FileName,
		Source:       source,
		FileHash:     r.ContractInfo.SHA256,
		AnalysisType: AnalysisFull,
		Summary:      report.AuditSummary(*r),
		Version:      r.Version,
	}

	query, args, err := sq.Insert(table).Columns(columns...).Values(
		e.ID, e.Timestamp.UnixNano(), e.UserID, e.ReportID, e.FileName, e.Source, e.FileHash,
		e.AnalysisType, e.Summary.RiskScore, string(e.Summary.RiskLevel), string(e.Summary.ContractType),
		e.Summary.RiskyClausesDetected, e.Version,
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert audit entry: %w", err)
	}

	s.logger.Debug("audit entry recorded", "entry", e.ID, "report", e.ReportID, "hash", e.FileHash)
	return &e, nil
}

// Get returns the entry with the given ID
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	entries, err := s.query(ctx, selectEntries().Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &entries[0], nil
}

// Recent returns up to limit entries, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	q := selectEntries()
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return s.query(ctx, q)
}

// ByHash returns every entry for a document hash, newest first
func (s *Store) ByHash(ctx context.Context, hash string) ([]Entry, error) {
	return s.query(ctx, selectEntries().Where(sq.Eq{"file_hash": strings.ToLower(hash)}))
}

// Export renders entries as a plain-text trail. With no IDs the most recent
// DefaultExportLimit entries are exported; unknown IDs are skipped.
func (s *Store) Export(ctx context.Context, ids []string) (string, error) {
	var entries []Entry
	if len(ids) == 0 {
		recent, err := s.Recent(ctx, DefaultExportLimit)
		if err != nil {
			return "", err
		}
		entries = recent
	} else {
		for _, id := range ids {
			e, err := s.Get(ctx, id)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return "", err
			}
			entries = append(entries, *e)
		}
	}
	return FormatTrail(entries), nil
}

// FormatTrail renders entries in the export layout
func FormatTrail(entries []Entry) string {
	var b strings.Builder
	b.WriteString("AUDIT TRAIL EXPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "Entry ID: %s\n", e.ID)
		fmt.Fprintf(&b, "Timestamp: %s\n", e.Timestamp.Format(time.RFC3339))
		fmt.Fprintf(&b, "File: %s\n", e.FileName)
		fmt.Fprintf(&b, "Analysis: %s\n", e.AnalysisType)
		fmt.Fprintf(&b, "Risk Score: %g\n", e.Summary.RiskScore)
		fmt.Fprintf(&b, "Risk Level: %s\n", e.Summary.RiskLevel)
		b.WriteString(strings.Repeat("-", 30) + "\n\n")
	}
	return b.String()
}

func selectEntries() sq.SelectBuilder {
	return sq.Select(columns...).From(table).OrderBy("created_at DESC", "rowid DESC")
}

func (s *Store) query(ctx context.Context, q sq.SelectBuilder) ([]Entry, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var (
			e        Entry
			created  int64
			level    string
			contract string
		)
		if err := rows.Scan(&e.ID, &created, &e.UserID, &e.ReportID, &e.FileName, &e.Source, &e.FileHash,
			&e.AnalysisType, &e.Summary.RiskScore, &level, &contract, &e.Summary.RiskyClausesDetected, &e.Version); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.Timestamp = time.Unix(0, created).UTC()
		e.Summary.RiskLevel = model.RiskLevel(level)
		e.Summary.ContractType = model.ContractType(contract)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return out, nil
}
