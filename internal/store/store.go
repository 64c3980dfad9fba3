// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extracted funding records in SQLite and builds a
// full-text index over the raw acknowledgment matches.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

const (
	fundingDir  = "funding"
	indexDir    = "index"
	metadataDir = "metadata"
	dbFile      = "funding.db"
)

// Store manages the funding database.
type Store struct {
	db           *sql.DB
	knowledgeDir string
	papersDir    string
	maxResults   int
}

// NewStore opens or creates the funding SQLite database at
// knowledgeDir/index/funding.db, creating the schema if needed.
func NewStore(cfg types.StoreConfig, papersDir string) (*Store, error) {
	dbDir := filepath.Join(cfg.KnowledgeDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{
		db:           db,
		knowledgeDir: cfg.KnowledgeDir,
		papersDir:    papersDir,
		maxResults:   maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			title TEXT,
			arxiv_id TEXT,
			doi TEXT,
			source TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS funding (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			paper_id TEXT NOT NULL REFERENCES papers(id),
			funder_id TEXT NOT NULL,
			funder_name TEXT NOT NULL,
			grant_number TEXT,
			confidence REAL,
			raw_match TEXT,
			position INTEGER,
			category TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_funding_paper_id ON funding(paper_id)`,
		`CREATE INDEX IF NOT EXISTS idx_funding_funder_id ON funding(funder_id)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			paper_id TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='funding_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE funding_fts USING fts5(raw_match, content=funding, content_rowid=rowid)`,
			`CREATE TRIGGER funding_ai AFTER INSERT ON funding BEGIN
				INSERT INTO funding_fts(rowid, raw_match) VALUES (new.rowid, new.raw_match);
			END`,
			`CREATE TRIGGER funding_ad AFTER DELETE ON funding BEGIN
				INSERT INTO funding_fts(funding_fts, rowid, raw_match) VALUES('delete', old.rowid, old.raw_match);
			END`,
			`CREATE TRIGGER funding_au AFTER UPDATE ON funding BEGIN
				INSERT INTO funding_fts(funding_fts, rowid, raw_match) VALUES('delete', old.rowid, old.raw_match);
				INSERT INTO funding_fts(rowid, raw_match) VALUES (new.rowid, new.raw_match);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a funding indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of papers processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// HasFailures reports whether any papers failed to index.
func (s IngestSummary) HasFailures() bool {
	return s.Failed > 0
}

// Ingest reads funding YAML files from papersDir/funding/ and populates
// the database. New, changed, and unchanged files are detected by
// modification time, so re-running only touches what moved.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	srcDir := filepath.Join(s.papersDir, fundingDir)

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading funding directory %s: %w", srcDir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "-funding.yaml") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		paperID := strings.TrimSuffix(entry.Name(), "-funding.yaml")
		filePath := filepath.Join(srcDir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", paperID, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE paper_id = ?`, paperID,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", paperID)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", paperID, err)
			summary.Failed++
			continue
		}

		var result types.FundingResult
		if err := yaml.Unmarshal(data, &result); err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", paperID, err)
			summary.Failed++
			continue
		}

		if err := s.ingestPaper(ctx, paperID, &result, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", paperID, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d records)\n", paperID, len(result.Funding))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexing %s (%d records)\n", paperID, len(result.Funding))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	// Refresh the exports after a run that changed anything.
	if summary.Indexed > 0 || summary.Updated > 0 {
		if err := s.ExportYAML(ctx, QueryOptions{}); err != nil {
			fmt.Fprintf(w, "warning: export.yaml write failed: %v\n", err)
		}
	}

	return summary, nil
}

func (s *Store) ingestPaper(ctx context.Context, paperID string, result *types.FundingResult, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM funding WHERE paper_id = ?`, paperID); err != nil {
			return fmt.Errorf("deleting old records: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO papers (id, title, arxiv_id, doi, source)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, arxiv_id=excluded.arxiv_id,
			doi=excluded.doi, source=excluded.source`,
		paperID, result.Title, result.ArxivID, result.DOI, string(result.Source),
	)
	if err != nil {
		return fmt.Errorf("upserting paper: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO funding (paper_id, funder_id, funder_name, grant_number, confidence, raw_match, position, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range result.Funding {
		_, err := stmt.ExecContext(ctx,
			paperID, f.FunderID, f.FunderName, f.GrantNumber,
			f.Confidence, f.RawMatch, f.Position, string(f.Category),
		)
		if err != nil {
			return fmt.Errorf("inserting record for %s: %w", f.FunderID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (paper_id, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(paper_id) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		paperID, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}

// ForgetPaper removes a paper and all of its funding records from the
// database. The next Ingest run will re-index the paper if its YAML file
// is still present, so callers usually delete that file too.
func (s *Store) ForgetPaper(ctx context.Context, paperID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM funding WHERE paper_id = ?`, paperID); err != nil {
		return fmt.Errorf("deleting funding records: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM indexing_status WHERE paper_id = ?`, paperID); err != nil {
		return fmt.Errorf("deleting indexing status: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM papers WHERE id = ?`, paperID); err != nil {
		return fmt.Errorf("deleting paper: %w", err)
	}

	return tx.Commit()
}
