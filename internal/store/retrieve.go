// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

// QueryOptions holds parameters for funding database queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string, matched against the raw
	// acknowledgment passages.
	Query string

	// FunderID filters by funder.
	FunderID string

	// Category filters by funder category.
	Category types.FunderCategory

	// PaperID filters by paper.
	PaperID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.FunderID == "" && q.Category == "" && q.PaperID == ""
}

// QueryResult is a funding record with its paper metadata.
type QueryResult struct {
	types.FundingInfo `yaml:",inline"`
	PaperID           string `json:"paper_id" yaml:"paper_id"`
	PaperTitle        string `json:"paper_title" yaml:"paper_title"`
	ArxivID           string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`
}

// Retrieve queries the funding database with optional full-text search and
// structured filters. Full-text results come back ranked by relevance;
// structured-only queries sort by paper then position.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT f.paper_id, f.funder_id, f.funder_name, f.grant_number,
				f.confidence, f.raw_match, f.position, f.category,
				p.title, p.arxiv_id, funding_fts.rank
			FROM funding_fts
			JOIN funding f ON f.rowid = funding_fts.rowid
			LEFT JOIN papers p ON f.paper_id = p.id
			WHERE funding_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT f.paper_id, f.funder_id, f.funder_name, f.grant_number,
				f.confidence, f.raw_match, f.position, f.category,
				p.title, p.arxiv_id, 0 AS rank
			FROM funding f
			LEFT JOIN papers p ON f.paper_id = p.id
			WHERE 1=1`)
	}

	if opts.FunderID != "" {
		qb.WriteString(` AND f.funder_id = ?`)
		args = append(args, opts.FunderID)
	}

	if opts.Category != "" {
		qb.WriteString(` AND f.category = ?`)
		args = append(args, string(opts.Category))
	}

	if opts.PaperID != "" {
		qb.WriteString(` AND f.paper_id = ?`)
		args = append(args, opts.PaperID)
	}

	if useFTS {
		qb.WriteString(` ORDER BY funding_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY f.paper_id, f.position`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying funding database: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr       QueryResult
			category string
			title    sql.NullString
			arxivID  sql.NullString
			rank     float64
		)

		if err := rows.Scan(
			&qr.PaperID, &qr.FunderID, &qr.FunderName, &qr.GrantNumber,
			&qr.Confidence, &qr.RawMatch, &qr.Position, &category,
			&title, &arxivID, &rank,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		qr.Category = types.FunderCategory(category)
		if title.Valid {
			qr.PaperTitle = title.String
		}
		if arxivID.Valid {
			qr.ArxivID = arxivID.String
		}

		results = append(results, qr)
	}

	return results, rows.Err()
}

// Results reconstructs per-paper FundingResult values from the database,
// in paper-ID order, for the table and summary outputs.
func (s *Store) Results(ctx context.Context, opts QueryOptions) ([]*types.FundingResult, error) {
	opts.MaxResults = exportLimit
	records, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, err
	}

	var (
		results []*types.FundingResult
		index   = make(map[string]int)
	)
	for _, r := range records {
		i, ok := index[r.PaperID]
		if !ok {
			index[r.PaperID] = len(results)
			title := r.PaperTitle
			if title == "" {
				title = r.PaperID
			}
			results = append(results, &types.FundingResult{
				Title:   title,
				ArxivID: r.ArxivID,
				Source:  types.ResultPDF,
			})
			i = len(results) - 1
		}
		results[i].Funding = append(results[i].Funding, r.FundingInfo)
	}

	return results, nil
}
