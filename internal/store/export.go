// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportEntry holds a funding record with paper metadata for export.
type ExportEntry struct {
	PaperID     string  `json:"paper_id" yaml:"paper_id"`
	PaperTitle  string  `json:"paper_title,omitempty" yaml:"paper_title,omitempty"`
	ArxivID     string  `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`
	FunderID    string  `json:"funder_id" yaml:"funder_id"`
	FunderName  string  `json:"funder_name" yaml:"funder_name"`
	GrantNumber string  `json:"grant_number,omitempty" yaml:"grant_number,omitempty"`
	Confidence  float64 `json:"confidence" yaml:"confidence"`
	Category    string  `json:"category" yaml:"category"`
}

const exportLimit = 100000

// ExportYAML writes the funding database to knowledge/index/export.yaml.
// It supports the same filters as Retrieve.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.knowledgeDir, indexDir, "export.yaml")
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the funding database to knowledge/index/export.json.
// It supports the same filters as Retrieve.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.knowledgeDir, indexDir, "export.json")
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	opts.MaxResults = exportLimit
	results, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(results))
	for i, r := range results {
		entries[i] = ExportEntry{
			PaperID:     r.PaperID,
			PaperTitle:  r.PaperTitle,
			ArxivID:     r.ArxivID,
			FunderID:    r.FunderID,
			FunderName:  r.FunderName,
			GrantNumber: r.GrantNumber,
			Confidence:  r.Confidence,
			Category:    string(r.Category),
		}
	}

	return entries, nil
}
