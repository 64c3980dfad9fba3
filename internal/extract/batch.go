// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/fkguo/zotero-inspire-sub006/internal/locate"
	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

const (
	textDir     = "text"
	metadataDir = "metadata"
	fundingDir  = "funding"
)

// BatchSummary holds counts from a batch extraction run.
type BatchSummary struct {
	Extracted int
	Skipped   int
	Failed    int
}

// Total returns the number of documents processed.
func (s BatchSummary) Total() int {
	return s.Extracted + s.Skipped + s.Failed
}

// HasFailures reports whether any documents failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// ExtractAll processes every text file in papersDir/text/, runs the locator
// and the extraction engine, and writes each result to
// papersDir/funding/<id>-funding.yaml. Unchanged inputs are skipped by
// modification time; changed ones are re-extracted.
func ExtractAll(cfg types.ExtractionConfig, w io.Writer) (BatchSummary, error) {
	cfg = cfg.WithDefaults()
	srcDir := filepath.Join(cfg.PapersDir, textDir)
	outDir := filepath.Join(cfg.PapersDir, fundingDir)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("reading text directory %s: %w", srcDir, err)
	}

	var summary BatchSummary

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".md")) {
			continue
		}

		docID := strings.TrimSuffix(strings.TrimSuffix(name, ".txt"), ".md")
		srcPath := filepath.Join(srcDir, name)
		outPath := filepath.Join(outDir, docID+"-funding.yaml")

		changed, err := hasChanged(srcPath, outPath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}
		if !changed {
			fmt.Fprintf(w, "skipped %s\n", docID)
			summary.Skipped++
			continue
		}

		result, err := ExtractDocument(docID, srcPath, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}

		if err := writeResult(outPath, result); err != nil {
			fmt.Fprintf(w, "failed  %s: write error: %v\n", docID, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "extracted %s (%d funders)\n", docID, len(result.Funding))
		summary.Extracted++
	}

	return summary, nil
}

// ExtractDocument runs locator and engine over one text file and attaches
// metadata from the sidecar, when present. A missing or empty text file is
// not an error: the result comes back with Source "none".
func ExtractDocument(docID, srcPath string, cfg types.ExtractionConfig) (*types.FundingResult, error) {
	result := &types.FundingResult{
		Title:  docID,
		Source: types.ResultNone,
	}

	if meta := loadDocumentMeta(filepath.Join(cfg.PapersDir, metadataDir), docID); meta != nil {
		if meta.Title != "" {
			result.Title = meta.Title
		}
		result.ArxivID = meta.ArxivID
		result.DOI = meta.DOI
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("reading text %s: %w", srcPath, err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return result, nil
	}

	section := locate.Locate(text, cfg.FootnoteCap)
	result.Source = types.ResultPDF
	result.Funding = Extract(section.Text, Options{
		MaxInputLen:      cfg.MaxInputLen,
		DFGMergeDistance: cfg.DFGMergeDistance,
	})

	return result, nil
}

// loadDocumentMeta reads a metadata sidecar from metaDir/<docID>.yaml.
// Returns nil if the file is absent or unparsable.
func loadDocumentMeta(metaDir, docID string) *types.DocumentMeta {
	data, err := os.ReadFile(filepath.Join(metaDir, docID+".yaml"))
	if err != nil {
		return nil
	}
	var meta types.DocumentMeta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil
	}
	return &meta
}

// hasChanged reports whether the text file is newer than the output file.
// Returns true if the output does not exist.
func hasChanged(srcPath, outPath string) (bool, error) {
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return false, fmt.Errorf("stat text %s: %w", srcPath, err)
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat output %s: %w", outPath, err)
	}

	return srcInfo.ModTime().After(outInfo.ModTime()), nil
}

// writeResult marshals the FundingResult to a YAML file.
func writeResult(path string, result *types.FundingResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
