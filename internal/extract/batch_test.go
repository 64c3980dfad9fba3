// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

func batchSetup(t *testing.T) (types.ExtractionConfig, string) {
	t.Helper()
	tmpDir := t.TempDir()
	for _, dir := range []string{
		filepath.Join(tmpDir, textDir),
		filepath.Join(tmpDir, metadataDir),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return types.ExtractionConfig{PapersDir: tmpDir}, tmpDir
}

func writeText(t *testing.T, dir, docID, content string) {
	t.Helper()
	path := filepath.Join(dir, textDir, docID+".txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const sampleAck = "Acknowledgments\nThis work is supported by the National Natural " +
	"Science Foundation of China under Grant Nos. 12075126 and 11835015.\nReferences\n"

func TestExtractAll(t *testing.T) {
	cfg, tmpDir := batchSetup(t)
	writeText(t, tmpDir, "2301.04567", sampleAck)
	writeText(t, tmpDir, "2205.00001", "no funding statements in this one")

	var buf strings.Builder
	summary, err := ExtractAll(cfg, &buf)
	if err != nil {
		t.Fatalf("ExtractAll: %v", err)
	}
	if summary.Extracted != 2 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want 2 extracted, 0 failed; output: %s", summary, buf.String())
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, fundingDir, "2301.04567-funding.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var result types.FundingResult
	if err := yaml.Unmarshal(data, &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Funding) != 2 {
		t.Errorf("funding records = %d, want 2: %+v", len(result.Funding), result.Funding)
	}
	if result.Source != types.ResultPDF {
		t.Errorf("Source = %q, want %q", result.Source, types.ResultPDF)
	}
}

func TestExtractAllSkipsUnchanged(t *testing.T) {
	cfg, tmpDir := batchSetup(t)
	writeText(t, tmpDir, "2301.04567", sampleAck)

	var buf strings.Builder
	if _, err := ExtractAll(cfg, &buf); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	summary, err := ExtractAll(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 1 || summary.Extracted != 0 {
		t.Errorf("second run summary = %+v, want 1 skipped", summary)
	}

	// Touching the text forces re-extraction.
	future := time.Now().Add(time.Hour)
	path := filepath.Join(tmpDir, textDir, "2301.04567.txt")
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	summary, err = ExtractAll(cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Extracted != 1 {
		t.Errorf("after touch summary = %+v, want 1 extracted", summary)
	}
}

func TestExtractAllUsesMetadataSidecar(t *testing.T) {
	cfg, tmpDir := batchSetup(t)
	writeText(t, tmpDir, "2301.04567", sampleAck)

	meta := types.DocumentMeta{
		ID:      "2301.04567",
		Title:   "A Study of Exotic Hadrons",
		ArxivID: "2301.04567",
	}
	data, err := yaml.Marshal(&meta)
	if err != nil {
		t.Fatal(err)
	}
	metaPath := filepath.Join(tmpDir, metadataDir, "2301.04567.yaml")
	if err := os.WriteFile(metaPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if _, err := ExtractAll(cfg, &buf); err != nil {
		t.Fatal(err)
	}

	out, err := os.ReadFile(filepath.Join(tmpDir, fundingDir, "2301.04567-funding.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var result types.FundingResult
	if err := yaml.Unmarshal(out, &result); err != nil {
		t.Fatal(err)
	}
	if result.Title != "A Study of Exotic Hadrons" {
		t.Errorf("Title = %q, want sidecar title", result.Title)
	}
	if result.ArxivID != "2301.04567" {
		t.Errorf("ArxivID = %q", result.ArxivID)
	}
}

func TestExtractDocumentMissingText(t *testing.T) {
	cfg, tmpDir := batchSetup(t)

	result, err := ExtractDocument("gone", filepath.Join(tmpDir, textDir, "gone.txt"), cfg)
	if err != nil {
		t.Fatalf("missing text should not error: %v", err)
	}
	if result.Source != types.ResultNone {
		t.Errorf("Source = %q, want %q", result.Source, types.ResultNone)
	}
	if len(result.Funding) != 0 {
		t.Errorf("Funding = %+v, want empty", result.Funding)
	}
}
