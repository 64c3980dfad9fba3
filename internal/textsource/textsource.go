// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textsource provides document text for extraction. Text comes
// from local files under papers/text/ first; when a document is missing
// and a worker service is configured, the text is fetched from the worker
// and cached locally.
package textsource

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/fkguo/zotero-inspire-sub006/internal/httputil"
	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

const (
	textDir     = "text"
	metadataDir = "metadata"

	arxivAPIBase = "https://export.arxiv.org/api/query"
)

// Source fetches and caches document text.
type Source struct {
	client  *http.Client
	cfg     types.TextSourceConfig
	apiBase string
}

// New creates a Source with an HTTP client built from the config.
func New(cfg types.TextSourceConfig) *Source {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Source{
		client:  &http.Client{Timeout: timeout},
		cfg:     cfg,
		apiBase: arxivAPIBase,
	}
}

// Text returns the document's text. The local cache under papers/text/ is
// consulted first; on a miss the worker service is queried and the result
// cached. A document with no text available anywhere returns "" with a nil
// error, so callers report "no funding found" instead of failing.
func (s *Source) Text(ctx context.Context, docID string) (string, error) {
	localPath := filepath.Join(s.cfg.PapersDir, textDir, docID+".txt")

	if data, err := os.ReadFile(localPath); err == nil {
		return string(data), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("reading local text %s: %w", localPath, err)
	}

	if s.cfg.WorkerURL == "" {
		return "", nil
	}

	text, err := s.fetchFromWorker(ctx, docID)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	if err := writeTextAtomic(localPath, text); err != nil {
		return "", fmt.Errorf("caching text for %s: %w", docID, err)
	}

	return text, nil
}

// fetchFromWorker asks the worker service to extract the document's text.
// The worker answers 503 while it is still converting the PDF, which
// DoWithRetry waits out; a 404 means the worker has no text for this
// document and is not an error.
func (s *Source) fetchFromWorker(ctx context.Context, docID string) (string, error) {
	q := url.Values{}
	q.Set("id", docID)
	if s.cfg.MaxPages > 0 {
		q.Set("max_pages", fmt.Sprint(s.cfg.MaxPages))
	}

	reqURL := strings.TrimSuffix(s.cfg.WorkerURL, "/") + "/text?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating worker request: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	if s.cfg.WorkerToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.WorkerToken)
	}

	resp, err := httputil.DoWithRetry(ctx, s.client, req, s.cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("worker request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", nil
	default:
		return "", fmt.Errorf("worker returned HTTP %d for %s", resp.StatusCode, docID)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading worker response: %w", err)
	}
	return string(data), nil
}

// Meta returns document metadata. The local sidecar under papers/metadata/
// wins; for arXiv-shaped IDs a miss falls through to the arXiv API and the
// result is written back as a sidecar. Returns nil when nothing is known.
func (s *Source) Meta(ctx context.Context, docID string) *types.DocumentMeta {
	metaPath := filepath.Join(s.cfg.PapersDir, metadataDir, docID+".yaml")

	if data, err := os.ReadFile(metaPath); err == nil {
		var meta types.DocumentMeta
		if yaml.Unmarshal(data, &meta) == nil {
			return &meta
		}
	}

	arxivID := arxivIDFromDocID(docID)
	if arxivID == "" {
		return nil
	}

	meta, err := s.fetchArxivMeta(ctx, arxivID)
	if err != nil {
		return nil
	}
	meta.ID = docID

	if data, err := yaml.Marshal(meta); err == nil {
		os.MkdirAll(filepath.Dir(metaPath), 0o755)
		os.WriteFile(metaPath, data, 0o644)
	}

	return meta
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title string `xml:"title"`
	DOI   string `xml:"doi"`
}

// fetchArxivMeta retrieves title and DOI from the arXiv API.
func (s *Source) fetchArxivMeta(ctx context.Context, arxivID string) (*types.DocumentMeta, error) {
	apiURL := fmt.Sprintf("%s?id_list=%s", s.apiBase, arxivID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, s.client, req, s.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	if len(feed.Entries) == 0 {
		return nil, fmt.Errorf("no entries found for arXiv ID %s", arxivID)
	}

	entry := feed.Entries[0]
	return &types.DocumentMeta{
		Title:   strings.Join(strings.Fields(entry.Title), " "),
		ArxivID: arxivID,
		DOI:     strings.TrimSpace(entry.DOI),
	}, nil
}

// arxivIDFromDocID recovers an arXiv identifier from a document ID slug.
// Slugs use "-" in place of "/" for old-style IDs ("hep-ph-9905221") and
// keep new-style IDs as-is ("2301.04567").
func arxivIDFromDocID(docID string) string {
	if strings.ContainsRune(docID, '.') && !strings.ContainsRune(docID, '/') {
		return docID
	}
	// Old-style: archive prefix then numeric part after the last hyphen.
	i := strings.LastIndex(docID, "-")
	if i <= 0 || i == len(docID)-1 {
		return ""
	}
	num := docID[i+1:]
	for _, r := range num {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return docID[:i] + "/" + num
}

// writeTextAtomic writes text to destPath via a temp file and rename, so a
// partially fetched document never appears as cached text.
func writeTextAtomic(destPath, text string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("creating text directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := io.WriteString(tmpFile, text)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing text: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
