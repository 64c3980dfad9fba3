// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textsource

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/fkguo/zotero-inspire-sub006/internal/httputil"
	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

func init() {
	// Use a tiny base delay so retry tests finish quickly.
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

func sourceSetup(t *testing.T, workerURL string) (*Source, string) {
	t.Helper()
	papersDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(papersDir, textDir), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(papersDir, metadataDir), 0o755))

	s := New(types.TextSourceConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "funding-engine-test/0.1",
		},
		PapersDir:   papersDir,
		WorkerURL:   workerURL,
		WorkerToken: "test-token",
		MaxPages:    12,
		MaxRetries:  3,
	})
	return s, papersDir
}

func TestTextLocalCacheHit(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	s, papersDir := sourceSetup(t, ts.URL)
	localPath := filepath.Join(papersDir, textDir, "2301.04567.txt")
	require.NoError(t, os.WriteFile(localPath, []byte("cached text"), 0o644))

	text, err := s.Text(context.Background(), "2301.04567")
	require.NoError(t, err)
	assert.Equal(t, "cached text", text)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "local hit must not touch the worker")
}

func TestTextFetchesAndCaches(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text", r.URL.Path)
		assert.Equal(t, "2301.04567", r.URL.Query().Get("id"))
		assert.Equal(t, "12", r.URL.Query().Get("max_pages"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, "worker text")
	}))
	defer ts.Close()

	s, papersDir := sourceSetup(t, ts.URL)

	text, err := s.Text(context.Background(), "2301.04567")
	require.NoError(t, err)
	assert.Equal(t, "worker text", text)

	// The fetched text is now cached locally.
	data, err := os.ReadFile(filepath.Join(papersDir, textDir, "2301.04567.txt"))
	require.NoError(t, err)
	assert.Equal(t, "worker text", string(data))

	// No stray temp files from the atomic write.
	entries, err := os.ReadDir(filepath.Join(papersDir, textDir))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTextWorker503ThenOK(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, "converted text")
	}))
	defer ts.Close()

	s, _ := sourceSetup(t, ts.URL)

	text, err := s.Text(context.Background(), "2301.04567")
	require.NoError(t, err)
	assert.Equal(t, "converted text", text)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestTextWorker404MeansNoText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	s, papersDir := sourceSetup(t, ts.URL)

	text, err := s.Text(context.Background(), "gone")
	require.NoError(t, err)
	assert.Empty(t, text)

	_, err = os.Stat(filepath.Join(papersDir, textDir, "gone.txt"))
	assert.True(t, os.IsNotExist(err), "no cache file for a 404")
}

func TestTextNoWorkerConfigured(t *testing.T) {
	s, _ := sourceSetup(t, "")

	text, err := s.Text(context.Background(), "2301.04567")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestTextWorkerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	s, _ := sourceSetup(t, ts.URL)

	_, err := s.Text(context.Background(), "2301.04567")
	assert.ErrorContains(t, err, "HTTP 500")
}

func TestMetaSidecarWins(t *testing.T) {
	s, papersDir := sourceSetup(t, "")

	want := types.DocumentMeta{
		ID:      "2301.04567",
		Title:   "A Study of Exotic Hadrons",
		ArxivID: "2301.04567",
	}
	data, err := yaml.Marshal(&want)
	require.NoError(t, err)
	metaPath := filepath.Join(papersDir, metadataDir, "2301.04567.yaml")
	require.NoError(t, os.WriteFile(metaPath, data, 0o644))

	got := s.Meta(context.Background(), "2301.04567")
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestMetaFetchesFromArxiv(t *testing.T) {
	const feed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>A Study of
    Exotic Hadrons</title>
    <doi>10.1000/test.doi</doi>
  </entry>
</feed>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2301.04567", r.URL.Query().Get("id_list"))
		fmt.Fprint(w, feed)
	}))
	defer ts.Close()

	s, papersDir := sourceSetup(t, "")
	s.apiBase = ts.URL

	got := s.Meta(context.Background(), "2301.04567")
	require.NotNil(t, got)
	assert.Equal(t, "A Study of Exotic Hadrons", got.Title, "whitespace in feed titles is collapsed")
	assert.Equal(t, "2301.04567", got.ArxivID)
	assert.Equal(t, "10.1000/test.doi", got.DOI)

	// The result was written back as a sidecar.
	data, err := os.ReadFile(filepath.Join(papersDir, metadataDir, "2301.04567.yaml"))
	require.NoError(t, err)
	var sidecar types.DocumentMeta
	require.NoError(t, yaml.Unmarshal(data, &sidecar))
	assert.Equal(t, "2301.04567", sidecar.ID)
	assert.Equal(t, got.Title, sidecar.Title)
}

func TestMetaUnknownDocID(t *testing.T) {
	s, _ := sourceSetup(t, "")
	assert.Nil(t, s.Meta(context.Background(), "not-an-arxiv-id"))
}

func TestArxivIDFromDocID(t *testing.T) {
	tests := []struct {
		docID string
		want  string
	}{
		{"2301.04567", "2301.04567"},
		{"hep-ph-9905221", "hep-ph/9905221"},
		{"astro-ph-0601001", "astro-ph/0601001"},
		{"not-an-arxiv-id", ""},
		{"nodigits-", ""},
		{"plain", ""},
	}

	for _, tt := range tests {
		t.Run(tt.docID, func(t *testing.T) {
			assert.Equal(t, tt.want, arxivIDFromDocID(tt.docID))
		})
	}
}
