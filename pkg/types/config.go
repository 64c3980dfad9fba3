// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "funding-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// TextSourceConfig holds settings for the document-text acquisition boundary.
type TextSourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// PapersDir is the base directory for papers (contains text/, metadata/,
	// funding/).
	PapersDir string `json:"papers_dir" yaml:"papers_dir"`

	// WorkerURL is the base URL of the external text-extraction worker.
	// Empty disables remote extraction; only the local text cache is used.
	WorkerURL string `json:"worker_url,omitempty" yaml:"worker_url,omitempty"`

	// WorkerToken authenticates against the extraction worker, if required.
	WorkerToken string `json:"worker_token,omitempty" yaml:"worker_token,omitempty"`

	// MaxPages caps how many pages the worker extracts (default 12). Funding
	// statements sit in the front or back matter; full-book extractions are
	// wasted work.
	MaxPages int `json:"max_pages" yaml:"max_pages"`

	// MaxRetries is the number of retry attempts for worker calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ExtractionConfig holds settings for the funding extraction engine. The
// numeric thresholds are heuristics carried over from the reference
// implementation; they are overridable but deliberately not re-derived.
type ExtractionConfig struct {
	// PapersDir is the base directory for papers (contains text/, metadata/,
	// funding/).
	PapersDir string `json:"papers_dir" yaml:"papers_dir"`

	// MaxInputLen caps the text handed to the matcher (default 100000).
	// Excess is dropped from the tail.
	MaxInputLen int `json:"max_input_len" yaml:"max_input_len"`

	// FootnoteCap limits footnote-sourced sections (default 2000). Footnote
	// funding statements are short; unbounded capture absorbs body text.
	FootnoteCap int `json:"footnote_cap" yaml:"footnote_cap"`

	// DFGMergeDistance is the maximum offset distance, in bytes, between a
	// DFG numeric project id and a collaborative-center code for the two to
	// be treated as the same project (default 120).
	DFGMergeDistance int `json:"dfg_merge_distance" yaml:"dfg_merge_distance"`
}

// FormatConfig holds settings for citation formatting.
type FormatConfig struct {
	// JointWindow is the maximum distance, in bytes, after a Chinese-category
	// funder within which a non-Chinese funder is flagged as joint funding
	// (default 50).
	JointWindow int `json:"joint_window" yaml:"joint_window"`
}

// CacheConfig holds settings for the session result cache.
type CacheConfig struct {
	// Capacity is the maximum number of cached results (default 128).
	Capacity int `json:"capacity" yaml:"capacity"`
}

// StoreConfig holds settings for the persistent funding index.
type StoreConfig struct {
	// KnowledgeDir is the base directory for the index (contains index/).
	KnowledgeDir string `json:"knowledge_dir" yaml:"knowledge_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	TextSource TextSourceConfig `json:"text_source" yaml:"text_source"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Format     FormatConfig     `json:"format" yaml:"format"`
	Cache      CacheConfig      `json:"cache" yaml:"cache"`
	Store      StoreConfig      `json:"store" yaml:"store"`
}

// Defaults for the heuristic thresholds. Exposed so callers can reset a
// zero-valued config.
const (
	DefaultMaxInputLen      = 100000
	DefaultFootnoteCap      = 2000
	DefaultDFGMergeDistance = 120
	DefaultJointWindow      = 50
	DefaultCacheCapacity    = 128
	DefaultMaxPages         = 12
)

// WithDefaults fills zero fields with the default thresholds.
func (c ExtractionConfig) WithDefaults() ExtractionConfig {
	if c.MaxInputLen <= 0 {
		c.MaxInputLen = DefaultMaxInputLen
	}
	if c.FootnoteCap <= 0 {
		c.FootnoteCap = DefaultFootnoteCap
	}
	if c.DFGMergeDistance <= 0 {
		c.DFGMergeDistance = DefaultDFGMergeDistance
	}
	return c
}

// WithDefaults fills zero fields with the default window.
func (c FormatConfig) WithDefaults() FormatConfig {
	if c.JointWindow <= 0 {
		c.JointWindow = DefaultJointWindow
	}
	return c
}
