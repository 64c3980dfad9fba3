// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the funding-engine pipeline.
package types

import "regexp"

// FunderCategory is a coarse geographic/administrative grouping of funders,
// used for result filtering and the joint-funding heuristic.
type FunderCategory string

const (
	CategoryChina FunderCategory = "china"
	CategoryUS    FunderCategory = "us"
	CategoryEU    FunderCategory = "eu"
	CategoryAsia  FunderCategory = "asia"
	CategoryIntl  FunderCategory = "intl"
)

// FunderPattern is one immutable registry entry describing how a funder is
// recognized in acknowledgment text. The registry is a plain ordered slice of
// these records; declaration order is part of the matching contract because
// equal-priority overlap conflicts keep the first-seen candidate.
type FunderPattern struct {
	// ID is a short stable code, e.g. "NSFC" or "DFG".
	ID string

	// Name is the full display name used in formatted output.
	Name string

	// Aliases lists alternative spellings in any language. Alias presence
	// inside a matched span raises the candidate's confidence.
	Aliases []string

	// Patterns are the matching rules for this funder. Each rule yields at
	// most one captured group, the grant number.
	Patterns []*regexp.Regexp

	// NextPattern, when set, matches a subsequent grant number in a
	// delimited list immediately following a prior match ("NSFC 12345678,
	// 87654321"). It must be anchored with ^.
	NextPattern *regexp.Regexp

	// Priority decides overlap conflicts: a strictly higher priority
	// replaces an overlapping accepted match.
	Priority int

	// Category groups the funder geographically.
	Category FunderCategory

	// NameOnly marks funders identified by name alone; matches without a
	// captured grant number are accepted for them.
	NameOnly bool
}

// SectionSource records how an acknowledgment section was located.
type SectionSource string

const (
	// SourceAcknowledgments means an acknowledgments-style heading was found.
	SourceAcknowledgments SectionSource = "acknowledgments"

	// SourceFunding means a funding/financial-support heading was found.
	SourceFunding SectionSource = "funding"

	// SourceFootnote means a footnote-style funding sentence was found
	// without a heading. Footnote sections are length-capped.
	SourceFootnote SectionSource = "footnote"

	// SourceFullText means no heading matched and the whole document is the
	// search space.
	SourceFullText SectionSource = "full_text"
)

// SectionLanguage tags the dominant script of a located section.
type SectionLanguage string

const (
	LangEnglish SectionLanguage = "en"
	LangChinese SectionLanguage = "zh"
	LangMixed   SectionLanguage = "mixed"
)

// AcknowledgmentSection is the span of document text the extraction engine
// scans. Created once per request and never mutated.
type AcknowledgmentSection struct {
	// StartIndex and EndIndex are byte offsets into the source text.
	StartIndex int `json:"start_index" yaml:"start_index"`
	EndIndex   int `json:"end_index" yaml:"end_index"`

	// Text is the extracted span.
	Text string `json:"text" yaml:"text"`

	// Language is en, zh, or mixed.
	Language SectionLanguage `json:"language" yaml:"language"`

	// Source records which heading class located the span, or full_text.
	Source SectionSource `json:"source" yaml:"source"`
}

// FundingInfo is one extracted funding record. Within a single result at
// most one record exists per (FunderID, GrantNumber) pair.
type FundingInfo struct {
	// FunderID is the registry code, e.g. "NSFC".
	FunderID string `json:"funder_id" yaml:"funder_id"`

	// FunderName is the registry display name.
	FunderName string `json:"funder_name" yaml:"funder_name"`

	// GrantNumber is the normalized grant identifier. It may be empty for
	// name-only funders, or annotated for merged records
	// (e.g. "279384907 [SFB 1245]").
	GrantNumber string `json:"grant_number" yaml:"grant_number"`

	// Confidence is the extraction certainty in [0.0, 1.0].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// RawMatch is the matched substring as it appeared in the text.
	RawMatch string `json:"raw_match" yaml:"raw_match"`

	// Position is the byte offset of the match, used for ordering and
	// proximity heuristics.
	Position int `json:"position" yaml:"position"`

	// Category is the funder's category.
	Category FunderCategory `json:"category" yaml:"category"`
}

// ResultSource records whether document text was available for extraction.
type ResultSource string

const (
	// ResultPDF means text was available; the result may still hold zero
	// funding records.
	ResultPDF ResultSource = "pdf"

	// ResultNone means no text was available at all.
	ResultNone ResultSource = "none"
)

// FundingResult holds the extraction output for one document. Results are
// cached unfiltered; the category filter is a read-time view.
type FundingResult struct {
	// Title is the document title.
	Title string `json:"title" yaml:"title"`

	// ArxivID is the arXiv identifier, if known.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// DOI is the document DOI, if known.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Funding lists the extracted records ordered by text position.
	Funding []FundingInfo `json:"funding" yaml:"funding"`

	// Source is pdf when text was scanned, none when no text was available.
	Source ResultSource `json:"source" yaml:"source"`
}

// DocumentMeta is the metadata sidecar for a document in the text cache.
type DocumentMeta struct {
	// ID is the document slug (e.g. "2301.07041").
	ID string `json:"id" yaml:"id"`

	// Title is the document title.
	Title string `json:"title" yaml:"title"`

	// ArxivID is the arXiv identifier, if any.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// DOI is the document DOI, if any.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`
}
