// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate finds the funding-relevant span of a document's text.
// It never fails: when no heading matches, the whole document becomes the
// search space.
package locate

import (
	"regexp"
	"unicode/utf8"

	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

// Heading classes in descending priority: an acknowledgments heading beats
// a funding heading beats a footnote-style sentence, regardless of position.
// Within one class the earliest match wins.
const (
	prioAcknowledgments = 3
	prioFunding         = 2
	prioFootnote        = 1
)

type headingPattern struct {
	re       *regexp.Regexp
	source   types.SectionSource
	priority int
}

var headingPatterns = []headingPattern{
	{regexp.MustCompile(`(?i)\backnowledge?ments?\b`), types.SourceAcknowledgments, prioAcknowledgments},
	{regexp.MustCompile(`致\s*谢|鸣\s*谢`), types.SourceAcknowledgments, prioAcknowledgments},
	{regexp.MustCompile(`(?i)\bfunding(?:\s+(?:statement|information|sources?))?\b`), types.SourceFunding, prioFunding},
	{regexp.MustCompile(`(?i)\bfinancial support\b`), types.SourceFunding, prioFunding},
	{regexp.MustCompile(`(?i)\bgrant (?:support|information)\b`), types.SourceFunding, prioFunding},
	{regexp.MustCompile(`(?i)\bsupporting information\b`), types.SourceFunding, prioFunding},
	{regexp.MustCompile(`基金项目|资\s*助`), types.SourceFunding, prioFunding},
	{regexp.MustCompile(`(?i)\bthis (?:work|research|study|project) (?:was|is|has been|were) (?:partially |partly |financially )?supported\b`), types.SourceFootnote, prioFootnote},
	{regexp.MustCompile(`(?i)\bwork supported in part by\b`), types.SourceFootnote, prioFootnote},
}

// terminatorRe matches the nearest section boundary after the heading:
// back-matter headings in English and Chinese.
var terminatorRe = regexp.MustCompile(
	`(?i)\breferences\b|\bbibliography\b|\bappendix\b|\bappendices\b` +
		`|\bauthor contributions?\b|\bconflicts? of interest\b` +
		`|\bdata availability\b|\borcid\b` +
		`|参考文献|附\s*录|作者贡献|利益冲突|数据可用性`)

var (
	cjkRe   = regexp.MustCompile(`\p{Han}`)
	latinRe = regexp.MustCompile(`[A-Za-z]{3,}`)
)

// Locate returns the acknowledgment section of text. The result is never
// empty of meaning: with no heading anywhere, the section spans the whole
// document and is tagged full_text.
//
// footnoteCap bounds footnote-sourced sections; pass 0 for the default.
func Locate(text string, footnoteCap int) types.AcknowledgmentSection {
	if footnoteCap <= 0 {
		footnoteCap = types.DefaultFootnoteCap
	}

	bestStart := -1
	bestPrio := 0
	var bestSource types.SectionSource

	for _, hp := range headingPatterns {
		loc := hp.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if hp.priority > bestPrio || (hp.priority == bestPrio && loc[0] < bestStart) {
			bestStart = loc[0]
			bestPrio = hp.priority
			bestSource = hp.source
		}
	}

	if bestStart < 0 {
		return types.AcknowledgmentSection{
			StartIndex: 0,
			EndIndex:   len(text),
			Text:       text,
			Language:   detectLanguage(text),
			Source:     types.SourceFullText,
		}
	}

	end := len(text)
	if loc := terminatorRe.FindStringIndex(text[bestStart:]); loc != nil && loc[0] > 0 {
		end = bestStart + loc[0]
	}

	if bestSource == types.SourceFootnote && end-bestStart > footnoteCap {
		end = bestStart + len(Truncate(text[bestStart:end], footnoteCap))
	}

	span := text[bestStart:end]
	return types.AcknowledgmentSection{
		StartIndex: bestStart,
		EndIndex:   end,
		Text:       span,
		Language:   detectLanguage(span),
		Source:     bestSource,
	}
}

// Truncate cuts text at limit bytes, backing off so the cut never splits
// a UTF-8 sequence.
func Truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := text[:limit]
	for len(cut) > 0 {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r == utf8.RuneError && size == 1 {
			cut = cut[:len(cut)-1]
			continue
		}
		break
	}
	return cut
}

// detectLanguage tags a span en, zh, or mixed by testing for CJK ideographs
// versus runs of 3+ Latin letters.
func detectLanguage(span string) types.SectionLanguage {
	hasCJK := cjkRe.MatchString(span)
	hasLatin := latinRe.MatchString(span)
	switch {
	case hasCJK && hasLatin:
		return types.LangMixed
	case hasCJK:
		return types.LangChinese
	default:
		return types.LangEnglish
	}
}
