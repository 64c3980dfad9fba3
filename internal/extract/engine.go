// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract locates funder mentions and grant numbers in document
// text. The engine is pure text processing: it never fails, it returns an
// empty or partial result instead.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fkguo/zotero-inspire-sub006/internal/locate"
	"github.com/fkguo/zotero-inspire-sub006/internal/registry"
	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

// Options carries the engine thresholds. Zero values use the defaults.
type Options struct {
	// MaxInputLen caps the scanned text; excess is dropped from the tail.
	MaxInputLen int

	// DFGMergeDistance is the maximum offset distance for the DFG
	// same-project merge.
	DFGMergeDistance int
}

func (o Options) withDefaults() Options {
	if o.MaxInputLen <= 0 {
		o.MaxInputLen = types.DefaultMaxInputLen
	}
	if o.DFGMergeDistance <= 0 {
		o.DFGMergeDistance = types.DefaultDFGMergeDistance
	}
	return o
}

// candidate is a provisional match before conflict resolution.
type candidate struct {
	funder     *types.FunderPattern
	grant      string
	raw        string
	start, end int
	confidence float64
}

// Confidence scoring weights.
const (
	baseConfidence = 0.60
	aliasBonus     = 0.25
	keywordBonus   = 0.10
	ackSpanBonus   = 0.05
	maxConfidence  = 1.0
)

// contextKeywords raise confidence when they appear inside a matched span.
var contextKeywords = []string{
	"grant", "supported", "funded", "funding", "acknowledge", "project",
	"资助", "基金", "项目", "致谢",
}

var (
	ackHeadingRe = regexp.MustCompile(`(?i)acknowledge?ment|致谢`)
	refHeadingRe = regexp.MustCompile(`(?i)\breferences\b|参考文献`)
)

// Extract runs the full pipeline over text: truncation, normalization,
// candidate generation against the funder catalog, confidence scoring,
// overlap resolution, grant normalization, deduplication, and the DFG
// same-project merge. Records come back ordered by text position.
//
// For fixed text the output is deterministic: the catalog is scanned in
// declaration order and equal-priority overlaps keep the first-seen
// candidate.
func Extract(text string, opts Options) []types.FundingInfo {
	opts = opts.withDefaults()

	text = locate.Truncate(text, opts.MaxInputLen)
	norm := Normalize(text)
	if strings.TrimSpace(norm) == "" {
		return nil
	}

	cands := generate(norm)
	if len(cands) == 0 {
		return nil
	}

	score(norm, cands)
	accepted := resolve(cands)
	records := finalize(accepted)
	records = mergeDFG(records, opts.DFGMergeDistance)

	return records
}

// generate scans the normalized text with every catalog pattern. A match
// is kept only when it carries a grant number or the funder is name-only,
// and only when the funder's validator accepts the grant.
func generate(norm string) []candidate {
	funders := registry.All()
	var cands []candidate

	for i := range funders {
		f := &funders[i]
		for _, pat := range f.Patterns {
			for _, m := range pat.FindAllStringSubmatchIndex(norm, -1) {
				grant := ""
				if len(m) >= 4 && m[2] >= 0 {
					grant = norm[m[2]:m[3]]
				}
				if grant == "" && !f.NameOnly {
					continue
				}
				if grant != "" && !registry.Validate(f.ID, grant) {
					continue
				}
				cands = append(cands, candidate{
					funder: f,
					grant:  grant,
					raw:    norm[m[0]:m[1]],
					start:  m[0],
					end:    m[1],
				})
				if grant != "" && f.NextPattern != nil {
					cands = append(cands, chain(norm, f, m[1])...)
				}
			}
		}
	}
	return cands
}

// chain probes the text immediately after a match for comma/and-delimited
// grant lists ("NSFC 12345678, 87654321") until the chain breaks. Each hit
// is its own candidate at its own offset. An invalid chained grant is
// dropped but does not break the chain.
func chain(norm string, f *types.FunderPattern, from int) []candidate {
	var cands []candidate
	pos := from
	for pos < len(norm) {
		m := f.NextPattern.FindStringSubmatchIndex(norm[pos:])
		if m == nil || m[0] != 0 {
			break
		}
		gStart, gEnd := pos+m[2], pos+m[3]
		grant := norm[gStart:gEnd]
		if registry.Validate(f.ID, grant) {
			cands = append(cands, candidate{
				funder: f,
				grant:  grant,
				raw:    grant,
				start:  gStart,
				end:    gEnd,
			})
		}
		pos += m[1]
	}
	return cands
}

// score assigns each candidate its confidence: the base, plus bonuses for
// an alias inside the matched span, a funding-context keyword inside the
// span, and a position between the document's first acknowledgments
// heading and its first references heading.
func score(norm string, cands []candidate) {
	ackIdx := -1
	if loc := ackHeadingRe.FindStringIndex(norm); loc != nil {
		ackIdx = loc[0]
	}
	refIdx := -1
	if loc := refHeadingRe.FindStringIndex(norm); loc != nil {
		refIdx = loc[0]
	}

	for i := range cands {
		c := &cands[i]
		conf := baseConfidence
		span := strings.ToLower(c.raw)

		for _, alias := range c.funder.Aliases {
			if strings.Contains(span, strings.ToLower(alias)) {
				conf += aliasBonus
				break
			}
		}
		for _, kw := range contextKeywords {
			if strings.Contains(span, kw) {
				conf += keywordBonus
				break
			}
		}
		if ackIdx >= 0 && refIdx > ackIdx && c.start > ackIdx && c.start < refIdx {
			conf += ackSpanBonus
		}
		if conf > maxConfidence {
			conf = maxConfidence
		}
		c.confidence = conf
	}
}

// resolve drops character-overlapping candidates. Candidates are walked in
// start order; an overlap survives only with strictly greater funder
// priority, in which case it evicts everything it overlaps. Equal-priority
// overlaps keep the earlier-accepted candidate.
func resolve(cands []candidate) []candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].start < cands[j].start
	})

	var accepted []candidate
	for _, c := range cands {
		conflict := false
		var replaceable []candidate
		for _, a := range accepted {
			if c.start < a.end && a.start < c.end {
				if c.funder.Priority > a.funder.Priority {
					replaceable = append(replaceable, a)
				} else {
					conflict = true
					break
				}
			}
		}
		if conflict {
			continue
		}
		if len(replaceable) > 0 {
			kept := accepted[:0]
			for _, a := range accepted {
				evicted := false
				for _, r := range replaceable {
					if a.start == r.start && a.end == r.end && a.funder == r.funder {
						evicted = true
						break
					}
				}
				if !evicted {
					kept = append(kept, a)
				}
			}
			accepted = kept
		}
		accepted = append(accepted, c)
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].start < accepted[j].start
	})
	return accepted
}

// finalize normalizes grant numbers and collapses duplicate
// (funder, grant) keys, keeping the first occurrence.
func finalize(accepted []candidate) []types.FundingInfo {
	seen := make(map[string]bool, len(accepted))
	var records []types.FundingInfo

	for _, c := range accepted {
		grant := registry.NormalizeGrant(c.funder.ID, c.grant)
		key := c.funder.ID + "\x00" + grant
		if seen[key] {
			continue
		}
		seen[key] = true
		records = append(records, types.FundingInfo{
			FunderID:    c.funder.ID,
			FunderName:  c.funder.Name,
			GrantNumber: grant,
			Confidence:  c.confidence,
			RawMatch:    c.raw,
			Position:    c.start,
			Category:    c.funder.Category,
		})
	}
	return records
}

var (
	dfgProjectRe = regexp.MustCompile(`^\d{9}$`)
	dfgCenterRe  = regexp.MustCompile(`^(SFB/TRR|SFB|TRR|CRC)[\s-]?(\d{1,4})$`)
)

// mergeDFG collapses DFG records that name one project under two schemes:
// a 9-digit numeric project id and an SFB/TRR/CRC collaborative-center
// code within maxDist bytes of each other. The numeric id stays primary
// with the center code appended in brackets; the standalone center record
// is removed.
func mergeDFG(records []types.FundingInfo, maxDist int) []types.FundingInfo {
	removed := make(map[int]bool)

	for ci, center := range records {
		if center.FunderID != "DFG" {
			continue
		}
		cm := dfgCenterRe.FindStringSubmatch(center.GrantNumber)
		if cm == nil {
			continue
		}

		bestIdx := -1
		bestDist := maxDist + 1
		for pi, proj := range records {
			if pi == ci || proj.FunderID != "DFG" || removed[pi] {
				continue
			}
			if !dfgProjectRe.MatchString(proj.GrantNumber) {
				continue
			}
			dist := proj.Position - center.Position
			if dist < 0 {
				dist = -dist
			}
			if dist <= maxDist && dist < bestDist {
				bestIdx = pi
				bestDist = dist
			}
		}
		if bestIdx < 0 {
			continue
		}

		records[bestIdx].GrantNumber += " [" + cm[1] + " " + cm[2] + "]"
		removed[ci] = true
	}

	if len(removed) == 0 {
		return records
	}
	kept := records[:0]
	for i, r := range records {
		if !removed[i] {
			kept = append(kept, r)
		}
	}
	return kept
}
