// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format aggregates extracted funding records into the compact
// per-paper string and the multi-paper TSV table.
package format

import (
	"sort"
	"strings"

	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

// FunderGroup is one funder's share of a paper's funding, with its grant
// numbers in extraction order.
type FunderGroup struct {
	FunderID   string
	FunderName string
	Category   types.FunderCategory
	Grants     []string
	Position   int
	Joint      bool
}

// Group collapses funding records into per-funder groups. Groups keep the
// position of the funder's first record. A non-Chinese funder first seen
// within jointWindow characters after a Chinese funder is flagged as joint
// funding and sorts after all other groups; otherwise groups sort by first
// position.
func Group(funding []types.FundingInfo, jointWindow int) []FunderGroup {
	if jointWindow <= 0 {
		jointWindow = types.DefaultJointWindow
	}

	var groups []FunderGroup
	index := make(map[string]int)

	for _, f := range funding {
		i, ok := index[f.FunderID]
		if !ok {
			index[f.FunderID] = len(groups)
			groups = append(groups, FunderGroup{
				FunderID:   f.FunderID,
				FunderName: f.FunderName,
				Category:   f.Category,
				Position:   f.Position,
			})
			i = len(groups) - 1
		}
		if f.GrantNumber != "" {
			groups[i].Grants = append(groups[i].Grants, f.GrantNumber)
		}
	}

	var chinaPositions []int
	for _, g := range groups {
		if g.Category == types.CategoryChina {
			chinaPositions = append(chinaPositions, g.Position)
		}
	}
	for i := range groups {
		if groups[i].Category == types.CategoryChina {
			continue
		}
		for _, cp := range chinaPositions {
			if groups[i].Position > cp && groups[i].Position-cp <= jointWindow {
				groups[i].Joint = true
				break
			}
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if groups[a].Joint != groups[b].Joint {
			return !groups[a].Joint
		}
		return groups[a].Position < groups[b].Position
	})

	return groups
}

// Compact renders funding as a single line of short funder codes:
// "NSFC: 12075126, 11835015; DFG: 279384907". A funder matched by name
// only, with no grant numbers, appears as its bare code. Display names
// stay in the YAML and store outputs, which carry them per record.
func Compact(funding []types.FundingInfo, cfg types.FormatConfig) string {
	cfg = cfg.WithDefaults()
	groups := Group(funding, cfg.JointWindow)

	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g.Grants) == 0 {
			parts = append(parts, g.FunderID)
			continue
		}
		parts = append(parts, g.FunderID+": "+strings.Join(g.Grants, ", "))
	}
	return strings.Join(parts, "; ")
}

// Table renders results as a TSV table with a header row. Every result gets
// a row, including papers with no funding found. Tabs and newlines inside
// titles are collapsed so the table stays well formed.
func Table(results []*types.FundingResult, cfg types.FormatConfig) string {
	var b strings.Builder
	b.WriteString("Title\tarXiv\tFunding\n")

	for _, r := range results {
		if r == nil {
			continue
		}
		b.WriteString(sanitizeCell(r.Title))
		b.WriteByte('\t')
		b.WriteString(sanitizeCell(r.ArxivID))
		b.WriteByte('\t')
		b.WriteString(Compact(r.Funding, cfg))
		b.WriteByte('\n')
	}
	return b.String()
}

// UniqueFunders counts distinct funder IDs across all results.
func UniqueFunders(results []*types.FundingResult) int {
	seen := make(map[string]bool)
	for _, r := range results {
		if r == nil {
			continue
		}
		for _, f := range r.Funding {
			seen[f.FunderID] = true
		}
	}
	return len(seen)
}

// GrantCount counts funding records with a grant number across all results.
func GrantCount(results []*types.FundingResult) int {
	n := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		for _, f := range r.Funding {
			if f.GrantNumber != "" {
				n++
			}
		}
	}
	return n
}

func sanitizeCell(s string) string {
	s = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
