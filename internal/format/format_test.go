// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"reflect"
	"strings"
	"testing"

	"github.com/fkguo/zotero-inspire-sub006/internal/extract"
	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

func record(funderID, name, grant string, pos int, cat types.FunderCategory) types.FundingInfo {
	return types.FundingInfo{
		FunderID:    funderID,
		FunderName:  name,
		GrantNumber: grant,
		Position:    pos,
		Category:    cat,
		Confidence:  0.95,
	}
}

func TestGroupCollectsGrantsPerFunder(t *testing.T) {
	funding := []types.FundingInfo{
		record("NSFC", "National Natural Science Foundation of China", "12075126", 10, types.CategoryChina),
		record("NSFC", "National Natural Science Foundation of China", "11835015", 90, types.CategoryChina),
		record("DOE", "U.S. Department of Energy", "DE-SC0012704", 400, types.CategoryUS),
	}

	groups := Group(funding, 50)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2: %+v", len(groups), groups)
	}
	if groups[0].FunderID != "NSFC" {
		t.Errorf("first group = %s, want NSFC", groups[0].FunderID)
	}
	if !reflect.DeepEqual(groups[0].Grants, []string{"12075126", "11835015"}) {
		t.Errorf("NSFC grants = %v", groups[0].Grants)
	}
	if groups[0].Position != 10 {
		t.Errorf("group position = %d, want position of first record", groups[0].Position)
	}
	if groups[1].Joint {
		t.Error("DOE at distance 390 flagged joint")
	}
}

func TestGroupJointFunding(t *testing.T) {
	// A non-Chinese funder first seen shortly after a Chinese funder is
	// treated as jointly funded and ordered last.
	funding := []types.FundingInfo{
		record("NSFC", "National Natural Science Foundation of China", "12075126", 100, types.CategoryChina),
		record("DFG", "Deutsche Forschungsgemeinschaft", "279384907", 130, types.CategoryEU),
		record("DOE", "U.S. Department of Energy", "DE-SC0012704", 600, types.CategoryUS),
	}

	groups := Group(funding, 50)
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}

	ids := []string{groups[0].FunderID, groups[1].FunderID, groups[2].FunderID}
	if !reflect.DeepEqual(ids, []string{"NSFC", "DOE", "DFG"}) {
		t.Errorf("order = %v, want joint DFG last", ids)
	}
	if !groups[2].Joint {
		t.Error("DFG 30 chars after NSFC not flagged joint")
	}
	if groups[1].Joint {
		t.Error("DOE 500 chars after NSFC flagged joint")
	}
}

func TestGroupJointNeedsChineseFunderFirst(t *testing.T) {
	// Proximity only counts after a Chinese funder, not before.
	funding := []types.FundingInfo{
		record("DFG", "Deutsche Forschungsgemeinschaft", "279384907", 100, types.CategoryEU),
		record("NSFC", "National Natural Science Foundation of China", "12075126", 130, types.CategoryChina),
	}

	groups := Group(funding, 50)
	for _, g := range groups {
		if g.Joint {
			t.Errorf("%s flagged joint with no preceding Chinese funder", g.FunderID)
		}
	}
	if groups[0].FunderID != "DFG" {
		t.Errorf("order = %s first, want DFG by position", groups[0].FunderID)
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name    string
		funding []types.FundingInfo
		want    string
	}{
		{
			"empty",
			nil,
			"",
		},
		{
			"single funder single grant",
			[]types.FundingInfo{
				record("DFG", "Deutsche Forschungsgemeinschaft", "279384907", 0, types.CategoryEU),
			},
			"DFG: 279384907",
		},
		{
			"grant list and second funder",
			[]types.FundingInfo{
				record("NSFC", "National Natural Science Foundation of China", "12075126", 0, types.CategoryChina),
				record("NSFC", "National Natural Science Foundation of China", "11835015", 60, types.CategoryChina),
				record("DOE", "U.S. Department of Energy", "DE-SC0012704", 500, types.CategoryUS),
			},
			"NSFC: 12075126, 11835015; DOE: DE-SC0012704",
		},
		{
			"name-only funder renders bare code",
			[]types.FundingInfo{
				record("CAS", "Chinese Academy of Sciences", "", 0, types.CategoryChina),
			},
			"CAS",
		},
		{
			"joint funder ordered last",
			[]types.FundingInfo{
				record("NSFC", "National Natural Science Foundation of China", "12075126", 100, types.CategoryChina),
				record("DFG", "Deutsche Forschungsgemeinschaft", "279384907", 120, types.CategoryEU),
			},
			"NSFC: 12075126; DFG: 279384907",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compact(tt.funding, types.FormatConfig{})
			if got != tt.want {
				t.Errorf("Compact = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompactFromExtractedText(t *testing.T) {
	// Full pipeline: a joint NSFC/DFG acknowledgment renders as short
	// codes, with the non-Chinese funder flagged joint and ordered last.
	text := "This work is supported by the NSFC Grant No. 11621131001 and DFG Grant No. TRR110."

	records := extract.Extract(text, extract.Options{})
	got := Compact(records, types.FormatConfig{})

	want := "NSFC: 11621131001; DFG: TRR110"
	if got != want {
		t.Errorf("Compact = %q, want %q", got, want)
	}
}

func TestTable(t *testing.T) {
	results := []*types.FundingResult{
		{
			Title:   "Exotic Hadrons",
			ArxivID: "2301.04567",
			Funding: []types.FundingInfo{
				record("NSFC", "National Natural Science Foundation of China", "12075126", 0, types.CategoryChina),
			},
			Source: types.ResultPDF,
		},
		{
			Title:   "A Paper Without Funding",
			ArxivID: "2205.00001",
			Source:  types.ResultPDF,
		},
		nil,
	}

	got := Table(results, types.FormatConfig{})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("table lines = %d, want header plus 2 rows:\n%s", len(lines), got)
	}
	if lines[0] != "Title\tarXiv\tFunding" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Exotic Hadrons\t2301.04567\tNSFC: 12075126" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "A Paper Without Funding\t2205.00001\t" {
		t.Errorf("empty-funding row = %q", lines[2])
	}
}

func TestTableSanitizesTitles(t *testing.T) {
	results := []*types.FundingResult{
		{
			Title:   "Tabs\tand\nnewlines   everywhere",
			ArxivID: "2301.04567",
			Source:  types.ResultPDF,
		},
	}

	got := Table(results, types.FormatConfig{})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("table lines = %d:\n%s", len(lines), got)
	}
	if strings.Count(lines[1], "\t") != 2 {
		t.Errorf("row has %d tabs, want exactly 2: %q", strings.Count(lines[1], "\t"), lines[1])
	}
	if !strings.HasPrefix(lines[1], "Tabs and newlines everywhere\t") {
		t.Errorf("title not sanitized: %q", lines[1])
	}
}

func TestCounts(t *testing.T) {
	results := []*types.FundingResult{
		{
			Funding: []types.FundingInfo{
				record("NSFC", "National Natural Science Foundation of China", "12075126", 0, types.CategoryChina),
				record("NSFC", "National Natural Science Foundation of China", "11835015", 60, types.CategoryChina),
				record("CAS", "Chinese Academy of Sciences", "", 200, types.CategoryChina),
			},
		},
		{
			Funding: []types.FundingInfo{
				record("NSFC", "National Natural Science Foundation of China", "12047503", 0, types.CategoryChina),
				record("DOE", "U.S. Department of Energy", "DE-SC0012704", 300, types.CategoryUS),
			},
		},
		nil,
	}

	if got := UniqueFunders(results); got != 3 {
		t.Errorf("UniqueFunders = %d, want 3", got)
	}
	// Name-only CAS has no grant number and does not count.
	if got := GrantCount(results); got != 4 {
		t.Errorf("GrantCount = %d, want 4", got)
	}
}
