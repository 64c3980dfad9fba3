// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"reflect"
	"strings"
	"testing"

	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

func grants(records []types.FundingInfo, funderID string) []string {
	var out []string
	for _, r := range records {
		if r.FunderID == funderID {
			out = append(out, r.GrantNumber)
		}
	}
	return out
}

func TestExtractEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t  ", "no funders mentioned here at all"} {
		if got := Extract(text, Options{}); got != nil {
			t.Errorf("Extract(%q) = %v, want nil", text, got)
		}
	}
}

func TestExtractNSFCGrantList(t *testing.T) {
	text := "Acknowledgments\nThis work is supported by the National Natural " +
		"Science Foundation of China under Grant Nos. 12075126, 11835015 and 12047503.\n" +
		"References\n[1] A. Author."

	records := Extract(text, Options{})

	want := []string{"12075126", "11835015", "12047503"}
	got := grants(records, "NSFC")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NSFC grants = %v, want %v", got, want)
	}

	// The named mention carries alias, keyword, and section bonuses; the
	// chained numbers only inherit the section bonus.
	if records[0].Confidence < 0.99 || records[0].Confidence > 1.0 {
		t.Errorf("lead confidence = %v, want clamped near 1.0", records[0].Confidence)
	}
	for _, r := range records[1:] {
		if r.Confidence >= records[0].Confidence {
			t.Errorf("chained grant %s confidence %v not below lead %v",
				r.GrantNumber, r.Confidence, records[0].Confidence)
		}
	}
}

func TestExtractChineseAcknowledgment(t *testing.T) {
	text := "致谢\n本工作得到国家自然科学基金（批准号１２０７５１２６）资助。"

	records := Extract(text, Options{})

	got := grants(records, "NSFC")
	if !reflect.DeepEqual(got, []string{"12075126"}) {
		t.Fatalf("NSFC grants = %v, want [12075126]", got)
	}
}

func TestExtractDFGProjectMerge(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"merges nearby center code",
			"funded by the Deutsche Forschungsgemeinschaft (DFG), Projektnummer 279384907 - SFB 1245.",
			[]string{"279384907 [SFB 1245]"},
		},
		{
			"distant center stays separate",
			"Projektnummer 279384907. " + strings.Repeat("unrelated filler text. ", 10) +
				"We also thank the collaborative research center SFB 1245 for hospitality.",
			[]string{"279384907", "SFB 1245"},
		},
		{
			"center alone is kept",
			"supported through CRC 110.",
			[]string{"CRC 110"},
		},
		{
			// A bare nine-digit number with no DFG, Projektnummer, or
			// project cue nearby is too ambiguous to claim; only the
			// center code is recognized, so the merge has nothing to do.
			"bare number without cue is not claimed",
			"supported through TRR 110, reference 279384907 in our files.",
			[]string{"TRR 110"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Extract(tt.text, Options{})
			got := grants(records, "DFG")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DFG grants = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractOverlapKeepsHigherPriority(t *testing.T) {
	text := "supported by the Strategic Priority Research Program of the " +
		"Chinese Academy of Sciences, Grant No. XDB34030000."

	records := Extract(text, Options{})

	if got := grants(records, "CAS-SPRP"); !reflect.DeepEqual(got, []string{"XDB34030000"}) {
		t.Fatalf("CAS-SPRP grants = %v, want [XDB34030000]", got)
	}
	// The generic CAS name-only entry overlaps the program mention and
	// must lose to it.
	for _, r := range records {
		if r.FunderID == "CAS" {
			t.Errorf("name-only CAS record survived overlap resolution: %+v", r)
		}
	}
}

func TestExtractDedupSameGrant(t *testing.T) {
	text := "Supported by NSFC Grant No. 12075126. " +
		"This work is also supported by NSFC Grant No. 12075126."

	records := Extract(text, Options{})

	if got := grants(records, "NSFC"); len(got) != 1 {
		t.Errorf("NSFC records = %v, want exactly one", got)
	}
}

func TestExtractInvalidGrantDropped(t *testing.T) {
	// 02075126 fails the NSFC leading-digit rule.
	text := "supported by NSFC Grant No. 02075126."

	records := Extract(text, Options{})
	if got := grants(records, "NSFC"); len(got) != 0 {
		t.Errorf("NSFC records = %v, want none for invalid grant", got)
	}
}

func TestExtractRecordFields(t *testing.T) {
	text := "This work was supported by DOE contract DE-SC0012704."
	records := Extract(text, Options{})

	if len(records) == 0 {
		t.Fatal("no records")
	}
	r := records[0]
	if r.FunderID != "DOE" {
		t.Errorf("FunderID = %q", r.FunderID)
	}
	if r.GrantNumber != "DE-SC0012704" {
		t.Errorf("GrantNumber = %q", r.GrantNumber)
	}
	if r.Category != types.CategoryUS {
		t.Errorf("Category = %q", r.Category)
	}
	if r.RawMatch == "" {
		t.Error("RawMatch empty")
	}
	if r.Position < 0 || r.Position >= len(text) {
		t.Errorf("Position = %d out of range", r.Position)
	}
	if r.Confidence < 0.60 || r.Confidence > 1.0 {
		t.Errorf("Confidence = %v outside [0.60, 1.0]", r.Confidence)
	}
}

func TestExtractConfidenceBounds(t *testing.T) {
	text := "Acknowledgments\nSupported by the National Science Foundation " +
		"grant PHY-2012345, NSFC grant 12075126, and funded through CRC 110.\n" +
		"References"

	for _, r := range Extract(text, Options{}) {
		if r.Confidence < 0.60 || r.Confidence > 1.0 {
			t.Errorf("%s %s: confidence %v outside [0.60, 1.0]",
				r.FunderID, r.GrantNumber, r.Confidence)
		}
	}
}

func TestExtractOrderedByPosition(t *testing.T) {
	text := "Supported by DOE contract DE-SC0012704 and by NSFC Grant No. 12075126."
	records := Extract(text, Options{})

	for i := 1; i < len(records); i++ {
		if records[i].Position < records[i-1].Position {
			t.Fatalf("records out of position order: %+v", records)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "Acknowledgments\nSupported by NSFC Grants 12075126, 11835015, " +
		"DOE contract DE-SC0012704, the ERC under grant agreement No. 279384907, " +
		"and the Chinese Academy of Sciences.\nReferences"

	first := Extract(text, Options{})
	for i := 0; i < 5; i++ {
		if got := Extract(text, Options{}); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs:\n%+v\nvs\n%+v", i, got, first)
		}
	}
}

func TestExtractTruncation(t *testing.T) {
	text := strings.Repeat("padding text ", 10) + "NSFC Grant No. 12075126."
	records := Extract(text, Options{MaxInputLen: 40})

	if len(records) != 0 {
		t.Errorf("records = %+v, want none past the truncation point", records)
	}
}
