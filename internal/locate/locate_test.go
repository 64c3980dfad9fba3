// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

func TestLocateSources(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantSource types.SectionSource
		wantInSpan string
	}{
		{
			"acknowledgments heading",
			"Introduction.\nAcknowledgments\nWe thank NSFC grant 12075126.\nReferences\n[1] A paper.",
			types.SourceAcknowledgments,
			"12075126",
		},
		{
			"acknowledgement spelling variant",
			"Body text.\nAcknowledgement\nSupported by DOE.\n",
			types.SourceAcknowledgments,
			"DOE",
		},
		{
			"chinese heading",
			"正文。\n致谢\n感谢国家自然科学基金资助。\n参考文献\n[1]",
			types.SourceAcknowledgments,
			"国家自然科学基金",
		},
		{
			"funding heading",
			"Some body.\nFunding\nThis project received ERC grant agreement No. 279384907.\n",
			types.SourceFunding,
			"279384907",
		},
		{
			"footnote sentence",
			"Abstract text. This work was supported by NSF grant PHY-2012345. More body.",
			types.SourceFootnote,
			"PHY-2012345",
		},
		{
			"no heading falls back to full text",
			"A document with a stray grant 12075126 and no headings at all.",
			types.SourceFullText,
			"12075126",
		},
		{
			"acknowledgments beats funding",
			"Funding information up front.\nLater: Acknowledgments\nThanks to NSFC.\n",
			types.SourceAcknowledgments,
			"NSFC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Locate(tt.text, 0)
			if got.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSource)
			}
			if !strings.Contains(got.Text, tt.wantInSpan) {
				t.Errorf("section %q does not contain %q", got.Text, tt.wantInSpan)
			}
		})
	}
}

func TestLocateTerminatorCut(t *testing.T) {
	text := "Acknowledgments\nWe thank the agency.\nReferences\n[1] Someone, A Paper."
	got := Locate(text, 0)

	if strings.Contains(got.Text, "Someone") {
		t.Errorf("section extends past References: %q", got.Text)
	}
	if got.EndIndex <= got.StartIndex {
		t.Errorf("empty span [%d,%d)", got.StartIndex, got.EndIndex)
	}
	if text[got.StartIndex:got.EndIndex] != got.Text {
		t.Error("indexes do not agree with span text")
	}
}

func TestLocateFootnoteCap(t *testing.T) {
	text := "This work was supported by NSF grant PHY-2012345. " + strings.Repeat("filler words ", 400)
	got := Locate(text, 100)

	if got.Source != types.SourceFootnote {
		t.Fatalf("Source = %q, want footnote", got.Source)
	}
	if len(got.Text) > 100 {
		t.Errorf("footnote span is %d chars, cap 100", len(got.Text))
	}
}

func TestLocateFootnoteCapKeepsRunesWhole(t *testing.T) {
	// The cap is a byte count; with CJK text it can land inside a
	// three-byte sequence and must back off to the rune boundary.
	text := "This work was supported by " + strings.Repeat("国家自然科学基金", 40)
	got := Locate(text, 100)

	if got.Source != types.SourceFootnote {
		t.Fatalf("Source = %q, want footnote", got.Source)
	}
	if !utf8.ValidString(got.Text) {
		t.Errorf("capped span is not valid UTF-8: %q", got.Text)
	}
	if len(got.Text) > 100 {
		t.Errorf("footnote span is %d bytes, cap 100", len(got.Text))
	}
	if text[got.StartIndex:got.EndIndex] != got.Text {
		t.Errorf("indices [%d,%d) do not match Text", got.StartIndex, got.EndIndex)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"under limit", "short", 10, "short"},
		{"exact limit", "exact", 5, "exact"},
		{"ascii cut", "abcdef", 4, "abcd"},
		{"mid-rune backs off", "ab基金", 3, "ab"},
		{"rune boundary kept", "ab基金", 5, "ab基"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
			}
		})
	}
}

func TestLocateFullTextNeverEmpty(t *testing.T) {
	got := Locate("nothing relevant here", 0)
	if got.Source != types.SourceFullText {
		t.Errorf("Source = %q, want full_text", got.Source)
	}
	if got.StartIndex != 0 || got.EndIndex != len("nothing relevant here") {
		t.Errorf("span [%d,%d) does not cover the document", got.StartIndex, got.EndIndex)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		span string
		want types.SectionLanguage
	}{
		{"english", "We thank the National Science Foundation.", types.LangEnglish},
		{"chinese", "感谢国家自然科学基金资助。", types.LangChinese},
		{"mixed", "感谢 NSFC grant 12075126 资助。", types.LangMixed},
		{"digits only default to english", "12345 67890", types.LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectLanguage(tt.span); got != tt.want {
				t.Errorf("detectLanguage = %q, want %q", got, tt.want)
			}
		})
	}
}
