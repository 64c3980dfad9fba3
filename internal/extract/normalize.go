// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// widthFold maps full-width punctuation and digits to their ASCII
// equivalents. The fold is deliberately narrower than NFKC: only width
// variants are touched, so normalization is idempotent and funder names
// containing compatibility characters survive intact.
var widthFold = map[rune]rune{
	'０': '0', '１': '1', '２': '2', '３': '3', '４': '4',
	'５': '5', '６': '6', '７': '7', '８': '8', '９': '9',
	'（': '(', '）': ')', '［': '[', '］': ']', '｛': '{', '｝': '}',
	'，': ',', '．': '.', '：': ':', '；': ';', '？': '?', '！': '!',
	'＃': '#', '＆': '&', '／': '/', '－': '-', '＝': '=', '＋': '+',
	'　': ' ', '、': ',', '〔': '(', '〕': ')', '《': '<', '》': '>',
	'Ａ': 'A', 'Ｂ': 'B', 'Ｃ': 'C', 'Ｄ': 'D', 'Ｅ': 'E', 'Ｆ': 'F',
	'Ｇ': 'G', 'Ｈ': 'H', 'Ｉ': 'I', 'Ｊ': 'J', 'Ｋ': 'K', 'Ｌ': 'L',
	'Ｍ': 'M', 'Ｎ': 'N', 'Ｏ': 'O', 'Ｐ': 'P', 'Ｑ': 'Q', 'Ｒ': 'R',
	'Ｓ': 'S', 'Ｔ': 'T', 'Ｕ': 'U', 'Ｖ': 'V', 'Ｗ': 'W', 'Ｘ': 'X',
	'Ｙ': 'Y', 'Ｚ': 'Z',
}

// pageLineRe matches lines that carry nothing but a page marker: a bare
// page number, "Page N of M", or "- N -" style separators.
var pageLineRe = regexp.MustCompile(`(?mi)^\s*(?:\d{1,4}|page\s+\d+(?:\s+of\s+\d+)?|-\s*\d{1,4}\s*-)\s*$`)

// spaceRunRe collapses runs of blanks left behind by blanking and line
// joining.
var spaceRunRe = regexp.MustCompile(`[ \t]{2,}`)

// minHeaderRepeats is how often an identical short line must recur before
// it is treated as a running header (journal masthead) and blanked.
const minHeaderRepeats = 3

// maxHeaderLineLen bounds what can count as a running header; real
// mastheads are short.
const maxHeaderLineLen = 80

// Normalize prepares raw document text for pattern matching: full-width
// punctuation and digits are folded to ASCII, page-number lines and
// repeated running headers are blanked, and all line breaks collapse to
// spaces so multi-line mentions match as one run.
//
// Normalize is idempotent: applying it to its own output is a no-op.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	folded := strings.Map(func(r rune) rune {
		if to, ok := widthFold[r]; ok {
			return to
		}
		return r
	}, text)

	folded = pageLineRe.ReplaceAllString(folded, " ")
	folded = blankRunningHeaders(folded)

	folded = strings.ReplaceAll(folded, "\r\n", "\n")
	folded = strings.ReplaceAll(folded, "\r", "\n")
	folded = strings.ReplaceAll(folded, "\n", " ")
	folded = spaceRunRe.ReplaceAllString(folded, " ")

	return folded
}

// blankRunningHeaders replaces short lines that recur minHeaderRepeats or
// more times with a single space. Repeated mastheads otherwise splice into
// the middle of multi-line funding sentences once line breaks collapse.
func blankRunningHeaders(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}

	lines := strings.Split(text, "\n")
	counts := make(map[string]int)
	for _, line := range lines {
		key := strings.TrimSpace(line)
		if key == "" || len(key) > maxHeaderLineLen {
			continue
		}
		counts[key]++
	}

	repeated := false
	for _, n := range counts {
		if n >= minHeaderRepeats {
			repeated = true
			break
		}
	}
	if !repeated {
		return text
	}

	for i, line := range lines {
		key := strings.TrimSpace(line)
		if key != "" && counts[key] >= minHeaderRepeats {
			lines[i] = " "
		}
	}
	return strings.Join(lines, "\n")
}
