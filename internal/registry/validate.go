// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Validators and normalizers are looked up by funder id. Most funders have
// neither: their pattern is the whole rule. The maps keep the catalog itself
// free of behavior.

// validateFunc reports whether a captured grant number is plausible for the
// funder. Invalid grants drop the single candidate, nothing else.
type validateFunc func(grant string) bool

// normalizeFunc rewrites a validated grant number into canonical form.
type normalizeFunc func(grant string) string

var validators = map[string]validateFunc{
	"NSFC": validateNSFC,
	"MOST": validateMOST,
	"DOE":  validateDOE,
	"NSF":  validateNSF,
	"ERC":  validateERC,
}

var normalizers = map[string]normalizeFunc{
	"DOE":             normalizeDOE,
	"NSF":             normalizeNSF,
	"JUNTA-ANDALUCIA": normalizeSpanishRegional,
	"GVA":             normalizeSpanishRegional,
}

// Validate reports whether grant is acceptable for the funder. Funders
// without a validator accept anything their pattern matched.
func Validate(funderID, grant string) bool {
	v, ok := validators[funderID]
	if !ok {
		return true
	}
	return v(grant)
}

// NormalizeGrant returns the canonical form of a grant number for the
// funder. Funders without a normalizer get the trimmed input back.
func NormalizeGrant(funderID, grant string) string {
	grant = strings.TrimSpace(grant)
	n, ok := normalizers[funderID]
	if !ok {
		return grant
	}
	return n(grant)
}

// --- NSFC ---

var nsfcRe = regexp.MustCompile(`^U?\d+$`)

// validateNSFC accepts 8-11 digit codes whose first character is 1-8, or a
// "U" joint-fund code, or a "9" major-program code.
func validateNSFC(grant string) bool {
	if !nsfcRe.MatchString(grant) {
		return false
	}
	if len(grant) < 8 || len(grant) > 11 {
		return false
	}
	switch grant[0] {
	case 'U', '9':
		return true
	}
	return grant[0] >= '1' && grant[0] <= '8'
}

// --- MoST (National Key R&D Program) ---

var mostYearRe = regexp.MustCompile(`(20\d{2})`)

// maxProgramYear is fixed at registry-load time so a long-running process
// stays deterministic within a session.
var maxProgramYear = time.Now().Year() + 1

// validateMOST requires an embedded program year between 2016 and the
// current year + 1.
func validateMOST(grant string) bool {
	m := mostYearRe.FindString(grant)
	if m == "" {
		return false
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return false
	}
	return year >= 2016 && year <= maxProgramYear
}

// --- DOE ---

var (
	doeStdRe      = regexp.MustCompile(`^DE-[A-Z]{2}\d{7}$`)
	doeQuantRe    = regexp.MustCompile(`^\d{8}[A-Z]{3}\d{6}$`)
	doePrefixRe   = regexp.MustCompile(`^DE-([A-Z]{2})`)
	doeOfficeCode = map[string]bool{
		"SC": true, // Office of Science
		"AC": true, // laboratory operating contracts
		"FG": true, // legacy grants
		"NA": true, // NNSA
		"EE": true, // EERE
		"FE": true, // fossil energy
		"AR": true, // ARPA-E
		"NE": true, // nuclear energy
	}
)

// validateDOE accepts "DE-" + 2 letters + 7 digits, an 8-digit+3-letter+
// 6-digit QuantISED code, or any identifier carrying a known office prefix.
func validateDOE(grant string) bool {
	up := normalizeDOE(grant)
	if doeStdRe.MatchString(up) || doeQuantRe.MatchString(up) {
		return true
	}
	if m := doePrefixRe.FindStringSubmatch(up); m != nil {
		return doeOfficeCode[m[1]]
	}
	return false
}

// normalizeDOE uppercases and canonicalizes the "DE" separator.
func normalizeDOE(grant string) string {
	up := strings.ToUpper(strings.TrimSpace(grant))
	if strings.HasPrefix(up, "DE ") {
		up = "DE-" + up[3:]
	} else if strings.HasPrefix(up, "DE") && len(up) > 2 && up[2] != '-' {
		up = "DE-" + up[2:]
	}
	return up
}

// --- NSF ---

var nsfCodeRe = regexp.MustCompile(`^([A-Z]{3,4})[-\s]?(\d{7})$`)

// nsfDirectorates are the division codes accepted outright; other 3-4
// letter prefixes still pass on shape alone.
var nsfDirectorates = map[string]bool{
	"PHY": true, "DMR": true, "DMS": true, "AST": true, "CHE": true,
	"OAC": true, "CCF": true, "DGE": true, "ECCS": true, "OMA": true,
	"EAR": true, "OCE": true, "MCB": true, "DBI": true, "IIS": true,
	"CNS": true, "AGS": true,
}

func validateNSF(grant string) bool {
	m := nsfCodeRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(grant)))
	if m == nil {
		return false
	}
	if nsfDirectorates[m[1]] {
		return true
	}
	return len(m[1]) >= 3 && len(m[1]) <= 4
}

// normalizeNSF inserts the hyphen between the letter and digit runs:
// "PHY2012345" and "PHY 2012345" both become "PHY-2012345".
func normalizeNSF(grant string) string {
	m := nsfCodeRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(grant)))
	if m == nil {
		return strings.TrimSpace(grant)
	}
	return m[1] + "-" + m[2]
}

// --- ERC ---

var ercRe = regexp.MustCompile(`^\d{6,9}$`)

func validateERC(grant string) bool {
	return ercRe.MatchString(grant)
}

// --- Spanish regional grants ---

var spanishSepRe = regexp.MustCompile(`\s*([-/])\s*`)
var spanishSpaceRe = regexp.MustCompile(`\s+`)

// normalizeSpanishRegional collapses the whitespace/hyphen variants these
// agencies print inconsistently: "FQM 101" → "FQM-101",
// "PROMETEO / 2021 / 083" → "PROMETEO/2021/083".
func normalizeSpanishRegional(grant string) string {
	up := strings.ToUpper(strings.TrimSpace(grant))
	up = spanishSepRe.ReplaceAllString(up, "$1")
	up = spanishSpaceRe.ReplaceAllString(up, "-")
	return up
}
