// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry holds the static catalog of funder recognition patterns
// and the per-funder grant-number validation and normalization rules.
//
// The catalog is a plain ordered slice of immutable records. Order matters:
// entries are declared in priority-then-specificity order, and the extraction
// engine's equal-priority overlap tie-break keeps the first-seen candidate,
// so declaration order is part of the matching contract.
package registry

import (
	"regexp"

	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

// re compiles a case-insensitive pattern. All catalog patterns run against
// normalized text (full-width punctuation folded, line breaks collapsed).
func re(p string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + p)
}

// g is the glue between a funder alias and its grant number: optional
// punctuation plus "under Grant(s) No(s)." style connectors, English and
// Chinese.
const g = `[\s,:;()]{0,6}(?:under\s+)?(?:the\s+)?(?:research\s+)?` +
	`(?:grants?|awards?|contracts?|projects?|agreements?|funds?)?[\s.]{0,3}` +
	`(?:n[ou]s?\.?|numbers?|#|批准号|项目编号|编号|资助号)?[\s.:]{0,3}`

// next builds a continuation pattern for comma/and-delimited grant lists.
// Continuation patterns are anchored so they only match immediately after a
// prior hit.
func next(id string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*(?:,|;|and|und|&|、|和)\s*(` + id + `)`)
}

// funders is the catalog, in evaluation order.
var funders = []types.FunderPattern{
	// --- China ---
	{
		ID:      "CAS-SPRP",
		Name:    "Strategic Priority Research Program of the Chinese Academy of Sciences",
		Aliases: []string{"Strategic Priority Research Program", "中国科学院战略性先导科技专项"},
		Patterns: []*regexp.Regexp{
			re(`(?:Strategic Priority Research Program(?: of(?: the)? (?:Chinese Academy of Sciences|CAS))?|中国科学院战略性先导科技专项)` + g + `(XD[A-C]?\d{7,9})`),
			re(`\b(XD[A-C]\d{7,9})\b`),
		},
		Priority: 60,
		Category: types.CategoryChina,
	},
	{
		ID:      "MOST",
		Name:    "National Key R&D Program of China",
		Aliases: []string{"National Key R&D Program", "National Key Research and Development Program", "MOST", "国家重点研发计划"},
		Patterns: []*regexp.Regexp{
			re(`(?:National Key R\s?&\s?D Program(?: of China)?|National Key Research and Development Program(?: of China)?|国家重点研发计划)` + g + `(2\d{3}YF[A-Z]\d{7})`),
			re(`\b(2\d{3}YF[A-Z]\d{7})\b`),
		},
		NextPattern: next(`2\d{3}YF[A-Z]\d{7}`),
		Priority:    55,
		Category:    types.CategoryChina,
	},
	{
		ID:      "NSFC",
		Name:    "National Natural Science Foundation of China",
		Aliases: []string{"NSFC", "National Natural Science Foundation of China", "国家自然科学基金"},
		Patterns: []*regexp.Regexp{
			re(`(?:National Natural Science Foundation of China|\bNSFC\b|国家自然科学基金(?:委员会)?)` + g + `(U?\d{8,11})`),
		},
		NextPattern: next(`U?\d{8,11}`),
		Priority:    50,
		Category:    types.CategoryChina,
	},
	{
		ID:      "NKBRP",
		Name:    "National Basic Research Program of China (973 Program)",
		Aliases: []string{"973 Program", "National Basic Research Program", "国家重点基础研究发展计划"},
		Patterns: []*regexp.Regexp{
			re(`(?:National Basic Research Program(?: of China)?|973\s?Program|国家重点基础研究发展计划)` + g + `(2\d{3}CB\d{6})`),
			re(`\b(2\d{3}CB\d{6})\b`),
		},
		Priority: 50,
		Category: types.CategoryChina,
	},
	{
		ID:      "863",
		Name:    "National High Technology Research and Development Program of China (863 Program)",
		Aliases: []string{"863 Program", "National High Technology Research and Development Program"},
		Patterns: []*regexp.Regexp{
			re(`\b(2\d{3}AA\d{6})\b`),
		},
		Priority: 50,
		Category: types.CategoryChina,
	},
	{
		ID:      "CPSF",
		Name:    "China Postdoctoral Science Foundation",
		Aliases: []string{"China Postdoctoral Science Foundation", "中国博士后科学基金"},
		Patterns: []*regexp.Regexp{
			re(`(?:China Postdoctoral Science Foundation|中国博士后科学基金)` + g + `(\d{4}M\d{6}|BX\d{8})`),
			re(`\b(\d{4}M\d{6})\b`),
		},
		Priority: 50,
		Category: types.CategoryChina,
	},
	{
		ID:      "CAS-YIPA",
		Name:    "Youth Innovation Promotion Association of the Chinese Academy of Sciences",
		Aliases: []string{"Youth Innovation Promotion Association", "中国科学院青年创新促进会"},
		Patterns: []*regexp.Regexp{
			re(`(?:Youth Innovation Promotion Association(?:,? CAS| of(?: the)? Chinese Academy of Sciences)?|中国科学院青年创新促进会)` + g + `(\d{7,8})`),
		},
		Priority: 50,
		Category: types.CategoryChina,
	},
	{
		ID:      "NSAF",
		Name:    "NSAF Joint Fund",
		Aliases: []string{"NSAF"},
		Patterns: []*regexp.Regexp{
			re(`\bNSAF\b` + g + `(U\d{7,8})`),
		},
		Priority: 48,
		Category: types.CategoryChina,
	},
	{
		ID:      "GDNSF",
		Name:    "Guangdong Basic and Applied Basic Research Foundation",
		Aliases: []string{"Guangdong Basic and Applied Basic Research Foundation", "Guangdong Provincial Natural Science Foundation", "广东省自然科学基金"},
		Patterns: []*regexp.Regexp{
			re(`(?:Guangdong (?:Basic and Applied Basic Research Foundation|(?:Provincial )?Natural Science Foundation)|广东省(?:自然科学)?基金)` + g + `(\d{4}[AB]\d{10,12})`),
		},
		Priority: 45,
		Category: types.CategoryChina,
	},
	{
		ID:      "ZJNSF",
		Name:    "Zhejiang Provincial Natural Science Foundation",
		Aliases: []string{"Zhejiang Provincial Natural Science Foundation", "浙江省自然科学基金"},
		Patterns: []*regexp.Regexp{
			re(`(?:Zhejiang Provincial Natural Science Foundation(?: of China)?|浙江省自然科学基金)` + g + `(L[QYZD]?\d{2}A\d{6})`),
		},
		Priority: 45,
		Category: types.CategoryChina,
	},
	{
		ID:      "SDNSF",
		Name:    "Shandong Provincial Natural Science Foundation",
		Aliases: []string{"Shandong Provincial Natural Science Foundation", "山东省自然科学基金"},
		Patterns: []*regexp.Regexp{
			re(`(?:(?:Natural Science Foundation of Shandong(?: Province)?|Shandong Provincial Natural Science Foundation)|山东省自然科学基金)` + g + `(ZR\d{4}[A-Z]{1,2}[A-Z0-9]{3,6})`),
		},
		Priority: 45,
		Category: types.CategoryChina,
	},
	{
		ID:      "SHNSF",
		Name:    "Natural Science Foundation of Shanghai",
		Aliases: []string{"Natural Science Foundation of Shanghai", "上海市自然科学基金"},
		Patterns: []*regexp.Regexp{
			re(`(?:Natural Science Foundation of Shanghai|Shanghai Natural Science Foundation|上海市自然科学基金)` + g + `(\d{2}ZR\d{7})`),
		},
		Priority: 45,
		Category: types.CategoryChina,
	},
	{
		ID:      "BJNSF",
		Name:    "Beijing Natural Science Foundation",
		Aliases: []string{"Beijing Natural Science Foundation", "北京市自然科学基金"},
		Patterns: []*regexp.Regexp{
			re(`(?:Beijing Natural Science Foundation|北京市自然科学基金)` + g + `((?:JQ)?\d{7})`),
		},
		Priority: 42,
		Category: types.CategoryChina,
	},
	{
		ID:      "CSC",
		Name:    "China Scholarship Council",
		Aliases: []string{"China Scholarship Council", "CSC", "国家留学基金"},
		Patterns: []*regexp.Regexp{
			re(`(?:China Scholarship Council|国家留学基金(?:委员会)?)` + g + `(\d{9,11})`),
		},
		Priority: 40,
		Category: types.CategoryChina,
	},
	{
		ID:      "CAS",
		Name:    "Chinese Academy of Sciences",
		Aliases: []string{"Chinese Academy of Sciences", "CAS", "中国科学院"},
		Patterns: []*regexp.Regexp{
			re(`(?:Chinese Academy of Sciences|中国科学院)`),
		},
		Priority: 30,
		Category: types.CategoryChina,
		NameOnly: true,
	},
	{
		ID:      "FRFCU",
		Name:    "Fundamental Research Funds for the Central Universities",
		Aliases: []string{"Fundamental Research Funds for the Central Universities", "中央高校基本科研业务费"},
		Patterns: []*regexp.Regexp{
			re(`(?:Fundamental Research Funds? for the Central Universities|中央高校基本科研业务费)`),
		},
		Priority: 30,
		Category: types.CategoryChina,
		NameOnly: true,
	},
	{
		ID:      "CMS-CN",
		Name:    "China Manned Space Program",
		Aliases: []string{"China Manned Space", "中国载人航天工程"},
		Patterns: []*regexp.Regexp{
			re(`(?:China Manned Space (?:Program|Project|Engineering)|中国载人航天工程)`),
		},
		Priority: 30,
		Category: types.CategoryChina,
		NameOnly: true,
	},
	{
		ID:      "MOE-CN",
		Name:    "Ministry of Education of China",
		Aliases: []string{"Ministry of Education of China", "教育部"},
		Patterns: []*regexp.Regexp{
			re(`Ministry of Education of (?:the People's Republic of )?China`),
		},
		Priority: 25,
		Category: types.CategoryChina,
		NameOnly: true,
	},

	// --- United States ---
	{
		ID:      "DOE",
		Name:    "U.S. Department of Energy",
		Aliases: []string{"Department of Energy", "DOE", "Office of Science"},
		Patterns: []*regexp.Regexp{
			re(`\b(DE[-\s]?[A-Z]{2}\d{2}[-\s]?[0-9A-Z]{5,10})\b`),
			re(`(?:U\.?S\.?\s+)?Department of Energy` + g + `(\d{8}[A-Z]{3}\d{6})`),
		},
		NextPattern: next(`DE[-\s]?[A-Z]{2}\d{2}[-\s]?[0-9A-Z]{5,10}`),
		Priority:    50,
		Category:    types.CategoryUS,
	},
	{
		ID:      "NSF",
		Name:    "U.S. National Science Foundation",
		Aliases: []string{"National Science Foundation", "NSF"},
		Patterns: []*regexp.Regexp{
			re(`(?:National Science Foundation|\bNSF\b)` + g + `([A-Z]{3,4}[-\s]?\d{7})`),
			re(`\b((?:PHY|DMR|DMS|AST|CHE|OAC|CCF|DGE|ECCS|OMA|EAR|OCE|MCB|DBI)[-\s]?\d{7})\b`),
		},
		NextPattern: next(`[A-Z]{3,4}[-\s]?\d{7}`),
		Priority:    50,
		Category:    types.CategoryUS,
	},
	{
		ID:      "NASA",
		Name:    "National Aeronautics and Space Administration",
		Aliases: []string{"NASA", "National Aeronautics and Space Administration"},
		Patterns: []*regexp.Regexp{
			re(`\b(80NSSC\d{2}[A-Z]\d{4}[A-Z]?)\b`),
			re(`(?:NASA|National Aeronautics and Space Administration)` + g + `(N[AN][GSX]\d{1,2}[A-Z]{1,2}\d{2,5}[A-Z]?)`),
		},
		Priority: 48,
		Category: types.CategoryUS,
	},
	{
		ID:      "NIH",
		Name:    "National Institutes of Health",
		Aliases: []string{"National Institutes of Health", "NIH"},
		Patterns: []*regexp.Regexp{
			re(`(?:National Institutes of Health|\bNIH\b)` + g + `([RPUK]\d{2}\s?[A-Z]{2}\d{6})`),
			re(`\b(R\d{2}[A-Z]{2}\d{6})\b`),
		},
		Priority: 48,
		Category: types.CategoryUS,
	},
	{
		ID:      "ONR",
		Name:    "Office of Naval Research",
		Aliases: []string{"Office of Naval Research", "ONR"},
		Patterns: []*regexp.Regexp{
			re(`\b(N000\d{2}-?\d{2}-?\d-?\d{4})\b`),
		},
		Priority: 45,
		Category: types.CategoryUS,
	},
	{
		ID:      "AFOSR",
		Name:    "Air Force Office of Scientific Research",
		Aliases: []string{"Air Force Office of Scientific Research", "AFOSR"},
		Patterns: []*regexp.Regexp{
			re(`\b(FA\d{4}-?\d{2}-?\d-?\d{4})\b`),
		},
		Priority: 45,
		Category: types.CategoryUS,
	},
	{
		ID:      "ARO",
		Name:    "Army Research Office",
		Aliases: []string{"Army Research Office", "ARO"},
		Patterns: []*regexp.Regexp{
			re(`\b(W911NF-?\d{2}-?\d-?\d{4})\b`),
		},
		Priority: 45,
		Category: types.CategoryUS,
	},
	{
		ID:      "DARPA",
		Name:    "Defense Advanced Research Projects Agency",
		Aliases: []string{"DARPA", "Defense Advanced Research Projects Agency"},
		Patterns: []*regexp.Regexp{
			re(`(?:DARPA|Defense Advanced Research Projects Agency)` + g + `(HR\d{4}-?\d{2}-?[A-Z0-9-]{4,9})`),
			re(`(?:DARPA|Defense Advanced Research Projects Agency)`),
		},
		Priority: 42,
		Category: types.CategoryUS,
		NameOnly: true,
	},
	{
		ID:      "SIMONS",
		Name:    "Simons Foundation",
		Aliases: []string{"Simons Foundation", "Simons Investigator", "Simons Collaboration"},
		Patterns: []*regexp.Regexp{
			re(`Simons (?:Foundation|Investigator|Collaboration(?: on [A-Za-z ,-]{3,60})?)` + g + `(\d{6,7})`),
		},
		Priority: 45,
		Category: types.CategoryUS,
	},
	{
		ID:      "MOORE",
		Name:    "Gordon and Betty Moore Foundation",
		Aliases: []string{"Gordon and Betty Moore Foundation", "Moore Foundation"},
		Patterns: []*regexp.Regexp{
			re(`(?:Gordon and Betty )?Moore Foundation` + g + `(GBMF\s?\d{4,6}(?:\.\d{2})?)`),
			re(`\b(GBMF\d{4,6}(?:\.\d{2})?)\b`),
		},
		Priority: 45,
		Category: types.CategoryUS,
	},
	{
		ID:      "SLOAN",
		Name:    "Alfred P. Sloan Foundation",
		Aliases: []string{"Alfred P. Sloan Foundation", "Sloan Foundation", "Sloan Research Fellowship"},
		Patterns: []*regexp.Regexp{
			re(`(?:Alfred P\.? )?Sloan (?:Foundation|Research Fellowship)` + g + `(FG-?\d{4}-?\d{4,5})`),
			re(`(?:Alfred P\.? )?Sloan (?:Foundation|Research Fellowship)`),
		},
		Priority: 40,
		Category: types.CategoryUS,
		NameOnly: true,
	},
	{
		ID:      "TEMPLETON",
		Name:    "John Templeton Foundation",
		Aliases: []string{"John Templeton Foundation", "Templeton Foundation"},
		Patterns: []*regexp.Regexp{
			re(`(?:John )?Templeton Foundation` + g + `(\d{5})`),
		},
		Priority: 40,
		Category: types.CategoryUS,
	},
	{
		ID:      "HEISING-SIMONS",
		Name:    "Heising-Simons Foundation",
		Aliases: []string{"Heising-Simons Foundation"},
		Patterns: []*regexp.Regexp{
			re(`Heising[-\s]Simons Foundation` + g + `(\d{4}-\d{4,5})`),
		},
		Priority: 46,
		Category: types.CategoryUS,
	},

	// --- Europe ---
	{
		ID:      "ERC",
		Name:    "European Research Council",
		Aliases: []string{"European Research Council", "ERC"},
		Patterns: []*regexp.Regexp{
			re(`(?:European Research Council|\bERC\b)[^.;]{0,80}?grant agreement\s*(?:n[ou]\.?|no\.?|number)?\s*(\d{6,9})`),
			re(`(?:European Research Council|\bERC\b)(?:\s+(?:Starting|Consolidator|Advanced|Synergy)\s+Grant)?` + g + `(\d{6,9})`),
		},
		Priority: 55,
		Category: types.CategoryEU,
	},
	{
		ID:      "MSCA",
		Name:    "Marie Skłodowska-Curie Actions",
		Aliases: []string{"Marie Skłodowska-Curie", "Marie Sklodowska-Curie", "Marie Curie", "MSCA"},
		Patterns: []*regexp.Regexp{
			re(`Marie (?:Sk[lł]odowska[-\s])?Curie(?:\s+Actions?)?[^.;]{0,60}?(?:grant agreement\s*)?(?:n[ou]\.?|no\.?|number)?\s*(\d{6,9})`),
		},
		Priority: 54,
		Category: types.CategoryEU,
	},
	{
		ID:      "H2020",
		Name:    "EU Horizon 2020 Programme",
		Aliases: []string{"Horizon 2020", "H2020"},
		Patterns: []*regexp.Regexp{
			re(`(?:Horizon\s?2020|\bH2020\b)[^.;]{0,80}?(?:grant agreement\s*)?(?:n[ou]\.?|no\.?|number)?\s*(\d{6,9})`),
		},
		Priority: 50,
		Category: types.CategoryEU,
	},
	{
		ID:      "HORIZON-EU",
		Name:    "EU Horizon Europe Programme",
		Aliases: []string{"Horizon Europe"},
		Patterns: []*regexp.Regexp{
			re(`Horizon Europe[^.;]{0,80}?(?:grant agreement\s*)?(?:n[ou]\.?|no\.?|number)?\s*(\d{6,9})`),
		},
		Priority: 50,
		Category: types.CategoryEU,
	},
	{
		ID:      "DFG",
		Name:    "Deutsche Forschungsgemeinschaft",
		Aliases: []string{"Deutsche Forschungsgemeinschaft", "DFG", "German Research Foundation"},
		Patterns: []*regexp.Regexp{
			re(`(?:Deutsche Forschungsgemeinschaft|\bDFG\b|German Research Foundation)` + g + `(\d{9})`),
			re(`(?:Projektnummer|project\s?(?:id|no\.?|number)?)\s*(\d{9})`),
			re(`\b((?:SFB(?:/TRR)?|TRR|CRC|FOR|GRK|EXC)[\s-]?\d{2,4})\b`),
			re(`(?:Deutsche Forschungsgemeinschaft|\bDFG\b|German Research Foundation)` + g + `([A-Z]{2}\s?\d{3,4}/\d{1,2}(?:-\d)?)`),
		},
		NextPattern: next(`\d{9}`),
		Priority:    50,
		Category:    types.CategoryEU,
	},
	{
		ID:      "BMBF",
		Name:    "German Federal Ministry of Education and Research",
		Aliases: []string{"BMBF", "Federal Ministry of Education and Research", "Bundesministerium für Bildung und Forschung"},
		Patterns: []*regexp.Regexp{
			re(`(?:\bBMBF\b|(?:German )?Federal Ministry of Education and Research|Bundesministerium f[üu]r Bildung und Forschung)` + g + `(\d{2}[A-Z]{1,2}\d{4}[A-Z]?)`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},
	{
		ID:      "AVH",
		Name:    "Alexander von Humboldt Foundation",
		Aliases: []string{"Alexander von Humboldt Foundation", "Humboldt Foundation", "Humboldt Research Fellowship"},
		Patterns: []*regexp.Regexp{
			re(`(?:Alexander von )?Humboldt (?:Foundation|Stiftung|Research Fellowship|Professorship)`),
		},
		Priority: 38,
		Category: types.CategoryEU,
		NameOnly: true,
	},
	{
		ID:      "STFC",
		Name:    "UK Science and Technology Facilities Council",
		Aliases: []string{"Science and Technology Facilities Council", "STFC"},
		Patterns: []*regexp.Regexp{
			re(`\b(ST/[A-Z]\d{6}/\d)\b`),
		},
		Priority: 48,
		Category: types.CategoryEU,
	},
	{
		ID:      "EPSRC",
		Name:    "UK Engineering and Physical Sciences Research Council",
		Aliases: []string{"Engineering and Physical Sciences Research Council", "EPSRC"},
		Patterns: []*regexp.Regexp{
			re(`\b(EP/[A-Z]\d{6}/\d)\b`),
		},
		Priority: 48,
		Category: types.CategoryEU,
	},
	{
		ID:      "UKRI",
		Name:    "UK Research and Innovation",
		Aliases: []string{"UK Research and Innovation", "UKRI"},
		Patterns: []*regexp.Regexp{
			re(`\b((?:MR|NE|BB|ES|AH|MC)/[A-Z]\d{6}/\d)\b`),
			re(`\bUKRI` + g + `(\d{3,6})`),
		},
		Priority: 46,
		Category: types.CategoryEU,
	},
	{
		ID:      "ROYAL-SOC",
		Name:    "Royal Society",
		Aliases: []string{"Royal Society", "Royal Society University Research Fellowship"},
		Patterns: []*regexp.Regexp{
			re(`\b(URF\\R1\\\d{6})\b`),
			re(`(?:The )?Royal Society` + g + `((?:RGF|RF|DH|UF|WM)[\\/]?[A-Z0-9\\]{4,12})`),
			re(`(?:The )?Royal Society\b`),
		},
		Priority: 40,
		Category: types.CategoryEU,
		NameOnly: true,
	},
	{
		ID:      "LEVERHULME",
		Name:    "Leverhulme Trust",
		Aliases: []string{"Leverhulme Trust"},
		Patterns: []*regexp.Regexp{
			re(`Leverhulme Trust` + g + `((?:RPG|ECF|EM|IAF)-\d{4}-\d{3,4})`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},
	{
		ID:      "ANR",
		Name:    "French National Research Agency",
		Aliases: []string{"Agence Nationale de la Recherche", "ANR", "French National Research Agency"},
		Patterns: []*regexp.Regexp{
			re(`\b(ANR-\d{2}-[A-Z]{2,6}\d{0,2}-\d{4}(?:-\d{2})?)\b`),
		},
		Priority: 48,
		Category: types.CategoryEU,
	},
	{
		ID:      "CNRS",
		Name:    "Centre National de la Recherche Scientifique",
		Aliases: []string{"CNRS", "Centre National de la Recherche Scientifique"},
		Patterns: []*regexp.Regexp{
			re(`(?:Centre National de la Recherche Scientifique|\bCNRS\b)\b`),
		},
		Priority: 25,
		Category: types.CategoryEU,
		NameOnly: true,
	},
	{
		ID:      "INFN",
		Name:    "Istituto Nazionale di Fisica Nucleare",
		Aliases: []string{"INFN", "Istituto Nazionale di Fisica Nucleare"},
		Patterns: []*regexp.Regexp{
			re(`(?:Istituto Nazionale di Fisica Nucleare|\bINFN\b)\b`),
		},
		Priority: 30,
		Category: types.CategoryEU,
		NameOnly: true,
	},
	{
		ID:      "PRIN",
		Name:    "Italian Ministry of University and Research (PRIN)",
		Aliases: []string{"PRIN", "MIUR", "MUR", "Ministry of University and Research"},
		Patterns: []*regexp.Regexp{
			re(`\bPRIN` + g + `(20\d{2}[A-Z0-9]{6}(?:[-_][A-Z0-9]{3})?)`),
			re(`(?:\bMIUR\b|\bMUR\b|Italian Ministry of (?:Education, )?University and Research)` + g + `(20\d{2}[A-Z0-9]{6})`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},
	{
		ID:      "AEI",
		Name:    "Spanish State Research Agency",
		Aliases: []string{"Agencia Estatal de Investigación", "AEI", "MICINN", "MCIN", "Ministerio de Ciencia e Innovación"},
		Patterns: []*regexp.Regexp{
			re(`\b(PID\d{4}-\d{5,6}[A-Z]{2}-?[CI]?\d{0,2})\b`),
			re(`\b(PGC\d{4}-\d{6}-?[A-Z]?(?:-[CI]\d{2})?)\b`),
			re(`\b(FPA\d{4}-\d{5}(?:-[CP]\d(?:-\d)?)?)\b`),
			re(`\b(RYC(?:2)?\d{4}-\d{5}-?I?)\b`),
		},
		Priority: 48,
		Category: types.CategoryEU,
	},
	{
		ID:      "SEVERO-OCHOA",
		Name:    "Severo Ochoa Centres of Excellence Programme",
		Aliases: []string{"Severo Ochoa", "María de Maeztu", "Maria de Maeztu"},
		Patterns: []*regexp.Regexp{
			re(`\b(CEX\d{4}-\d{6}-[SM])\b`),
			re(`\b(SEV-\d{4}-\d{4})\b`),
			re(`\b(MDM-\d{4}-\d{4})\b`),
		},
		Priority: 55,
		Category: types.CategoryEU,
	},
	{
		ID:      "JUNTA-ANDALUCIA",
		Name:    "Junta de Andalucía",
		Aliases: []string{"Junta de Andalucía", "Junta de Andalucia"},
		Patterns: []*regexp.Regexp{
			re(`\b(P\d{2}[-\s]?[A-Z]{2,4}[-\s]?\d{3,5})\b`),
			re(`(?:Junta de Andaluc[íi]a)` + g + `(FQM[-\s]?\d{3,4})`),
			re(`\b(UMA\d{2}[-\s]?[A-Z]{5,8}[-\s]?\d{1,4})\b`),
		},
		Priority: 44,
		Category: types.CategoryEU,
	},
	{
		ID:      "GVA",
		Name:    "Generalitat Valenciana",
		Aliases: []string{"Generalitat Valenciana", "GVA"},
		Patterns: []*regexp.Regexp{
			re(`\b((?:PROMETEO|CIPROM|GVPROMETEO|SEJIGENT)[\s/]?\d{4}[\s/]\d{3})\b`),
		},
		Priority: 44,
		Category: types.CategoryEU,
	},
	{
		ID:      "XUNTA",
		Name:    "Xunta de Galicia",
		Aliases: []string{"Xunta de Galicia"},
		Patterns: []*regexp.Regexp{
			re(`\b(ED431[A-Z]\s?\d{4}/\d{2})\b`),
		},
		Priority: 44,
		Category: types.CategoryEU,
	},
	{
		ID:      "FCT",
		Name:    "Portuguese Foundation for Science and Technology",
		Aliases: []string{"Fundação para a Ciência e a Tecnologia", "FCT"},
		Patterns: []*regexp.Regexp{
			re(`\b((?:UIDB|UIDP|PTDC|CEECIND|CEECINST)/[A-Z0-9/.-]{3,20}/\d{4})\b`),
			re(`\b(SFRH/[A-Z]{2,4}/\d{4,6}/\d{4})\b`),
		},
		Priority: 46,
		Category: types.CategoryEU,
	},
	{
		ID:      "SNSF",
		Name:    "Swiss National Science Foundation",
		Aliases: []string{"Swiss National Science Foundation", "SNSF", "SNF", "Schweizerischer Nationalfonds"},
		Patterns: []*regexp.Regexp{
			re(`\b((?:200020|200021|2000201|PP00P2|PCEFP2|TMSGI2)[-_]\d{6})\b`),
			re(`(?:Swiss National Science Foundation|\bSNSF\b|\bSNF\b)` + g + `(\d{6})`),
		},
		Priority: 46,
		Category: types.CategoryEU,
	},
	{
		ID:      "FWF",
		Name:    "Austrian Science Fund",
		Aliases: []string{"Austrian Science Fund", "FWF"},
		Patterns: []*regexp.Regexp{
			re(`(?:Austrian Science Fund|\bFWF\b)` + g + `([PIJY]\s?\d{4,5}(?:-[A-Z]\d{2})?)`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},
	{
		ID:      "FWO",
		Name:    "Research Foundation Flanders",
		Aliases: []string{"Research Foundation Flanders", "FWO", "Fonds Wetenschappelijk Onderzoek"},
		Patterns: []*regexp.Regexp{
			re(`(?:Research Foundation[\s-]+Flanders|\bFWO\b|Fonds Wetenschappelijk Onderzoek)` + g + `(G0[A-Z0-9]\d{3}\d?[A-Z]?)`),
			re(`(?:Research Foundation[\s-]+Flanders|\bFWO\b)\b`),
		},
		Priority: 40,
		Category: types.CategoryEU,
		NameOnly: true,
	},
	{
		ID:      "FNRS",
		Name:    "Belgian National Fund for Scientific Research",
		Aliases: []string{"FNRS", "F.R.S.-FNRS", "Fonds de la Recherche Scientifique"},
		Patterns: []*regexp.Regexp{
			re(`(?:F\.?R\.?S\.?[-\s]?FNRS|Fonds de la Recherche Scientifique)`),
		},
		Priority: 30,
		Category: types.CategoryEU,
		NameOnly: true,
	},
	{
		ID:      "NWO",
		Name:    "Dutch Research Council",
		Aliases: []string{"Dutch Research Council", "NWO", "Nederlandse Organisatie voor Wetenschappelijk Onderzoek"},
		Patterns: []*regexp.Regexp{
			re(`\b(VI\.[A-Za-z]+\.\d{3}\.\d{3})\b`),
			re(`(?:Dutch Research Council|\bNWO\b)` + g + `(\d{3}\.\d{3}\.\d{3}|\d{3}-\d{2}-\d{3})`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},
	{
		ID:      "VR",
		Name:    "Swedish Research Council",
		Aliases: []string{"Swedish Research Council", "Vetenskapsrådet"},
		Patterns: []*regexp.Regexp{
			re(`(?:Swedish Research Council|Vetenskapsr[åa]det)` + g + `(\d{4}-\d{4,5})`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},
	{
		ID:      "KAW",
		Name:    "Knut and Alice Wallenberg Foundation",
		Aliases: []string{"Knut and Alice Wallenberg Foundation", "Wallenberg Foundation"},
		Patterns: []*regexp.Regexp{
			re(`(?:Knut (?:and|och) Alice )?Wallenberg (?:Foundation|Stiftelse)` + g + `((?:KAW\s?)?\d{4}\.\d{4})`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},
	{
		ID:      "AKA",
		Name:    "Research Council of Finland",
		Aliases: []string{"Academy of Finland", "Research Council of Finland"},
		Patterns: []*regexp.Regexp{
			re(`(?:Academy of Finland|Research Council of Finland)` + g + `(\d{6})`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},
	{
		ID:      "RCN",
		Name:    "Research Council of Norway",
		Aliases: []string{"Research Council of Norway", "Norges forskningsråd"},
		Patterns: []*regexp.Regexp{
			re(`Research Council of Norway` + g + `(\d{6})`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},
	{
		ID:      "DNRF",
		Name:    "Danish National Research Foundation",
		Aliases: []string{"Danish National Research Foundation", "DNRF"},
		Patterns: []*regexp.Regexp{
			re(`\b(DNRF\d{2,3})\b`),
		},
		Priority: 44,
		Category: types.CategoryEU,
	},
	{
		ID:      "CARLSBERG",
		Name:    "Carlsberg Foundation",
		Aliases: []string{"Carlsberg Foundation", "Carlsbergfondet"},
		Patterns: []*regexp.Regexp{
			re(`Carlsberg (?:Foundation|fondet)` + g + `(CF\d{2}-\d{4})`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},
	{
		ID:      "NCN",
		Name:    "National Science Centre, Poland",
		Aliases: []string{"National Science Centre", "Narodowe Centrum Nauki", "NCN"},
		Patterns: []*regexp.Regexp{
			re(`\b(\d{4}/\d{2}/[A-Z]/[A-Z]{2}\d?/\d{5})\b`),
		},
		Priority: 46,
		Category: types.CategoryEU,
	},
	{
		ID:      "GACR",
		Name:    "Czech Science Foundation",
		Aliases: []string{"Czech Science Foundation", "GACR", "GAČR"},
		Patterns: []*regexp.Regexp{
			re(`(?:Czech Science Foundation|\bGA[ČC]R)` + g + `(\d{2}-\d{5}[A-Z])`),
		},
		Priority: 42,
		Category: types.CategoryEU,
	},

	// --- Asia (outside China) ---
	{
		ID:      "JSPS",
		Name:    "Japan Society for the Promotion of Science",
		Aliases: []string{"JSPS", "KAKENHI", "Japan Society for the Promotion of Science"},
		Patterns: []*regexp.Regexp{
			re(`(?:\bJSPS\b(?:\s+KAKENHI)?|\bKAKENHI\b|Japan Society for the Promotion of Science|Grants?-in-Aid for Scientific Research)` + g + `((?:JP)?\d{2}[A-Z]?\d{5,6})`),
		},
		NextPattern: next(`(?:JP)?\d{2}[A-Z]?\d{5,6}`),
		Priority:    50,
		Category:    types.CategoryAsia,
	},
	{
		ID:      "MEXT",
		Name:    "Japanese Ministry of Education, Culture, Sports, Science and Technology",
		Aliases: []string{"MEXT", "Ministry of Education, Culture, Sports, Science and Technology"},
		Patterns: []*regexp.Regexp{
			re(`(?:\bMEXT\b|Ministry of Education, Culture, Sports, Science(?:,| and) Technology)` + g + `((?:JP)?\d{2}[A-Z]?\d{5,6})`),
			re(`(?:\bMEXT\b|Ministry of Education, Culture, Sports, Science(?:,| and) Technology)\b`),
		},
		Priority: 40,
		Category: types.CategoryAsia,
		NameOnly: true,
	},
	{
		ID:      "JST",
		Name:    "Japan Science and Technology Agency",
		Aliases: []string{"JST", "Japan Science and Technology Agency", "CREST", "PRESTO", "ERATO"},
		Patterns: []*regexp.Regexp{
			re(`\b(JPMJ[A-Z]{2}\d{2}[A-Z0-9]{1,4})\b`),
		},
		Priority: 46,
		Category: types.CategoryAsia,
	},
	{
		ID:      "NRF-KR",
		Name:    "National Research Foundation of Korea",
		Aliases: []string{"National Research Foundation of Korea", "NRF"},
		Patterns: []*regexp.Regexp{
			re(`\b((?:NRF|RS)-\d{4}-[A-Z0-9]{5,13})\b`),
		},
		Priority: 48,
		Category: types.CategoryAsia,
	},
	{
		ID:      "NSTC-TW",
		Name:    "National Science and Technology Council, Taiwan",
		Aliases: []string{"National Science and Technology Council", "NSTC", "Ministry of Science and Technology, Taiwan"},
		Patterns: []*regexp.Regexp{
			re(`\b((?:NSTC|MOST)\s?\d{3}-\d{4}-[A-Z]-\d{3}-\d{3}(?:-[A-Z]{2}\d)?)\b`),
		},
		Priority: 52,
		Category: types.CategoryAsia,
	},
	{
		ID:      "SERB",
		Name:    "Science and Engineering Research Board, India",
		Aliases: []string{"Science and Engineering Research Board", "SERB", "ANRF"},
		Patterns: []*regexp.Regexp{
			re(`\b((?:CRG|MTR|SRG|ECR|JCB)/\d{4}/\d{6})\b`),
		},
		Priority: 46,
		Category: types.CategoryAsia,
	},
	{
		ID:      "DST-IN",
		Name:    "Department of Science and Technology, India",
		Aliases: []string{"Department of Science and Technology", "DST"},
		Patterns: []*regexp.Regexp{
			re(`Department of Science (?:and|&) Technology(?:,? (?:Government of )?India)?`),
		},
		Priority: 30,
		Category: types.CategoryAsia,
		NameOnly: true,
	},
	{
		ID:      "DAE",
		Name:    "Department of Atomic Energy, India",
		Aliases: []string{"Department of Atomic Energy", "DAE"},
		Patterns: []*regexp.Regexp{
			re(`Department of Atomic Energy(?:,? (?:Government of )?India)?`),
		},
		Priority: 30,
		Category: types.CategoryAsia,
		NameOnly: true,
	},
	{
		ID:      "ISF",
		Name:    "Israel Science Foundation",
		Aliases: []string{"Israel Science Foundation", "ISF"},
		Patterns: []*regexp.Regexp{
			re(`(?:Israel Science Foundation|\bISF\b)` + g + `(\d{2,4}/\d{2})`),
		},
		Priority: 42,
		Category: types.CategoryAsia,
	},
	{
		ID:      "BSF",
		Name:    "United States-Israel Binational Science Foundation",
		Aliases: []string{"Binational Science Foundation", "BSF"},
		Patterns: []*regexp.Regexp{
			re(`(?:(?:United States|US|U\.S\.)[-–]Israel )?Binational Science Foundation` + g + `(\d{7})`),
		},
		Priority: 42,
		Category: types.CategoryAsia,
	},

	// --- International / rest of world ---
	{
		ID:      "ARC",
		Name:    "Australian Research Council",
		Aliases: []string{"Australian Research Council", "ARC"},
		Patterns: []*regexp.Regexp{
			re(`\b((?:DP|FT|FL|DE|CE|LE|LP)\d{9})\b`),
		},
		Priority: 48,
		Category: types.CategoryIntl,
	},
	{
		ID:      "NSERC",
		Name:    "Natural Sciences and Engineering Research Council of Canada",
		Aliases: []string{"Natural Sciences and Engineering Research Council", "NSERC"},
		Patterns: []*regexp.Regexp{
			re(`\b((?:RGPIN|SAPIN|RGPAS)-?\d{4}-?\d{4,6})\b`),
			re(`(?:Natural Sciences and Engineering Research Council(?: of Canada)?|\bNSERC\b)\b`),
		},
		Priority: 44,
		Category: types.CategoryIntl,
		NameOnly: true,
	},
	{
		ID:      "FAPESP",
		Name:    "São Paulo Research Foundation",
		Aliases: []string{"FAPESP", "São Paulo Research Foundation", "Fundação de Amparo à Pesquisa do Estado de São Paulo"},
		Patterns: []*regexp.Regexp{
			re(`(?:FAPESP|S[ãa]o Paulo Research Foundation|Funda[çc][ãa]o de Amparo [àa] Pesquisa do Estado de S[ãa]o Paulo)` + g + `(\d{4}/\d{4,5}-\d)`),
		},
		NextPattern: next(`\d{4}/\d{4,5}-\d`),
		Priority:    46,
		Category:    types.CategoryIntl,
	},
	{
		ID:      "CNPQ",
		Name:    "Brazilian National Council for Scientific and Technological Development",
		Aliases: []string{"CNPq", "Conselho Nacional de Desenvolvimento Científico e Tecnológico"},
		Patterns: []*regexp.Regexp{
			re(`(?:\bCNPq\b|Conselho Nacional de Desenvolvimento Cient[íi]fico e Tecnol[óo]gico)` + g + `(\d{6}/\d{4}-\d)`),
			re(`(?:\bCNPq\b|Conselho Nacional de Desenvolvimento Cient[íi]fico e Tecnol[óo]gico)\b`),
		},
		Priority: 42,
		Category: types.CategoryIntl,
		NameOnly: true,
	},
	{
		ID:      "CAPES",
		Name:    "Brazilian Coordination for the Improvement of Higher Education Personnel",
		Aliases: []string{"CAPES", "Coordenação de Aperfeiçoamento de Pessoal de Nível Superior"},
		Patterns: []*regexp.Regexp{
			re(`(?:\bCAPES\b|Coordena[çc][ãa]o de Aperfei[çc]oamento de Pessoal de N[íi]vel Superior)(?:[\s,-]{1,4}Finance Code\s*(\d{3}))?`),
		},
		Priority: 40,
		Category: types.CategoryIntl,
		NameOnly: true,
	},
	{
		ID:      "CONAHCYT",
		Name:    "Mexican National Council of Humanities, Sciences and Technologies",
		Aliases: []string{"CONACYT", "CONAHCYT", "Consejo Nacional de Ciencia y Tecnología"},
		Patterns: []*regexp.Regexp{
			re(`(?:CONA(?:H)?CYT|Consejo Nacional de (?:Humanidades, )?Ciencias? y Tecnolog[íi]as?)` + g + `([A-Z]?-?\d{5,6})`),
		},
		Priority: 40,
		Category: types.CategoryIntl,
	},
	{
		ID:      "ANID",
		Name:    "Chilean National Agency for Research and Development",
		Aliases: []string{"ANID", "FONDECYT", "Agencia Nacional de Investigación y Desarrollo"},
		Patterns: []*regexp.Regexp{
			re(`(?:\bANID\b|\bFONDECYT\b|Agencia Nacional de Investigaci[óo]n y Desarrollo)[^.;]{0,40}?(\d{7})`),
		},
		Priority: 44,
		Category: types.CategoryIntl,
	},
	{
		ID:      "RSF",
		Name:    "Russian Science Foundation",
		Aliases: []string{"Russian Science Foundation", "RSF"},
		Patterns: []*regexp.Regexp{
			re(`(?:Russian Science Foundation|\bRSF\b)` + g + `(\d{2}-\d{2}-\d{5})`),
		},
		Priority: 44,
		Category: types.CategoryIntl,
	},
	{
		ID:      "RFBR",
		Name:    "Russian Foundation for Basic Research",
		Aliases: []string{"Russian Foundation for Basic Research", "RFBR"},
		Patterns: []*regexp.Regexp{
			re(`(?:Russian Foundation for Basic Research|\bRFBR\b)` + g + `(\d{2}-\d{2}-\d{5})`),
		},
		Priority: 42,
		Category: types.CategoryIntl,
	},
	{
		ID:      "CERN",
		Name:    "European Organization for Nuclear Research",
		Aliases: []string{"CERN"},
		Patterns: []*regexp.Regexp{
			re(`\bCERN\b`),
		},
		Priority: 28,
		Category: types.CategoryIntl,
		NameOnly: true,
	},
	{
		ID:      "ICTP",
		Name:    "Abdus Salam International Centre for Theoretical Physics",
		Aliases: []string{"ICTP", "International Centre for Theoretical Physics"},
		Patterns: []*regexp.Regexp{
			re(`(?:Abdus Salam )?International Centre for Theoretical Physics|\bICTP\b`),
		},
		Priority: 26,
		Category: types.CategoryIntl,
		NameOnly: true,
	},
	{
		ID:      "COST",
		Name:    "European Cooperation in Science and Technology",
		Aliases: []string{"COST Action"},
		Patterns: []*regexp.Regexp{
			re(`COST Action` + g + `(CA\d{5})`),
		},
		Priority: 40,
		Category: types.CategoryIntl,
	},
	{
		ID:      "EU",
		Name:    "European Union",
		Aliases: []string{"European Union", "EU"},
		Patterns: []*regexp.Regexp{
			re(`European Union\b`),
		},
		Priority: 20,
		Category: types.CategoryIntl,
		NameOnly: true,
	},
}

// byID indexes the catalog for validator lookups and display.
var byID = func() map[string]*types.FunderPattern {
	m := make(map[string]*types.FunderPattern, len(funders))
	for i := range funders {
		m[funders[i].ID] = &funders[i]
	}
	return m
}()

// All returns the funder catalog in evaluation order. Callers must not
// mutate the returned slice.
func All() []types.FunderPattern {
	return funders
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (*types.FunderPattern, bool) {
	f, ok := byID[id]
	return f, ok
}

// Len reports the number of catalog entries.
func Len() int {
	return len(funders)
}
