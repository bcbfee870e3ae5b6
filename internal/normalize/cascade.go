package normalize

import (
	"regexp"
	"strings"
)

// The cascade is an ordered rule table: the first rule whose apply
// returns ok wins. Order is load-bearing — exact phrases run before
// AP-qualified keywords, AP rules before scoped subject rules, and
// multi-word patterns before the generic ones they would otherwise be
// swallowed by.
type rule struct {
	name  string
	apply func(in input) (string, bool)
}

type input struct {
	lower string
	hasAP bool
}

var (
	reCalcBC     = regexp.MustCompile(`calc.*bc|bc.*calc`)
	reCalcAB     = regexp.MustCompile(`calc.*ab|ab.*calc`)
	reMech       = regexp.MustCompile(`mech|mechanics`)
	reEandM      = regexp.MustCompile(`e\s*&\s*m|electricity|magnetism`)
	reEng        = regexp.MustCompile(`eng|english`)
	reLang       = regexp.MustCompile(`lang|language`)
	reLit        = regexp.MustCompile(`lit|literature`)
	reUS         = regexp.MustCompile(`us|u\.?\s*s\.?|united states`)
	reGov        = regexp.MustCompile(`government|gov`)
	rePsych      = regexp.MustCompile(`psych|psychology`)
	reGeo        = regexp.MustCompile(`geo|geography`)
	reCSP        = regexp.MustCompile(`csp|cs\s*p`)
	reCSA        = regexp.MustCompile(`csa|cs\s*a`)
	reAmerican   = regexp.MustCompile(`american|am\s`)
	reLitWriting = regexp.MustCompile(`lit.*writ|writ.*lit|lit\s*/\s*writ|lit\s*&\s*writ`)
	reEnglish9   = regexp.MustCompile(`^english\s*9|^eng\s*9`)
	reEnglish10  = regexp.MustCompile(`^english\s*10|^eng\s*10`)
	reEnglish11  = regexp.MustCompile(`^english\s*11|^eng\s*11`)
	reEnglish12  = regexp.MustCompile(`^english\s*12|^eng\s*12`)
	rePreCalc    = regexp.MustCompile(`pre.*calc|precalc`)
	reHonors     = regexp.MustCompile(`honors|h\b`)
	reMultiVar   = regexp.MustCompile(`multi.*variable|multivariable`)
	reLinearAlg  = regexp.MustCompile(`linear.*alg|dual.*linear`)
	reDiffEq     = regexp.MustCompile(`diff.*eq|differential.*eq`)
	reUSHist     = regexp.MustCompile(`us|u\.s\.|united states`)
	rePE         = regexp.MustCompile(`pe|physical.*education`)
	reRacquet    = regexp.MustCompile(`racquet|racket`)
	reWeights    = regexp.MustCompile(`weight.*training|weights`)
	reFitness    = regexp.MustCompile(`total.*fitness`)
	reBasketball = regexp.MustCompile(`^basketball$|^bball$|^bb$`)
	reVolleyball = regexp.MustCompile(`^volleyball$|^vball$|^vb$`)
	reXC         = regexp.MustCompile(`cross.*country|^xc$|^cc$`)
	reSwim       = regexp.MustCompile(`^swimming$|^swim$`)
	reSpanish    = [4]*regexp.Regexp{
		regexp.MustCompile(`spanish\s*1|spanish\s*i\b`),
		regexp.MustCompile(`spanish\s*2|spanish\s*ii`),
		regexp.MustCompile(`spanish\s*3|spanish\s*iii`),
		regexp.MustCompile(`spanish\s*4|spanish\s*iv|spanish.*honors`),
	}
	reFrench = [4]*regexp.Regexp{
		regexp.MustCompile(`french\s*1|french\s*i\b`),
		regexp.MustCompile(`french\s*2|french\s*ii`),
		regexp.MustCompile(`french\s*3|french\s*iii`),
		regexp.MustCompile(`french\s*4|french\s*iv`),
	}
	reMandarin = [4]*regexp.Regexp{
		regexp.MustCompile(`(?:mandarin|chinese)\s*1|(?:mandarin|chinese)\s*i\b`),
		regexp.MustCompile(`(?:mandarin|chinese)\s*2|(?:mandarin|chinese)\s*ii`),
		regexp.MustCompile(`(?:mandarin|chinese)\s*3|(?:mandarin|chinese)\s*iii`),
		regexp.MustCompile(`(?:mandarin|chinese)\s*4|(?:mandarin|chinese)\s*iv`),
	}
	reJapanese = [4]*regexp.Regexp{
		regexp.MustCompile(`japanese\s*1|japanese\s*i\b`),
		regexp.MustCompile(`japanese\s*2|japanese\s*ii`),
		regexp.MustCompile(`japanese\s*3|japanese\s*iii`),
		regexp.MustCompile(`japanese\s*4|japanese\s*iv`),
	}
	reChoir      = regexp.MustCompile(`choir|chorus`)
	reStagecraft = regexp.MustCompile(`stagecraft|tech.*theatre`)
)

var exactPhrases = map[string]string{
	"pe 9":         "PE 9",
	"pe9":          "PE 9",
	"pe ninth":     "PE 9",
	"pe 10":        "PE 10",
	"pe10":         "PE 10",
	"pe tenth":     "PE 10",
	"pe inclusion": "PE Inclusion",
	"pe inc":       "PE Inclusion",
	"inclusion pe": "PE Inclusion",
	"pe incl":      "PE Inclusion",
	"la":           "Literature & Writing",
	"l.a.":         "Literature & Writing",
	"l a":          "Literature & Writing",
	"lit":          "Literature & Writing",
	"stem":         "STEM",
	"stern":        "STEM",
}

var rules = []rule{
	// Exact-phrase shortcuts outrank every keyword rule: a 2-letter
	// token like "la" would otherwise be misrouted by substring checks.
	{"exact-phrase", func(in input) (string, bool) {
		out, ok := exactPhrases[in.lower]
		return out, ok
	}},

	// AP courses. Sub-rules run math -> science -> english -> social
	// studies -> languages -> computer science -> art; "physics" alone
	// would match several AP variants, so the first match wins.
	{"ap-math", func(in input) (string, bool) {
		if !in.hasAP {
			return "", false
		}
		switch {
		case reCalcBC.MatchString(in.lower):
			return "AP Calculus BC", true
		case reCalcAB.MatchString(in.lower):
			return "AP Calculus AB", true
		case strings.Contains(in.lower, "statistics") || strings.Contains(in.lower, "stats"):
			return "AP Statistics", true
		}
		return "", false
	}},
	{"ap-science", func(in input) (string, bool) {
		if !in.hasAP {
			return "", false
		}
		if strings.Contains(in.lower, "physics") || strings.Contains(in.lower, "phys") {
			switch {
			case reMech.MatchString(in.lower):
				return "AP Physics C: Mechanics", true
			case reEandM.MatchString(in.lower):
				return "AP Physics C: Electricity & Magnetism", true
			case strings.Contains(in.lower, "c"):
				// bare "AP Physics C" defaults to Mechanics
				return "AP Physics C: Mechanics", true
			case strings.Contains(in.lower, "1"):
				return "AP Physics 1", true
			case strings.Contains(in.lower, "2"):
				return "AP Physics 2", true
			}
			return "AP Physics 1", true
		}
		switch {
		case strings.Contains(in.lower, "biology") || strings.Contains(in.lower, "bio"):
			return "AP Biology", true
		case strings.Contains(in.lower, "chemistry") || strings.Contains(in.lower, "chem"):
			return "AP Chemistry", true
		case strings.Contains(in.lower, "environmental"):
			return "AP Environmental Science", true
		}
		return "", false
	}},
	{"ap-english", func(in input) (string, bool) {
		if !in.hasAP || !reEng.MatchString(in.lower) {
			return "", false
		}
		if reLang.MatchString(in.lower) {
			return "AP English Language & Composition", true
		}
		if reLit.MatchString(in.lower) {
			return "AP English Literature & Composition", true
		}
		return "", false
	}},
	{"ap-social", func(in input) (string, bool) {
		if !in.hasAP {
			return "", false
		}
		switch {
		case reUS.MatchString(in.lower) && strings.Contains(in.lower, "history"):
			return "AP US History", true
		case strings.Contains(in.lower, "world") && strings.Contains(in.lower, "history"):
			return "AP World History", true
		case reGov.MatchString(in.lower):
			return "AP US Government & Politics", true
		case strings.Contains(in.lower, "macro"):
			return "AP Macroeconomics", true
		case strings.Contains(in.lower, "micro"):
			return "AP Microeconomics", true
		case rePsych.MatchString(in.lower):
			return "AP Psychology", true
		case strings.Contains(in.lower, "human") && reGeo.MatchString(in.lower):
			return "AP Human Geography", true
		}
		return "", false
	}},
	{"ap-language", func(in input) (string, bool) {
		if !in.hasAP {
			return "", false
		}
		switch {
		case strings.Contains(in.lower, "spanish"):
			return "AP Spanish Language & Culture", true
		case strings.Contains(in.lower, "french"):
			return "AP French Language & Culture", true
		case strings.Contains(in.lower, "chinese") || strings.Contains(in.lower, "mandarin"):
			return "AP Chinese Language & Culture", true
		}
		return "", false
	}},
	{"ap-compsci", func(in input) (string, bool) {
		if !in.hasAP {
			return "", false
		}
		if strings.Contains(in.lower, "comp") || strings.Contains(in.lower, "computer") {
			if strings.Contains(in.lower, "principles") || reCSP.MatchString(in.lower) {
				return "AP Computer Science Principles", true
			}
			if strings.Contains(in.lower, "a") || reCSA.MatchString(in.lower) {
				return "AP Computer Science A", true
			}
		}
		return "", false
	}},
	{"ap-art", func(in input) (string, bool) {
		if !in.hasAP {
			return "", false
		}
		if strings.Contains(in.lower, "art") || strings.Contains(in.lower, "studio") {
			return "AP Studio Art", true
		}
		if strings.Contains(in.lower, "music") && strings.Contains(in.lower, "theory") {
			return "AP Music Theory", true
		}
		return "", false
	}},

	// "World" courses before the generic lit rules that would swallow
	// them.
	{"world", func(in input) (string, bool) {
		if !strings.Contains(in.lower, "world") {
			return "", false
		}
		if reLit.MatchString(in.lower) {
			return "World Literature & Writing", true
		}
		if strings.Contains(in.lower, "history") {
			return "World History", true
		}
		return "", false
	}},

	{"english", func(in input) (string, bool) {
		if reAmerican.MatchString(in.lower) && reLit.MatchString(in.lower) {
			return "American Literature & Writing", true
		}
		if reLitWriting.MatchString(in.lower) {
			return "Literature & Writing", true
		}
		if strings.Contains(in.lower, "story") && strings.Contains(in.lower, "style") {
			return "Story and Style", true
		}
		switch {
		case reEnglish9.MatchString(in.lower):
			return "Literature & Writing", true
		case reEnglish10.MatchString(in.lower):
			return "World Literature & Writing", true
		case reEnglish11.MatchString(in.lower):
			return "American Literature & Writing", true
		case reEnglish12.MatchString(in.lower):
			return "Story and Style", true
		}
		return "", false
	}},

	{"math", func(in input) (string, bool) {
		if rePreCalc.MatchString(in.lower) {
			if reHonors.MatchString(in.lower) {
				return "Pre-Calculus Honors", true
			}
			return "Pre-Calculus", true
		}
		// Non-AP calculus still maps to the AP course; the school offers
		// no other calculus sequence.
		if reCalcBC.MatchString(in.lower) {
			return "AP Calculus BC", true
		}
		if reCalcAB.MatchString(in.lower) {
			return "AP Calculus AB", true
		}
		if strings.Contains(in.lower, "algebra") {
			if strings.Contains(in.lower, "2") || strings.Contains(in.lower, "ii") {
				if strings.Contains(in.lower, "trig") {
					return "Algebra 2/Trigonometry", true
				}
				return "Algebra 2", true
			}
			if strings.Contains(in.lower, "1") || strings.Contains(in.lower, "i") {
				return "Algebra 1", true
			}
		}
		switch {
		case strings.Contains(in.lower, "geometry") || strings.Contains(in.lower, "geom"):
			return "Geometry", true
		case reMultiVar.MatchString(in.lower):
			return "Multivariable Calculus", true
		case reLinearAlg.MatchString(in.lower):
			return "Linear Algebra", true
		case reDiffEq.MatchString(in.lower):
			return "Differential Equations", true
		case strings.Contains(in.lower, "statistics") || strings.Contains(in.lower, "stats"):
			return "AP Statistics", true
		}
		return "", false
	}},

	{"science", func(in input) (string, bool) {
		if strings.Contains(in.lower, "biology") || in.lower == "bio" {
			if reHonors.MatchString(in.lower) {
				return "Biology Honors", true
			}
			return "Biology", true
		}
		if strings.Contains(in.lower, "chemistry") || strings.Contains(in.lower, "chem") {
			if reHonors.MatchString(in.lower) {
				return "Chemistry Honors", true
			}
			return "Chemistry", true
		}
		if strings.Contains(in.lower, "physics") || strings.Contains(in.lower, "phys") {
			if reHonors.MatchString(in.lower) {
				return "Physics Honors", true
			}
			return "Physics", true
		}
		if strings.Contains(in.lower, "physiology") || in.lower == "physio" {
			return "Physiology", true
		}
		if strings.Contains(in.lower, "science") && strings.Contains(in.lower, "society") {
			return "Science & Society", true
		}
		return "", false
	}},

	{"social", func(in input) (string, bool) {
		if reUSHist.MatchString(in.lower) && strings.Contains(in.lower, "history") {
			return "US History", true
		}
		if strings.Contains(in.lower, "world") && strings.Contains(in.lower, "history") {
			if reHonors.MatchString(in.lower) {
				return "World History Honors", true
			}
			return "World History", true
		}
		if reGov.MatchString(in.lower) {
			return "US Government", true
		}
		if strings.Contains(in.lower, "econ") {
			if strings.Contains(in.lower, "macro") {
				return "AP Macroeconomics", true
			}
			if strings.Contains(in.lower, "micro") {
				return "AP Microeconomics", true
			}
			return "Economics", true
		}
		if strings.Contains(in.lower, "ethnic") && strings.Contains(in.lower, "studies") {
			return "Introduction to Ethnic Studies", true
		}
		return "", false
	}},

	{"pe", func(in input) (string, bool) {
		// "Inclusion" alone is almost certainly PE Inclusion.
		if strings.Contains(in.lower, "inclusion") {
			return "PE Inclusion", true
		}
		if rePE.MatchString(in.lower) {
			if strings.Contains(in.lower, "9") {
				return "PE 9", true
			}
			if strings.Contains(in.lower, "10") {
				return "PE 10", true
			}
		}
		switch {
		case reRacquet.MatchString(in.lower):
			return "Racquet Sports", true
		case reWeights.MatchString(in.lower):
			return "Weight Training", true
		case reFitness.MatchString(in.lower) || in.lower == "fitness":
			return "Total Fitness", true
		case reBasketball.MatchString(in.lower):
			return "Basketball", true
		case reVolleyball.MatchString(in.lower):
			return "Volleyball", true
		case in.lower == "soccer":
			return "Soccer", true
		case strings.Contains(in.lower, "track"):
			return "Track & Field", true
		case reXC.MatchString(in.lower):
			return "Cross Country", true
		case reSwim.MatchString(in.lower):
			return "Swimming", true
		case in.lower == "wrestling":
			return "Wrestling", true
		case in.lower == "tennis":
			return "Tennis", true
		case in.lower == "softball":
			return "Softball", true
		case in.lower == "baseball":
			return "Baseball", true
		case in.lower == "football":
			return "Football", true
		}
		return "", false
	}},

	{"language", func(in input) (string, bool) {
		type seq struct {
			keyword string
			levels  [4]*regexp.Regexp
			names   [4]string
		}
		seqs := []seq{
			{"spanish", reSpanish, [4]string{"Spanish 1", "Spanish 2", "Spanish 3", "Spanish 4"}},
			{"french", reFrench, [4]string{"French 1", "French 2", "French 3", "French 4"}},
			{"mandarin", reMandarin, [4]string{"Mandarin 1", "Mandarin 2", "Mandarin 3", "Mandarin 4"}},
			{"chinese", reMandarin, [4]string{"Mandarin 1", "Mandarin 2", "Mandarin 3", "Mandarin 4"}},
			{"japanese", reJapanese, [4]string{"Japanese 1", "Japanese 2", "Japanese 3", "Japanese 4"}},
		}
		for _, s := range seqs {
			if !strings.Contains(in.lower, s.keyword) {
				continue
			}
			// High levels first: "spanish 3" contains "spanish" but a
			// level-1 pattern must not fire for it.
			for lvl := 3; lvl >= 0; lvl-- {
				if s.levels[lvl].MatchString(in.lower) {
					return s.names[lvl], true
				}
			}
		}
		return "", false
	}},

	{"arts", func(in input) (string, bool) {
		if strings.Contains(in.lower, "art") && !in.hasAP {
			if strings.Contains(in.lower, "2") || in.lower == "art ii" {
				return "Art 2", true
			}
			if strings.Contains(in.lower, "1") || in.lower == "art i" || in.lower == "art" {
				return "Art 1", true
			}
		}
		switch {
		case strings.Contains(in.lower, "photography") || in.lower == "photo":
			return "Photography", true
		case strings.Contains(in.lower, "drama") || strings.Contains(in.lower, "theatre") || strings.Contains(in.lower, "theater"):
			return "Drama", true
		case in.lower == "band":
			return "Band", true
		case in.lower == "orchestra":
			return "Orchestra", true
		case reChoir.MatchString(in.lower):
			return "Choir", true
		}
		return "", false
	}},

	{"applied", func(in input) (string, bool) {
		switch {
		case strings.Contains(in.lower, "journalism") || in.lower == "journ":
			return "Journalism", true
		case strings.Contains(in.lower, "yearbook"):
			return "Yearbook", true
		case reStagecraft.MatchString(in.lower):
			return "Stagecraft Tech", true
		case strings.Contains(in.lower, "java") || (strings.Contains(in.lower, "programming") && !in.hasAP):
			return "Computer Programming Java", true
		}
		return "", false
	}},

	{"health", func(in input) (string, bool) {
		if in.lower == "health" {
			return "Health", true
		}
		return "", false
	}},
}

// Normalize maps one raw OCR line to its most likely canonical course
// label. When no rule fires the cleaned input comes back unchanged.
func Normalize(raw string) string {
	cleaned := CleanOCR(raw)
	in := input{
		lower: strings.ToLower(strings.TrimSpace(cleaned)),
		hasAP: strings.Contains(strings.ToLower(cleaned), "ap"),
	}
	for _, r := range rules {
		if out, ok := r.apply(in); ok {
			return out
		}
	}
	return cleaned
}
