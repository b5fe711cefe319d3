package profile

import (
	"regexp"
	"strconv"
	"strings"
)

// parseCategory runs the deterministic parser for one category. Both the
// pattern strategy and AI value validation go through here, so each
// category's type and range rules live in exactly one place.
func parseCategory(c Category, text string) (Answer, bool) {
	a := Answer{Category: c}
	switch c {
	case CategoryDestination:
		if d, ok := parseDestination(text); ok {
			a.Destination = &d
			return a, true
		}
	case CategoryBudget:
		if b, ok := parseBudget(text); ok {
			a.Budget = &b
			return a, true
		}
	case CategoryDuration:
		if d, ok := parseDuration(text); ok {
			a.Duration = &d
			return a, true
		}
	case CategoryStyle:
		if s, ok := parseStyle(text); ok {
			a.Style = &s
			return a, true
		}
	case CategoryGroup:
		if g, ok := parseGroup(text); ok {
			a.Group = &g
			return a, true
		}
	case CategorySeason:
		if s, ok := parseSeason(text); ok {
			a.Season = &s
			return a, true
		}
	}
	return a, false
}

// ---- budget ----

var (
	moneyBoundRe   = regexp.MustCompile(`\b(under|below|less than|at most|up to|max|maximum|over|above|more than|at least|min|minimum)\s*[$€£₹]?\s*(\d[\d,]*(?:\.\d+)?)\s*(k)?`)
	moneyBetweenRe = regexp.MustCompile(`between\s+[$€£₹]?(\d[\d,]*(?:\.\d+)?)\s*(k)?\s+and\s+[$€£₹]?(\d[\d,]*(?:\.\d+)?)\s*(k)?`)
	moneyPlusRe    = regexp.MustCompile(`[$€£₹]?(\d[\d,]*(?:\.\d+)?)\s*(k)?\s*\+`)
	moneyAmountRe  = regexp.MustCompile(`[$€£₹]\s*(\d[\d,]*(?:\.\d+)?)\s*(k)?|(\d[\d,]*(?:\.\d+)?)\s*(k)?\s*(?:dollars?|bucks?|usd|euros?|eur|pounds?|gbp|rupees?|inr)`)
	bareRangeRe    = regexp.MustCompile(`^[$€£₹]?\s*(\d[\d,]*(?:\.\d+)?)\s*(k)?\s*(?:-|–|to|and)\s*[$€£₹]?\s*(\d[\d,]*(?:\.\d+)?)\s*(k)?$`)
	bareAmountRe   = regexp.MustCompile(`^[$€£₹]?\s*(\d[\d,]*(?:\.\d+)?)\s*(k)?$`)
	budgetCueRe    = regexp.MustCompile(`(?:budget|spend|spending|cost|price)\D{0,16}?(\d[\d,]*(?:\.\d+)?)\s*(k)?`)

	tierCheapRe    = regexp.MustCompile(`\b(cheap|affordable|backpacker|shoestring)\b`)
	tierModerateRe = regexp.MustCompile(`\b(moderate|mid-?range|average|reasonable)\b`)
	tierLuxuryRe   = regexp.MustCompile(`\b(luxury|luxurious|premium|high-?end|expensive)\b`)

	// keeps "under 5 days" or "3+ people" out of the budget
	notMoneyUnitRe = regexp.MustCompile(`^\s*(days?|nights?|weeks?|months?|people|persons?|travell?ers?|adults?|guests?)\b`)
)

func parseBudget(text string) (Budget, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))

	// Bound phrases first so "under $1000" does not read as flat 1000.
	for _, idx := range moneyBoundRe.FindAllStringSubmatchIndex(lower, -1) {
		if notMoneyUnitRe.MatchString(lower[idx[1]:]) {
			continue
		}
		word := lower[idx[2]:idx[3]]
		n := moneyValue(lower[idx[4]:idx[5]], submatch(lower, idx, 3))
		if n <= 0 {
			continue
		}
		switch word {
		case "under", "below", "less than", "at most", "up to", "max", "maximum":
			return Budget{Min: 0, Max: n}, true
		default:
			// over, above, more than, at least, min, minimum
			return Budget{Min: n, Max: 2 * n}, true
		}
	}

	for _, idx := range moneyBetweenRe.FindAllStringSubmatchIndex(lower, -1) {
		if notMoneyUnitRe.MatchString(lower[idx[1]:]) {
			continue
		}
		lo := moneyValue(lower[idx[2]:idx[3]], submatch(lower, idx, 2))
		hi := moneyValue(lower[idx[6]:idx[7]], submatch(lower, idx, 4))
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi > 0 {
			return Budget{Min: lo, Max: hi}, true
		}
	}

	for _, idx := range moneyPlusRe.FindAllStringSubmatchIndex(lower, -1) {
		if notMoneyUnitRe.MatchString(lower[idx[1]:]) {
			continue
		}
		n := moneyValue(lower[idx[2]:idx[3]], submatch(lower, idx, 2))
		if n > 0 {
			return Budget{Min: n, Max: 2 * n}, true
		}
	}

	// Explicitly marked amounts anywhere in the sentence. Two or more
	// marked amounts make a range.
	var amounts []float64
	for _, m := range moneyAmountRe.FindAllStringSubmatch(lower, -1) {
		var n float64
		if m[1] != "" {
			n = moneyValue(m[1], m[2])
		} else {
			n = moneyValue(m[3], m[4])
		}
		if n > 0 {
			amounts = append(amounts, n)
		}
	}
	if len(amounts) >= 2 {
		lo, hi := amounts[0], amounts[0]
		for _, n := range amounts[1:] {
			if n < lo {
				lo = n
			}
			if n > hi {
				hi = n
			}
		}
		return Budget{Min: lo, Max: hi}, true
	}
	if len(amounts) == 1 {
		return Budget{Min: amounts[0], Max: amounts[0]}, true
	}

	// The whole answer is just a number or a range.
	if m := bareRangeRe.FindStringSubmatch(lower); m != nil {
		lo, hi := moneyValue(m[1], m[2]), moneyValue(m[3], m[4])
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi > 0 {
			return Budget{Min: lo, Max: hi}, true
		}
	}
	if m := bareAmountRe.FindStringSubmatch(lower); m != nil {
		if n := moneyValue(m[1], m[2]); n > 0 {
			return Budget{Min: n, Max: n}, true
		}
	}

	// Tier words map to the catalog's price bands.
	switch {
	case tierCheapRe.MatchString(lower):
		return Budget{Min: 300, Max: 900}, true
	case tierModerateRe.MatchString(lower):
		return Budget{Min: 800, Max: 2000}, true
	case tierLuxuryRe.MatchString(lower):
		return Budget{Min: 2500, Max: 8000}, true
	}

	// "my budget is 1500" with no currency marker.
	for _, idx := range budgetCueRe.FindAllStringSubmatchIndex(lower, -1) {
		if notMoneyUnitRe.MatchString(lower[idx[1]:]) {
			continue
		}
		if n := moneyValue(lower[idx[2]:idx[3]], submatch(lower, idx, 2)); n > 0 {
			return Budget{Min: n, Max: n}, true
		}
	}

	return Budget{}, false
}

// submatch extracts an optional capture by group number, "" when absent.
func submatch(s string, idx []int, n int) string {
	if idx[2*n] < 0 {
		return ""
	}
	return s[idx[2*n] : idx[2*n+1]]
}

func moneyValue(num, k string) float64 {
	num = strings.ReplaceAll(num, ",", "")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if k != "" {
		n *= 1000
	}
	return n
}

// ---- duration ----

var (
	durationRe     = regexp.MustCompile(`(\d+)\s*(days?|nights?|weeks?|months?)`)
	durationWordRe = regexp.MustCompile(`\b(a|an|one|two|three|four|five|six|seven|eight|nine|ten)\s+(day|night|week|month)s?\b`)
	bareIntRe      = regexp.MustCompile(`^(\d+)$`)

	numberWords = map[string]int{
		"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	}
)

func parseDuration(text string) (Duration, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))

	if m := durationRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return durationDays(n, m[2])
	}
	if m := durationWordRe.FindStringSubmatch(lower); m != nil {
		return durationDays(numberWords[m[1]], m[2])
	}
	if strings.Contains(lower, "fortnight") {
		return Duration{Days: 14}, true
	}
	if strings.Contains(lower, "weekend") {
		return Duration{Days: 3}, true
	}
	if m := bareIntRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return durationDays(n, "days")
	}
	return Duration{}, false
}

func durationDays(n int, unit string) (Duration, bool) {
	switch {
	case strings.HasPrefix(unit, "week"):
		n *= 7
	case strings.HasPrefix(unit, "month"):
		n *= 30
	}
	if n < 1 {
		return Duration{}, false
	}
	if n > 365 {
		n = 365
	}
	return Duration{Days: n}, true
}

// ---- style ----

var styleKeywords = []struct {
	word  string
	style Style
}{
	{"romantic", StyleRomantic}, {"romance", StyleRomantic},
	{"honeymoon", StyleRomantic}, {"anniversary", StyleRomantic},
	{"adventure", StyleAdventure}, {"adventurous", StyleAdventure},
	{"trekking", StyleAdventure}, {"hiking", StyleAdventure},
	{"safari", StyleAdventure}, {"outdoor", StyleAdventure},
	{"relaxation", StyleRelaxation}, {"relaxing", StyleRelaxation},
	{"relax", StyleRelaxation}, {"spa", StyleRelaxation},
	{"wellness", StyleRelaxation}, {"unwind", StyleRelaxation},
	{"beach", StyleRelaxation},
	{"cultural", StyleCultural}, {"culture", StyleCultural},
	{"historical", StyleCultural}, {"history", StyleCultural},
	{"museums", StyleCultural}, {"museum", StyleCultural},
	{"heritage", StyleCultural}, {"sightseeing", StyleCultural},
	{"family", StyleFamily}, {"kids", StyleFamily}, {"children", StyleFamily},
	{"budget", StyleBudget}, {"cheap", StyleBudget},
	{"backpacking", StyleBudget}, {"backpacker", StyleBudget},
	{"affordable", StyleBudget},
	{"luxury", StyleLuxury}, {"luxurious", StyleLuxury},
	{"premium", StyleLuxury}, {"five-star", StyleLuxury}, {"high-end", StyleLuxury},
}

var (
	styleIndex = func() map[string]Style {
		idx := make(map[string]Style, len(styleKeywords))
		for _, kw := range styleKeywords {
			idx[kw.word] = kw.style
		}
		return idx
	}()

	styleRe = func() *regexp.Regexp {
		words := make([]string, len(styleKeywords))
		for i, kw := range styleKeywords {
			words[i] = kw.word
		}
		return regexp.MustCompile(`\b(` + strings.Join(words, "|") + `)\b`)
	}()
)

func parseStyle(text string) (StyleChoice, bool) {
	lower := strings.ToLower(text)
	// Earliest keyword in the text wins.
	m := styleRe.FindString(lower)
	if m == "" {
		return StyleChoice{}, false
	}
	return StyleChoice{Value: styleIndex[m]}, true
}

// ---- group ----

var (
	groupOfRe   = regexp.MustCompile(`(party|group|family)\s+of\s+(\d+)`)
	groupNumRe  = regexp.MustCompile(`(\d+)\s*(?:people|persons?|travell?ers?|adults?|guests?|kids?|children|friends?|pax|of us)`)
	groupWordRe = regexp.MustCompile(`\b(solo|alone|myself|couple|partner|wife|husband|honeymoon|family|kids|children|friends|group)\b`)
)

func parseGroup(text string) (Group, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))

	comp := ""
	if m := groupWordRe.FindString(lower); m != "" {
		switch m {
		case "solo", "alone", "myself":
			comp = CompSolo
		case "couple", "partner", "wife", "husband", "honeymoon":
			comp = CompCouple
		case "family", "kids", "children":
			comp = CompFamily
		case "friends", "group":
			comp = CompGroup
		}
	}

	size := 0
	if m := groupOfRe.FindStringSubmatch(lower); m != nil {
		size, _ = strconv.Atoi(m[2])
		if comp == "" && m[1] == "family" {
			comp = CompFamily
		}
	} else if ms := groupNumRe.FindAllStringSubmatch(lower, -1); ms != nil {
		// "2 adults and 2 kids" counts the whole party
		for _, m := range ms {
			n, _ := strconv.Atoi(m[1])
			size += n
		}
	} else if m := bareIntRe.FindStringSubmatch(lower); m != nil {
		size, _ = strconv.Atoi(m[1])
	}

	if size == 0 {
		switch comp {
		case CompSolo:
			size = 1
		case CompCouple:
			size = 2
		case CompFamily:
			size = 4
		case CompGroup:
			size = 6
		default:
			return Group{}, false
		}
	}
	if size < 1 {
		return Group{}, false
	}
	if size > 20 {
		size = 20
	}

	if comp == "" {
		switch {
		case size == 1:
			comp = CompSolo
		case size == 2:
			comp = CompCouple
		default:
			comp = CompGroup
		}
	}
	return Group{Size: size, Comp: comp}, true
}

// ---- destination ----

var (
	destCueRe = regexp.MustCompile(`\b(?:go(?:ing)? to|travel(?:ing|ling)? to|fly(?:ing)? to|trip to|visit(?:ing)?|vacation in|holiday in|to|in)\s+([a-z][a-z\s,'-]+?)(?:\s+(?:for|in|on|with|next|this|during|around|sometime)\b|[.!?,]|$)`)
	destCapRe = regexp.MustCompile(`\b(?:to|in)\s+([A-Z][a-zA-Z]+(?:[\s,]+[A-Z][a-zA-Z]+)*)`)
	destVerbatimRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z\s,.'-]*$`)
)

// nonPlaceWords filters obvious non-destination captures out of the loose
// "to X" and "in X" patterns.
var nonPlaceWords = func() map[string]bool {
	words := map[string]bool{
		"go": true, "see": true, "stay": true, "travel": true, "relax": true,
		"eat": true, "enjoy": true, "try": true, "explore": true, "experience": true,
		"visit": true, "do": true, "be": true, "have": true, "get": true,
		"take": true, "spend": true, "meet": true, "learn": true,
		"somewhere": true, "anywhere": true, "wherever": true, "warm": true,
		"cold": true, "sunny": true, "nice": true, "next": true, "this": true,
		"early": true, "late": true, "general": true, "particular": true,
		"mind": true, "no": true, "not": true, "sure": true, "idea": true,
		"yet": true, "know": true, "maybe": true, "whatever": true,
		"anything": true, "flexible": true, "open": true, "yes": true,
		"i": true, "we": true, "me": true, "you": true, "my": true, "our": true,
		"summer": true, "winter": true, "spring": true, "fall": true, "autumn": true,
		"january": true, "february": true, "march": true, "april": true,
		"may": true, "june": true, "july": true, "august": true,
		"september": true, "october": true, "november": true, "december": true,
		"days": true, "day": true, "nights": true, "night": true,
		"weeks": true, "week": true, "months": true, "month": true,
		"weekend": true, "people": true, "person": true, "group": true,
		"couple": true, "solo": true, "moderate": true, "expensive": true,
	}
	for _, kw := range styleKeywords {
		words[kw.word] = true
	}
	return words
}()

func parseDestination(text string) (Destination, bool) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	// Capitalized places after "to"/"in" keep their original casing.
	for _, m := range destCapRe.FindAllStringSubmatch(trimmed, -1) {
		if place, ok := cleanPlace(m[1]); ok {
			return Destination{Region: place}, true
		}
	}

	for _, m := range destCueRe.FindAllStringSubmatch(lower, -1) {
		if place, ok := cleanPlace(m[1]); ok {
			return Destination{Region: titleWords(place)}, true
		}
	}

	// A short bare answer like "Bali" or "the south of France".
	if destVerbatimRe.MatchString(trimmed) {
		if place, ok := cleanPlace(trimmed); ok {
			return Destination{Region: titleWords(place)}, true
		}
	}

	return Destination{}, false
}

func cleanPlace(s string) (string, bool) {
	s = strings.Trim(strings.TrimSpace(s), ".,")
	s = strings.Join(strings.Fields(s), " ")
	if len(s) < 2 {
		return "", false
	}
	words := strings.Fields(strings.ToLower(s))
	if len(words) > 5 {
		return "", false
	}
	for _, w := range words {
		if nonPlaceWords[strings.Trim(w, ",")] {
			return "", false
		}
	}
	return s, true
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		// keep connective words lowercase: "south of france"
		if w == "of" || w == "the" || w == "de" || w == "da" {
			if i > 0 {
				continue
			}
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ---- season ----

var (
	seasonWordRe = regexp.MustCompile(`\b(summer|winter|spring|fall|autumn|monsoon|christmas|new year|easter|year[-\s]?round|anytime|any time)\b`)
	monthCueRe   = regexp.MustCompile(`\b(?:in|during|around|for|next|this|early|late|mid)[\s-]+(january|february|march|april|may|june|july|august|september|october|november|december)\b`)
	bareMonthRe  = regexp.MustCompile(`^(january|february|march|april|may|june|july|august|september|october|november|december)$`)

	monthSeason = map[string]string{
		"december": "winter", "january": "winter", "february": "winter",
		"march": "spring", "april": "spring", "may": "spring",
		"june": "summer", "july": "summer", "august": "summer",
		"september": "fall", "october": "fall", "november": "fall",
	}
)

func parseSeason(text string) (Season, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))

	if m := seasonWordRe.FindString(lower); m != "" {
		switch m {
		case "autumn":
			return Season{Name: "fall"}, true
		case "christmas", "new year":
			return Season{Name: "winter"}, true
		case "easter":
			return Season{Name: "spring"}, true
		case "anytime", "any time", "yearround", "year-round", "year round":
			return Season{Name: "year-round"}, true
		default:
			return Season{Name: m}, true
		}
	}
	if m := monthCueRe.FindStringSubmatch(lower); m != nil {
		return Season{Name: monthSeason[m[1]]}, true
	}
	if m := bareMonthRe.FindStringSubmatch(lower); m != nil {
		return Season{Name: monthSeason[m[1]]}, true
	}
	return Season{}, false
}
