package match

import "strings"

// regionTable maps places to the coarse region used for partial
// destination credit. Multi-word entries come before the single words
// they contain, so "south america" never reads as "america".
var regionTable = []struct {
	place  string
	region string
}{
	{"south america", "south america"},
	{"latin america", "south america"},
	{"central america", "north america"},
	{"north america", "north america"},
	{"middle east", "middle east"},
	{"southeast asia", "asia"},
	{"south asia", "asia"},
	{"east asia", "asia"},
	{"south africa", "africa"},
	{"new zealand", "oceania"},
	{"united states", "north america"},
	{"united kingdom", "europe"},
	{"czech republic", "europe"},
	{"hong kong", "asia"},
	{"sri lanka", "asia"},
	{"new york", "north america"},

	{"europe", "europe"},
	{"scandinavia", "europe"},
	{"mediterranean", "europe"},
	{"france", "europe"}, {"paris", "europe"},
	{"uk", "europe"}, {"england", "europe"}, {"britain", "europe"}, {"london", "europe"},
	{"italy", "europe"}, {"rome", "europe"}, {"venice", "europe"}, {"florence", "europe"},
	{"spain", "europe"}, {"barcelona", "europe"}, {"madrid", "europe"},
	{"portugal", "europe"}, {"lisbon", "europe"},
	{"netherlands", "europe"}, {"amsterdam", "europe"},
	{"germany", "europe"}, {"berlin", "europe"}, {"munich", "europe"},
	{"austria", "europe"}, {"vienna", "europe"},
	{"switzerland", "europe"}, {"zurich", "europe"}, {"geneva", "europe"},
	{"czech", "europe"}, {"prague", "europe"},
	{"denmark", "europe"}, {"copenhagen", "europe"},
	{"sweden", "europe"}, {"stockholm", "europe"},
	{"norway", "europe"}, {"oslo", "europe"},
	{"finland", "europe"}, {"helsinki", "europe"},
	{"iceland", "europe"}, {"ireland", "europe"}, {"dublin", "europe"},
	{"greece", "europe"}, {"athens", "europe"}, {"santorini", "europe"},
	{"croatia", "europe"}, {"poland", "europe"},
	{"hungary", "europe"}, {"budapest", "europe"},
	{"turkey", "europe"}, {"istanbul", "europe"},

	{"asia", "asia"},
	{"japan", "asia"}, {"tokyo", "asia"}, {"kyoto", "asia"}, {"osaka", "asia"},
	{"thailand", "asia"}, {"bangkok", "asia"}, {"phuket", "asia"},
	{"singapore", "asia"},
	{"china", "asia"}, {"beijing", "asia"}, {"shanghai", "asia"},
	{"india", "asia"}, {"mumbai", "asia"}, {"delhi", "asia"}, {"goa", "asia"},
	{"vietnam", "asia"}, {"hanoi", "asia"},
	{"indonesia", "asia"}, {"bali", "asia"},
	{"malaysia", "asia"}, {"korea", "asia"}, {"seoul", "asia"},
	{"philippines", "asia"}, {"taiwan", "asia"}, {"nepal", "asia"},
	{"maldives", "asia"},

	{"africa", "africa"},
	{"egypt", "africa"}, {"cairo", "africa"},
	{"morocco", "africa"}, {"marrakech", "africa"},
	{"kenya", "africa"}, {"tanzania", "africa"}, {"cape town", "africa"},

	{"oceania", "oceania"},
	{"australia", "oceania"}, {"sydney", "oceania"}, {"melbourne", "oceania"},
	{"fiji", "oceania"},

	{"america", "north america"},
	{"usa", "north america"}, {"states", "north america"},
	{"canada", "north america"}, {"toronto", "north america"}, {"vancouver", "north america"},
	{"mexico", "north america"}, {"cancun", "north america"},
	{"hawaii", "north america"},

	{"brazil", "south america"}, {"rio", "south america"},
	{"argentina", "south america"}, {"peru", "south america"},
	{"chile", "south america"}, {"colombia", "south america"},

	{"uae", "middle east"}, {"dubai", "middle east"}, {"abu dhabi", "middle east"},
	{"qatar", "middle east"}, {"doha", "middle east"},
	{"jordan", "middle east"}, {"israel", "middle east"},
}

// regionOf resolves a free-text place to its region, "" when unknown.
// Matching is word-aligned so "jerusalem" never hits "usa".
func regionOf(s string) string {
	norm := normalizePlace(s)
	if norm == "" {
		return ""
	}
	padded := " " + norm + " "
	for _, e := range regionTable {
		if strings.Contains(padded, " "+e.place+" ") {
			return e.region
		}
	}
	return ""
}

func normalizePlace(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if r == ',' || r == '.' || r == '-' || r == '/' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
