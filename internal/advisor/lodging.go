package advisor

import "github.com/tripagent/tripagent/internal/profile"

// LodgingSuggestions returns accommodation tips keyed off the budget
// tier, travel style, and trip length. Blank lines separate sections.
func LodgingSuggestions(p *profile.Profile) []string {
	var out []string

	switch tier(p) {
	case "budget":
		out = append(out,
			"Budget-friendly options:",
			"- hostels with private rooms or dorms",
			"- budget hotels and motels",
			"- shared or private rooms on home-rental sites",
			"- guesthouses and B&Bs",
		)
	case "luxury":
		out = append(out,
			"Luxury accommodations:",
			"- 5-star hotels and resorts",
			"- luxury villas and penthouses",
			"- boutique hotels with premium amenities",
			"- all-inclusive resorts",
		)
	default:
		out = append(out,
			"Mid-range options:",
			"- 3-4 star hotels with good amenities",
			"- well-reviewed entire-place rentals",
			"- business hotels with modern facilities",
			"- serviced apartments for longer stays",
		)
	}

	if lines := styleLodging(p.Style); len(lines) > 0 {
		out = append(out, "")
		out = append(out, lines...)
	}

	if p.Duration.Specified() && p.Duration.Days >= 7 {
		out = append(out,
			"",
			"Extended stay tips:",
			"- vacation rentals often have better weekly rates",
			"- look for kitchen facilities",
			"- extended-stay hotels with laundry services",
		)
	}

	return out
}

// tier reads the budget band from the numeric range, leaning on the
// style when the traveler asked for luxury outright.
func tier(p *profile.Profile) string {
	if p.Style.Specified() {
		switch p.Style.Value {
		case profile.StyleLuxury:
			return "luxury"
		case profile.StyleBudget:
			return "budget"
		}
	}
	if !p.Budget.Specified() {
		return "mid"
	}
	if p.Budget.Max <= 1000 {
		return "budget"
	}
	if p.Budget.Min >= 2500 {
		return "luxury"
	}
	return "mid"
}

func styleLodging(s profile.StyleChoice) []string {
	if !s.Specified() {
		return nil
	}
	switch s.Value {
	case profile.StyleAdventure:
		return []string{
			"Adventure-focused stays:",
			"- mountain lodges and cabins",
			"- eco-lodges near nature activities",
			"- camping and glamping sites",
			"- adventure hostels with gear rental",
		}
	case profile.StyleRelaxation:
		return []string{
			"Relaxation-oriented:",
			"- spa resorts and wellness retreats",
			"- beachfront hotels with pools",
			"- quiet countryside accommodations",
		}
	case profile.StyleCultural:
		return []string{
			"Cultural immersion:",
			"- hotels in historic districts",
			"- traditional guesthouses or ryokans",
			"- locally-owned boutique hotels near the landmarks",
		}
	case profile.StyleRomantic:
		return []string{
			"Romantic picks:",
			"- adults-only boutique hotels",
			"- rooms with a view and private balconies",
			"- countryside inns and chateaux",
		}
	case profile.StyleFamily:
		return []string{
			"Family-friendly stays:",
			"- apartment hotels with connecting rooms",
			"- resorts with kids clubs and pools",
			"- rentals with kitchens and laundry",
		}
	}
	return nil
}
