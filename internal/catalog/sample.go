package catalog

import "context"

// Sample returns the built-in starter catalog: twenty packages across
// twenty destinations, covering every travel style. Used to seed an empty
// store so first runs have something to recommend.
func Sample() []Package {
	return []Package{
		{ID: "PKG001", Name: "Romantic Getaway Paris", Destination: "Paris, France", PriceMin: 1800, PriceMax: 3200, DurationDays: 7, Rating: 4.9, Styles: StyleList{"romantic", "cultural"}, MinGuests: 2, MaxGuests: 2, BestSeason: "spring", Activities: "Cultural sites, Historical tours, Art galleries", Includes: "Accommodation, Transportation, Breakfast, City tours, Welcome dinner"},
		{ID: "PKG002", Name: "Modern Metropolis Tokyo", Destination: "Tokyo, Japan", PriceMin: 2000, PriceMax: 3500, DurationDays: 10, Rating: 4.7, Styles: StyleList{"cultural", "adventure"}, MinGuests: 1, MaxGuests: 6, BestSeason: "spring", Activities: "City tours, Museums, Local cuisine", Includes: "Accommodation, Transportation, Tour guide, Local SIM card"},
		{ID: "PKG003", Name: "Urban Discovery New York", Destination: "New York, USA", PriceMin: 1500, PriceMax: 2800, DurationDays: 5, Rating: 4.4, Styles: StyleList{"cultural"}, MinGuests: 1, MaxGuests: 8, BestSeason: "fall", Activities: "Shopping, Nightlife, Entertainment", Includes: "Accommodation, Transportation, City tours"},
		{ID: "PKG004", Name: "Historic Journey London", Destination: "London, UK", PriceMin: 1200, PriceMax: 2400, DurationDays: 7, Rating: 4.3, Styles: StyleList{"cultural", "family"}, MinGuests: 1, MaxGuests: 10, BestSeason: "summer", Activities: "Cultural sites, Historical tours, Art galleries", Includes: "Accommodation, Transportation, Breakfast, Tour guide"},
		{ID: "PKG005", Name: "Art & Culture Rome", Destination: "Rome, Italy", PriceMin: 1000, PriceMax: 2000, DurationDays: 7, Rating: 4.6, Styles: StyleList{"cultural", "romantic"}, MinGuests: 2, MaxGuests: 8, BestSeason: "spring", Activities: "Cultural sites, Historical tours, Art galleries", Includes: "Accommodation, Transportation, Breakfast, City tours"},
		{ID: "PKG006", Name: "Family Fun Barcelona", Destination: "Barcelona, Spain", PriceMin: 900, PriceMax: 1800, DurationDays: 7, Rating: 4.5, Styles: StyleList{"family", "relaxation"}, MinGuests: 2, MaxGuests: 8, BestSeason: "summer", Activities: "Family activities, Theme parks, Kid-friendly tours", Includes: "Accommodation, Transportation, All meals, Airport transfers"},
		{ID: "PKG007", Name: "City Explorer Amsterdam", Destination: "Amsterdam, Netherlands", PriceMin: 800, PriceMax: 1500, DurationDays: 3, Rating: 4.2, Styles: StyleList{"cultural", "budget"}, MinGuests: 1, MaxGuests: 6, BestSeason: "spring", Activities: "City tours, Museums, Local cuisine", Includes: "Accommodation, Breakfast, City tours"},
		{ID: "PKG008", Name: "Beach Paradise Sydney", Destination: "Sydney, Australia", PriceMin: 2200, PriceMax: 4000, DurationDays: 14, Rating: 4.6, Styles: StyleList{"relaxation", "adventure"}, MinGuests: 2, MaxGuests: 6, BestSeason: "summer", Activities: "Beach activities, Water sports, Relaxation", Includes: "Accommodation, Transportation, Breakfast, Travel insurance"},
		{ID: "PKG009", Name: "Luxury Escape Dubai", Destination: "Dubai, UAE", PriceMin: 3000, PriceMax: 6000, DurationDays: 5, Rating: 4.8, Styles: StyleList{"luxury", "relaxation"}, MinGuests: 2, MaxGuests: 4, BestSeason: "winter", Activities: "Shopping, Nightlife, Entertainment", Includes: "Accommodation, Transportation, All meals, Airport transfers, 24/7 support"},
		{ID: "PKG010", Name: "Budget Traveler Bangkok", Destination: "Bangkok, Thailand", PriceMin: 400, PriceMax: 800, DurationDays: 21, Rating: 4.1, Styles: StyleList{"budget", "adventure"}, MinGuests: 1, MaxGuests: 12, BestSeason: "winter", Activities: "Budget tours, Free walking tours, Local experiences", Includes: "Accommodation, Breakfast, WiFi"},
		{ID: "PKG011", Name: "Cultural Immersion Istanbul", Destination: "Istanbul, Turkey", PriceMin: 700, PriceMax: 1400, DurationDays: 7, Rating: 4.4, Styles: StyleList{"cultural"}, MinGuests: 1, MaxGuests: 10, BestSeason: "fall", Activities: "Cultural sites, Historical tours, Art galleries", Includes: "Accommodation, Transportation, Tour guide, Welcome dinner"},
		{ID: "PKG012", Name: "Backpacker Special Prague", Destination: "Prague, Czech Republic", PriceMin: 300, PriceMax: 700, DurationDays: 5, Rating: 3.8, Styles: StyleList{"budget"}, MinGuests: 1, MaxGuests: 8, BestSeason: "spring", Activities: "Budget tours, Free walking tours, Local experiences", Includes: "Accommodation, WiFi, City tours"},
		{ID: "PKG013", Name: "Romantic Getaway Vienna", Destination: "Vienna, Austria", PriceMin: 1400, PriceMax: 2600, DurationDays: 5, Rating: 4.5, Styles: StyleList{"romantic", "cultural"}, MinGuests: 2, MaxGuests: 2, BestSeason: "winter", Activities: "Cultural sites, Historical tours, Art galleries", Includes: "Accommodation, Transportation, Breakfast, Welcome dinner"},
		{ID: "PKG014", Name: "Urban Discovery Berlin", Destination: "Berlin, Germany", PriceMin: 700, PriceMax: 1400, DurationDays: 5, Rating: 4.1, Styles: StyleList{"cultural", "budget"}, MinGuests: 1, MaxGuests: 12, BestSeason: "summer", Activities: "City tours, Museums, Local cuisine", Includes: "Accommodation, Breakfast, City tours"},
		{ID: "PKG015", Name: "Wellness Retreat Copenhagen", Destination: "Copenhagen, Denmark", PriceMin: 1600, PriceMax: 2800, DurationDays: 7, Rating: 4.4, Styles: StyleList{"relaxation"}, MinGuests: 1, MaxGuests: 4, BestSeason: "summer", Activities: "Spa treatments, Yoga, Meditation", Includes: "Accommodation, Transportation, All meals, Travel kit"},
		{ID: "PKG016", Name: "Nature Explorer Stockholm", Destination: "Stockholm, Sweden", PriceMin: 1500, PriceMax: 2600, DurationDays: 10, Rating: 4.3, Styles: StyleList{"adventure", "relaxation"}, MinGuests: 2, MaxGuests: 8, BestSeason: "summer", Activities: "Hiking, Adventure sports, Nature walks", Includes: "Accommodation, Transportation, Breakfast, Tour guide"},
		{ID: "PKG017", Name: "Luxury Escape Zurich", Destination: "Zurich, Switzerland", PriceMin: 4000, PriceMax: 8000, DurationDays: 7, Rating: 4.7, Styles: StyleList{"luxury", "romantic"}, MinGuests: 2, MaxGuests: 4, BestSeason: "winter", Activities: "Photography tours, Scenic views, Local markets", Includes: "Accommodation, Transportation, All meals, Airport transfers, 24/7 support"},
		{ID: "PKG018", Name: "Modern Metropolis Singapore", Destination: "Singapore", PriceMin: 1800, PriceMax: 3200, DurationDays: 5, Rating: 4.6, Styles: StyleList{"cultural", "luxury"}, MinGuests: 1, MaxGuests: 6, BestSeason: "year-round", Activities: "Shopping, Nightlife, Entertainment", Includes: "Accommodation, Transportation, Breakfast, Local SIM card"},
		{ID: "PKG019", Name: "Culinary Tour Hong Kong", Destination: "Hong Kong", PriceMin: 1300, PriceMax: 2400, DurationDays: 5, Rating: 4.2, Styles: StyleList{"cultural", "family"}, MinGuests: 2, MaxGuests: 10, BestSeason: "fall", Activities: "City tours, Museums, Local cuisine", Includes: "Accommodation, Transportation, Breakfast, Tour guide"},
		{ID: "PKG020", Name: "Adventure Seeker Mumbai", Destination: "Mumbai, India", PriceMin: 600, PriceMax: 1200, DurationDays: 7, Rating: 3.6, Styles: StyleList{"adventure", "cultural"}, MinGuests: 1, MaxGuests: 10, BestSeason: "winter", Activities: "Photography tours, Scenic views, Local markets", Includes: "Accommodation, Transportation, Breakfast, Local SIM card"},
	}
}

// SeedIfEmpty loads the sample catalog into an empty store. Reports
// whether seeding happened.
func SeedIfEmpty(ctx context.Context, s *Store) (bool, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if _, err := s.PutAll(ctx, Sample()); err != nil {
		return false, err
	}
	return true, nil
}
