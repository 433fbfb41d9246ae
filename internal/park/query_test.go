package park

import (
	"math"
	"testing"
	"time"

	"backend-parkhub/internal/shared/geo"
)

func fixtureParks() []Park {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Park{
		{
			ID:   "park_001",
			Name: "Parque del Retiro",
			Location: Location{
				Address:     "Plaza de la Independencia 7",
				City:        "Madrid",
				Coordinates: geo.Coordinates{Lat: 40.4152, Lng: -3.6845},
			},
			Elements:  map[string]bool{"swings": true, "slides": true},
			Amenities: map[string]bool{"wheelchair_accessible": true, "benches": true},
			Policies:  map[string]bool{"dogs_allowed": true},
			Rating:    Rating{Average: 4.5, Count: 10},
			CreatedAt: base,
		},
		{
			ID:   "park_002",
			Name: "Campo Grande",
			Location: Location{
				Address:     "Paseo de Zorrilla",
				City:        "Valladolid",
				Coordinates: geo.Coordinates{Lat: 41.6444, Lng: -4.7332},
			},
			Elements:  map[string]bool{"swings": true, "slides": false},
			Amenities: map[string]bool{"benches": true},
			Policies:  map[string]bool{"dogs_allowed": false},
			Rating:    Rating{Average: 3.2, Count: 4},
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID:   "park_003",
			Name: "Ciutadella",
			Location: Location{
				Address:     "Passeig de Picasso 21",
				City:        "Barcelona",
				Coordinates: geo.Coordinates{Lat: 41.3884, Lng: 2.1867},
			},
			Elements:  map[string]bool{"swings": true},
			Amenities: map[string]bool{"wheelchair_accessible": true},
			Policies:  map[string]bool{"dogs_allowed": true},
			Rating:    Rating{Average: 4.9, Count: 25},
			CreatedAt: base.Add(24 * time.Hour),
		},
	}
}

func ids(parks []Park) []string {
	out := make([]string, len(parks))
	for i, p := range parks {
		out[i] = p.ID
	}
	return out
}

func TestQueryNoParams(t *testing.T) {
	res := Query(fixtureParks(), QueryParams{})
	if res.Total != 3 || len(res.Parks) != 3 {
		t.Fatalf("expected all parks, got %+v", res)
	}
	if res.Page != 1 || res.Limit != 50 {
		t.Fatalf("expected defaults, got page=%d limit=%d", res.Page, res.Limit)
	}
}

func TestQueryElementsRequireEveryKeyTrue(t *testing.T) {
	res := Query(fixtureParks(), QueryParams{Elements: []string{"swings", "slides"}})
	// park_002 has slides:false, park_003 is missing slides entirely
	if res.Total != 1 || res.Parks[0].ID != "park_001" {
		t.Fatalf("expected only park_001, got %v", ids(res.Parks))
	}
}

func TestQueryAmenitiesFilter(t *testing.T) {
	res := Query(fixtureParks(), QueryParams{Amenities: []string{"wheelchair_accessible"}})
	if res.Total != 2 {
		t.Fatalf("expected 2 parks, got %v", ids(res.Parks))
	}
}

func TestQueryMinRating(t *testing.T) {
	min := 4.0
	res := Query(fixtureParks(), QueryParams{MinRating: &min})
	if res.Total != 2 {
		t.Fatalf("expected 2 parks, got %v", ids(res.Parks))
	}
}

func TestQueryMinRatingNaNMatchesNothing(t *testing.T) {
	min := math.NaN()
	res := Query(fixtureParks(), QueryParams{MinRating: &min})
	if res.Total != 0 {
		t.Fatalf("expected empty result for NaN threshold, got %v", ids(res.Parks))
	}
}

func TestQueryDogsAllowed(t *testing.T) {
	dogs := true
	res := Query(fixtureParks(), QueryParams{DogsAllowed: &dogs})
	if res.Total != 2 {
		t.Fatalf("expected 2 dog parks, got %v", ids(res.Parks))
	}

	dogs = false
	res = Query(fixtureParks(), QueryParams{DogsAllowed: &dogs})
	if res.Total != 1 || res.Parks[0].ID != "park_002" {
		t.Fatalf("expected park_002, got %v", ids(res.Parks))
	}
}

func TestQueryWheelchair(t *testing.T) {
	res := Query(fixtureParks(), QueryParams{WheelchairAccessible: true})
	if res.Total != 2 {
		t.Fatalf("expected 2 accessible parks, got %v", ids(res.Parks))
	}
}

func TestQuerySearchAcrossFields(t *testing.T) {
	// name, address and city are all searched, case-insensitively
	cases := map[string]string{
		"retiro":   "park_001",
		"ZORRILLA": "park_002",
		"barcelon": "park_003",
	}
	for term, want := range cases {
		res := Query(fixtureParks(), QueryParams{Search: term})
		if res.Total != 1 || res.Parks[0].ID != want {
			t.Fatalf("search %q: expected %s, got %v", term, want, ids(res.Parks))
		}
	}
}

func TestQueryGeoSortWithoutRadius(t *testing.T) {
	center := geo.Coordinates{Lat: 40.4168, Lng: -3.7038} // Madrid
	res := Query(fixtureParks(), QueryParams{Center: &center})
	if res.Total != 3 {
		t.Fatalf("geosort must not filter, got %v", ids(res.Parks))
	}
	if res.Parks[0].ID != "park_001" {
		t.Fatalf("expected Madrid park closest, got %v", ids(res.Parks))
	}
	for i, p := range res.Parks {
		if p.Distance == nil {
			t.Fatalf("park %d missing distance annotation", i)
		}
		if i > 0 && *p.Distance < *res.Parks[i-1].Distance {
			t.Fatalf("parks not ordered by distance: %v", ids(res.Parks))
		}
	}
}

func TestQueryRadiusBoundaryInclusive(t *testing.T) {
	center := geo.Coordinates{Lat: 0, Lng: 0}
	target := Park{
		ID:       "park_101",
		Name:     "Equator",
		Location: Location{Coordinates: geo.Coordinates{Lat: 0, Lng: 0.01}},
	}
	d := geo.Distance(center, target.Location.Coordinates)

	// radius exactly at the park's distance keeps it
	radius := d / 1000
	res := Query([]Park{target}, QueryParams{Center: &center, RadiusKm: &radius})
	if res.Total != 1 {
		t.Fatalf("expected park at exact radius included")
	}
	if *res.Parks[0].Distance != d {
		t.Fatalf("expected distance %v, got %v", d, *res.Parks[0].Distance)
	}

	// one meter short excludes it
	radius = (d - 1) / 1000
	res = Query([]Park{target}, QueryParams{Center: &center, RadiusKm: &radius})
	if res.Total != 0 {
		t.Fatalf("expected park beyond radius excluded")
	}
}

func TestQuerySortBy(t *testing.T) {
	res := Query(fixtureParks(), QueryParams{SortBy: "rating"})
	if got := ids(res.Parks); got[0] != "park_003" || got[2] != "park_002" {
		t.Fatalf("rating sort wrong: %v", got)
	}

	res = Query(fixtureParks(), QueryParams{SortBy: "newest"})
	if got := ids(res.Parks); got[0] != "park_002" || got[2] != "park_001" {
		t.Fatalf("newest sort wrong: %v", got)
	}

	res = Query(fixtureParks(), QueryParams{SortBy: "name"})
	if got := ids(res.Parks); got[0] != "park_002" || got[1] != "park_003" || got[2] != "park_001" {
		t.Fatalf("name sort wrong: %v", got)
	}
}

func TestQuerySortByOverridesGeoOrder(t *testing.T) {
	center := geo.Coordinates{Lat: 40.4168, Lng: -3.7038}
	res := Query(fixtureParks(), QueryParams{Center: &center, SortBy: "rating"})
	// distance annotations survive but rating ordering wins
	if res.Parks[0].ID != "park_003" {
		t.Fatalf("expected rating order to override distance, got %v", ids(res.Parks))
	}
	if res.Parks[0].Distance == nil {
		t.Fatalf("expected distance annotation to survive the resort")
	}
}

func TestQueryFilterComposition(t *testing.T) {
	dogs := true
	min := 4.0
	both := Query(fixtureParks(), QueryParams{DogsAllowed: &dogs, MinRating: &min})
	dogsOnly := Query(fixtureParks(), QueryParams{DogsAllowed: &dogs})

	members := map[string]bool{}
	for _, p := range dogsOnly.Parks {
		members[p.ID] = true
	}
	for _, p := range both.Parks {
		if !members[p.ID] {
			t.Fatalf("composed result %s not a subset of the single-filter result", p.ID)
		}
	}
}

func TestQueryPagination(t *testing.T) {
	parks := fixtureParks()

	full := Query(parks, QueryParams{SortBy: "name"})

	var reassembled []string
	for page := 1; ; page++ {
		res := Query(parks, QueryParams{SortBy: "name", Page: page, Limit: 2})
		if res.Total != full.Total {
			t.Fatalf("total changed across pages: %d vs %d", res.Total, full.Total)
		}
		if len(res.Parks) == 0 {
			break
		}
		reassembled = append(reassembled, ids(res.Parks)...)
	}

	want := ids(full.Parks)
	if len(reassembled) != len(want) {
		t.Fatalf("pages do not reassemble the full set: %v vs %v", reassembled, want)
	}
	for i := range want {
		if reassembled[i] != want[i] {
			t.Fatalf("page order diverges at %d: %v vs %v", i, reassembled, want)
		}
	}
}

func TestQueryPageBeyondEnd(t *testing.T) {
	res := Query(fixtureParks(), QueryParams{Page: 10, Limit: 50})
	if res.Total != 3 || len(res.Parks) != 0 {
		t.Fatalf("expected empty page with full total, got %+v", res)
	}
}
