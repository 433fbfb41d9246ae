package park

import (
	"sort"
	"strings"

	"backend-parkhub/internal/shared/geo"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// QueryParams are the optional knobs of a park listing. Absent knobs are
// no-ops for their stage, never errors.
type QueryParams struct {
	Elements             []string
	Amenities            []string
	MinRating            *float64
	DogsAllowed          *bool
	WheelchairAccessible bool
	Search               string
	Center               *geo.Coordinates
	RadiusKm             *float64
	SortBy               string
	Page                 int
	Limit                int
}

type Result struct {
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Parks []Park `json:"parks"`
}

const (
	defaultPage  = 1
	defaultLimit = 50
)

// Query runs the listing pipeline over the full park set. Stage order is
// fixed: attribute filters, text search, geofilter/geosort, explicit sort,
// pagination. An explicit sortBy reorders after the geo stage, so it wins
// over distance ordering even when lat/lng/radius were all supplied. Total
// counts the filtered set before the page slice.
func Query(parks []Park, p QueryParams) Result {
	working := parks

	if len(p.Elements) > 0 {
		working = filterFeatures(working, p.Elements, func(pk Park) map[string]bool { return pk.Elements })
	}
	if len(p.Amenities) > 0 {
		working = filterFeatures(working, p.Amenities, func(pk Park) map[string]bool { return pk.Amenities })
	}
	if p.MinRating != nil {
		min := *p.MinRating
		working = filterParks(working, func(pk Park) bool {
			// a NaN threshold (non-numeric input) fails every comparison
			return pk.Rating.Average >= min
		})
	}
	if p.DogsAllowed != nil {
		want := *p.DogsAllowed
		working = filterParks(working, func(pk Park) bool {
			return pk.Policies["dogs_allowed"] == want
		})
	}
	if p.WheelchairAccessible {
		working = filterParks(working, func(pk Park) bool {
			return pk.Amenities["wheelchair_accessible"]
		})
	}
	if p.Search != "" {
		term := strings.ToLower(p.Search)
		working = filterParks(working, func(pk Park) bool {
			return strings.Contains(strings.ToLower(pk.Name), term) ||
				strings.Contains(strings.ToLower(pk.Location.Address), term) ||
				strings.Contains(strings.ToLower(pk.Location.City), term)
		})
	}
	if p.Center != nil {
		if p.RadiusKm != nil {
			working = filterByRadius(working, *p.Center, *p.RadiusKm*1000)
		} else {
			working = sortByDistance(working, *p.Center)
		}
	}

	switch p.SortBy {
	case "rating":
		sort.SliceStable(working, func(i, j int) bool {
			return working[i].Rating.Average > working[j].Rating.Average
		})
	case "newest":
		sort.SliceStable(working, func(i, j int) bool {
			return working[i].CreatedAt.After(working[j].CreatedAt)
		})
	case "name":
		coll := collate.New(language.Und)
		sort.SliceStable(working, func(i, j int) bool {
			return coll.CompareString(working[i].Name, working[j].Name) < 0
		})
	}

	page := p.Page
	if page < 1 {
		page = defaultPage
	}
	limit := p.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	total := len(working)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Result{
		Total: total,
		Page:  page,
		Limit: limit,
		Parks: working[start:end],
	}
}

func filterParks(parks []Park, keep func(Park) bool) []Park {
	out := make([]Park, 0, len(parks))
	for _, p := range parks {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// filterFeatures keeps parks where every required key is present and true.
func filterFeatures(parks []Park, required []string, features func(Park) map[string]bool) []Park {
	return filterParks(parks, func(p Park) bool {
		m := features(p)
		for _, key := range required {
			if !m[key] {
				return false
			}
		}
		return true
	})
}

// filterByRadius annotates each park with its distance from center and keeps
// those within radiusM inclusive, closest first.
func filterByRadius(parks []Park, center geo.Coordinates, radiusM float64) []Park {
	out := make([]Park, 0, len(parks))
	for _, p := range parks {
		d := geo.Distance(center, p.Location.Coordinates)
		if d <= radiusM {
			p.Distance = &d
			out = append(out, p)
		}
	}
	sortAnnotated(out)
	return out
}

// sortByDistance annotates every park with its distance from center and
// orders closest first without filtering.
func sortByDistance(parks []Park, center geo.Coordinates) []Park {
	out := make([]Park, len(parks))
	for i, p := range parks {
		d := geo.Distance(center, p.Location.Coordinates)
		p.Distance = &d
		out[i] = p
	}
	sortAnnotated(out)
	return out
}

func sortAnnotated(parks []Park) {
	sort.SliceStable(parks, func(i, j int) bool {
		return *parks[i].Distance < *parks[j].Distance
	})
}
