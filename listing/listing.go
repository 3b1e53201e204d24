// Package listing provides the read-only views the public site and the admin
// table build from a fetched property list. Every function returns a new
// slice and leaves its input untouched.
package listing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ISHAsolanki/property-final/models"
)

// unrankedScore sorts records without a trending score after every ranked one.
const unrankedScore = 999

// Search matches the admin table's search box: case-insensitive substring
// over name and tagline. An empty term matches everything.
func Search(props []models.Property, term string) []models.Property {
	return filter(props, term, func(p models.Property) string {
		return p.Name + "\n" + p.Tagline
	})
}

// FilterByType keeps records whose property type contains the filter,
// case-insensitively. Empty filter keeps everything.
func FilterByType(props []models.Property, t string) []models.Property {
	return filter(props, t, func(p models.Property) string { return p.PropertyType })
}

func FilterByStatus(props []models.Property, status string) []models.Property {
	return filter(props, status, func(p models.Property) string { return p.Status })
}

func FilterByLocation(props []models.Property, loc string) []models.Property {
	return filter(props, loc, func(p models.Property) string { return p.Location })
}

// SortByPrice orders by the raw numeric value of the price range's from-bound
// (the first numeric token of a legacy string), ignoring units — so 1.8 Cr
// sorts before 85 Lac ascending. Records with no parseable price count as 0.
// The sort is stable: equal keys keep their input order.
func SortByPrice(props []models.Property, ascending bool) []models.Property {
	out := append([]models.Property(nil), props...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := priceKey(out[i]), priceKey(out[j])
		if ascending {
			return a < b
		}
		return a > b
	})
	return out
}

// SortByTrending orders ascending by trending score (rank 1 first). Records
// without a positive score rank 999 and land at the end.
func SortByTrending(props []models.Property) []models.Property {
	out := append([]models.Property(nil), props...)
	sort.SliceStable(out, func(i, j int) bool {
		return trendingKey(out[i]) < trendingKey(out[j])
	})
	return out
}

// Trending is the landing-page view: only scored records, best rank first,
// at most n entries.
func Trending(props []models.Property, n int) []models.Property {
	scored := make([]models.Property, 0, len(props))
	for _, p := range props {
		if p.TrendingScore > 0 {
			scored = append(scored, p)
		}
	}
	scored = SortByTrending(scored)
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

func filter(props []models.Property, term string, field func(models.Property) string) []models.Property {
	out := make([]models.Property, 0, len(props))
	if term == "" {
		return append(out, props...)
	}
	term = strings.ToLower(term)
	for _, p := range props {
		if strings.Contains(strings.ToLower(field(p)), term) {
			out = append(out, p)
		}
	}
	return out
}

// priceKey reduces a price range to its from-bound's raw numeric value. The
// unit is deliberately not applied: comparison matches the first-numeric-token
// rule used when normalizing legacy strings.
func priceKey(p models.Property) float64 {
	v, err := strconv.ParseFloat(p.PriceRange.From.Value, 64)
	if err != nil {
		return 0
	}
	return v
}

func trendingKey(p models.Property) int {
	if p.TrendingScore <= 0 {
		return unrankedScore
	}
	return p.TrendingScore
}
