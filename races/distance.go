package races

import (
	"strings"

	"github.com/samber/lo"
)

// Normalized distance categories, in rank order.
const (
	DistanceUnder5K  = "Less than 5K"
	Distance5K       = "5K"
	Distance10K      = "10K"
	DistanceHalf     = "Half Marathon"
	DistanceMarathon = "Marathon"
	DistanceUltra    = "Ultra"
)

// DistanceCategories lists the normalized categories shortest first.
var DistanceCategories = []string{
	DistanceUnder5K,
	Distance5K,
	Distance10K,
	DistanceHalf,
	DistanceMarathon,
	DistanceUltra,
}

type distanceRule struct {
	category string
	match    func(label string) bool
}

func containsAny(tokens ...string) func(string) bool {
	return func(label string) bool {
		return lo.SomeBy(tokens, func(t string) bool { return strings.Contains(label, t) })
	}
}

// Order matters: "13.1 mi half / 10K option" must hit the half rule before
// the 10K rule, and "50k" must hit ultra before the plain "5k" check.
var distanceRules = []distanceRule{
	{DistanceMarathon, containsAny("26.2", "marathon")},
	{DistanceHalf, containsAny("13.1", "half")},
	{DistanceUltra, containsAny("ultra", "50k", "100k", "100 mile", "53.8")},
	{Distance10K, containsAny("10k", "6.2")},
	{Distance5K, containsAny("3.1")},
	{Distance5K, func(label string) bool {
		return strings.Contains(label, "5k") && !strings.Contains(label, "0.5")
	}},
	{DistanceUnder5K, containsAny("1k", "2k", "3k", "1 mile", "2 mile", "3 mile", "0.5", "800", "400", "100", "200", "300")},
}

// NormalizeDistance maps a free-text distance label onto one of the
// DistanceCategories. A label that already names a category is returned in
// its canonical spelling; labels that match no rule are returned unchanged.
func NormalizeDistance(label string) string {
	lower := strings.ToLower(strings.TrimSpace(label))
	if c, ok := lo.Find(DistanceCategories, func(c string) bool { return strings.ToLower(c) == lower }); ok {
		return c
	}
	for _, r := range distanceRules {
		if r.match(lower) {
			return r.category
		}
	}
	return label
}

// distanceRank returns the position of a normalized category, with unranked
// labels after Ultra.
func distanceRank(category string) int {
	if i := lo.IndexOf(DistanceCategories, category); i >= 0 {
		return i
	}
	return len(DistanceCategories)
}

// displayDistances returns the normalized distance list for a card: the
// distance options when the record has them, else the primary distance.
func displayDistances(distance string, options []string) []string {
	if len(options) == 0 {
		return []string{NormalizeDistance(distance)}
	}
	return lo.Uniq(lo.Map(options, func(o string, _ int) string { return NormalizeDistance(o) }))
}
