package match

import (
	"sort"

	"schema-migrator/internal/common"
)

// DefaultThreshold is the similarity below which Suggest stays quiet.
const DefaultThreshold = 0.7

// Candidate is a known name scored against a wanted one.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns them best first.
// Ties keep the order of candidates.
func Rank(name string, candidates []string) []Candidate {
	ranked := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, Candidate{Name: c, Score: Similarity(name, c)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Suggest returns the candidate closest to name when its similarity reaches
// threshold.
func Suggest(name string, candidates []string, threshold float64) (string, bool) {
	best, ok := common.First(Rank(name, candidates))
	if !ok || best.Score < threshold {
		return "", false
	}

	return best.Name, true
}
