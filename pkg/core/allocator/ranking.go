package allocator

import (
	"hash/fnv"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/jakechorley/shift-roster/pkg/core/model"
)

// RankCandidates orders eligible employees for a date.
//
// Precedence:
//  1. employees with a preferred start time first
//  2. fewer shifts so far this week first
//  3. a shuffle seeded from the date and the tied IDs, so equal candidates are
//     mixed fairly but the same inputs always give the same order
//
// The input slice is not modified.
func RankCandidates(date string, eligible []model.Employee, weeklyCounts map[string]int) []model.Employee {
	ranked := make([]model.Employee, len(eligible))
	copy(ranked, eligible)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.HasPreferredStart() != b.HasPreferredStart() {
			return a.HasPreferredStart()
		}
		if weeklyCounts[a.ID] != weeklyCounts[b.ID] {
			return weeklyCounts[a.ID] < weeklyCounts[b.ID]
		}
		return a.ID < b.ID
	})

	// Shuffle each run of tied candidates
	for start := 0; start < len(ranked); {
		end := start + 1
		for end < len(ranked) && tied(ranked[start], ranked[end], weeklyCounts) {
			end++
		}
		if end-start > 1 {
			shuffleTied(date, ranked[start:end])
		}
		start = end
	}

	return ranked
}

func tied(a, b model.Employee, weeklyCounts map[string]int) bool {
	return a.HasPreferredStart() == b.HasPreferredStart() && weeklyCounts[a.ID] == weeklyCounts[b.ID]
}

// shuffleTied shuffles a run already sorted by ID, seeded by the date and the run's IDs
func shuffleTied(date string, run []model.Employee) {
	ids := make([]string, len(run))
	for i, emp := range run {
		ids[i] = emp.ID
	}

	seed := tiebreakSeed(date, ids)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(run), func(i, j int) {
		run[i], run[j] = run[j], run[i]
	})
}

func tiebreakSeed(date string, ids []string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(date))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.Join(ids, ",")))
	return h.Sum64()
}
