package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/shift-roster/pkg/core/model"
)

func ids(employees []model.Employee) []string {
	out := make([]string, len(employees))
	for i, e := range employees {
		out[i] = e.ID
	}
	return out
}

func TestRankCandidates_PreferredStartFirst(t *testing.T) {
	a := employee("a", 1)
	b := employee("b", 1)
	b.PreferredStart = "10:00"
	c := employee("c", 1)

	ranked := RankCandidates("2026-10-20", []model.Employee{a, b, c}, map[string]int{})

	assert.Equal(t, "b", ranked[0].ID)
	assert.ElementsMatch(t, []string{"a", "c"}, ids(ranked[1:]))
}

func TestRankCandidates_PreferredStartOutranksFairness(t *testing.T) {
	a := employee("a", 1)
	b := employee("b", 1)
	b.PreferredStart = "10:00"

	ranked := RankCandidates("2026-10-20", []model.Employee{a, b}, map[string]int{"a": 0, "b": 5})

	assert.Equal(t, []string{"b", "a"}, ids(ranked))
}

func TestRankCandidates_FewerShiftsFirst(t *testing.T) {
	employees := []model.Employee{employee("a", 1), employee("b", 1), employee("c", 1)}
	counts := map[string]int{"a": 3, "b": 1, "c": 2}

	ranked := RankCandidates("2026-10-20", employees, counts)

	assert.Equal(t, []string{"b", "c", "a"}, ids(ranked))
}

func TestRankCandidates_TiebreakIsDeterministic(t *testing.T) {
	employees := []model.Employee{
		employee("a", 1), employee("b", 1), employee("c", 1),
		employee("d", 1), employee("e", 1), employee("f", 1),
	}

	first := RankCandidates("2026-10-20", employees, map[string]int{})
	second := RankCandidates("2026-10-20", employees, map[string]int{})

	assert.Equal(t, ids(first), ids(second))
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e", "f"}, ids(first))
}

func TestRankCandidates_TiebreakIgnoresInputOrder(t *testing.T) {
	forward := []model.Employee{employee("a", 1), employee("b", 1), employee("c", 1), employee("d", 1)}
	reversed := []model.Employee{employee("d", 1), employee("c", 1), employee("b", 1), employee("a", 1)}

	assert.Equal(t,
		ids(RankCandidates("2026-10-20", forward, map[string]int{})),
		ids(RankCandidates("2026-10-20", reversed, map[string]int{})))
}

func TestRankCandidates_TiebreakVariesAcrossDates(t *testing.T) {
	var employees []model.Employee
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		employees = append(employees, employee(id, 1))
	}

	orders := make(map[string]bool)
	for _, day := range WeekDates(mustDate("2026-10-18"), mustDate("2026-10-31")) {
		ranked := RankCandidates(day.Format(model.DateLayout), employees, map[string]int{})
		orders[joinIDs(ranked)] = true
	}

	assert.Greater(t, len(orders), 1, "tied candidates should not get the same order every day")
}

func TestRankCandidates_DoesNotModifyInput(t *testing.T) {
	employees := []model.Employee{employee("c", 1), employee("b", 1), employee("a", 1)}

	RankCandidates("2026-10-20", employees, map[string]int{"a": 0, "b": 1, "c": 2})

	assert.Equal(t, []string{"c", "b", "a"}, ids(employees))
}

func TestRankCandidates_Empty(t *testing.T) {
	assert.Empty(t, RankCandidates("2026-10-20", nil, map[string]int{}))
}

func joinIDs(employees []model.Employee) string {
	s := ""
	for _, e := range employees {
		s += e.ID + ","
	}
	return s
}
