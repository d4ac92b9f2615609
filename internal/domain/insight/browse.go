package insight

import (
	"sort"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
)

// Options collects the selector values offered to callers. Countries are the
// distinct home teams in first-seen order; the other lists are sorted.
func Options(ds football.Dataset) FilterOptions {
	countries := newOrderedCounter()
	cities := make(map[string]struct{})
	tournaments := make(map[string]struct{})
	for _, m := range ds.Matches {
		countries.add(m.HomeTeam)
		if m.City != "" {
			cities[m.City] = struct{}{}
		}
		if m.Tournament != "" {
			tournaments[m.Tournament] = struct{}{}
		}
	}

	scorers := make(map[string]struct{})
	for _, g := range ds.Goals {
		if g.HasScorer() {
			scorers[g.Scorer] = struct{}{}
		}
	}

	return FilterOptions{
		Countries:   append(make([]string, 0, len(countries.keys)), countries.keys...),
		Cities:      sortedKeys(cities),
		Tournaments: sortedKeys(tournaments),
		Scorers:     sortedKeys(scorers),
	}
}

// FilterMatches lists the matches passing every non-empty filter field, in
// input order, windowed by Offset and Limit. A zero Limit means no limit.
func FilterMatches(matches []football.Match, filter MatchFilter) Page[football.Match] {
	selected := make([]football.Match, 0)
	for _, m := range matches {
		if filter.Country != "" && !m.Involves(filter.Country) {
			continue
		}
		if filter.City != "" && m.City != filter.City {
			continue
		}
		if filter.Tournament != "" && m.Tournament != filter.Tournament {
			continue
		}
		selected = append(selected, m)
	}
	return Page[football.Match]{
		Items: window(selected, filter.Offset, filter.Limit),
		Total: len(selected),
	}
}

// FilterGoals lists the goal events matching team and scorer.
func FilterGoals(goals []football.GoalEvent, filter GoalFilter) Page[football.GoalEvent] {
	selected := make([]football.GoalEvent, 0)
	for _, g := range goals {
		if filter.Team != "" && g.Team != filter.Team {
			continue
		}
		if filter.Scorer != "" && g.Scorer != filter.Scorer {
			continue
		}
		selected = append(selected, g)
	}
	return Page[football.GoalEvent]{
		Items: window(selected, filter.Offset, filter.Limit),
		Total: len(selected),
	}
}

func window[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return make([]T, 0)
	}
	items = items[offset:]
	if limit > 0 {
		return truncate(items, limit)
	}
	return items
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
