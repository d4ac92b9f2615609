package insight

import (
	"sort"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
)

// FastestAverageScoringTeams ranks every team in the goal table by the mean
// minute of its goals, earliest first. Goals with an unknown minute are
// ignored and teams with no known minute at all are skipped.
func FastestAverageScoringTeams(goals []football.GoalEvent, topN int) []TeamAverageMinute {
	out := make([]TeamAverageMinute, 0)
	if topN < 1 {
		return out
	}

	type acc struct {
		sum   int
		count int
	}
	order := make([]string, 0)
	byTeam := make(map[string]*acc)
	for _, g := range goals {
		if g.Minute == nil {
			continue
		}
		a, ok := byTeam[g.Team]
		if !ok {
			a = &acc{}
			byTeam[g.Team] = a
			order = append(order, g.Team)
		}
		a.sum += *g.Minute
		a.count++
	}

	for _, team := range order {
		a := byTeam[team]
		out = append(out, TeamAverageMinute{
			Team:          team,
			AverageMinute: float64(a.sum) / float64(a.count),
			Goals:         a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageMinute != out[j].AverageMinute {
			return out[i].AverageMinute < out[j].AverageMinute
		}
		return out[i].Team < out[j].Team
	})
	return truncate(out, topN)
}

// WinsPerYear counts the wins of country per calendar year, oldest first.
func WinsPerYear(matches []football.Match, country string) []YearWins {
	counter := newOrderedCounter()
	for _, m := range WinsFor(matches, country) {
		counter.add(m.Year())
	}

	out := make([]YearWins, 0, len(counter.keys))
	for _, year := range counter.keys {
		out = append(out, YearWins{Year: year, Wins: counter.counts[year]})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}

// TopScorerPerYear returns, per year, the player credited with most goals for
// country. Equal counts resolve to the alphabetically first name.
func TopScorerPerYear(goals []football.GoalEvent, country string) []YearTopScorer {
	byYear := newGroupedCounter()
	for _, g := range goals {
		if g.Team != country || !g.HasScorer() {
			continue
		}
		byYear.add(g.Year(), g.Scorer)
	}

	years := byYear.names()
	sort.Strings(years)

	out := make([]YearTopScorer, 0, len(years))
	for _, year := range years {
		counter, _ := byYear.get(year)
		best, bestGoals := "", 0
		for _, scorer := range counter.keys {
			n := counter.counts[scorer]
			if n > bestGoals || (n == bestGoals && scorer < best) {
				best, bestGoals = scorer, n
			}
		}
		if bestGoals == 0 {
			continue
		}
		out = append(out, YearTopScorer{Year: year, Scorer: best, Goals: bestGoals})
	}
	return out
}

// GoalsPerCompetition sums the goals of every match country played, per
// tournament. Tournaments are listed by name and the list is cut at topN
// positions, so it is not a ranking by goals.
func GoalsPerCompetition(matches []football.Match, country string, topN int) []CompetitionGoals {
	out := make([]CompetitionGoals, 0)
	if topN < 1 {
		return out
	}

	byTournament := make(map[string]*CompetitionGoals)
	for _, m := range matches {
		if !m.Involves(country) {
			continue
		}
		row, ok := byTournament[m.Tournament]
		if !ok {
			row = &CompetitionGoals{Tournament: m.Tournament}
			byTournament[m.Tournament] = row
		}
		row.HomeGoals += m.HomeScore
		row.AwayGoals += m.AwayScore
		row.TotalGoals += m.HomeScore + m.AwayScore
	}

	for _, row := range byTournament {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Tournament < out[j].Tournament
	})
	return truncate(out, topN)
}

// ResultBreakdownPerCompetition counts wins, draws and losses of country per
// tournament along with their share of the tournament's matches.
func ResultBreakdownPerCompetition(matches []football.Match, country string) []CompetitionResults {
	byTournament := make(map[string]*CompetitionResults)
	for _, m := range matches {
		outcome, ok := m.OutcomeFor(country)
		if !ok {
			continue
		}
		row, exists := byTournament[m.Tournament]
		if !exists {
			row = &CompetitionResults{Tournament: m.Tournament}
			byTournament[m.Tournament] = row
		}
		switch outcome {
		case football.OutcomeWin:
			row.Wins++
		case football.OutcomeDraw:
			row.Draws++
		case football.OutcomeLoss:
			row.Losses++
		}
		row.Total++
	}

	out := make([]CompetitionResults, 0, len(byTournament))
	for _, row := range byTournament {
		total := float64(row.Total)
		row.WinPct = float64(row.Wins) / total * 100
		row.DrawPct = float64(row.Draws) / total * 100
		row.LossPct = float64(row.Losses) / total * 100
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Tournament < out[j].Tournament
	})
	return out
}

// CountryStatsFor aggregates the record of country over every match it played.
// Penalty and own goals come from the goal table, where own goals are the
// events credited to country with the own-goal flag set.
func CountryStatsFor(ds football.Dataset, country string) CountryStats {
	var stats CountryStats
	for _, m := range ds.Matches {
		scored, conceded, ok := m.ScoreFor(country)
		if !ok {
			continue
		}
		stats.Matches++
		stats.TotalGoals += scored
		stats.GoalsConceded += conceded
		switch {
		case scored > conceded:
			stats.Wins++
		case scored < conceded:
			stats.Losses++
		default:
			stats.Draws++
		}
	}

	for _, g := range ds.Goals {
		if g.Team != country {
			continue
		}
		if g.Penalty {
			stats.PenaltyGoals++
		}
		if g.OwnGoal {
			stats.OwnGoals++
		}
	}
	return stats
}

// TopScorersOverall ranks the players credited with goals for country, most
// goals first. Equal counts keep first-seen order.
func TopScorersOverall(goals []football.GoalEvent, country string, topN int) []ScorerTotal {
	out := make([]ScorerTotal, 0)
	if topN < 1 {
		return out
	}

	counter := newOrderedCounter()
	for _, g := range goals {
		if g.Team != country || !g.HasScorer() {
			continue
		}
		counter.add(g.Scorer)
	}

	for _, scorer := range counter.keys {
		out = append(out, ScorerTotal{Scorer: scorer, Goals: counter.counts[scorer]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Goals > out[j].Goals
	})
	return truncate(out, topN)
}
