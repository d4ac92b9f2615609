package insight

import (
	"sort"
	"strconv"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
	"github.com/valyala/bytebufferpool"
)

const scorerSeparator = ", "

// WinsFor returns the matches country won, home or away, in input order.
func WinsFor(matches []football.Match, country string) []football.Match {
	out := make([]football.Match, 0)
	for _, m := range matches {
		if m.IsWinFor(country) {
			out = append(out, m)
		}
	}
	return out
}

// CompetitionsFor lists the distinct tournaments country played in, in the
// order they first appear.
func CompetitionsFor(matches []football.Match, country string) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, m := range matches {
		if !m.Involves(country) {
			continue
		}
		if _, ok := seen[m.Tournament]; ok {
			continue
		}
		seen[m.Tournament] = struct{}{}
		out = append(out, m.Tournament)
	}
	return out
}

// MatchesWithScorers joins every win of country with the goal events of that
// match and summarizes the scorers. Wins without any known scorer are dropped,
// as are exact duplicate rows.
func MatchesWithScorers(ds football.Dataset, country string, format ScorerFormat) []ScorerLine {
	wins := WinsFor(ds.Matches, country)
	out := make([]ScorerLine, 0, len(wins))
	if len(wins) == 0 {
		return out
	}

	goalsByMatch := indexGoals(ds.Goals, wins)
	format = format.Normalize()
	seen := make(map[ScorerLine]struct{}, len(wins))
	for _, m := range wins {
		events := goalsByMatch[m.Key()]
		if len(events) == 0 {
			continue
		}

		line := ScorerLine{
			Date:      m.Date,
			HomeTeam:  m.HomeTeam,
			AwayTeam:  m.AwayTeam,
			City:      m.City,
			HomeScore: m.HomeScore,
			AwayScore: m.AwayScore,
			Scorers:   formatScorers(events, format),
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}

	return out
}

// WinsByCity counts the wins of country per city, most wins first. Cities with
// the same count keep their first-seen order.
func WinsByCity(matches []football.Match, country string) []CityWins {
	return truncate(cityWinCounts(matches, country), MaxCityRows)
}

// TopScorerByCity picks, per city where country won, the scorer with the most
// goal events in those wins. Ties go to the scorer seen first.
func TopScorerByCity(ds football.Dataset, country string) []CityTopScorer {
	byCity := newGroupedCounter()
	for _, row := range joinWinsWithGoals(ds, country) {
		byCity.add(row.match.City, row.goal.Scorer)
	}

	cities := byCity.names()
	sort.Strings(cities)

	out := make([]CityTopScorer, 0, len(cities))
	for _, city := range cities {
		counter, _ := byCity.get(city)
		scorer, goals, ok := counter.top()
		if !ok {
			continue
		}
		out = append(out, CityTopScorer{City: city, Scorer: scorer, Goals: goals})
	}
	return out
}

// CityWinSummaries pairs the wins-by-city ranking with each city's top scorer.
// Cities without a known scorer are left out.
func CityWinSummaries(ds football.Dataset, country string) []CityWinSummary {
	scorers := make(map[string]string)
	for _, item := range TopScorerByCity(ds, country) {
		scorers[item.City] = item.Scorer
	}

	out := make([]CityWinSummary, 0)
	for _, item := range cityWinCounts(ds.Matches, country) {
		scorer, ok := scorers[item.City]
		if !ok {
			continue
		}
		out = append(out, CityWinSummary{City: item.City, Wins: item.Wins, TopScorer: scorer})
	}
	return truncate(out, MaxCityRows)
}

// TopScorerByHomeTeam keeps the best scorer per home team over the joined
// wins of country, ordered by home team name and capped at topN rows.
func TopScorerByHomeTeam(ds football.Dataset, country string, topN int) []HomeTeamTopScorer {
	out := make([]HomeTeamTopScorer, 0)
	if topN < 1 {
		return out
	}

	byHomeTeam := newGroupedCounter()
	for _, row := range joinWinsWithGoals(ds, country) {
		byHomeTeam.add(row.match.HomeTeam, row.goal.Scorer)
	}

	homeTeams := byHomeTeam.names()
	sort.Strings(homeTeams)
	for _, homeTeam := range homeTeams {
		counter, _ := byHomeTeam.get(homeTeam)
		scorer, goals, ok := counter.top()
		if !ok {
			continue
		}
		out = append(out, HomeTeamTopScorer{HomeTeam: homeTeam, Scorer: scorer, Goals: goals})
	}
	return truncate(out, topN)
}

func cityWinCounts(matches []football.Match, country string) []CityWins {
	counter := newOrderedCounter()
	for _, m := range WinsFor(matches, country) {
		counter.add(m.City)
	}

	out := make([]CityWins, 0, len(counter.keys))
	for _, city := range counter.keys {
		out = append(out, CityWins{City: city, Wins: counter.counts[city]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Wins > out[j].Wins
	})
	return out
}

// joinWinsWithGoals expands every win into one row per goal event with a known
// scorer, keeping win order and then goal-table order.
func joinWinsWithGoals(ds football.Dataset, country string) []joinedGoal {
	wins := WinsFor(ds.Matches, country)
	if len(wins) == 0 {
		return nil
	}

	goalsByMatch := indexGoals(ds.Goals, wins)
	out := make([]joinedGoal, 0, len(wins))
	for _, m := range wins {
		for _, g := range goalsByMatch[m.Key()] {
			out = append(out, joinedGoal{match: m, goal: g})
		}
	}
	return out
}

func indexGoals(goals []football.GoalEvent, matches []football.Match) map[football.MatchKey][]football.GoalEvent {
	wanted := make(map[football.MatchKey]struct{}, len(matches))
	for _, m := range matches {
		wanted[m.Key()] = struct{}{}
	}

	out := make(map[football.MatchKey][]football.GoalEvent, len(wanted))
	for _, g := range goals {
		if !g.HasScorer() {
			continue
		}
		key := g.Key()
		if _, ok := wanted[key]; !ok {
			continue
		}
		out[key] = append(out[key], g)
	}
	return out
}

func formatScorers(events []football.GoalEvent, format ScorerFormat) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendEntry := func(scorer string, goals int) {
		if buf.Len() > 0 {
			_, _ = buf.WriteString(scorerSeparator)
		}
		_, _ = buf.WriteString(scorer)
		_, _ = buf.WriteString(" (")
		_, _ = buf.WriteString(strconv.Itoa(goals))
		if goals == 1 {
			_, _ = buf.WriteString(" gol)")
		} else {
			_, _ = buf.WriteString(" gols)")
		}
	}

	if format == ScorerFormatAggregated {
		counter := newOrderedCounter()
		for _, g := range events {
			counter.add(g.Scorer)
		}
		for _, scorer := range counter.keys {
			appendEntry(scorer, counter.counts[scorer])
		}
		return buf.String()
	}

	for _, g := range events {
		appendEntry(g.Scorer, 1)
	}
	return buf.String()
}
