package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
	"github.com/riskibarqy/football-explorer/internal/domain/insight"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
)

const (
	MaxTopN          = 50
	DefaultTopN      = 10
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// DatasetInvalidator drops whatever copy of the dataset a repository keeps.
type DatasetInvalidator interface {
	Invalidate(ctx context.Context)
}

type ExplorerConfig struct {
	DefaultTopN int
}

type ExplorerService struct {
	repo        football.Repository
	invalidator DatasetInvalidator
	cfg         ExplorerConfig
	logger      *logging.Logger
}

type CityReport struct {
	WinsByCity []insight.CityWins
	TopScorers []insight.CityTopScorer
	Summaries  []insight.CityWinSummary
}

type YearReport struct {
	Wins       []insight.YearWins
	TopScorers []insight.YearTopScorer
}

type DatasetSummary struct {
	Matches int
	Goals   int
}

func NewExplorerService(
	repo football.Repository,
	invalidator DatasetInvalidator,
	cfg ExplorerConfig,
	logger *logging.Logger,
) *ExplorerService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DefaultTopN < 1 || cfg.DefaultTopN > MaxTopN {
		cfg.DefaultTopN = DefaultTopN
	}

	return &ExplorerService{
		repo:        repo,
		invalidator: invalidator,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *ExplorerService) Options(ctx context.Context) (insight.FilterOptions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.Options")
	defer span.End()

	ds, err := s.load(ctx)
	if err != nil {
		return insight.FilterOptions{}, err
	}
	return insight.Options(ds), nil
}

func (s *ExplorerService) ListMatches(ctx context.Context, filter insight.MatchFilter) (insight.Page[football.Match], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.ListMatches")
	defer span.End()

	filter.Country = strings.TrimSpace(filter.Country)
	filter.City = strings.TrimSpace(filter.City)
	filter.Tournament = strings.TrimSpace(filter.Tournament)
	offset, limit, err := normalizePage(filter.Offset, filter.Limit)
	if err != nil {
		return insight.Page[football.Match]{}, err
	}
	filter.Offset, filter.Limit = offset, limit

	ds, err := s.load(ctx)
	if err != nil {
		return insight.Page[football.Match]{}, err
	}
	return insight.FilterMatches(ds.Matches, filter), nil
}

func (s *ExplorerService) ListGoals(ctx context.Context, filter insight.GoalFilter) (insight.Page[football.GoalEvent], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.ListGoals")
	defer span.End()

	filter.Team = strings.TrimSpace(filter.Team)
	filter.Scorer = strings.TrimSpace(filter.Scorer)
	offset, limit, err := normalizePage(filter.Offset, filter.Limit)
	if err != nil {
		return insight.Page[football.GoalEvent]{}, err
	}
	filter.Offset, filter.Limit = offset, limit

	ds, err := s.load(ctx)
	if err != nil {
		return insight.Page[football.GoalEvent]{}, err
	}
	return insight.FilterGoals(ds.Goals, filter), nil
}

func (s *ExplorerService) FastestScoringTeams(ctx context.Context, topN int) ([]insight.TeamAverageMinute, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.FastestScoringTeams")
	defer span.End()

	topN, err := s.resolveTopN(topN)
	if err != nil {
		return nil, err
	}
	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return insight.FastestAverageScoringTeams(ds.Goals, topN), nil
}

func (s *ExplorerService) Competitions(ctx context.Context, country string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.Competitions", countryAttr(country))
	defer span.End()

	country, ds, err := s.loadForCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	return insight.CompetitionsFor(ds.Matches, country), nil
}

func (s *ExplorerService) Wins(ctx context.Context, country string) ([]football.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.Wins", countryAttr(country))
	defer span.End()

	country, ds, err := s.loadForCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	return insight.WinsFor(ds.Matches, country), nil
}

func (s *ExplorerService) WinScorers(ctx context.Context, country string, format insight.ScorerFormat) ([]insight.ScorerLine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.WinScorers", countryAttr(country))
	defer span.End()

	format, err := parseScorerFormat(format)
	if err != nil {
		return nil, err
	}
	country, ds, err := s.loadForCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	return insight.MatchesWithScorers(ds, country, format), nil
}

func (s *ExplorerService) Cities(ctx context.Context, country string) (CityReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.Cities", countryAttr(country))
	defer span.End()

	country, ds, err := s.loadForCountry(ctx, country)
	if err != nil {
		return CityReport{}, err
	}
	return CityReport{
		WinsByCity: insight.WinsByCity(ds.Matches, country),
		TopScorers: insight.TopScorerByCity(ds, country),
		Summaries:  insight.CityWinSummaries(ds, country),
	}, nil
}

func (s *ExplorerService) Years(ctx context.Context, country string) (YearReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.Years", countryAttr(country))
	defer span.End()

	country, ds, err := s.loadForCountry(ctx, country)
	if err != nil {
		return YearReport{}, err
	}
	return YearReport{
		Wins:       insight.WinsPerYear(ds.Matches, country),
		TopScorers: insight.TopScorerPerYear(ds.Goals, country),
	}, nil
}

func (s *ExplorerService) TopScorers(ctx context.Context, country string, topN int) ([]insight.ScorerTotal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.TopScorers", countryAttr(country))
	defer span.End()

	topN, err := s.resolveTopN(topN)
	if err != nil {
		return nil, err
	}
	country, ds, err := s.loadForCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	return insight.TopScorersOverall(ds.Goals, country, topN), nil
}

func (s *ExplorerService) HomeTeamTopScorers(ctx context.Context, country string, topN int) ([]insight.HomeTeamTopScorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.HomeTeamTopScorers", countryAttr(country))
	defer span.End()

	topN, err := s.resolveTopN(topN)
	if err != nil {
		return nil, err
	}
	country, ds, err := s.loadForCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	return insight.TopScorerByHomeTeam(ds, country, topN), nil
}

func (s *ExplorerService) CompetitionGoals(ctx context.Context, country string, topN int) ([]insight.CompetitionGoals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.CompetitionGoals", countryAttr(country))
	defer span.End()

	topN, err := s.resolveTopN(topN)
	if err != nil {
		return nil, err
	}
	country, ds, err := s.loadForCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	return insight.GoalsPerCompetition(ds.Matches, country, topN), nil
}

func (s *ExplorerService) CompetitionResults(ctx context.Context, country string) ([]insight.CompetitionResults, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.CompetitionResults", countryAttr(country))
	defer span.End()

	country, ds, err := s.loadForCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	return insight.ResultBreakdownPerCompetition(ds.Matches, country), nil
}

func (s *ExplorerService) Stats(ctx context.Context, country string) (insight.CountryStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.Stats", countryAttr(country))
	defer span.End()

	country, ds, err := s.loadForCountry(ctx, country)
	if err != nil {
		return insight.CountryStats{}, err
	}
	return insight.CountryStatsFor(ds, country), nil
}

// ReloadDataset drops any cached copy and loads the dataset again.
func (s *ExplorerService) ReloadDataset(ctx context.Context) (DatasetSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.ReloadDataset")
	defer span.End()

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
	ds, err := s.load(ctx)
	if err != nil {
		return DatasetSummary{}, err
	}

	summary := DatasetSummary{Matches: len(ds.Matches), Goals: len(ds.Goals)}
	s.logger.InfoContext(ctx, "dataset reloaded", "matches", summary.Matches, "goals", summary.Goals)
	return summary, nil
}

func (s *ExplorerService) load(ctx context.Context) (football.Dataset, error) {
	ds, err := s.repo.Load(ctx)
	if err != nil {
		return football.Dataset{}, fmt.Errorf("%w: load dataset: %v", ErrDependencyUnavailable, err)
	}
	return ds, nil
}

func (s *ExplorerService) loadForCountry(ctx context.Context, country string) (string, football.Dataset, error) {
	country, err := normalizeCountry(country)
	if err != nil {
		return "", football.Dataset{}, err
	}
	ds, err := s.load(ctx)
	if err != nil {
		return "", football.Dataset{}, err
	}
	return country, ds, nil
}

// resolveTopN maps zero to the configured default.
func (s *ExplorerService) resolveTopN(topN int) (int, error) {
	if topN == 0 {
		return s.cfg.DefaultTopN, nil
	}
	if topN < 1 || topN > MaxTopN {
		return 0, fmt.Errorf("%w: top_n must be between 1 and %d", ErrInvalidInput, MaxTopN)
	}
	return topN, nil
}

func normalizeCountry(country string) (string, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return "", fmt.Errorf("%w: country is required", ErrInvalidInput)
	}
	return country, nil
}

func parseScorerFormat(format insight.ScorerFormat) (insight.ScorerFormat, error) {
	switch insight.ScorerFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case "", insight.ScorerFormatPerEvent:
		return insight.ScorerFormatPerEvent, nil
	case insight.ScorerFormatAggregated:
		return insight.ScorerFormatAggregated, nil
	default:
		return "", fmt.Errorf("%w: unsupported scorer format %q", ErrInvalidInput, format)
	}
}

func normalizePage(offset, limit int) (int, int, error) {
	if offset < 0 {
		return 0, 0, fmt.Errorf("%w: offset must be >= 0", ErrInvalidInput)
	}
	switch {
	case limit == 0:
		limit = DefaultPageLimit
	case limit < 0 || limit > MaxPageLimit:
		return 0, 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxPageLimit)
	}
	return offset, limit, nil
}
