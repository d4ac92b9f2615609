// Package remote downloads the dataset CSV files over HTTP.
package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-explorer/internal/domain/football"
	"github.com/riskibarqy/football-explorer/internal/infrastructure/dataset/csvfile"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
	"github.com/riskibarqy/football-explorer/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const (
	defaultTimeout      = 30 * time.Second
	maxResponseBytes    = 64 << 20
	errorBodyPreviewMax = 256
)

var errTransient = crerr.New("dataset download transient failure")

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Workers        int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// HTTPClient is optional; a client sized for the dataset files is built
	// when nil.
	HTTPClient *fasthttp.Client
}

// Source fetches results.csv and goalscorers.csv from BaseURL in parallel.
type Source struct {
	client     *fasthttp.Client
	baseURL    string
	timeout    time.Duration
	maxRetries int
	workers    int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	backoff    func(attempt int) time.Duration
}

func NewSource(cfg Config) (*Source, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("dataset base url is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 2
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &fasthttp.Client{
			Name:                "football-explorer",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBytes,
		}
	}

	breakerCfg := cfg.CircuitBreaker
	breakerCfg.OnStateChange = func(from, to resilience.CircuitState) {
		logger.Warn("dataset download circuit changed state", "from", from, "to", to, "base_url", baseURL)
	}

	return &Source{
		client:     client,
		baseURL:    baseURL,
		timeout:    timeout,
		maxRetries: max(cfg.MaxRetries, 0),
		workers:    workers,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(breakerCfg),
		backoff: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * time.Second
		},
	}, nil
}

func (s *Source) Load(ctx context.Context) (football.Dataset, error) {
	files := []string{csvfile.ResultsFile, csvfile.GoalscorersFile}
	bodies, err := s.fetchAll(ctx, files)
	if err != nil {
		return football.Dataset{}, err
	}
	defer func() {
		for _, body := range bodies {
			bytebufferpool.Put(body)
		}
	}()

	ds, report, err := csvfile.Decode(bytes.NewReader(bodies[0].B), bytes.NewReader(bodies[1].B))
	if err != nil {
		return football.Dataset{}, err
	}

	s.logger.InfoContext(ctx, "dataset downloaded",
		"base_url", s.baseURL,
		"matches", report.Matches,
		"skipped_matches", report.SkippedMatches,
		"goals", report.Goals,
		"skipped_goals", report.SkippedGoals,
	)
	return ds, nil
}

func (s *Source) fetchAll(ctx context.Context, files []string) ([]*bytebufferpool.ByteBuffer, error) {
	pool, err := ants.NewPool(min(s.workers, len(files)))
	if err != nil {
		return nil, fmt.Errorf("create download pool: %w", err)
	}
	defer pool.Release()

	bodies := make([]*bytebufferpool.ByteBuffer, len(files))
	errs := make([]error, len(files))
	var wg sync.WaitGroup
	for i, name := range files {
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			bodies[i], errs[i] = s.fetch(ctx, name)
		}); submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit download %s: %w", name, submitErr)
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		for _, body := range bodies {
			if body != nil {
				bytebufferpool.Put(body)
			}
		}
		return nil, err
	}
	return bodies, nil
}

func (s *Source) fetch(ctx context.Context, name string) (*bytebufferpool.ByteBuffer, error) {
	fullURL := s.baseURL + "/" + name

	var body *bytebufferpool.ByteBuffer
	err := s.breaker.Execute(func() error {
		var fetchErr error
		body, fetchErr = s.fetchWithRetry(ctx, fullURL)
		return fetchErr
	}, isTransient)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		s.logger.WarnContext(ctx, "dataset circuit breaker rejected download", "file", name, "state", s.breaker.State())
		return nil, fmt.Errorf("download %s: dataset source temporarily unavailable: %w", name, err)
	}
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", name, err)
	}
	return body, nil
}

func (s *Source) fetchWithRetry(ctx context.Context, fullURL string) (*bytebufferpool.ByteBuffer, error) {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := s.do(ctx, fullURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !isTransient(err) || attempt == s.maxRetries {
			break
		}

		timer := time.NewTimer(s.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	s.logger.WarnContext(ctx, "dataset download failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (s *Source) do(ctx context.Context, fullURL string) (*bytebufferpool.ByteBuffer, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "text/csv")

	deadline := time.Now().Add(s.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := s.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), errTransient)
	}

	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		err := crerr.Newf("unexpected status=%d body=%s", status, preview(resp.Body()))
		if isRetryableStatus(status) {
			return nil, crerr.Mark(err, errTransient)
		}
		return nil, err
	}

	body := bytebufferpool.Get()
	if err := resp.BodyWriteTo(body); err != nil {
		bytebufferpool.Put(body)
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errTransient)
	}
	return body, nil
}

func isTransient(err error) bool {
	return err != nil && crerr.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func preview(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > errorBodyPreviewMax {
		return text[:errorBodyPreviewMax] + "..."
	}
	return text
}
