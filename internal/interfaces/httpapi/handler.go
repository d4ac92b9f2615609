package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
	"github.com/riskibarqy/football-explorer/internal/usecase"
)

type Handler struct {
	explorer  *usecase.ExplorerService
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(explorer *usecase.ExplorerService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		explorer:  explorer,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// queryInt returns nil when the parameter is absent so validation can tell an
// explicit zero from a missing value.
func queryInt(query url.Values, name string) (*int, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return &v, nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func (h *Handler) bindCountryQuery(ctx context.Context, r *http.Request) (countryQuery, error) {
	query := r.URL.Query()
	topN, err := queryInt(query, "top_n")
	if err != nil {
		return countryQuery{}, err
	}

	req := countryQuery{
		Country:      strings.TrimSpace(r.PathValue("country")),
		TopN:         topN,
		ScorerFormat: strings.ToLower(strings.TrimSpace(query.Get("scorer_format"))),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return countryQuery{}, err
	}
	return req, nil
}

func (h *Handler) bindPageQuery(ctx context.Context, query url.Values) (pageQuery, error) {
	offset, err := queryInt(query, "offset")
	if err != nil {
		return pageQuery{}, err
	}
	limit, err := queryInt(query, "limit")
	if err != nil {
		return pageQuery{}, err
	}

	req := pageQuery{Offset: offset, Limit: limit}
	if err := h.validateRequest(ctx, req); err != nil {
		return pageQuery{}, err
	}
	return req, nil
}
