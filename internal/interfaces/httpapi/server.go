package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-explorer/internal/platform/id"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerBrowseRoutes(mux, handler)
	registerCountryRoutes(mux, handler)
	registerDatasetRoutes(mux, handler)

	chain := RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux)))
	return RequestTracing(RequestID(id.NewRandomGenerator(), logger, chain))
}

// recoverPanic turns a handler panic into a 500 envelope. http.ErrAbortHandler
// is re-raised so net/http can abort the connection.
func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var catcher panics.Catcher
		catcher.Try(func() { next.ServeHTTP(w, r) })

		recovered := catcher.Recovered()
		if recovered == nil {
			return
		}
		if recovered.Value == http.ErrAbortHandler {
			panic(recovered.Value)
		}
		logger.ErrorContext(r.Context(), "panic recovered",
			"panic", recovered.Value,
			"path", r.URL.Path,
			"stack", string(recovered.Stack),
		)
		writeInternalError(r.Context(), w)
	})
}
