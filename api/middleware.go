package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

// PrincipalHeader carries the caller identity.
const PrincipalHeader = "X-Principal"

type contextKey struct{}

func requirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := strings.TrimSpace(r.Header.Get(PrincipalHeader))
		if p == "" {
			writeDetail(w, http.StatusUnauthorized, "missing "+PrincipalHeader+" header")
			return
		}
		ctx := context.WithValue(r.Context(), contextKey{}, ledger.Principal(p))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerFrom(ctx context.Context) ledger.Principal {
	p, _ := ctx.Value(contextKey{}).(ledger.Principal)
	return p
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			h.logger.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("principal", r.Header.Get(PrincipalHeader)).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("http request")
		}()
		next.ServeHTTP(ww, r)
	})
}
