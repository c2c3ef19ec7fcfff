package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

// APIError is the error envelope of every 4xx/5xx response.
type APIError struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, APIError{Detail: detail})
}

// statusOf maps a ledger error kind to an HTTP status.
func statusOf(err error) int {
	switch ledger.Kind(err) {
	case ledger.ErrUnauthorized:
		return http.StatusForbidden
	case ledger.ErrNotFound:
		return http.StatusNotFound
	case ledger.ErrInvalidQuantity, ledger.ErrMalformedInput, ledger.ErrInvalidTarget:
		return http.StatusBadRequest
	case ledger.ErrInsufficientStock, ledger.ErrPolicyViolation, ledger.ErrAlreadyInitialized:
		return http.StatusConflict
	case ledger.ErrNotInitialized:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeError hides infrastructure failures behind a generic message and logs
// them; classified ledger errors go back verbatim.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("ledger call failed")
		writeDetail(w, status, "internal error")
		return
	}
	writeDetail(w, status, err.Error())
}

var errBadID = errors.New("id must be a positive integer")
