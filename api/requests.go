package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

const maxBodyBytes = 1 << 20

// Coordinate is a latitude or longitude. Clients send a JSON number or a
// string; the ledger keeps the text exactly as sent.
type Coordinate string

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Coordinate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("coordinate must be a number or a string: %w", ledger.ErrMalformedInput)
	}
	*c = Coordinate(n.String())
	return nil
}

// Status accepts the numeric value (0-4) or the name ("IN_TRANSIT").
type Status ledger.ProductStatus

func (s *Status) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		parsed, err := ledger.ParseProductStatus(name)
		if err != nil {
			return err
		}
		*s = Status(parsed)
		return nil
	}
	n, err := strconv.ParseUint(string(data), 10, 8)
	if err != nil {
		return fmt.Errorf("status %s: %w", data, ledger.ErrMalformedInput)
	}
	*s = Status(n)
	return nil
}

type supplyRequest struct {
	Target         string     `json:"target"`
	Name           string     `json:"name"`
	Quantity       uint64     `json:"quantity"`
	CertificateRef string     `json:"certificateRef"`
	Lat            Coordinate `json:"lat"`
	Long           Coordinate `json:"long"`
}

type createRequest struct {
	Name        string     `json:"name"`
	BatchLabel  string     `json:"batchLabel"`
	ImageRef    string     `json:"imageRef"`
	MaterialIDs []uint64   `json:"materialIds"`
	Quantities  []uint64   `json:"quantities"`
	Lat         Coordinate `json:"lat"`
	Long        Coordinate `json:"long"`
}

type transferRequest struct {
	Target string     `json:"target"`
	Status *Status    `json:"status"`
	Lat    Coordinate `json:"lat"`
	Long   Coordinate `json:"long"`
}

type idResponse struct {
	ID uint64 `json:"id"`
}

type verifyResponse struct {
	ProductID uint64           `json:"productId"`
	Owner     ledger.Principal `json:"owner"`
	Verified  bool             `json:"verified"`
}

type membershipResponse struct {
	Role      ledger.Role      `json:"role"`
	Principal ledger.Principal `json:"principal"`
	Member    bool             `json:"member"`
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %v: %w", err, ledger.ErrMalformedInput)
	}
	return nil
}

// pathParam returns the decoded value of a route parameter.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func idParam(r *http.Request, name string) (uint64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %v: %w", name, raw, errBadID, ledger.ErrMalformedInput)
	}
	return id, nil
}

func roleParam(r *http.Request) (ledger.Role, error) {
	return ledger.ParseRole(pathParam(r, "role"))
}
