// Package api exposes the ledger over HTTP for deployments without a Fabric
// network. Callers identify themselves with the X-Principal header; the
// gateway is expected to sit behind something that authenticates it.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

// Ledger is the part of service.Service the gateway serves.
//
//go:generate mockgen -source=handler.go -destination=mocks/ledger_mocks.go -package=mocks
type Ledger interface {
	Admin() (ledger.Principal, error)
	Grant(caller ledger.Principal, role ledger.Role, principal ledger.Principal) error
	Revoke(caller ledger.Principal, role ledger.Role, principal ledger.Principal) error
	HasRole(role ledger.Role, principal ledger.Principal) (bool, error)
	Members(role ledger.Role) ([]ledger.Principal, error)
	RolesOf(principal ledger.Principal) ([]ledger.Role, error)
	Supply(caller ledger.Principal, req ledger.SupplyRequest) (uint64, error)
	Balance(owner ledger.Principal, materialID uint64) (*ledger.StockBalance, error)
	Batch(materialID uint64) (*ledger.RawMaterialBatch, error)
	Create(caller ledger.Principal, req ledger.CreateRequest) (uint64, error)
	Product(productID uint64) (*ledger.Product, error)
	Composition(productID uint64) ([]ledger.MaterialConsumption, error)
	Products(owner ledger.Principal) ([]*ledger.Product, error)
	Transfer(caller ledger.Principal, req ledger.TransferRequest) (*ledger.Product, error)
	History(productID uint64) ([]ledger.HistoryEntry, error)
	Trace(productID uint64) (*ledger.Trace, error)
	VerifyOwner(productID uint64, claimed ledger.Principal) (bool, error)
	Stats() (*ledger.Stats, error)
}

// Handler serves the ledger routes.
type Handler struct {
	ledger  Ledger
	logger  zerolog.Logger
	timeout time.Duration
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(logger zerolog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.timeout = d
	}
}

func New(l Ledger, opts ...Option) *Handler {
	h := &Handler{
		ledger:  l,
		logger:  zerolog.Nop(),
		timeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes builds the router with the standard middleware stack.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	if h.timeout > 0 {
		r.Use(middleware.Timeout(h.timeout))
	}
	h.Register(r)
	return r
}

// Register mounts the ledger routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.handleHealth)
	r.Get("/admin", h.handleAdmin)

	r.Get("/roles/{role}/members", h.handleMembers)
	r.Get("/roles/{role}/members/{principal}", h.handleHasRole)
	r.Get("/principals/{principal}/roles", h.handleRolesOf)
	r.Get("/materials/{id}", h.handleGetMaterial)
	r.Get("/stock/{owner}/{materialID}", h.handleStock)
	r.Get("/products", h.handleListProducts)
	r.Get("/products/{id}", h.handleGetProduct)
	r.Get("/products/{id}/materials", h.handleComposition)
	r.Get("/products/{id}/history", h.handleHistory)
	r.Get("/products/{id}/trace", h.handleTrace)
	r.Get("/products/{id}/verify", h.handleVerify)
	r.Get("/stats", h.handleStats)

	r.Group(func(r chi.Router) {
		r.Use(requirePrincipal)
		r.Put("/roles/{role}/members/{principal}", h.handleGrant)
		r.Delete("/roles/{role}/members/{principal}", h.handleRevoke)
		r.Post("/materials", h.handleSupply)
		r.Post("/products", h.handleCreate)
		r.Post("/products/{id}/transfers", h.handleTransfer)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
