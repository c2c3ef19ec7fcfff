package api

import (
	"fmt"
	"net/http"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

func (h *Handler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.ledger.Admin()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]ledger.Principal{"admin": admin})
}

func (h *Handler) handleGrant(w http.ResponseWriter, r *http.Request) {
	role, err := roleParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.ledger.Grant(callerFrom(r.Context()), role, ledger.Principal(pathParam(r, "principal"))); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	role, err := roleParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.ledger.Revoke(callerFrom(r.Context()), role, ledger.Principal(pathParam(r, "principal"))); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleHasRole(w http.ResponseWriter, r *http.Request) {
	role, err := roleParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	principal := ledger.Principal(pathParam(r, "principal"))
	ok, err := h.ledger.HasRole(role, principal)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, membershipResponse{Role: role, Principal: principal, Member: ok})
}

func (h *Handler) handleMembers(w http.ResponseWriter, r *http.Request) {
	role, err := roleParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	members, err := h.ledger.Members(role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *Handler) handleRolesOf(w http.ResponseWriter, r *http.Request) {
	roles, err := h.ledger.RolesOf(ledger.Principal(pathParam(r, "principal")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, roles)
}

func (h *Handler) handleSupply(w http.ResponseWriter, r *http.Request) {
	var req supplyRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.ledger.Supply(callerFrom(r.Context()), ledger.SupplyRequest{
		Target:         ledger.Principal(req.Target),
		Name:           req.Name,
		Quantity:       req.Quantity,
		CertificateRef: req.CertificateRef,
		Lat:            string(req.Lat),
		Long:           string(req.Long),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/materials/%d", id))
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) handleGetMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	batch, err := h.ledger.Batch(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

func (h *Handler) handleStock(w http.ResponseWriter, r *http.Request) {
	materialID, err := idParam(r, "materialID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	balance, err := h.ledger.Balance(ledger.Principal(pathParam(r, "owner")), materialID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.ledger.Create(callerFrom(r.Context()), ledger.CreateRequest{
		Name:        req.Name,
		BatchLabel:  req.BatchLabel,
		ImageRef:    req.ImageRef,
		MaterialIDs: req.MaterialIDs,
		Quantities:  req.Quantities,
		Lat:         string(req.Lat),
		Long:        string(req.Long),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/products/%d", id))
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

// handleListProducts lists all products, or those held by ?owner=.
func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ledger.Products(ledger.Principal(r.URL.Query().Get("owner")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.ledger.Product(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handleComposition(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	composition, err := h.ledger.Composition(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, composition)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	history, err := h.ledger.History(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) handleTrace(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	trace, err := h.ledger.Trace(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trace)
}

// handleVerify answers whether ?owner= currently holds the product.
func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	owner := ledger.Principal(r.URL.Query().Get("owner"))
	ok, err := h.ledger.VerifyOwner(id, owner)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, verifyResponse{ProductID: id, Owner: owner, Verified: ok})
}

func (h *Handler) handleTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req transferRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Status == nil {
		writeDetail(w, http.StatusBadRequest, "status is required")
		return
	}
	product, err := h.ledger.Transfer(callerFrom(r.Context()), ledger.TransferRequest{
		ProductID: id,
		Target:    ledger.Principal(req.Target),
		Status:    ledger.ProductStatus(*req.Status),
		Lat:       string(req.Lat),
		Long:      string(req.Long),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledger.Stats()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
