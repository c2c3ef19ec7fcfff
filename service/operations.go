package service

import (
	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
	"github.com/provenance-ledger/chaincode/provenance-ledger/worldstate"
)

func (s *Service) Admin() (ledger.Principal, error) {
	var admin ledger.Principal
	err := s.view("admin", func(tx *worldstate.Txn) error {
		var err error
		admin, err = s.ledger.Admin(tx)
		return err
	})
	return admin, err
}

func (s *Service) Grant(caller ledger.Principal, role ledger.Role, principal ledger.Principal) error {
	return s.update("grant", caller, func(tx *worldstate.Txn) error {
		return s.ledger.Grant(tx, caller, role, principal)
	})
}

func (s *Service) Revoke(caller ledger.Principal, role ledger.Role, principal ledger.Principal) error {
	return s.update("revoke", caller, func(tx *worldstate.Txn) error {
		return s.ledger.Revoke(tx, caller, role, principal)
	})
}

func (s *Service) HasRole(role ledger.Role, principal ledger.Principal) (bool, error) {
	var ok bool
	err := s.view("has_role", func(tx *worldstate.Txn) error {
		var err error
		ok, err = s.ledger.HasRole(tx, role, principal)
		return err
	})
	return ok, err
}

func (s *Service) Members(role ledger.Role) ([]ledger.Principal, error) {
	var members []ledger.Principal
	err := s.view("members", func(tx *worldstate.Txn) error {
		var err error
		members, err = s.ledger.Members(tx, role)
		return err
	})
	return members, err
}

func (s *Service) RolesOf(principal ledger.Principal) ([]ledger.Role, error) {
	var roles []ledger.Role
	err := s.view("roles_of", func(tx *worldstate.Txn) error {
		var err error
		roles, err = s.ledger.RolesOf(tx, principal)
		return err
	})
	return roles, err
}

func (s *Service) Supply(caller ledger.Principal, req ledger.SupplyRequest) (uint64, error) {
	var id uint64
	err := s.update("supply", caller, func(tx *worldstate.Txn) error {
		var err error
		id, err = s.ledger.Supply(tx, caller, req)
		return err
	})
	return id, err
}

func (s *Service) Stock(owner ledger.Principal, materialID uint64) (uint64, error) {
	var qty uint64
	err := s.view("stock", func(tx *worldstate.Txn) error {
		var err error
		qty, err = s.ledger.Stock(tx, owner, materialID)
		return err
	})
	return qty, err
}

func (s *Service) Balance(owner ledger.Principal, materialID uint64) (*ledger.StockBalance, error) {
	var balance *ledger.StockBalance
	err := s.view("balance", func(tx *worldstate.Txn) error {
		var err error
		balance, err = s.ledger.Balance(tx, owner, materialID)
		return err
	})
	return balance, err
}

func (s *Service) Batch(materialID uint64) (*ledger.RawMaterialBatch, error) {
	var batch *ledger.RawMaterialBatch
	err := s.view("batch", func(tx *worldstate.Txn) error {
		var err error
		batch, err = s.ledger.Batch(tx, materialID)
		return err
	})
	return batch, err
}

func (s *Service) Create(caller ledger.Principal, req ledger.CreateRequest) (uint64, error) {
	var id uint64
	err := s.update("create", caller, func(tx *worldstate.Txn) error {
		var err error
		id, err = s.ledger.Create(tx, caller, req)
		return err
	})
	return id, err
}

func (s *Service) Product(productID uint64) (*ledger.Product, error) {
	var product *ledger.Product
	err := s.view("product", func(tx *worldstate.Txn) error {
		var err error
		product, err = s.ledger.Product(tx, productID)
		return err
	})
	return product, err
}

func (s *Service) Composition(productID uint64) ([]ledger.MaterialConsumption, error) {
	var composition []ledger.MaterialConsumption
	err := s.view("composition", func(tx *worldstate.Txn) error {
		var err error
		composition, err = s.ledger.Composition(tx, productID)
		return err
	})
	return composition, err
}

// Products lists every product, or only those owned by owner when it is set.
func (s *Service) Products(owner ledger.Principal) ([]*ledger.Product, error) {
	var products []*ledger.Product
	err := s.view("products", func(tx *worldstate.Txn) error {
		var err error
		if owner != "" {
			products, err = s.ledger.ProductsByOwner(tx, owner)
		} else {
			products, err = s.ledger.Products(tx, nil)
		}
		return err
	})
	return products, err
}

func (s *Service) Transfer(caller ledger.Principal, req ledger.TransferRequest) (*ledger.Product, error) {
	var product *ledger.Product
	err := s.update("transfer", caller, func(tx *worldstate.Txn) error {
		var err error
		product, err = s.ledger.Transfer(tx, caller, req)
		return err
	})
	return product, err
}

func (s *Service) History(productID uint64) ([]ledger.HistoryEntry, error) {
	var history []ledger.HistoryEntry
	err := s.view("history", func(tx *worldstate.Txn) error {
		var err error
		history, err = s.ledger.History(tx, productID)
		return err
	})
	return history, err
}

// Stats includes the material and product counters.
func (s *Service) Stats() (*ledger.Stats, error) {
	var stats *ledger.Stats
	err := s.view("stats", func(tx *worldstate.Txn) error {
		var err error
		stats, err = s.ledger.Stats(tx)
		return err
	})
	return stats, err
}

func (s *Service) Trace(productID uint64) (*ledger.Trace, error) {
	var trace *ledger.Trace
	err := s.view("trace", func(tx *worldstate.Txn) error {
		var err error
		trace, err = s.ledger.Trace(tx, productID)
		return err
	})
	return trace, err
}

func (s *Service) VerifyOwner(productID uint64, claimed ledger.Principal) (bool, error) {
	var ok bool
	err := s.view("verify_owner", func(tx *worldstate.Txn) error {
		var err error
		ok, err = s.ledger.VerifyOwner(tx, productID, claimed)
		return err
	})
	return ok, err
}
