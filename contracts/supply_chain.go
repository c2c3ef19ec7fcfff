package contracts

import (
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

// SupplyChainContract handles raw material supply, product creation and
// custody transfers.
type SupplyChainContract struct {
	contractapi.Contract
	Ledger *ledger.Ledger
}

// SupplyRawMaterial records a batch delivered to target and returns its id.
// Caller must hold RAW_MATERIAL_SUPPLIER.
func (s *SupplyChainContract) SupplyRawMaterial(ctx contractapi.TransactionContextInterface,
	target string, name string, quantity uint64, certificateRef string, lat string, long string) (uint64, error) {

	caller, err := callerOf(ctx)
	if err != nil {
		return 0, err
	}
	return engineOr(s.Ledger).Supply(stateOf(ctx), caller, ledger.SupplyRequest{
		Target:         ledger.Principal(target),
		Name:           name,
		Quantity:       quantity,
		CertificateRef: certificateRef,
		Lat:            lat,
		Long:           long,
	})
}

// GetStock returns the available quantity of a material held by owner.
func (s *SupplyChainContract) GetStock(ctx contractapi.TransactionContextInterface, owner string, materialID uint64) (uint64, error) {
	return engineOr(s.Ledger).Stock(stateOf(ctx), ledger.Principal(owner), materialID)
}

func (s *SupplyChainContract) GetStockBalance(ctx contractapi.TransactionContextInterface, owner string, materialID uint64) (*ledger.StockBalance, error) {
	return engineOr(s.Ledger).Balance(stateOf(ctx), ledger.Principal(owner), materialID)
}

func (s *SupplyChainContract) GetRawMaterial(ctx contractapi.TransactionContextInterface, materialID uint64) (*ledger.RawMaterialBatch, error) {
	return engineOr(s.Ledger).Batch(stateOf(ctx), materialID)
}

func (s *SupplyChainContract) GetRawMaterialCount(ctx contractapi.TransactionContextInterface) (uint64, error) {
	return engineOr(s.Ledger).MaterialCount(stateOf(ctx))
}

// CreateProduct registers a product made from the caller's stock. The two
// lists are parallel: quantities[i] units of materialIDs[i].
func (s *SupplyChainContract) CreateProduct(ctx contractapi.TransactionContextInterface,
	name string, batchLabel string, imageRef string, materialIDs []uint64, quantities []uint64, lat string, long string) (uint64, error) {

	caller, err := callerOf(ctx)
	if err != nil {
		return 0, err
	}
	return engineOr(s.Ledger).Create(stateOf(ctx), caller, ledger.CreateRequest{
		Name:        name,
		BatchLabel:  batchLabel,
		ImageRef:    imageRef,
		MaterialIDs: materialIDs,
		Quantities:  quantities,
		Lat:         lat,
		Long:        long,
	})
}

func (s *SupplyChainContract) GetProduct(ctx contractapi.TransactionContextInterface, productID uint64) (*ledger.Product, error) {
	return engineOr(s.Ledger).Product(stateOf(ctx), productID)
}

func (s *SupplyChainContract) GetProductRawMaterials(ctx contractapi.TransactionContextInterface, productID uint64) ([]ledger.MaterialConsumption, error) {
	return engineOr(s.Ledger).Composition(stateOf(ctx), productID)
}

func (s *SupplyChainContract) GetProductCount(ctx contractapi.TransactionContextInterface) (uint64, error) {
	return engineOr(s.Ledger).ProductCount(stateOf(ctx))
}

// GetAllProducts returns every product in id order.
func (s *SupplyChainContract) GetAllProducts(ctx contractapi.TransactionContextInterface) ([]*ledger.Product, error) {
	return engineOr(s.Ledger).Products(stateOf(ctx), nil)
}

// TransferProduct hands a product owned by the caller to target and sets its
// status. Status is the numeric value, CREATED=0 through SOLD=4.
func (s *SupplyChainContract) TransferProduct(ctx contractapi.TransactionContextInterface,
	productID uint64, target string, status uint8, lat string, long string) (*ledger.Product, error) {

	caller, err := callerOf(ctx)
	if err != nil {
		return nil, err
	}
	return engineOr(s.Ledger).Transfer(stateOf(ctx), caller, ledger.TransferRequest{
		ProductID: productID,
		Target:    ledger.Principal(target),
		Status:    ledger.ProductStatus(status),
		Lat:       lat,
		Long:      long,
	})
}

// GetHistory returns a product's custody trail, oldest first.
func (s *SupplyChainContract) GetHistory(ctx contractapi.TransactionContextInterface, productID uint64) ([]ledger.HistoryEntry, error) {
	return engineOr(s.Ledger).History(stateOf(ctx), productID)
}

func (s *SupplyChainContract) GetStatistics(ctx contractapi.TransactionContextInterface) (*ledger.Stats, error) {
	return engineOr(s.Ledger).Stats(stateOf(ctx))
}
