package main

import (
	"fmt"
	"os"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/rs/zerolog"

	"github.com/provenance-ledger/chaincode/provenance-ledger/config"
)

// RunAsService runs the chaincode as an external service the peer dials.
func RunAsService(cfg *config.Config, logger zerolog.Logger) error {
	cc, err := newChaincode(cfg)
	if err != nil {
		return err
	}

	tls, err := tlsProperties(cfg.Chaincode)
	if err != nil {
		return err
	}
	server := &shim.ChaincodeServer{
		CCID:     cfg.Chaincode.ID,
		Address:  cfg.Chaincode.ServerAddress,
		CC:       cc,
		TLSProps: tls,
	}

	logger.Info().
		Str("address", server.Address).
		Str("ccid", server.CCID).
		Bool("tls", !tls.Disabled).
		Msg("starting provenance chaincode server")
	if err := server.Start(); err != nil {
		return fmt.Errorf("error starting provenance chaincode server: %w", err)
	}
	return nil
}

func tlsProperties(cfg config.ChaincodeConfig) (shim.TLSProperties, error) {
	if cfg.TLSDisabled {
		return shim.TLSProperties{Disabled: true}, nil
	}
	key, err := os.ReadFile(cfg.TLSKeyFile)
	if err != nil {
		return shim.TLSProperties{}, fmt.Errorf("failed to read chaincode TLS key: %w", err)
	}
	cert, err := os.ReadFile(cfg.TLSCertFile)
	if err != nil {
		return shim.TLSProperties{}, fmt.Errorf("failed to read chaincode TLS certificate: %w", err)
	}
	props := shim.TLSProperties{Key: key, Cert: cert}
	if cfg.TLSClientCAFile != "" {
		if props.ClientCACerts, err = os.ReadFile(cfg.TLSClientCAFile); err != nil {
			return shim.TLSProperties{}, fmt.Errorf("failed to read chaincode client CA: %w", err)
		}
	}
	return props, nil
}
