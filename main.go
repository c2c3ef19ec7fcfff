package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/provenance-ledger/chaincode/provenance-ledger/config"
	"github.com/provenance-ledger/chaincode/provenance-ledger/contracts"
	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := newLogger(cfg.Log)
	log.Logger = logger

	switch {
	case cfg.Mode == config.ModeStandalone:
		err = RunStandalone(cfg, logger)
	case cfg.AsService():
		err = RunAsService(cfg, logger)
	default:
		err = runPeerLaunched(cfg, logger)
	}
	if err != nil {
		logger.Fatal().Err(err).Str("mode", cfg.Mode).Msg("provenance ledger stopped")
	}
}

// runPeerLaunched serves a chaincode process started by the peer itself.
func runPeerLaunched(cfg *config.Config, logger zerolog.Logger) error {
	cc, err := newChaincode(cfg)
	if err != nil {
		return err
	}
	logger.Info().Str("policy", cfg.Ledger.TransferPolicy).Msg("starting provenance chaincode")
	if err := cc.Start(); err != nil {
		return fmt.Errorf("error starting provenance chaincode: %w", err)
	}
	return nil
}

// newChaincode bundles the three contracts over one ledger engine.
func newChaincode(cfg *config.Config) (*contractapi.ContractChaincode, error) {
	engine := ledger.New(ledgerOptions(cfg)...)
	cc, err := contractapi.NewChaincode(
		&contracts.SupplyChainContract{Ledger: engine},
		&contracts.RoleManagementContract{Ledger: engine, InitMSPID: cfg.Ledger.InitMSPID},
		&contracts.OwnershipContract{Ledger: engine},
	)
	if err != nil {
		return nil, fmt.Errorf("error creating provenance chaincode: %w", err)
	}
	cc.Info.Title = "provenance-ledger"
	cc.Info.Version = "1.0.0"
	return cc, nil
}

func ledgerOptions(cfg *config.Config) []ledger.Option {
	var opts []ledger.Option
	if cfg.Ledger.TransferPolicy == config.PolicyRoleSequence {
		opts = append(opts, ledger.WithTransferPolicy(ledger.RoleSequencePolicy{}))
	}
	return opts
}

// newLogger writes JSON lines by default and a human-readable console format
// when LOG_FORMAT=console. An unknown LOG_LEVEL falls back to info.
func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Str("service", "provenance-ledger").Logger()
}
