// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Run modes.
const (
	ModeChaincode  = "chaincode"
	ModeStandalone = "standalone"
)

// Transfer policies.
const (
	PolicyOpen         = "open"
	PolicyRoleSequence = "role-sequence"
)

// Config holds all runtime configuration.
type Config struct {
	Mode      string
	Chaincode ChaincodeConfig
	Ledger    LedgerConfig
	HTTP      HTTPConfig
	Log       LogConfig
	Kafka     KafkaConfig
}

// ChaincodeConfig is used when the peer talks to us as an external service.
type ChaincodeConfig struct {
	ServerAddress   string
	ID              string
	TLSDisabled     bool
	TLSKeyFile      string
	TLSCertFile     string
	TLSClientCAFile string
}

type LedgerConfig struct {
	Admin          string
	TransferPolicy string

	// InitMSPID restricts chaincode InitLedger to one organisation.
	InitMSPID string
}

type HTTPConfig struct {
	Addr        string
	MetricsAddr string
}

type LogConfig struct {
	Level  string
	Format string // console | json
}

// KafkaConfig is optional; without brokers events are only logged.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables alone.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Chaincode: ChaincodeConfig{
			ServerAddress:   os.Getenv("CHAINCODE_SERVER_ADDRESS"),
			ID:              os.Getenv("CHAINCODE_ID"),
			TLSDisabled:     getEnvBool("CHAINCODE_TLS_DISABLED", true),
			TLSKeyFile:      os.Getenv("CHAINCODE_TLS_KEY_FILE"),
			TLSCertFile:     os.Getenv("CHAINCODE_TLS_CERT_FILE"),
			TLSClientCAFile: os.Getenv("CHAINCODE_TLS_CLIENT_CA_FILE"),
		},
		Ledger: LedgerConfig{
			Admin:          os.Getenv("LEDGER_ADMIN"),
			TransferPolicy: strings.ToLower(getEnv("TRANSFER_POLICY", PolicyOpen)),
			InitMSPID:      strings.TrimSpace(os.Getenv("LEDGER_INIT_MSP_ID")),
		},
		HTTP: HTTPConfig{
			Addr:        getEnv("HTTP_ADDR", ":8080"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnv("KAFKA_TOPIC", "provenance-events"),
		},
	}
	cfg.Mode = strings.ToLower(getEnv("LEDGER_MODE", ModeChaincode))
	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeChaincode:
		if c.Chaincode.ServerAddress != "" && c.Chaincode.ID == "" {
			return errors.New("CHAINCODE_ID is required when CHAINCODE_SERVER_ADDRESS is set")
		}
		if c.AsService() && !c.Chaincode.TLSDisabled && (c.Chaincode.TLSKeyFile == "" || c.Chaincode.TLSCertFile == "") {
			return errors.New("CHAINCODE_TLS_KEY_FILE and CHAINCODE_TLS_CERT_FILE are required unless CHAINCODE_TLS_DISABLED is set")
		}
	case ModeStandalone:
		if c.Ledger.Admin == "" {
			return errors.New("LEDGER_ADMIN is required in standalone mode")
		}
	default:
		return fmt.Errorf("unknown LEDGER_MODE %q", c.Mode)
	}
	switch c.Ledger.TransferPolicy {
	case PolicyOpen, PolicyRoleSequence:
	default:
		return fmt.Errorf("unknown TRANSFER_POLICY %q", c.Ledger.TransferPolicy)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.Log.Format)
	}
	return nil
}

// AsService reports whether the peer reaches the chaincode over the network
// rather than launching it.
func (c *Config) AsService() bool {
	return c.Chaincode.ServerAddress != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
