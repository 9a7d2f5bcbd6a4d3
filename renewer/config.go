package renewer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"gopkg.in/yaml.v3"
)

// Config is a keeper configuration file.
type Config struct {
	RPC struct {
		Endpoint    string        `yaml:"endpoint"`
		DialTimeout time.Duration `yaml:"dial_timeout"`
	} `yaml:"rpc"`

	Wallet struct {
		Path     string `yaml:"path"`
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
	} `yaml:"wallet"`

	// Contract is the Subscription contract address or LE hash string.
	Contract string `yaml:"contract"`

	Interval  time.Duration `yaml:"interval"`
	BatchSize int           `yaml:"batch_size"`

	Metrics struct {
		Address string `yaml:"address"`
	} `yaml:"metrics"`

	Logger struct {
		Level string `yaml:"level"`
	} `yaml:"logger"`
}

// Default values.
const (
	DefaultInterval    = 15 * time.Second
	DefaultDialTimeout = 5 * time.Second
	DefaultLogLevel    = "info"
)

// ReadConfig reads and validates configuration file.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration, applies defaults and validates it.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.RPC.DialTimeout == 0 {
		cfg.RPC.DialTimeout = DefaultDialTimeout
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = DefaultLogLevel
	}

	switch {
	case cfg.RPC.Endpoint == "":
		return nil, errors.New("missing RPC endpoint")
	case cfg.Wallet.Path == "":
		return nil, errors.New("missing wallet path")
	case cfg.Contract == "":
		return nil, errors.New("missing contract")
	case cfg.Interval < 0:
		return nil, errors.New("negative interval")
	case cfg.BatchSize < 0:
		return nil, errors.New("negative batch size")
	}

	if _, err := cfg.ContractHash(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ContractHash parses configured contract.
func (c *Config) ContractHash() (util.Uint160, error) {
	h, err := util.Uint160DecodeStringLE(c.Contract)
	if err == nil {
		return h, nil
	}
	h, err = address.StringToUint160(c.Contract)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid contract %q: %w", c.Contract, err)
	}
	return h, nil
}
