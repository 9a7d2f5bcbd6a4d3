package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/subscription-contract/renewer"
	"github.com/nspcc-dev/subscription-contract/rpc/subscription"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "", "Path to the keeper configuration file")

	flag.Parse()

	if *configPath == "" {
		log.Fatal("missing configuration file")
	}

	cfg, err := renewer.ReadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Logger.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("keeper failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	c := zap.NewProductionConfig()
	c.Level = lvl
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.DisableStacktrace = true

	return c.Build()
}

func run(ctx context.Context, cfg *renewer.Config, logger *zap.Logger) error {
	contractHash, err := cfg.ContractHash()
	if err != nil {
		return err
	}

	acc, err := openAccount(cfg)
	if err != nil {
		return err
	}

	c, err := rpcclient.New(ctx, cfg.RPC.Endpoint, rpcclient.Options{
		DialTimeout:    cfg.RPC.DialTimeout,
		RequestTimeout: cfg.RPC.DialTimeout,
	})
	if err != nil {
		return fmt.Errorf("RPC client dial: %w", err)
	}
	defer c.Close()

	if err := c.Init(); err != nil {
		return fmt.Errorf("RPC client init: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return fmt.Errorf("init actor: %w", err)
	}

	contract := subscription.New(act, contractHash)
	v, err := contract.Version()
	if err != nil {
		return fmt.Errorf("get contract version: %w", err)
	}
	logger.Info("connected to the Subscription contract",
		zap.Stringer("contract", contractHash), zap.Stringer("version", v))

	var m *renewer.Metrics
	if cfg.Metrics.Address != "" {
		m, err = renewer.NewMetrics(prometheus.DefaultRegisterer)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}

		srv := &http.Server{
			Addr:              cfg.Metrics.Address,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer func() { _ = srv.Close() }()
	}

	r, err := renewer.New(renewer.Prm{
		Logger:    logger,
		Reader:    contract,
		Iterators: act,
		Writer:    contract,
		Caller:    acc.ScriptHash(),
		BatchSize: cfg.BatchSize,
		Metrics:   m,
	})
	if err != nil {
		return err
	}

	logger.Info("keeper started",
		zap.String("account", address.Uint160ToString(acc.ScriptHash())),
		zap.Duration("interval", cfg.Interval))

	r.Run(ctx, cfg.Interval)
	return nil
}

func openAccount(cfg *renewer.Config) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(cfg.Wallet.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account
	if cfg.Wallet.Address != "" {
		h, err := address.StringToUint160(cfg.Wallet.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet address: %w", err)
		}
		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s not found in the wallet", cfg.Wallet.Address)
		}
	} else {
		if len(w.Accounts) == 0 {
			return nil, errors.New("empty wallet")
		}
		acc = w.Accounts[0]
	}

	if err := acc.Decrypt(cfg.Wallet.Password, w.Scrypt); err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}
	return acc, nil
}
