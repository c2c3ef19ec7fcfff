package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/provenance-ledger/chaincode/provenance-ledger/api"
	"github.com/provenance-ledger/chaincode/provenance-ledger/config"
	"github.com/provenance-ledger/chaincode/provenance-ledger/events"
	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
	"github.com/provenance-ledger/chaincode/provenance-ledger/metrics"
	"github.com/provenance-ledger/chaincode/provenance-ledger/service"
)

const shutdownTimeout = 15 * time.Second

// RunStandalone keeps the ledger in process and serves it over HTTP until
// SIGINT or SIGTERM.
func RunStandalone(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	sink, err := newSink(cfg.Kafka, logger, m)
	if err != nil {
		return err
	}
	svc, err := service.New(ledger.Principal(cfg.Ledger.Admin),
		service.WithLedger(ledger.New(ledgerOptions(cfg)...)),
		service.WithLogger(logger),
		service.WithMetrics(m),
		service.WithSink(sink),
	)
	if err != nil {
		_ = sink.Close()
		return fmt.Errorf("failed to start ledger: %w", err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warn().Err(err).Msg("event sink did not close cleanly")
		}
	}()

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	servers := []*http.Server{
		newHTTPServer(cfg.HTTP.Addr, api.New(svc, api.WithLogger(logger)).Routes()),
		newHTTPServer(cfg.HTTP.MetricsAddr, metricsMux),
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logger.Info().Str("addr", srv.Addr).Msg("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server on %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})
	return g.Wait()
}

func newHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// newSink always logs events and also ships them to Kafka when brokers are
// configured.
func newSink(cfg config.KafkaConfig, logger zerolog.Logger, m *metrics.Metrics) (events.Sink, error) {
	sinks := events.Fanout{events.NewLogSink(logger)}
	if len(cfg.Brokers) == 0 {
		return sinks, nil
	}
	kafka, err := events.NewKafkaSink(cfg.Brokers, cfg.Topic,
		events.WithKafkaLogger(logger),
		events.WithDeliveryHook(func(e events.Envelope, err error) {
			m.ObserveDelivery("kafka", e.Name, err)
		}),
	)
	if err != nil {
		return nil, err
	}
	logger.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("publishing ledger events to kafka")
	return append(sinks, kafka), nil
}
