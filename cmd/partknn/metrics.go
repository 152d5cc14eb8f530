package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/partknn"
	prommetrics "github.com/hupe1980/partknn/metrics/prometheus"
)

type metricsServer struct {
	collector *prommetrics.Collector
	srv       *http.Server
	addr      net.Addr
	logger    *partknn.Logger
}

// startMetricsServer exposes a private registry on addr at /metrics.
func startMetricsServer(addr string, logger *partknn.Logger) (*metricsServer, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	collector, err := prommetrics.NewCollector(reg)
	if err != nil {
		return nil, err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	m := &metricsServer{
		collector: collector,
		srv:       &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		addr:      ln.Addr(),
		logger:    logger,
	}

	go func() {
		if err := m.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", m.addr.String(), "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", m.addr.String())

	return m, nil
}

func (m *metricsServer) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = m.srv.Shutdown(ctx)
}
