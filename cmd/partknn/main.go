// Command partknn classifies a query row against a labeled CSV table with
// partitioned parallel KNN.
//
// Usage:
//
//	partknn -data diabetes.csv -query 1,0,1,34,0,0 -k 3 -p 4 -m 5
//	partknn -data s3://bucket/diabetes.csv.gz -query-row 17 -json
//	partknn -data minio://datasets/diabetes.csv -minio-endpoint localhost:9000 -query-row 0
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/hupe1980/partknn"
	"github.com/hupe1980/partknn/codec"
	"github.com/hupe1980/partknn/dataset"
	"github.com/hupe1980/partknn/loader"
	"github.com/hupe1980/partknn/resource"
)

type config struct {
	data      string
	query     string
	queryRow  int
	k         int
	p         int
	m         int
	workers   int
	selector  string
	noHeader  bool
	maxRows   int
	reference bool
	json      bool
	pretty    bool
	codec     string
	logLevel  string

	metricsAddr string
	memoryLimit int64
	ioLimit     int64

	s3Region    string
	s3Endpoint  string
	s3PathStyle bool

	minioEndpoint  string
	minioAccessKey string
	minioSecretKey string
	minioSecure    bool
}

// usageError marks invalid command lines.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("partknn", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.data, "data", "", "CSV table: path, file://, s3://bucket/key or minio://bucket/key")
	fs.StringVar(&cfg.query, "query", "", "comma separated feature values of the query")
	fs.IntVar(&cfg.queryRow, "query-row", -1, "classify this data row, excluding it from its own neighbors")
	fs.IntVar(&cfg.k, "k", partknn.DefaultK, "number of voting neighbors (K)")
	fs.IntVar(&cfg.p, "p", partknn.DefaultPartitions, "number of partitions (P)")
	fs.IntVar(&cfg.m, "m", partknn.DefaultCutoff, "candidates kept per partition (M)")
	fs.IntVar(&cfg.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.selector, "selector", string(partknn.StrategyHeap), "local selection strategy: heap, partial or sort")
	fs.BoolVar(&cfg.noHeader, "no-header", false, "the first line is data, not a header")
	fs.IntVar(&cfg.maxRows, "max-rows", 0, "read at most this many rows (0 = all)")
	fs.BoolVar(&cfg.reference, "reference", false, "use the serial full-sort classifier")
	fs.BoolVar(&cfg.json, "json", false, "print the result as JSON")
	fs.BoolVar(&cfg.pretty, "pretty", false, "indent JSON output")
	fs.StringVar(&cfg.codec, "codec", codec.Default.Name(), "JSON encoder: json or go-json")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	fs.StringVar(&cfg.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.Int64Var(&cfg.memoryLimit, "memory-limit", 0, "candidate memory limit in bytes (0 = unlimited)")
	fs.Int64Var(&cfg.ioLimit, "io-limit", 0, "dataset read limit in bytes per second (0 = unlimited)")

	fs.StringVar(&cfg.s3Region, "s3-region", "", "AWS region for s3:// data")
	fs.StringVar(&cfg.s3Endpoint, "s3-endpoint", "", "custom endpoint for s3:// data")
	fs.BoolVar(&cfg.s3PathStyle, "s3-path-style", false, "use path-style S3 addressing")

	fs.StringVar(&cfg.minioEndpoint, "minio-endpoint", os.Getenv("MINIO_ENDPOINT"), "MinIO endpoint for minio:// data")
	fs.StringVar(&cfg.minioAccessKey, "minio-access-key", os.Getenv("MINIO_ACCESS_KEY"), "MinIO access key")
	fs.StringVar(&cfg.minioSecretKey, "minio-secret-key", os.Getenv("MINIO_SECRET_KEY"), "MinIO secret key")
	fs.BoolVar(&cfg.minioSecure, "minio-secure", false, "use HTTPS for MinIO")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case fs.NArg() > 0:
		return nil, &usageError{fmt.Sprintf("unexpected arguments: %v", fs.Args())}
	case cfg.data == "":
		return nil, &usageError{"-data is required"}
	case cfg.query == "" && cfg.queryRow < 0:
		return nil, &usageError{"one of -query or -query-row is required"}
	case cfg.query != "" && cfg.queryRow >= 0:
		return nil, &usageError{"-query and -query-row are mutually exclusive"}
	}
	return cfg, nil
}

func (c *config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.logLevel)); err != nil {
		return 0, &usageError{fmt.Sprintf("invalid -log-level %q", c.logLevel)}
	}
	return l, nil
}

func (c *config) resources() *resource.Controller {
	if c.memoryLimit <= 0 && c.ioLimit <= 0 {
		return nil
	}
	return resource.NewController(resource.Config{
		MemoryLimitBytes:   c.memoryLimit,
		IOLimitBytesPerSec: c.ioLimit,
	})
}

func (c *config) loaderOptions(rc *resource.Controller) []loader.Option {
	opts := []loader.Option{
		loader.WithHeader(!c.noHeader),
		loader.WithMaxRows(c.maxRows),
	}
	if rc != nil {
		opts = append(opts, loader.WithResources(rc))
	}
	return opts
}

func (c *config) buildQuery(ds *dataset.Dataset) (dataset.Query, error) {
	if c.queryRow >= 0 {
		return dataset.QueryFromRow(ds, c.queryRow)
	}
	return loader.ParseQuery(c.query)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level, err := cfg.level()
	if err != nil {
		return err
	}
	logger := partknn.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var metrics partknn.MetricsCollector = partknn.NoopMetricsCollector{}
	if cfg.metricsAddr != "" {
		srv, err := startMetricsServer(cfg.metricsAddr, logger)
		if err != nil {
			return err
		}
		defer srv.close()
		metrics = srv.collector
	}

	rc := cfg.resources()

	loc, store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	ds, err := loader.Load(ctx, store, loc.Name, cfg.loaderOptions(rc)...)
	metrics.RecordLoad(ds.Len(), time.Since(start), err)
	logger.LogLoad(ctx, loc.String(), ds.Len(), err)
	if err != nil {
		return err
	}

	q, err := cfg.buildQuery(ds)
	if err != nil {
		return err
	}

	runLogger := logger.WithCount(ds.Len()).WithDimension(ds.Width() - 1)

	var res *partknn.Result
	if cfg.reference {
		res, err = partknn.Reference(ctx, ds, q, cfg.k)
	} else {
		var clf *partknn.Classifier
		clf, err = partknn.New(
			partknn.WithK(cfg.k),
			partknn.WithPartitions(cfg.p),
			partknn.WithCutoff(cfg.m),
			partknn.WithWorkers(cfg.workers),
			partknn.WithSelector(partknn.Strategy(cfg.selector)),
			partknn.WithLogger(runLogger),
			partknn.WithMetricsCollector(metrics),
			partknn.WithResourceController(rc),
		)
		if err != nil {
			return err
		}
		res, err = clf.Classify(ctx, ds, q)
	}
	if err != nil {
		return err
	}

	rep := newReport(res, ds)
	if cfg.json {
		return rep.writeJSON(stdout, cfg.codec, cfg.pretty)
	}
	return rep.writeText(stdout)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	var ue *usageError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.As(err, &ue):
		fmt.Fprintln(os.Stderr, "partknn:", err)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "partknn:", err)
		os.Exit(1)
	}
}
