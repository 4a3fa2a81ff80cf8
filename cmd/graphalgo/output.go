package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/graphalgo/config"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/edgelist"
	"github.com/katalvlaran/graphalgo/progress"
	"github.com/katalvlaran/graphalgo/randomprojection"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newLogger(w io.Writer, cfg config.LogConfig) (*progress.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(cfg.Format, "json") {
		return progress.NewJSONLogger(w, level), nil
	}
	return progress.NewTextLogger(w, level), nil
}

// serveMetrics exposes reg on addr/metrics until the returned stop is called.
// An empty addr serves nothing.
func serveMetrics(logger *progress.Logger, reg *prometheus.Registry, addr string) (stop func()) {
	if addr == "" {
		return func() {}
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// writeOutput runs write against path, or stdout when path is empty or "-".
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	w, err := edgelist.Create(path)
	if err != nil {
		return err
	}
	return errors.Join(write(w), w.Close())
}

// writeEmbeddings writes "id\tv0\tv1..." per node.
func writeEmbeddings(w io.Writer, g *core.CSR, emb *randomprojection.Embeddings) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for node := 0; node < emb.Len(); node++ {
		buf = appendID(buf[:0], g, node)
		for _, v := range emb.Row(node) {
			buf = append(buf, '\t')
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeScores writes "id\tscore" per node.
func writeScores(w io.Writer, g *core.CSR, scores []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for node, v := range scores {
		buf = appendID(buf[:0], g, node)
		buf = append(buf, '\t')
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func appendID(buf []byte, g *core.CSR, node int) []byte {
	if id, err := g.ToOriginal(node); err == nil {
		return append(buf, id...)
	}
	return strconv.AppendInt(buf, int64(node), 10)
}
