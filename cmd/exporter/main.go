package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/kernel"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/metrics"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/report"
)

// pretendIdentity is served with --pretend, handy when developing off-board
var pretendIdentity = kernel.StaticProvider{
	Sysname:  "Linux",
	Nodename: "beagleplay",
	Release:  "6.6.32-ti-arm64-r7",
	Version:  "#1 SMP PREEMPT",
	Machine:  "aarch64",
}

func logRequestHandler(inner http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"client":     r.RemoteAddr,
			"user-agent": r.Header.Get("user-agent"),
		}).Info(strings.Join([]string{r.Proto, r.Method, r.URL.Path}, " "))
		inner.ServeHTTP(w, r)
	}
}

func identityHandler(provider kernel.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		report.New(provider, w).Report()
	}
}

func newMux(provider kernel.Provider) *http.ServeMux {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		metrics.NewIdentityCollector(provider),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	mux := http.NewServeMux()
	mux.HandleFunc("/", logRequestHandler(identityHandler(provider)))
	mux.HandleFunc("/metrics", logRequestHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	return mux
}

func runExporter(cc *cli.Context) error {
	var provider kernel.Provider = kernel.Default()
	if cc.Bool("pretend") {
		log.Warn("running in pretend mode - not actually asking the kernel!")
		provider = pretendIdentity
	} else if release, err := kernel.Version(); err != nil {
		log.WithError(err).Warn("kernel identification unavailable, info metric will be missing")
	} else {
		log.WithField("release", release).Debug("kernel identified")
	}

	if err := serve(cc.Context, cc.String("listen-address"), provider); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down.
func serve(ctx context.Context, laddr string, provider kernel.Provider) error {
	srv := &http.Server{
		Addr:              laddr,
		Handler:           newMux(provider),
		ReadHeaderTimeout: 10 * time.Second,
	}
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		sctx, cf := context.WithTimeout(context.Background(), 5*time.Second)
		defer cf()
		if err := srv.Shutdown(sctx); err != nil {
			log.WithError(err).Warn("HTTP server did not shut down cleanly")
		}
	}()
	log.WithField("listen-addr", laddr).Info("starting HTTP server for metrics")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped
	log.Info("HTTP server stopped")
	return nil
}

func main() {
	app := &cli.App{
		Name:   "hello-board-exporter",
		Action: runExporter,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "listen-address",
				Aliases: []string{"l"},
				Value:   ":26756",
			},
			&cli.BoolFlag{
				Name:    "pretend",
				EnvVars: []string{"PRETEND"},
				Value:   false,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				EnvVars: []string{"VERBOSE"},
				Value:   false,
			},
		},
		Before: func(cc *cli.Context) error {
			if cc.Bool("verbose") {
				log.SetLevel(log.TraceLevel)
			}
			return nil
		},
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.RunContext(ctx, os.Args)
	stop()
	if err == nil {
		return
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		log.WithError(err).Error("application exited with error")
		os.Exit(exitErr.ExitCode())
	} else {
		log.WithError(err).Fatal("application exited with error")
	}
}
