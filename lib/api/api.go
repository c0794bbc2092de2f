package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"time"

	"github.com/cr1ms0nh3ad/quadwire/lib/config"
	"github.com/cr1ms0nh3ad/quadwire/lib/metrics"
	"github.com/cr1ms0nh3ad/quadwire/lib/stats"
)

// Stopper lets the api ask the frame loop to shut down.
type Stopper interface {
	RequestStop()
}

type Api struct {
	srv  http.Server
	mux  *http.ServeMux
	cfg  *config.ApiCfg
	loop Stopper

	Stats *stats.Stats
}

func New(cfg *config.ApiCfg, loop Stopper, st *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.loop = loop
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.Stats = st
	return a
}

func (a *Api) Serve() error {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/kill", a.kill)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.Handle("/metrics", metrics.Handler())
	return a.srv.ListenAndServe()
}

func (a *Api) kill(w http.ResponseWriter, _ *http.Request) {
	slog.Info("shutting down as per api request", slog.String("module", "api"))
	a.loop.RequestStop()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		slog.Error(fmt.Sprintf("could not write response: %s", err), slog.String("module", "api"))
		return
	}
}

func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// ServeInBackground starts the debug server when the config asks for
// one. A nil config means no HTTP surface at all.
func ServeInBackground(cfg *config.ApiCfg, loop Stopper, st *stats.Stats) *Api {
	if cfg == nil {
		return nil
	}
	theApi := New(cfg, loop, st)

	slog.Info(fmt.Sprintf("starting debug server on %s", cfg.Bind), slog.String("module", "api"))
	go func() {
		err := theApi.Serve()
		if err != nil {
			slog.Error(fmt.Sprintf("could not start debug server: %s", err), slog.String("module", "api"))
		}
	}()
	return theApi
}
