// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package api

import (
	"net/http"
	"net/http/pprof"

	"github.com/brainmark/extension-preflight/performance"
	"github.com/brainmark/extension-preflight/preflight"

	"github.com/gorilla/mux"
)

// api keeps track of the preflight API server state.
type api struct {
	cfg     *preflight.Config
	metrics *performance.Metrics
}

func (a *api) pprofIndexHandler(w http.ResponseWriter, r *http.Request) {
	html := `
		<html>
			<body>
				<div><a href="/debug/pprof/">Profiling Root</a></div>
				<div><a href="/debug/pprof/heap">Heap profile</a></div>
				<div><a href="/debug/pprof/profile">CPU profile</a></div>
				<div><a href="/debug/pprof/trace">Trace profile</a></div>
			</body>
		</html>
	`
	w.Write([]byte(html))
}

// SetupAPIRouter creates a router to handle preflight API requests.
func SetupAPIRouter(cfg *preflight.Config, metrics *performance.Metrics) *mux.Router {
	a := api{
		cfg:     cfg,
		metrics: metrics,
	}

	router := mux.NewRouter()

	// preflight API.
	r := router.PathPrefix("/preflight").Subrouter()
	r.HandleFunc("/run", a.runPreflightHandler).Methods("POST")
	r.HandleFunc("/checklist", a.getChecklistHandler).Methods("GET")

	// Debug endpoint.
	if cfg.APISettings.EnableProfiler {
		p := router.PathPrefix("/debug/pprof").Subrouter()
		p.HandleFunc("/", a.pprofIndexHandler).Methods("GET")
		p.Handle("/heap", pprof.Handler("heap")).Methods("GET")
		p.HandleFunc("/profile", pprof.Profile).Methods("GET")
		p.HandleFunc("/trace", pprof.Trace).Methods("GET")
	}

	// Metrics endpoint.
	router.Handle("/metrics", metrics.Handler())

	return router
}
