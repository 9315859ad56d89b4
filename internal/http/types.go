package http

import (
	"net/http"

	"github.com/mauv0809/touchline/internal/config"
	"github.com/mauv0809/touchline/internal/diag"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/mauv0809/touchline/internal/metrics"
	"github.com/mauv0809/touchline/internal/snapshot"
)

type Server struct {
	Engine         match.MatchEngine
	Snapshots      snapshot.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Ring           *diag.Ring
	Router         *http.ServeMux
}
