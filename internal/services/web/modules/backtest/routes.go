package backtest

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.BacktestChart, h.handleChart)
	mux.HandleFunc(http.MethodGet+" "+routepath.BacktestChart, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.BacktestSample, h.handleSample)
	mux.HandleFunc(http.MethodGet+" "+routepath.BacktestPrefix+"{$}", h.handleIndex)
}
