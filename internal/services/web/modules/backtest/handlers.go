package backtest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/santiment/sanbase/internal/backtest"
	"github.com/santiment/sanbase/internal/services/web/module"
	apperrors "github.com/santiment/sanbase/internal/services/web/platform/errors"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/platform/pagerender"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/platform/weberror"
	"github.com/santiment/sanbase/internal/services/web/routepath"
	"github.com/santiment/sanbase/internal/services/web/templates"
)

const maxChartBody = 1 << 20

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleChart(w http.ResponseWriter, r *http.Request) {
	var req backtest.Request
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChartBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		weberror.WriteJSONError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, fmt.Errorf("decode chart request: %w", err)), h.deps)
		return
	}
	chart, err := req.Chart()
	if err != nil {
		weberror.WriteJSONError(w, r, classify(err), h.deps)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, chart)
}

func (h handlers) handleSample(w http.ResponseWriter, r *http.Request) {
	prop, err := backtest.ParsePriceProp(r.URL.Query().Get("prop"))
	if err != nil {
		weberror.WriteModuleError(w, r, classify(err), h.deps)
		return
	}
	sample := h.deps.Sample
	if len(sample.History) == 0 {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindNotFound, "no sample backtest"), h.deps)
		return
	}
	chart, err := sample.Chart(prop)
	if err != nil {
		weberror.WriteModuleError(w, r, classify(err), h.deps)
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	err = pagerender.WriteLocalizedPage(w, r, h.deps, loc, lang, pagerender.ModulePage{
		TitleKey: "title.backtest",
		Fragment: templates.BacktestPage(sample.Ticker, chart, loc),
	})
	if err != nil {
		log.Printf("render backtest sample request_id=%s err=%v", httpx.RequestIDOf(r), err)
	}
}

func (handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.BacktestSample, http.StatusFound)
}

func classify(err error) error {
	if errors.Is(err, backtest.ErrInvalidPriceProp) || errors.Is(err, backtest.ErrMissingPostTime) {
		return apperrors.Wrap(apperrors.KindInvalidInput, err)
	}
	return err
}
