package stories

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.StoriesPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.StoryPattern, h.handleStory)
}
