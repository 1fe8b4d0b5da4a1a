package profile

import (
	"net/http"

	"github.com/vinylcourses/coursehub/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Profile, h.handleProfile)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{$}", h.handleProfile)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfileView, h.handleView)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProfileInterests, h.handleSaveInterests)
	mux.HandleFunc(routepath.ProfileRest, h.handleNotFound)
}
