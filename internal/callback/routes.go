package callback

import (
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (l *Listener) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(l.withTraceID, l.withLogging)

	router.Get(models.LoginCallbackPath, l.callback)
	router.Get(models.OAuthCallbackPath, l.callback)

	return router
}
