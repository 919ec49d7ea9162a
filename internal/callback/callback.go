package callback

import (
	"net/http"

	"github.com/MKhiriev/go-vault-keeper/internal/app"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
)

func (l *Listener) callback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	if query.Get("token") == "" && query.Get("user_id") == "" {
		log.Warn().Msg("redirect without login markers")
		_, _ = utils.WriteHTML(w, "Login failed", app.MsgLoginMissingParams, http.StatusBadRequest)
		return
	}

	select {
	case l.results <- query:
		log.Info().Bool("has_token", query.Get("token") != "").Msg("login redirect forwarded")
		_, _ = utils.WriteHTML(w, "Login complete", app.MsgLoginComplete, http.StatusOK)
	default:
		log.Warn().Msg("login redirect dropped, results channel is full")
		_, _ = utils.WriteHTML(w, "Login pending", app.MsgLoginBusy, http.StatusServiceUnavailable)
	}
}
