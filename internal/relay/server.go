package relay

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"urchat/internal/domain"
)

// Backend is what the relay daemon serves: any combined directory and relay
// implementation (redis in production, memory for development and tests).
type Backend interface {
	domain.Directory
	domain.Relay
}

// NewHandler serves the relay daemon's JSON API over backend.
func NewHandler(backend Backend, logger *logrus.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := backend.Ping(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /pubkey/{user}", func(w http.ResponseWriter, r *http.Request) {
		user := domain.Username(r.PathValue("user"))
		key, err := backend.GetPublicKey(r.Context(), user)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, domain.ErrNotFound) {
				status = http.StatusNotFound
			}
			http.Error(w, err.Error(), status)
			return
		}
		writeJSON(w, logger, pubkeyPayload{PublicKey: key.Slice()})
	})

	mux.HandleFunc("POST /pubkey/{user}", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		user := domain.Username(r.PathValue("user"))
		var payload pubkeyPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(payload.PublicKey) != 32 {
			http.Error(w, "bad public key encoding", http.StatusBadRequest)
			return
		}
		var key domain.PublicKey
		copy(key[:], payload.PublicKey)
		if err := backend.PutPublicKey(r.Context(), user, key); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		logger.WithField("user", user).Info("published public key")
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		users, err := backend.ListUsers(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if users == nil {
			users = []domain.Username{}
		}
		writeJSON(w, logger, users)
	})

	mux.HandleFunc("POST /msg/{user}", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var env domain.Envelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		env.To = domain.Username(r.PathValue("user"))
		if err := backend.Store(r.Context(), env); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		logger.WithFields(logrus.Fields{"from": env.From, "to": env.To}).Info("stored envelope")
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /msg/{user}", func(w http.ResponseWriter, r *http.Request) {
		user := domain.Username(r.PathValue("user"))
		var since int64
		if raw := r.URL.Query().Get("since"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "bad since parameter", http.StatusBadRequest)
				return
			}
			since = parsed
		}
		envelopes, err := backend.Fetch(r.Context(), user, since)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if envelopes == nil {
			envelopes = []domain.Envelope{}
		}
		writeJSON(w, logger, envelopes)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, logger *logrus.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Warn("write response failed")
	}
}
