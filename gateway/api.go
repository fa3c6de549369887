package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/fetidd/gateway/internal/obs"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// API is the HTTP surface for the gateway service.
type API struct {
	service *Service
	logger  *slog.Logger
}

func NewAPI(service *Service, logger *slog.Logger) *API {
	return &API{
		service: service,
		logger:  logger.With(slog.String("component", "api")),
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/transaction", a.postTransaction)
}

func (a *API) postTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, r, Validationf("invalid request body: %s", err))
		return
	}

	resp, gerr := a.service.Process(r.Context(), req)
	if gerr != nil {
		a.writeError(w, r, gerr)
		return
	}

	obs.ObserveTransaction("success")
	writeJSON(w, http.StatusCreated, resp)
}

// errorResponse is the failure envelope: a machine-readable kind plus a
// human message.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, gerr *Error) {
	status := http.StatusBadRequest
	message := gerr.Message
	outcome := "validation"
	switch gerr.Kind {
	case KindResource:
		status = http.StatusNotFound
		outcome = "resource"
	case KindFatal:
		// Internal detail stays in the logs; callers get a generic message.
		status = http.StatusInternalServerError
		outcome = "fatal"
		message = "internal error"
		a.logger.Error("fatal gateway error", slog.String("err", gerr.Message))
	}
	obs.ObserveTransaction(outcome)
	writeJSON(w, status, errorResponse{Error: gerr.Kind.Code(), Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
