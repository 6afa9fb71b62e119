package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"review-insights/analyze-svc/internal/domain"
	"review-insights/analyze-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analyses service.AnalyzeServiceInterface
}

func NewHandler(svc service.AnalyzeServiceInterface) *Handler {
	return &Handler{Analyses: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/analyze/{id}", h.getAnalysis).Methods("GET")
	r.NotFoundHandler = http.HandlerFunc(h.invalidEndpoint)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.invalidEndpoint)
}

func (h *Handler) getAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.Analyses.Get(mux.Vars(r)["id"])
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		writeJSONError(w, http.StatusBadRequest, "Invalid ID")
		return
	case errors.Is(err, domain.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "Restaurant not found")
		return
	case err != nil:
		log.Printf("ERROR: analysis lookup: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	setHeaders(w)
	w.WriteHeader(http.StatusOK)
	w.Write(analysis.Payload)
}

func (h *Handler) invalidEndpoint(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusNotFound, "Invalid endpoint")
}

func setHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	setHeaders(w)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
