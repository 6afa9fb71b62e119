package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"review-insights/dashboard-svc/internal/domain"
	"review-insights/dashboard-svc/internal/render"
	"review-insights/dashboard-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Pages    service.PageServiceInterface
	Renderer *render.Renderer
}

func NewHandler(pages service.PageServiceInterface, renderer *render.Renderer) *Handler {
	return &Handler{
		Pages:    pages,
		Renderer: renderer,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/", h.listing).Methods("GET")
	r.HandleFunc("/restaurant/{id}", h.openView).Methods("GET")
	r.HandleFunc("/restaurant/{id}/qrcode", h.qrCode).Methods("GET")
	r.HandleFunc("/views/{viewID}", h.renderView).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "dashboard-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) listing(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, http.StatusOK, h.Pages.Listing())
}

func (h *Handler) openView(w http.ResponseWriter, r *http.Request) {
	variant := r.URL.Query().Get("variant")
	view, err := h.Pages.OpenView(r.Context(), mux.Vars(r)["id"], variant)
	if err != nil {
		h.writeError(w, domain.Variant(variant), err)
		return
	}
	http.Redirect(w, r, "/views/"+view.ID, http.StatusSeeOther)
}

func (h *Handler) renderView(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := h.Pages.Render(r.Context(), service.RenderRequest{
		ViewID:        mux.Vars(r)["viewID"],
		Issue:         query.Get("issue"),
		FilterChanged: query.Has("issue"),
	})
	if err != nil {
		h.writeError(w, "", err)
		return
	}
	h.writePage(w, http.StatusOK, page)
}

func (h *Handler) qrCode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}
	png, err := h.Pages.QRCode(id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// writeError maps a composer error onto a status page. Nothing partial is
// ever shown: the whole body is replaced by one message.
func (h *Handler) writeError(w http.ResponseWriter, variant domain.Variant, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, domain.ErrInvalidVariant):
		h.writePage(w, http.StatusNotFound, render.MessagePage(variant, render.InvalidIDText, "muted"))
	case errors.Is(err, domain.ErrRecordNotFound):
		h.writePage(w, http.StatusNotFound, render.MessagePage(variant, render.NotFoundText, "muted"))
	case errors.Is(err, domain.ErrViewNotFound):
		h.writePage(w, http.StatusNotFound, render.MessagePage(variant, render.ExpiredText, "muted"))
	case errors.Is(err, domain.ErrFetchFailed), errors.Is(err, domain.ErrMalformedRecord):
		h.writePage(w, http.StatusBadGateway, render.MessagePage(variant, render.FailureText, "error"))
	default:
		log.Printf("ERROR: %v", err)
		h.writePage(w, http.StatusInternalServerError, render.MessagePage(variant, render.FailureText, "error"))
	}
}

func (h *Handler) writePage(w http.ResponseWriter, status int, page render.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.Renderer.Render(w, page); err != nil {
		log.Printf("ERROR: render %q: %v", page.Title, err)
	}
}
