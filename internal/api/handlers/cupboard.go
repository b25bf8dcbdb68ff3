package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/service"
	"github.com/go-chi/chi/v5"
)

type CupboardHandler struct {
	cupboardService *service.CupboardService
}

func NewCupboardHandler(cupboardService *service.CupboardService) *CupboardHandler {
	return &CupboardHandler{cupboardService: cupboardService}
}

func (h *CupboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var need domain.Need
	if err := json.NewDecoder(r.Body).Decode(&need); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.cupboardService.Create(r.Context(), &need)
	if err != nil {
		if errors.Is(err, service.ErrNeedExists) {
			http.Error(w, "Need already exists", http.StatusConflict)
			return
		}
		h.writeNeedError(w, "CupboardHandler.Create", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

func (h *CupboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid need id", http.StatusBadRequest)
		return
	}

	var need domain.Need
	if err := json.NewDecoder(r.Body).Decode(&need); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.cupboardService.Update(r.Context(), id, &need)
	if err != nil {
		h.writeNeedError(w, "CupboardHandler.Update", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *CupboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid need id", http.StatusBadRequest)
		return
	}

	if err := h.cupboardService.Delete(r.Context(), id); err != nil {
		h.writeNeedError(w, "CupboardHandler.Delete", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *CupboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid need id", http.StatusBadRequest)
		return
	}

	need, err := h.cupboardService.Get(r.Context(), id)
	if err != nil {
		h.writeNeedError(w, "CupboardHandler.Get", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(need)
}

func (h *CupboardHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	needs, err := h.cupboardService.GetAll(r.Context())
	if err != nil {
		h.writeNeedError(w, "CupboardHandler.GetAll", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(needs)
}

// Search matches need names case-insensitively. An empty result still
// carries the array body, under a 404 status.
func (h *CupboardHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	needs, err := h.cupboardService.Search(r.Context(), name)
	if err != nil {
		h.writeNeedError(w, "CupboardHandler.Search", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if len(needs) == 0 {
		w.WriteHeader(http.StatusNotFound)
	}
	json.NewEncoder(w).Encode(needs)
}

func (h *CupboardHandler) writeNeedError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNeedNotFound):
		http.Error(w, "Need not found", http.StatusNotFound)
	case errors.Is(err, service.ErrUnauthorized):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	default:
		log.Printf("ERROR [%s] %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
