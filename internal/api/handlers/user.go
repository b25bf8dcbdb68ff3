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

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.userService.Create(r.Context(), &user)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			http.Error(w, "Username already taken", http.StatusConflict)
			return
		}
		log.Printf("ERROR [UserHandler.Create] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		h.writeUserError(w, "UserHandler.Get", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAll(r.Context())
	if err != nil {
		h.writeUserError(w, "UserHandler.GetAll", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

func (h *UserHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.userService.GetByName(r.Context(), username)
	if err != nil {
		h.writeUserError(w, "UserHandler.GetByName", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.userService.Update(r.Context(), id, &user)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			http.Error(w, "Username already taken", http.StatusConflict)
			return
		}
		h.writeUserError(w, "UserHandler.Update", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		h.writeUserError(w, "UserHandler.Delete", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *UserHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	basket, err := h.userService.GetBasket(r.Context(), id)
	if err != nil {
		h.writeUserError(w, "UserHandler.GetBasket", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(basket)
}

func (h *UserHandler) AddNeed(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	var need domain.Need
	if err := json.NewDecoder(r.Body).Decode(&need); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.AddNeed(r.Context(), id, &need)
	if err != nil {
		if errors.Is(err, service.ErrNeedInBasket) {
			http.Error(w, "Need already in basket", http.StatusConflict)
			return
		}
		h.writeUserError(w, "UserHandler.AddNeed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) EditCount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	count, err := strconv.Atoi(chi.URLParam(r, "count"))
	if err != nil {
		http.Error(w, "Invalid count", http.StatusBadRequest)
		return
	}

	var need domain.Need
	if err := json.NewDecoder(r.Body).Decode(&need); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.EditCount(r.Context(), id, &need, count)
	if err != nil {
		if errors.Is(err, service.ErrNeedNotInBasket) {
			http.Error(w, "Need not in basket", http.StatusNotFound)
			return
		}
		h.writeUserError(w, "UserHandler.EditCount", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) RemoveNeed(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	var need domain.Need
	if err := json.NewDecoder(r.Body).Decode(&need); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.RemoveNeed(r.Context(), id, &need)
	if err != nil {
		if errors.Is(err, service.ErrNeedNotInBasket) {
			http.Error(w, "Need not in basket", http.StatusNotFound)
			return
		}
		h.writeUserError(w, "UserHandler.RemoveNeed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// writeUserError maps the shared user/auth sentinels; operation-specific
// sentinels are handled at the call site before this.
func (h *UserHandler) writeUserError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	case errors.Is(err, service.ErrUnauthorized):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	default:
		log.Printf("ERROR [%s] %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
