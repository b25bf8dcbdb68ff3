package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/beegood/ufund-api/internal/service"
	"github.com/go-chi/chi/v5"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Personalities(w http.ResponseWriter, r *http.Request) {
	personalities := h.chatService.Personalities()
	if len(personalities) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(personalities)
}

// Generate starts a chat for the user with the personality in the body.
func (h *ChatHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	var personality domain.ChatPersonality
	if err := json.NewDecoder(r.Body).Decode(&personality); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.chatService.Generate(r.Context(), id, personality); err != nil {
		if errors.Is(err, service.ErrChatExists) {
			http.Error(w, "Chat already exists", http.StatusConflict)
			return
		}
		h.writeChatError(w, "ChatHandler.Generate", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(id)
}

// Submit relays a plain-text message to the user's chat.
func (h *ChatHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	message, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	reply, err := h.chatService.Submit(r.Context(), id, string(message))
	if err != nil {
		h.writeChatError(w, "ChatHandler.Submit", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reply)
}

func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := h.chatService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(false)
			return
		}
		h.writeChatError(w, "ChatHandler.Delete", err)
		return
	}
	json.NewEncoder(w).Encode(true)
}

func (h *ChatHandler) Exists(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	exists, err := h.chatService.Exists(r.Context(), id)
	if err != nil {
		h.writeChatError(w, "ChatHandler.Exists", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(exists)
}

func (h *ChatHandler) writeChatError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrChatNotFound):
		http.Error(w, "Chat not found", http.StatusNotFound)
	case errors.Is(err, service.ErrChatUnavailable):
		http.Error(w, "Chat backend not configured", http.StatusServiceUnavailable)
	default:
		log.Printf("ERROR [%s] %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
