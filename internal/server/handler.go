package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"livechat/internal/chat"
)

type Handler struct {
	store  *Store
	logger *chat.Logger
}

func NewHandler(store *Store, logger *chat.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

type postBody struct {
	Message  string `json:"message"`
	ClientID string `json:"clientId"`
	SenderID string `json:"senderId"`
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	messages, err := h.store.List(r.Context(), clientID)
	if err != nil {
		h.logger.Error("list messages", map[string]interface{}{"client_id": clientID, "error": err.Error()})
		writeError(w, http.StatusInternalServerError, "could not load conversation")
		return
	}
	writeJSON(w, http.StatusOK, chat.Conversation{Messages: messages})
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var body postBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	body.Message = strings.TrimSpace(body.Message)
	if body.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if body.ClientID == "" {
		writeError(w, http.StatusBadRequest, "clientId is required")
		return
	}
	if body.SenderID == "" {
		body.SenderID = body.ClientID
	}

	msg, err := h.store.Append(r.Context(), body.ClientID, body.SenderID, body.Message)
	if err != nil {
		h.logger.Error("append message", map[string]interface{}{"client_id": body.ClientID, "error": err.Error()})
		writeError(w, http.StatusInternalServerError, "could not store message")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.store.Clients(r.Context())
	if err != nil {
		h.logger.Error("list clients", map[string]interface{}{"error": err.Error()})
		writeError(w, http.StatusInternalServerError, "could not list clients")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"clients": clients})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
