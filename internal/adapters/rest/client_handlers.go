package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/port"
	"agency-service/internal/core/port/usecases_port"
)

// ClientHandler - обработчики CRUD по клиентам.
type ClientHandler struct {
	createUC usecases_port.CreateClientUseCasePort
	updateUC usecases_port.UpdateClientUseCasePort
	deleteUC usecases_port.DeleteClientUseCasePort
	listUC   usecases_port.GetClientsUseCasePort
	getUC    usecases_port.GetClientByIDUseCasePort
}

func NewClientHandler(
	createUC usecases_port.CreateClientUseCasePort,
	updateUC usecases_port.UpdateClientUseCasePort,
	deleteUC usecases_port.DeleteClientUseCasePort,
	listUC usecases_port.GetClientsUseCasePort,
	getUC usecases_port.GetClientByIDUseCasePort,
) *ClientHandler {
	return &ClientHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		getUC:    getUC,
	}
}

// CreateClient обрабатывает POST /api/v1/clients
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateClient"})

	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.toDomain(uuid.Nil))
	if err != nil {
		logger.Error("Create client use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// UpdateClient обрабатывает PUT /api/v1/clients/{clientID}
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateClient"})

	id, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.updateUC.Execute(r.Context(), req.toDomain(id)); err != nil {
		logger.Error("Update client use case failed", err, port.Fields{"client_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, IDResponse{ID: id})
}

// DeleteClient обрабатывает DELETE /api/v1/clients/{clientID}
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteClient"})

	id, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		logger.Error("Delete client use case failed", err, port.Fields{"client_id": id})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetClients обрабатывает GET /api/v1/clients?search=
func (h *ClientHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetClients"})

	clients, err := h.listUC.Execute(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		logger.Error("Get clients use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	response := make([]ClientResponse, len(clients))
	for i := range clients {
		response[i] = clientToResponse(&clients[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetClientByID обрабатывает GET /api/v1/clients/{clientID}
func (h *ClientHandler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetClientByID"})

	id, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	client, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Get client use case failed", err, port.Fields{"client_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, clientToResponse(client))
}
