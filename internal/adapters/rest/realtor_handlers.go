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

// RealtorHandler - обработчики CRUD по риэлторам.
type RealtorHandler struct {
	createUC usecases_port.CreateRealtorUseCasePort
	updateUC usecases_port.UpdateRealtorUseCasePort
	deleteUC usecases_port.DeleteRealtorUseCasePort
	listUC   usecases_port.GetRealtorsUseCasePort
	getUC    usecases_port.GetRealtorByIDUseCasePort
}

func NewRealtorHandler(
	createUC usecases_port.CreateRealtorUseCasePort,
	updateUC usecases_port.UpdateRealtorUseCasePort,
	deleteUC usecases_port.DeleteRealtorUseCasePort,
	listUC usecases_port.GetRealtorsUseCasePort,
	getUC usecases_port.GetRealtorByIDUseCasePort,
) *RealtorHandler {
	return &RealtorHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		getUC:    getUC,
	}
}

// CreateRealtor обрабатывает POST /api/v1/realtors
func (h *RealtorHandler) CreateRealtor(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateRealtor"})

	var req RealtorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.toDomain(uuid.Nil))
	if err != nil {
		logger.Error("Create realtor use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// UpdateRealtor обрабатывает PUT /api/v1/realtors/{realtorID}
func (h *RealtorHandler) UpdateRealtor(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateRealtor"})

	id, err := uuid.Parse(chi.URLParam(r, "realtorID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid realtor id")
		return
	}

	var req RealtorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.updateUC.Execute(r.Context(), req.toDomain(id)); err != nil {
		logger.Error("Update realtor use case failed", err, port.Fields{"realtor_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, IDResponse{ID: id})
}

// DeleteRealtor обрабатывает DELETE /api/v1/realtors/{realtorID}
func (h *RealtorHandler) DeleteRealtor(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteRealtor"})

	id, err := uuid.Parse(chi.URLParam(r, "realtorID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid realtor id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		logger.Error("Delete realtor use case failed", err, port.Fields{"realtor_id": id})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetRealtors обрабатывает GET /api/v1/realtors?search=
func (h *RealtorHandler) GetRealtors(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRealtors"})

	realtors, err := h.listUC.Execute(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		logger.Error("Get realtors use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	response := make([]RealtorResponse, len(realtors))
	for i := range realtors {
		response[i] = realtorToResponse(&realtors[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetRealtorByID обрабатывает GET /api/v1/realtors/{realtorID}
func (h *RealtorHandler) GetRealtorByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRealtorByID"})

	id, err := uuid.Parse(chi.URLParam(r, "realtorID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid realtor id")
		return
	}

	realtor, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Get realtor use case failed", err, port.Fields{"realtor_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, realtorToResponse(realtor))
}
