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

// DemandHandler - обработчики CRUD по потребностям и подбор
// предложений под потребность.
type DemandHandler struct {
	createUC   usecases_port.CreateDemandUseCasePort
	updateUC   usecases_port.UpdateDemandUseCasePort
	deleteUC   usecases_port.DeleteDemandUseCasePort
	listUC     usecases_port.GetDemandsUseCasePort
	getUC      usecases_port.GetDemandByIDUseCasePort
	matchingUC usecases_port.FindMatchingOffersUseCasePort
}

func NewDemandHandler(
	createUC usecases_port.CreateDemandUseCasePort,
	updateUC usecases_port.UpdateDemandUseCasePort,
	deleteUC usecases_port.DeleteDemandUseCasePort,
	listUC usecases_port.GetDemandsUseCasePort,
	getUC usecases_port.GetDemandByIDUseCasePort,
	matchingUC usecases_port.FindMatchingOffersUseCasePort,
) *DemandHandler {
	return &DemandHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
		getUC:      getUC,
		matchingUC: matchingUC,
	}
}

// CreateDemand обрабатывает POST /api/v1/demands
func (h *DemandHandler) CreateDemand(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateDemand"})

	var req DemandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.toDomain(uuid.Nil))
	if err != nil {
		logger.Error("Create demand use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// UpdateDemand обрабатывает PUT /api/v1/demands/{demandID}
func (h *DemandHandler) UpdateDemand(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateDemand"})

	id, err := uuid.Parse(chi.URLParam(r, "demandID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid demand id")
		return
	}

	var req DemandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.updateUC.Execute(r.Context(), req.toDomain(id)); err != nil {
		logger.Error("Update demand use case failed", err, port.Fields{"demand_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, IDResponse{ID: id})
}

// DeleteDemand обрабатывает DELETE /api/v1/demands/{demandID}
func (h *DemandHandler) DeleteDemand(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteDemand"})

	id, err := uuid.Parse(chi.URLParam(r, "demandID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid demand id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		logger.Error("Delete demand use case failed", err, port.Fields{"demand_id": id})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetDemands обрабатывает GET /api/v1/demands
func (h *DemandHandler) GetDemands(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDemands"})

	demands, err := h.listUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get demands use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	response := make([]DemandResponse, len(demands))
	for i := range demands {
		response[i] = demandToResponse(&demands[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetDemandByID обрабатывает GET /api/v1/demands/{demandID}
func (h *DemandHandler) GetDemandByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDemandByID"})

	id, err := uuid.Parse(chi.URLParam(r, "demandID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid demand id")
		return
	}

	demand, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Get demand use case failed", err, port.Fields{"demand_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, demandToResponse(demand))
}

// GetMatchingOffers обрабатывает GET /api/v1/demands/{demandID}/matching-offers
func (h *DemandHandler) GetMatchingOffers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetMatchingOffers"})

	id, err := uuid.Parse(chi.URLParam(r, "demandID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid demand id")
		return
	}

	offers, err := h.matchingUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Find matching offers use case failed", err, port.Fields{"demand_id": id})
		WriteDomainError(w, err)
		return
	}

	response := make([]OfferResponse, len(offers))
	for i := range offers {
		response[i] = offerToResponse(&offers[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}
