package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
	"agency-service/internal/core/port/usecases_port"
)

// DealHandler - обработчики по сделкам, включая расчет комиссий.
type DealHandler struct {
	createUC      usecases_port.CreateDealUseCasePort
	updateUC      usecases_port.UpdateDealUseCasePort
	deleteUC      usecases_port.DeleteDealUseCasePort
	listUC        usecases_port.GetDealsUseCasePort
	getUC         usecases_port.GetDealByIDUseCasePort
	commissionsUC usecases_port.ComputeDealCommissionsUseCasePort
}

func NewDealHandler(
	createUC usecases_port.CreateDealUseCasePort,
	updateUC usecases_port.UpdateDealUseCasePort,
	deleteUC usecases_port.DeleteDealUseCasePort,
	listUC usecases_port.GetDealsUseCasePort,
	getUC usecases_port.GetDealByIDUseCasePort,
	commissionsUC usecases_port.ComputeDealCommissionsUseCasePort,
) *DealHandler {
	return &DealHandler{
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		listUC:        listUC,
		getUC:         getUC,
		commissionsUC: commissionsUC,
	}
}

// CreateDeal обрабатывает POST /api/v1/deals
func (h *DealHandler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateDeal"})

	var req CreateDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DemandID == uuid.Nil || req.OfferID == uuid.Nil {
		WriteJSONError(w, http.StatusBadRequest, "demand_id and offer_id are required")
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.DemandID, req.OfferID)
	if err != nil {
		logger.Error("Create deal use case failed", err, port.Fields{
			"demand_id": req.DemandID,
			"offer_id":  req.OfferID,
		})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// UpdateDeal обрабатывает PUT /api/v1/deals/{dealID} -
// административная перепривязка demand/offer.
func (h *DealHandler) UpdateDeal(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateDeal"})

	id, err := uuid.Parse(chi.URLParam(r, "dealID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid deal id")
		return
	}

	var req UpdateDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DemandID == uuid.Nil || req.OfferID == uuid.Nil {
		WriteJSONError(w, http.StatusBadRequest, "demand_id and offer_id are required")
		return
	}

	deal := &domain.Deal{ID: id, DemandID: req.DemandID, OfferID: req.OfferID}
	if err := h.updateUC.Execute(r.Context(), deal); err != nil {
		logger.Error("Update deal use case failed", err, port.Fields{"deal_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, IDResponse{ID: id})
}

// DeleteDeal обрабатывает DELETE /api/v1/deals/{dealID}
func (h *DealHandler) DeleteDeal(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteDeal"})

	id, err := uuid.Parse(chi.URLParam(r, "dealID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid deal id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		logger.Error("Delete deal use case failed", err, port.Fields{"deal_id": id})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetDeals обрабатывает GET /api/v1/deals
func (h *DealHandler) GetDeals(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDeals"})

	deals, err := h.listUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get deals use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	response := make([]DealResponse, len(deals))
	for i := range deals {
		response[i] = dealToResponse(&deals[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetDealByID обрабатывает GET /api/v1/deals/{dealID}
func (h *DealHandler) GetDealByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDealByID"})

	id, err := uuid.Parse(chi.URLParam(r, "dealID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid deal id")
		return
	}

	deal, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Get deal use case failed", err, port.Fields{"deal_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, dealToResponse(deal))
}

// GetDealCommissions обрабатывает GET /api/v1/deals/{dealID}/commissions
func (h *DealHandler) GetDealCommissions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDealCommissions"})

	id, err := uuid.Parse(chi.URLParam(r, "dealID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid deal id")
		return
	}

	breakdown, err := h.commissionsUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Compute deal commissions use case failed", err, port.Fields{"deal_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, commissionsToResponse(breakdown))
}
