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

// OfferHandler - обработчики CRUD по предложениям.
type OfferHandler struct {
	createUC usecases_port.CreateOfferUseCasePort
	updateUC usecases_port.UpdateOfferUseCasePort
	deleteUC usecases_port.DeleteOfferUseCasePort
	listUC   usecases_port.GetOffersUseCasePort
	getUC    usecases_port.GetOfferByIDUseCasePort
}

func NewOfferHandler(
	createUC usecases_port.CreateOfferUseCasePort,
	updateUC usecases_port.UpdateOfferUseCasePort,
	deleteUC usecases_port.DeleteOfferUseCasePort,
	listUC usecases_port.GetOffersUseCasePort,
	getUC usecases_port.GetOfferByIDUseCasePort,
) *OfferHandler {
	return &OfferHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		getUC:    getUC,
	}
}

// CreateOffer обрабатывает POST /api/v1/offers
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateOffer"})

	var req OfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.toDomain(uuid.Nil))
	if err != nil {
		logger.Error("Create offer use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// UpdateOffer обрабатывает PUT /api/v1/offers/{offerID}
func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateOffer"})

	id, err := uuid.Parse(chi.URLParam(r, "offerID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid offer id")
		return
	}

	var req OfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.updateUC.Execute(r.Context(), req.toDomain(id)); err != nil {
		logger.Error("Update offer use case failed", err, port.Fields{"offer_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, IDResponse{ID: id})
}

// DeleteOffer обрабатывает DELETE /api/v1/offers/{offerID}
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteOffer"})

	id, err := uuid.Parse(chi.URLParam(r, "offerID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid offer id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		logger.Error("Delete offer use case failed", err, port.Fields{"offer_id": id})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetOffers обрабатывает GET /api/v1/offers
func (h *OfferHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetOffers"})

	offers, err := h.listUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get offers use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	response := make([]OfferResponse, len(offers))
	for i := range offers {
		response[i] = offerToResponse(&offers[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetOfferByID обрабатывает GET /api/v1/offers/{offerID}
func (h *OfferHandler) GetOfferByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetOfferByID"})

	id, err := uuid.Parse(chi.URLParam(r, "offerID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid offer id")
		return
	}

	offer, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Get offer use case failed", err, port.Fields{"offer_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, offerToResponse(offer))
}
