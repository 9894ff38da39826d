package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
	"agency-service/internal/core/port/usecases_port"
)

// PropertyHandler - обработчики CRUD по объектам недвижимости.
type PropertyHandler struct {
	createUC usecases_port.CreatePropertyUseCasePort
	updateUC usecases_port.UpdatePropertyUseCasePort
	deleteUC usecases_port.DeletePropertyUseCasePort
	listUC   usecases_port.GetPropertiesUseCasePort
	getUC    usecases_port.GetPropertyByIDUseCasePort
}

func NewPropertyHandler(
	createUC usecases_port.CreatePropertyUseCasePort,
	updateUC usecases_port.UpdatePropertyUseCasePort,
	deleteUC usecases_port.DeletePropertyUseCasePort,
	listUC usecases_port.GetPropertiesUseCasePort,
	getUC usecases_port.GetPropertyByIDUseCasePort,
) *PropertyHandler {
	return &PropertyHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		getUC:    getUC,
	}
}

// CreateProperty обрабатывает POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.toDomain(uuid.Nil))
	if err != nil {
		logger.Error("Create property use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// UpdateProperty обрабатывает PUT /api/v1/properties/{propertyID}
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	id, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.updateUC.Execute(r.Context(), req.toDomain(id)); err != nil {
		logger.Error("Update property use case failed", err, port.Fields{"property_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, IDResponse{ID: id})
}

// DeleteProperty обрабатывает DELETE /api/v1/properties/{propertyID}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	id, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		logger.Error("Delete property use case failed", err, port.Fields{"property_id": id})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetProperties обрабатывает GET /api/v1/properties с фильтрами
// type, city, street, near_lat, near_lon.
func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperties"})

	filter, err := parsePropertyFilter(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	properties, err := h.listUC.Execute(r.Context(), filter)
	if err != nil {
		logger.Error("Get properties use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	response := make([]PropertyResponse, len(properties))
	for i := range properties {
		response[i] = propertyToResponse(&properties[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func parsePropertyFilter(r *http.Request) (port.PropertyFilter, error) {
	var filter port.PropertyFilter
	q := r.URL.Query()

	if v := q.Get("type"); v != "" {
		t := domain.PropertyType(v)
		if !t.IsValid() {
			return filter, domain.ErrInvalidPropertyType
		}
		filter.Type = &t
	}
	if v := q.Get("city"); v != "" {
		filter.City = &v
	}
	if v := q.Get("street"); v != "" {
		filter.Street = &v
	}
	// Фильтр близости требует обоих параметров.
	latStr, lonStr := q.Get("near_lat"), q.Get("near_lon")
	if latStr != "" || lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return filter, domain.ErrInvalidCoordinates
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return filter, domain.ErrInvalidCoordinates
		}
		filter.NearLat = &lat
		filter.NearLon = &lon
	}
	return filter, nil
}

// GetPropertyByID обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyByID"})

	id, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		logger.Error("Get property use case failed", err, port.Fields{"property_id": id})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, propertyToResponse(property))
}
