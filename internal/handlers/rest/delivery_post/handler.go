package delivery_post

import (
	"encoding/json"
	"net/http"

	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/delivery"
	"quickparcel/internal/service/pricing"
)

var knownErrors = []httpresponse.Known{
	{Err: delivery.ErrMissingRequiredFields, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidName, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidAddress, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidPhone, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidEmail, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidWeight, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidParcelType, Status: http.StatusBadRequest},
	{Err: delivery.ErrTooManyStops, Status: http.StatusBadRequest},
	{Err: pricing.ErrMissingPickup, Status: http.StatusBadRequest},
	{Err: pricing.ErrMissingStops, Status: http.StatusBadRequest},
	{Err: pricing.ErrEmptyDropStop, Status: http.StatusBadRequest},
	{Err: pricing.ErrInvalidWeight, Status: http.StatusBadRequest},
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.DeliveryCreateRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		httpresponse.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateDelivery(r.Context(), createDTO.ToDomain())
	if err != nil {
		httpresponse.ServiceError(w, h.log, "create delivery", err, knownErrors)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusCreated, dto.DeliveryCreateResponse{
		Success:    true,
		DeliveryID: created.ID,
		TotalStops: created.TotalStops,
		Delivery:   dto.NewDelivery(created),
	})
}
