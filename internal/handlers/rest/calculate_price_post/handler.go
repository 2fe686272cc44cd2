package calculate_price_post

import (
	"encoding/json"
	"net/http"

	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/pricing"
)

var knownErrors = []httpresponse.Known{
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
	var quoteDTO dto.PriceQuoteRequest
	err := json.NewDecoder(r.Body).Decode(&quoteDTO)
	if err != nil {
		httpresponse.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	breakdown, err := h.service.Quote(r.Context(), quoteDTO.ToDomain())
	if err != nil {
		httpresponse.ServiceError(w, h.log, "quote price", err, knownErrors)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.PriceQuoteResponse{
		Success:        true,
		PriceBreakdown: dto.NewPriceBreakdown(breakdown),
	})
}
