package partner_deliveries_get

import (
	"net/http"

	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/delivery"
)

var knownErrors = []httpresponse.Known{
	{Err: delivery.ErrInvalidPartnerID, Status: http.StatusBadRequest},
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

// ServeHTTP свои доставки партнёра и общая очередь свободных.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		httpresponse.Error(w, h.log, http.StatusUnauthorized, "Not authenticated")
		return
	}

	deliveries, err := h.service.PartnerDeliveries(r.Context(), principal.Subject)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "list partner deliveries", err, knownErrors)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.PartnerDeliveriesResponse{
		Success:   true,
		Assigned:  dto.NewDeliveryList(deliveries.Assigned),
		Available: dto.NewDeliveryList(deliveries.Available),
	})
}
