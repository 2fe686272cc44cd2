package delivery_get

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/delivery"
)

var knownErrors = []httpresponse.Known{
	{Err: delivery.ErrInvalidDeliveryID, Status: http.StatusBadRequest},
	{Err: delivery.ErrDeliveryNotFound, Status: http.StatusNotFound},
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

// ServeHTTP публичное отслеживание по номеру, регистр номера не важен.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["id"]))

	deliveryEntity, err := h.service.TrackDelivery(r.Context(), id)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "track delivery", err, knownErrors)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.DeliveryResponse{
		Success:  true,
		Delivery: dto.NewDelivery(deliveryEntity),
	})
}
