package delivery_status_put

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"quickparcel/internal/dto"
	"quickparcel/internal/entities"
	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/delivery"
	"quickparcel/pkg/logger"
)

var knownErrors = []httpresponse.Known{
	{Err: delivery.ErrInvalidDeliveryID, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidPartnerID, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidStatus, Status: http.StatusBadRequest},
	{Err: delivery.ErrNotDeliveryOwner, Status: http.StatusForbidden},
	{Err: delivery.ErrDeliveryNotFound, Status: http.StatusNotFound},
	{Err: delivery.ErrStopsPending, Status: http.StatusConflict},
	{Err: delivery.ErrInvalidTransition, Status: http.StatusConflict},
	{Err: delivery.ErrDeliveryConflict, Status: http.StatusConflict},
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
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		httpresponse.Error(w, h.log, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["id"]))

	var statusDTO dto.DeliveryStatusRequest
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		httpresponse.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := entities.DeliveryStatusType(strings.ToLower(strings.TrimSpace(statusDTO.Status)))

	updated, err := h.service.UpdateDeliveryStatus(r.Context(), principal.Subject, id, status)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "update delivery status", err, knownErrors)
		return
	}

	h.log.With(
		logger.NewField("delivery_id", updated.ID),
		logger.NewField("status", updated.Status.String()),
	).Info("delivery status updated")

	httpresponse.JSON(w, h.log, http.StatusOK, dto.DeliveryResponse{
		Success:  true,
		Delivery: dto.NewDelivery(updated),
	})
}
