package stop_deliver_post

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/delivery"
	"quickparcel/pkg/logger"
)

var knownErrors = []httpresponse.Known{
	{Err: delivery.ErrInvalidDeliveryID, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidPartnerID, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidStopNumber, Status: http.StatusBadRequest},
	{Err: delivery.ErrNotDeliveryOwner, Status: http.StatusForbidden},
	{Err: delivery.ErrDeliveryNotFound, Status: http.StatusNotFound},
	{Err: delivery.ErrStopNotFound, Status: http.StatusNotFound},
	{Err: delivery.ErrStopAlreadyDelivered, Status: http.StatusConflict},
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

	vars := mux.Vars(r)
	id := strings.ToUpper(strings.TrimSpace(vars["id"]))

	stopNumber, err := strconv.Atoi(vars["stop"])
	if err != nil {
		httpresponse.Error(w, h.log, http.StatusBadRequest, delivery.ErrInvalidStopNumber.Error())
		return
	}

	result, err := h.service.DeliverStop(r.Context(), principal.Subject, id, stopNumber)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "deliver stop", err, knownErrors)
		return
	}

	h.log.With(
		logger.NewField("delivery_id", result.DeliveryID),
		logger.NewField("stop_number", result.StopNumber),
		logger.NewField("delivery_completed", result.DeliveryCompleted),
	).Info("stop delivered")

	httpresponse.JSON(w, h.log, http.StatusOK, dto.StopDeliverResponse{
		Success:           true,
		Message:           "Stop marked as delivered",
		DeliveryID:        result.DeliveryID,
		StopNumber:        result.StopNumber,
		DeliveryCompleted: result.DeliveryCompleted,
	})
}
