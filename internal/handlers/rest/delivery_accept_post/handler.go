package delivery_accept_post

import (
	"net/http"
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
	{Err: delivery.ErrPartnerOffline, Status: http.StatusForbidden},
	{Err: delivery.ErrDeliveryNotFound, Status: http.StatusNotFound},
	{Err: delivery.ErrDeliveryNotAvailable, Status: http.StatusConflict},
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

	accepted, err := h.service.AcceptDelivery(r.Context(), principal.Subject, id)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "accept delivery", err, knownErrors)
		return
	}

	h.log.With(
		logger.NewField("delivery_id", accepted.ID),
		logger.NewField("partner_id", principal.Subject),
	).Info("delivery accepted")

	httpresponse.JSON(w, h.log, http.StatusOK, dto.DeliveryResponse{
		Success:  true,
		Delivery: dto.NewDelivery(accepted),
	})
}
