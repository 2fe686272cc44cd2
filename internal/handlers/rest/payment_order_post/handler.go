package payment_order_post

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/delivery"
	"quickparcel/internal/service/payment"
	"quickparcel/pkg/logger"
)

var knownErrors = []httpresponse.Known{
	{Err: payment.ErrInvalidDeliveryID, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidDeliveryID, Status: http.StatusBadRequest},
	{Err: delivery.ErrDeliveryNotFound, Status: http.StatusNotFound},
	{Err: payment.ErrAlreadyPaid, Status: http.StatusConflict},
	{Err: payment.ErrNotPayable, Status: http.StatusConflict},
	{Err: payment.ErrInvalidAmount, Status: http.StatusConflict},
	{Err: payment.ErrGatewayUnavailable, Status: http.StatusBadGateway},
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

// ServeHTTP заводит заказ в платёжном шлюзе, клиент оплачивает его на стороне шлюза.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["id"]))

	order, err := h.service.CreateOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, payment.ErrGatewayUnavailable) {
			h.log.Warn("payment gateway unavailable",
				logger.NewField("delivery_id", id),
				logger.NewField("error", err),
			)
		}
		httpresponse.ServiceError(w, h.log, "create payment order", err, knownErrors)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.NewPaymentOrderResponse(order))
}
