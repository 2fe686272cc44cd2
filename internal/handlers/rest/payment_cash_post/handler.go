package payment_cash_post

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/delivery"
	"quickparcel/internal/service/payment"
)

var knownErrors = []httpresponse.Known{
	{Err: payment.ErrInvalidDeliveryID, Status: http.StatusBadRequest},
	{Err: delivery.ErrDeliveryNotFound, Status: http.StatusNotFound},
	{Err: payment.ErrAlreadyPaid, Status: http.StatusConflict},
	{Err: payment.ErrNotPayable, Status: http.StatusConflict},
	{Err: payment.ErrPaymentConflict, Status: http.StatusConflict},
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

// ServeHTTP клиент выбирает оплату наличными курьеру.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["id"]))

	selected, err := h.service.SelectCash(r.Context(), id)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "select cash payment", err, knownErrors)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.DeliveryResponse{
		Success:  true,
		Delivery: dto.NewDelivery(selected),
	})
}
