package cash_confirm_post

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/delivery"
	"quickparcel/internal/service/payment"
	"quickparcel/pkg/logger"
)

var knownErrors = []httpresponse.Known{
	{Err: payment.ErrMissingRequiredFields, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidDeliveryID, Status: http.StatusBadRequest},
	{Err: payment.ErrNotDeliveryOwner, Status: http.StatusForbidden},
	{Err: delivery.ErrDeliveryNotFound, Status: http.StatusNotFound},
	{Err: payment.ErrAlreadyPaid, Status: http.StatusConflict},
	{Err: payment.ErrNotCashPayment, Status: http.StatusConflict},
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

// ServeHTTP партнёр подтверждает получение наличных, доставка закрывается.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		httpresponse.Error(w, h.log, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["id"]))

	completed, err := h.service.ConfirmCash(r.Context(), principal.Subject, id)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "confirm cash payment", err, knownErrors)
		return
	}

	h.log.With(
		logger.NewField("delivery_id", completed.ID),
		logger.NewField("amount", completed.TotalAmount.String()),
	).Info("cash payment confirmed")

	httpresponse.JSON(w, h.log, http.StatusOK, dto.DeliveryResponse{
		Success:  true,
		Delivery: dto.NewDelivery(completed),
	})
}
