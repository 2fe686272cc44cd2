package payment_verify_post

import (
	"encoding/json"
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
	{Err: payment.ErrMissingRequiredFields, Status: http.StatusBadRequest},
	{Err: delivery.ErrInvalidDeliveryID, Status: http.StatusBadRequest},
	{Err: payment.ErrInvalidSignature, Status: http.StatusBadRequest},
	{Err: payment.ErrPaymentNotCaptured, Status: http.StatusBadRequest},
	{Err: payment.ErrAmountMismatch, Status: http.StatusBadRequest},
	{Err: delivery.ErrDeliveryNotFound, Status: http.StatusNotFound},
	{Err: payment.ErrAlreadyPaid, Status: http.StatusConflict},
	{Err: payment.ErrNotPayable, Status: http.StatusConflict},
	{Err: payment.ErrPaymentConflict, Status: http.StatusConflict},
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["id"]))

	var verifyDTO dto.PaymentVerifyRequest
	err := json.NewDecoder(r.Body).Decode(&verifyDTO)
	if err != nil {
		httpresponse.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	paid, err := h.service.ConfirmOnlinePayment(r.Context(), verifyDTO.ToDomain(id))
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSignature), errors.Is(err, payment.ErrAmountMismatch):
			h.log.Warn("payment verification rejected",
				logger.NewField("delivery_id", id),
				logger.NewField("order_id", verifyDTO.OrderID),
				logger.NewField("error", err),
			)
		case errors.Is(err, payment.ErrGatewayUnavailable):
			h.log.Warn("payment gateway unavailable",
				logger.NewField("delivery_id", id),
				logger.NewField("error", err),
			)
		}
		httpresponse.ServiceError(w, h.log, "confirm online payment", err, knownErrors)
		return
	}

	h.log.With(
		logger.NewField("delivery_id", paid.ID),
		logger.NewField("payment_id", verifyDTO.PaymentID),
	).Info("online payment confirmed")

	httpresponse.JSON(w, h.log, http.StatusOK, dto.DeliveryResponse{
		Success:  true,
		Delivery: dto.NewDelivery(paid),
	})
}
