package partner_register_post

import (
	"encoding/json"
	"net/http"

	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/partner"
	"quickparcel/pkg/logger"
)

var knownErrors = []httpresponse.Known{
	{Err: partner.ErrMissingRequiredFields, Status: http.StatusBadRequest},
	{Err: partner.ErrInvalidName, Status: http.StatusBadRequest},
	{Err: partner.ErrInvalidPhone, Status: http.StatusBadRequest},
	{Err: partner.ErrInvalidEmail, Status: http.StatusBadRequest},
	{Err: partner.ErrInvalidVehicle, Status: http.StatusBadRequest},
	{Err: partner.ErrWeakPassword, Status: http.StatusBadRequest},
	{Err: partner.ErrConflict, Status: http.StatusConflict},
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
	var registerDTO dto.PartnerRegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		httpresponse.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.RegisterPartner(r.Context(), registerDTO.ToDomain())
	if err != nil {
		httpresponse.ServiceError(w, h.log, "register partner", err, knownErrors)
		return
	}

	h.log.With(
		logger.NewField("partner_id", created.ID),
	).Info("partner registered")

	httpresponse.JSON(w, h.log, http.StatusCreated, dto.PartnerRegisterResponse{
		Success:   true,
		Message:   "Registration successful",
		PartnerID: created.ID,
	})
}
