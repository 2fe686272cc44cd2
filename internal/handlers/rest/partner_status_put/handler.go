package partner_status_put

import (
	"encoding/json"
	"net/http"

	"quickparcel/internal/dto"
	"quickparcel/internal/entities"
	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/partner"
	"quickparcel/pkg/logger"
)

var knownErrors = []httpresponse.Known{
	{Err: partner.ErrInvalidPartnerID, Status: http.StatusBadRequest},
	{Err: partner.ErrInvalidStatus, Status: http.StatusBadRequest},
	{Err: partner.ErrPartnerNotFound, Status: http.StatusNotFound},
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

	var statusDTO dto.PartnerStatusRequest
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		httpresponse.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.SetStatus(r.Context(), principal.Subject, entities.PartnerStatusType(statusDTO.Status))
	if err != nil {
		httpresponse.ServiceError(w, h.log, "set partner status", err, knownErrors)
		return
	}

	h.log.With(
		logger.NewField("partner_id", updated.ID),
		logger.NewField("status", updated.Status.String()),
	).Info("partner status changed")

	httpresponse.JSON(w, h.log, http.StatusOK, dto.PartnerStatusResponse{
		Success: true,
		Status:  updated.Status.String(),
	})
}
