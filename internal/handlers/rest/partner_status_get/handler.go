package partner_status_get

import (
	"net/http"

	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/partner"
)

var knownErrors = []httpresponse.Known{
	{Err: partner.ErrInvalidPartnerID, Status: http.StatusBadRequest},
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

	partnerEntity, err := h.service.GetPartner(r.Context(), principal.Subject)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "get partner status", err, knownErrors)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.PartnerStatusResponse{
		Success: true,
		Status:  partnerEntity.Status.String(),
	})
}
