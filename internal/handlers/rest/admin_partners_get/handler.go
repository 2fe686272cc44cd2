package admin_partners_get

import (
	"net/http"

	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/httpresponse"
)

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
	partners, err := h.service.Partners(r.Context())
	if err != nil {
		httpresponse.ServiceError(w, h.log, "list partners", err, nil)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.PartnersResponse{
		Success:  true,
		Partners: dto.NewPartnerList(partners),
	})
}
