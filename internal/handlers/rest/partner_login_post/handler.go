package partner_login_post

import (
	"encoding/json"
	"net/http"

	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/partner"
	"quickparcel/pkg/logger"
)

var knownErrors = []httpresponse.Known{
	{Err: partner.ErrMissingRequiredFields, Status: http.StatusBadRequest},
	{Err: partner.ErrInvalidCredentials, Status: http.StatusUnauthorized},
}

type Handler struct {
	log     handlerLogger
	service Service
	issuer  TokenIssuer
}

func New(log handlerLogger, service Service, issuer TokenIssuer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		issuer:  issuer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		httpresponse.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	partnerEntity, err := h.service.Authenticate(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "authenticate partner", err, knownErrors)
		return
	}

	token, err := h.issuer.Issue(partnerEntity.ID, auth.RolePartner)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("issue partner token")
		httpresponse.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.PartnerLoginResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: int64(h.issuer.TTL().Seconds()),
		Partner:   dto.NewPartner(partnerEntity),
	})
}
