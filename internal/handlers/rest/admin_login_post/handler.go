package admin_login_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/admin"
	"quickparcel/pkg/logger"
)

var knownErrors = []httpresponse.Known{
	{Err: admin.ErrMissingRequiredFields, Status: http.StatusBadRequest},
	{Err: admin.ErrInvalidCredentials, Status: http.StatusUnauthorized},
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

	err = h.service.Authenticate(loginDTO.Email, loginDTO.Password)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "authenticate admin", err, knownErrors)
		return
	}

	token, err := h.issuer.Issue(strings.ToLower(strings.TrimSpace(loginDTO.Email)), auth.RoleAdmin)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("issue admin token")
		httpresponse.Error(w, h.log, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.TokenResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: int64(h.issuer.TTL().Seconds()),
	})
}
