package admin_deliveries_get

import (
	"net/http"
	"strconv"

	"quickparcel/internal/dto"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/internal/service/admin"
)

var knownErrors = []httpresponse.Known{
	{Err: admin.ErrInvalidLimit, Status: http.StatusBadRequest},
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

// ServeHTTP лента последних доставок, ?limit=N.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpresponse.Error(w, h.log, http.StatusBadRequest, admin.ErrInvalidLimit.Error())
			return
		}
		limit = parsed
	}

	deliveries, err := h.service.RecentDeliveries(r.Context(), limit)
	if err != nil {
		httpresponse.ServiceError(w, h.log, "list recent deliveries", err, knownErrors)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.NewDeliveriesOverviewResponse(deliveries))
}
