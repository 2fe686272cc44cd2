package httpresponse

import (
	"encoding/json"
	"net/http"

	"quickparcel/internal/dto"
	"quickparcel/pkg/logger"
)

// JSON пишет тело ответа. body должен сам нести поле success.
func JSON(w http.ResponseWriter, log responseLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response",
			logger.NewField("error", err),
		)
	}
}

// Error ответ об ошибке в общем конверте {success:false, message}.
func Error(w http.ResponseWriter, log responseLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{
		Success: false,
		Message: message,
	})
}

// OK ответ без данных, только {success:true, message}.
func OK(w http.ResponseWriter, log responseLogger, message string) {
	JSON(w, log, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: message,
	})
}
