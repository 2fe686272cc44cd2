package httpresponse

import (
	"errors"
	"net/http"

	"quickparcel/pkg/logger"
)

// Known доменная ошибка и код, которым она уходит клиенту.
type Known struct {
	Err    error
	Status int
}

// ServiceError отвечает кодом первой совпавшей ошибки из known, текст берётся из неё же,
// без обёрток сервисного слоя. Остальное логируется и уходит как 500.
func ServiceError(w http.ResponseWriter, log responseLogger, op string, err error, known []Known) {
	for _, k := range known {
		if errors.Is(err, k.Err) {
			Error(w, log, k.Status, k.Err.Error())
			return
		}
	}

	log.Error(op,
		logger.NewField("error", err),
	)
	Error(w, log, http.StatusInternalServerError, "Internal server error")
}
