package bearer_auth

import (
	"net/http"

	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/httpresponse"
	"quickparcel/pkg/logger"
)

// Middleware пускает только запросы с валидным bearer-токеном нужной роли
// и кладёт Principal в контекст запроса.
func Middleware(log handlerLogger, parser TokenParser, role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.BearerToken(r)
			if err != nil {
				httpresponse.Error(w, log, http.StatusUnauthorized, "Not authenticated")
				return
			}

			principal, err := parser.Parse(token)
			if err != nil {
				log.Warn("rejected bearer token",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				)
				httpresponse.Error(w, log, http.StatusUnauthorized, "Not authenticated")
				return
			}

			if principal.Role != role {
				httpresponse.Error(w, log, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}
