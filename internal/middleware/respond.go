package middleware

import (
	"net/http"

	"github.com/forecast-service-result/internal/httputil"
)

func respondError(w http.ResponseWriter, status int, message string) {
	httputil.RespondError(w, status, message)
}
