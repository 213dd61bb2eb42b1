package service

import (
	"errors"
	"net/http"

	"github.com/forecast-service-result/internal/httputil"
)

// HTTPStatus maps an ErrorKind to its corresponding HTTP status code.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindBusiness:
		return http.StatusBadRequest
	case KindDependency:
		return http.StatusBadGateway
	case KindServer:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the response for a service error.
func Respond(w http.ResponseWriter, svcErr Error) {
	httputil.RespondError(w, svcErr.Kind.HTTPStatus(), svcErr.Message)
}

// RespondError writes an appropriate HTTP error response for err.
// If err is a service.Error, its kind and message are used.
// Otherwise, it returns a generic 500.
func RespondError(w http.ResponseWriter, err error) {
	var svcErr Error
	if errors.As(err, &svcErr) {
		Respond(w, svcErr)
		return
	}
	httputil.RespondError(w, http.StatusInternalServerError, httputil.MessageInternal)
}
