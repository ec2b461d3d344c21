package http

import (
	"errors"
	"net/http"

	"github.com/innermond/greet"
	"github.com/rs/zerolog"
)

func Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := greet.ErrorCode(err), greet.ErrorMessage(err)
	deverr := err
	logit := false
	if werr := errors.Unwrap(err); werr != nil {
		deverr = werr
		logit = true
	}
	if code == greet.EINTERNAL || logit {
		zerolog.Ctx(r.Context()).Error().Msgf("[http] error: %s %s %s", r.Method, r.URL.Path, deverr)
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(errorStatusFromCode(code))
	w.Write([]byte(message))
}

var codes = map[string]int{
	greet.EINVALID:        http.StatusBadRequest,
	greet.ENOTIMPLEMENTED: http.StatusNotImplemented,
	greet.EINTERNAL:       http.StatusInternalServerError,
}

func errorStatusFromCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

func codeFromErrorStatus(status int) string {
	for k, v := range codes {
		if v == status {
			return k
		}
	}
	return greet.EINTERNAL
}
