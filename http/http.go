package http

import (
	"net/http"

	"github.com/innermond/greet"
	"github.com/rs/zerolog"
)

func LogError(r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Msgf("[http] %s %s %s", r.Method, r.URL.Path, err)
}

func outputText(w http.ResponseWriter, r *http.Request, g *greet.Greeting) {
	w.Header().Set("Content-Type", g.ContentType)
	w.WriteHeader(g.Status)
	if _, err := w.Write(g.Body); err != nil {
		LogError(r, err)
	}
}
