package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) registerGreetingRoutes(router *mux.Router) {
	// path is ignored, every GET gets the greeting
	router.PathPrefix("/").HandlerFunc(s.handleGreeting).Methods("GET")
}

func (s *Server) handleGreeting(w http.ResponseWriter, r *http.Request) {
	g, err := s.GreetingService.Greeting(r.Context())
	if err != nil {
		Error(w, r, err)
		return
	}

	outputText(w, r, g)
}
