package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/innermond/greet"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
	"go.uber.org/atomic"
	"golang.org/x/sync/semaphore"
)

const (
	DefaultAddr = "localhost:8000"

	shutdownTimeout = 5 * time.Second

	// logged for requests whose client left before a response was written
	statusClientClosedRequest = 499
)

type Server struct {
	ln     net.Listener
	server *http.Server
	router *mux.Router
	sem    *semaphore.Weighted

	served      atomic.Int64
	unsupported atomic.Int64
	abandoned   atomic.Int64

	Addr string
	// MaxInFlight bounds how many requests are handled at once.
	// Zero or less means one at a time.
	MaxInFlight int64
	Logger      zerolog.Logger

	GreetingService greet.GreetingService
}

// Stats counts finished requests by outcome.
// Abandoned requests were dropped before any response was written.
type Stats struct {
	Served      int64
	Unsupported int64
	Abandoned   int64
}

func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
		router: mux.NewRouter().SkipClean(true),
		Addr:   DefaultAddr,
		Logger: zerolog.Nop(),
	}

	// reportPanic wraps everything else so its deferred recover runs last
	s.server.Handler = reportPanic(s.trackRequest(s.serialize(http.HandlerFunc(s.serveHTTP))))
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.handleUnsupportedMethod)

	s.registerGreetingRoutes(s.router)
	return s
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open binds the listener and serves in the background.
// A bind failure, such as an address already in use, is returned.
func (s *Server) Open() error {
	if err := s.listen(); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error().Err(err).Msg("[http] serve")
		}
	}()
	return nil
}

// ListenAndServe binds the listener and serves until the server is closed.
func (s *Server) ListenAndServe() error {
	if err := s.listen(); err != nil {
		return err
	}

	if err := s.server.Serve(s.ln); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) listen() (err error) {
	n := s.MaxInFlight
	if n <= 0 {
		n = 1
	}
	s.sem = semaphore.NewWeighted(n)

	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	s.Logger.Info().Msgf("Serving on %s", s.URL())
	return nil
}

// URL returns the base URL of the bound listener, keeping the configured host.
func (s *Server) URL() string {
	if s.ln == nil {
		return fmt.Sprintf("http://%s", s.Addr)
	}

	host, _, _ := net.SplitHostPort(s.Addr)
	boundHost, port, _ := net.SplitHostPort(s.ln.Addr().String())
	if host == "" {
		host = boundHost
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, port))
}

func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) Stats() Stats {
	return Stats{
		Served:      s.served.Load(),
		Unsupported: s.unsupported.Load(),
		Abandoned:   s.abandoned.Load(),
	}
}

func (s *Server) handleUnsupportedMethod(w http.ResponseWriter, r *http.Request) {
	Error(w, r, greet.Errorf(greet.ENOTIMPLEMENTED, "Unsupported method (%q)", r.Method))
}

func reportPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				zerolog.Ctx(r.Context()).Error().Msgf("[http] panic: %s %s %v", r.Method, r.URL.Path, err)
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(fmt.Errorf("panic: %v", err).Error()))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// trackRequest tags the request with an id and a logger carrying it,
// then logs and counts the outcome.
func (s *Server) trackRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ksuid.New()
		logger := s.Logger.With().Str("request_id", id.String()).Logger()

		ctx := greet.NewContextWithRequestID(r.Context(), id)
		r = r.WithContext(logger.WithContext(ctx))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		status := rec.status
		switch {
		case !rec.wrote:
			status = statusClientClosedRequest
			s.abandoned.Inc()
		case rec.status == http.StatusNotImplemented:
			s.unsupported.Inc()
		default:
			s.served.Inc()
		}

		logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("[http] request")
	})
}

// serialize lets at most MaxInFlight requests reach next at the same time.
func (s *Server) serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.sem.Acquire(r.Context(), 1); err != nil {
			// client went away while waiting
			return
		}
		defer s.sem.Release(1)

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.wrote = true
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.wrote = true
	return rec.ResponseWriter.Write(b)
}
