// Package server exposes the renderer over HTTP.
//
// Routes:
//
//	GET    /render/card/{hash}    one card
//	GET    /render/fan/{hash}     a fan of cards
//	GET    /render/album/{hash}   an album of cards
//	DELETE /render/{name}         remove a saved render (only with an auth token)
//
// The hash is base64 JSON. Requests naming a save_name are answered from the
// result cache when possible and stored there after rendering. Every other
// path answers 418 with an empty body.
package server

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/maestro"
	"github.com/gogpu/maestro/internal/cache"
	intImage "github.com/gogpu/maestro/internal/image"
)

// X-Source values.
const (
	sourceRendered = "rendered on request"
	sourceDisk     = "loaded from disk cache"
	sourceMemory   = "loaded from memory cache"
)

// Renderer is the part of *maestro.Renderer the server uses.
type Renderer interface {
	RenderCard(req maestro.CardRequest, dl *maestro.Deadline) (*image.NRGBA, error)
	RenderFan(batch maestro.BatchRequest, dl *maestro.Deadline) (*image.NRGBA, error)
	RenderAlbum(batch maestro.BatchRequest, dl *maestro.Deadline) (*image.NRGBA, error)
}

// Config holds the request handling settings.
type Config struct {
	// RenderTimeout is the budget of every render request.
	RenderTimeout time.Duration

	// MaxBatch caps the number of cards in a fan or album. Zero means no cap.
	MaxBatch int

	// Compression is the PNG encoder level.
	Compression png.CompressionLevel

	// AuthToken enables DELETE /render/{name}. Empty disables the route.
	AuthToken string
}

// Server is an http.Handler serving renders.
type Server struct {
	renderer Renderer
	results  *cache.Results
	cfg      Config
	logger   *slog.Logger
	mux      *http.ServeMux
}

// New creates a Server. results may be nil to disable the result cache;
// logger may be nil to use maestro.Logger().
func New(renderer Renderer, results *cache.Results, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = maestro.Logger()
	}
	s := &Server{
		renderer: renderer,
		results:  results,
		cfg:      cfg,
		logger:   logger,
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /render/card/{hash...}", s.handleCard)
	s.mux.HandleFunc("GET /render/fan/{hash...}", s.handleBatch(renderer.RenderFan))
	s.mux.HandleFunc("GET /render/album/{hash...}", s.handleBatch(renderer.RenderAlbum))
	if cfg.AuthToken != "" {
		s.mux.HandleFunc("DELETE /render/{name}", s.handleRemove)
	}
	s.mux.HandleFunc("/", handleTeapot)

	return s
}

// ServeHTTP tags the request with an id, dispatches it and logs the outcome.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := uuid.NewString()
	w.Header().Set("X-Request-Id", id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)

	s.logger.Info("request",
		"id", id,
		"method", r.Method,
		"route", r.Pattern,
		"status", rec.status,
		"bytes", rec.written,
		"duration", time.Since(start))
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	dl := maestro.NewDeadline(s.cfg.RenderTimeout)

	req, saveName, err := decodeCard(r.PathValue("hash"))
	if err != nil {
		s.fail(w, err)
		return
	}

	s.serve(w, dl, saveName, func() (*image.NRGBA, error) {
		return s.renderer.RenderCard(req, dl)
	})
}

func (s *Server) handleBatch(layout func(maestro.BatchRequest, *maestro.Deadline) (*image.NRGBA, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dl := maestro.NewDeadline(s.cfg.RenderTimeout)

		batch, saveName, err := decodeBatch(r.PathValue("hash"), s.cfg.MaxBatch)
		if err != nil {
			s.fail(w, err)
			return
		}

		s.serve(w, dl, saveName, func() (*image.NRGBA, error) {
			return layout(batch, dl)
		})
	}
}

// serve answers from the result cache when saveName is stored there, and
// otherwise renders, encodes and stores the image.
func (s *Server) serve(w http.ResponseWriter, dl *maestro.Deadline, saveName string, render func() (*image.NRGBA, error)) {
	if saveName != "" && s.results != nil {
		data, src, err := s.results.Get(saveName)
		switch {
		case err != nil:
			s.logger.Warn("result cache lookup failed", "name", saveName, "err", err)
		case src == cache.FromMemory:
			s.writePNG(w, dl, data, sourceMemory)
			return
		case src == cache.FromDisk:
			s.writePNG(w, dl, data, sourceDisk)
			return
		}
	}

	img, err := render()
	if err != nil {
		s.fail(w, err)
		return
	}

	var buf bytes.Buffer
	if err := intImage.EncodePNG(&buf, img, s.cfg.Compression); err != nil {
		s.fail(w, err)
		return
	}
	if err := dl.Check("encode"); err != nil {
		s.fail(w, err)
		return
	}

	if saveName != "" && s.results != nil {
		if err := s.results.Put(saveName, buf.Bytes()); err != nil {
			s.logger.Warn("saving render failed", "name", saveName, "err", err)
		}
	}

	s.writePNG(w, dl, buf.Bytes(), sourceRendered)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AuthToken)) != 1 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if s.results == nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	name := r.PathValue("name")
	err := s.results.Remove(name)
	switch {
	case errors.Is(err, cache.ErrInvalidName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, cache.ErrNotFound):
		http.Error(w, "File not found", http.StatusNotFound)
	case err != nil:
		s.logger.Error("removing render failed", "name", name, "err", err)
		http.Error(w, "Cannot remove file", http.StatusInternalServerError)
	default:
		w.Write([]byte("Success"))
	}
}

func (s *Server) writePNG(w http.ResponseWriter, dl *maestro.Deadline, data []byte, source string) {
	h := w.Header()
	h.Set("Content-Type", "image/png")
	h.Set("Content-Length", strconv.Itoa(len(data)))
	h.Set("X-Processing-Time", processingTime(dl.Elapsed()))
	h.Set("X-Source", source)
	w.Write(data)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Warn("render failed", "status", status, "err", err)
	}
	http.Error(w, err.Error(), status)
}

func handleTeapot(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
}

// processingTime formats d as fractional milliseconds, e.g. "12.345ms".
func processingTime(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Microseconds())/1000, 'f', 3, 64) + "ms"
}

// statusRecorder captures the status code and body size for logging.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.written += n
	return n, err
}
