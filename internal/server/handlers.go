package server

import (
	"bytes"
	"image/png"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/piposter/piposter/pkg/pipeline"
)

const (
	defaultThumbWidth = 480
	maxThumbWidth     = 2000
)

var contentTypes = map[string]string{
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
	pipeline.FormatPDF: "application/pdf",
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// handlePoster renders the poster in one format. Query parameters:
//
//	labels=0|1   override config label drawing
//	overlay=0|1  toggle the pi glyph overlay
//	font=NAME    override the label font preset
func (s *Server) handlePoster(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := s.run(r, format)
		if err != nil {
			s.logger.Error("render failed", "format", format, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("X-Run-Id", res.RunID)
		_, _ = w.Write(res.Artifacts[format])
	}
}

// handleThumb renders a PNG and downscales it. Query parameter w sets
// the thumbnail width in pixels.
func (s *Server) handleThumb(w http.ResponseWriter, r *http.Request) {
	width := defaultThumbWidth
	if v := r.URL.Query().Get("w"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxThumbWidth {
			http.Error(w, "invalid width", http.StatusBadRequest)
			return
		}
		width = n
	}

	res, err := s.run(r, pipeline.FormatPNG)
	if err != nil {
		s.logger.Error("render failed", "format", "thumb", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	img, err := png.Decode(bytes.NewReader(res.Artifacts[pipeline.FormatPNG]))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Run-Id", res.RunID)
	_, _ = w.Write(buf.Bytes())
}

// run executes the pipeline for one request.
func (s *Server) run(r *http.Request, format string) (*pipeline.Result, error) {
	cfg := s.cfg
	q := r.URL.Query()
	if v := q.Get("labels"); v != "" {
		cfg.Labels.Draw = v == "1" || v == "true"
	}
	if v := q.Get("font"); v != "" {
		cfg.Labels.Font = v
	}

	opts := pipeline.Options{
		Config:  cfg,
		Formats: []string{format},
		Logger:  s.logger,
	}
	if v := q.Get("overlay"); v != "" {
		opts.Overlay = v == "1" || v == "true"
	}

	return s.runner.Execute(r.Context(), opts)
}
