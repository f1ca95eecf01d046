package dashboard

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"spacex-dashboard/config"
	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

//go:embed templates/index.html
var templatesFS embed.FS

const shutdownTimeout = 5 * time.Second

// Server exposes the dashboard page and its update endpoint over HTTP.
// Every request is evaluated from scratch against the read-only dataset.
type Server struct {
	dataset  *models.Dataset
	registry *Registry
	theme    config.Theme
	logger   *utils.Logger
	page     *template.Template
}

// NewServer creates a Server for ds.
func NewServer(ds *models.Dataset, registry *Registry, theme config.Theme, logger *utils.Logger) (*Server, error) {
	page, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("dashboard: parse page template: %w", err)
	}
	if logger == nil {
		logger = utils.NewDiscardLogger()
	}
	return &Server{
		dataset:  ds,
		registry: registry,
		theme:    theme,
		logger:   logger,
		page:     page,
	}, nil
}

// Handler returns the routed, request-logging HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("POST /_dash-update-component", s.handleUpdate)
	mux.HandleFunc("GET /api/layout", s.handleLayout)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return s.logRequests(mux)
}

// Serve runs the server on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("dashboard: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type dropdownOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func siteOptions() []dropdownOption {
	opts := []dropdownOption{{Label: models.AllSites, Value: models.AllSites}}
	for _, site := range models.KnownSites {
		opts = append(opts, dropdownOption{Label: site, Value: site})
	}
	return opts
}

type sliderSpec struct {
	Min   int   `json:"min"`
	Max   int   `json:"max"`
	Step  int   `json:"step"`
	Marks []int `json:"marks"`
}

func payloadSlider() sliderSpec {
	slider := sliderSpec{Min: models.SliderMin, Max: models.SliderMax, Step: models.SliderStep}
	for m := models.SliderMin; m <= models.SliderMax; m += models.SliderStep {
		slider.Marks = append(slider.Marks, m)
	}
	return slider
}

type pageData struct {
	Theme    config.Theme
	Options  []dropdownOption
	Slider   sliderSpec
	Site     string
	Low      float64
	High     float64
	Figures  map[Output]Figure
	Pie      Output
	Scatter  Output
	Dropdown Input
	Range    Input
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sel, err := s.selectionFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := pageData{
		Theme:    s.theme,
		Options:  siteOptions(),
		Slider:   payloadSlider(),
		Site:     sel.Site,
		Low:      sel.Payload.Low,
		High:     sel.Payload.High,
		Figures:  s.figures(s.registry.EvaluateAll(s.dataset, sel)),
		Pie:      OutputProportion,
		Scatter:  OutputScatter,
		Dropdown: InputSite,
		Range:    InputPayload,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("[http] render page: %v", err)
	}
}

// selectionFromQuery seeds the initial selection from ?site=&low=&high=.
func (s *Server) selectionFromQuery(r *http.Request) (models.FilterSelection, error) {
	sel := models.DefaultSelection(s.dataset)
	q := r.URL.Query()

	if q.Has("site") {
		sel.Site = q.Get("site")
	}
	for key, dst := range map[string]*float64{"low": &sel.Payload.Low, "high": &sel.Payload.High} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return sel, fmt.Errorf("invalid %s %q", key, raw)
		}
		*dst = v
	}
	return sel, nil
}

type updateRequest struct {
	ChangedPropIDs []string `json:"changedPropIds"`
	Inputs         struct {
		Site    string    `json:"site"`
		Payload []float64 `json:"payload"`
	} `json:"inputs"`
}

type outputProps struct {
	Figure Figure `json:"figure"`
}

type updateResponse struct {
	Response map[Output]outputProps `json:"response"`
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if len(req.ChangedPropIDs) == 0 {
		writeError(w, http.StatusBadRequest, "changedPropIds is empty")
		return
	}
	changed := make([]Input, 0, len(req.ChangedPropIDs))
	for _, id := range req.ChangedPropIDs {
		in, err := ParseInput(id)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		changed = append(changed, in)
	}

	if len(req.Inputs.Payload) != 2 {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("payload must hold [low, high], got %d values", len(req.Inputs.Payload)))
		return
	}

	sel := models.FilterSelection{
		Site:    req.Inputs.Site,
		Payload: models.PayloadRange{Low: req.Inputs.Payload[0], High: req.Inputs.Payload[1]},
	}
	rendered := s.registry.Evaluate(s.dataset, sel, changed...)

	resp := updateResponse{Response: make(map[Output]outputProps, len(rendered))}
	for _, out := range rendered {
		resp.Response[out.Output] = outputProps{Figure: NewFigure(out.View, s.theme)}
	}
	writeJSON(w, http.StatusOK, resp)
}

type layoutResponse struct {
	Records       int                    `json:"records"`
	PayloadBounds models.PayloadRange    `json:"payloadBounds"`
	Sites         []dropdownOption       `json:"sites"`
	Slider        sliderSpec             `json:"slider"`
	Default       models.FilterSelection `json:"default"`
}

func (s *Server) handleLayout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, layoutResponse{
		Records:       s.dataset.Len(),
		PayloadBounds: s.dataset.PayloadBounds(),
		Sites:         siteOptions(),
		Slider:        payloadSlider(),
		Default:       models.DefaultSelection(s.dataset),
	})
}

func (s *Server) figures(rendered []Rendered) map[Output]Figure {
	out := make(map[Output]Figure, len(rendered))
	for _, r := range rendered {
		out[r.Output] = NewFigure(r.View, s.theme)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("[http] %s %s %d %v", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}
