package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/daisy/internal/catalog"
	"github.com/vango-dev/daisy/internal/config"
	"github.com/vango-dev/daisy/internal/errors"
	"github.com/vango-dev/daisy/internal/logging"
	"github.com/vango-dev/daisy/internal/site"
	"github.com/vango-dev/daisy/pkg/daisy"
	"github.com/vango-dev/daisy/pkg/middleware"
	"github.com/vango-dev/daisy/pkg/render"
	"github.com/vango-dev/daisy/pkg/vdom"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// Addr overrides the configured host and port.
	Addr string

	// Reload enables the live reload endpoint, client script and watcher.
	Reload bool

	// Registry receives the server's metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry

	// TracerProvider is used for request spans. The global provider is used when nil.
	TracerProvider trace.TracerProvider
}

// Server serves the gallery straight from the catalog.
type Server struct {
	mu      sync.RWMutex
	config  *config.Config
	catalog *catalog.Catalog

	options  Options
	log      zerolog.Logger
	registry *prometheus.Registry
	metrics  *middleware.Metrics
	hub      *Hub
	router   chi.Router
	now      func() time.Time
}

// New creates a preview server.
func New(cfg *config.Config, cat *catalog.Catalog, log zerolog.Logger, options Options) *Server {
	if options.Addr == "" {
		options.Addr = cfg.PreviewAddress()
	}
	registry := options.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	log = logging.Component(log, "preview")
	metrics := middleware.NewMetrics(middleware.WithRegistry(registry))
	s := &Server{
		config:   cfg,
		catalog:  cat,
		options:  options,
		log:      log,
		registry: registry,
		metrics:  metrics,
		hub:      NewHub(log, metrics),
		now:      time.Now,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	otelOpts := []middleware.OTelOption{middleware.WithTracerName("daisy/preview")}
	if s.options.TracerProvider != nil {
		otelOpts = append(otelOpts, middleware.WithTracerProvider(s.options.TracerProvider))
	}

	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(s.log))
	r.Use(s.metrics.Handler)
	r.Use(middleware.OpenTelemetry(otelOpts...))

	r.Get("/", s.handleIndex)
	r.Get("/components/{name}", s.handleComponent)
	r.Get("/components/{name}/demos/{demo}", s.handleDemo)
	r.Get("/api/components", s.handleAPIComponents)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	if s.options.Reload {
		r.Method(http.MethodGet, ReloadPath, s.hub)
	}
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the live reload hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.options.Addr
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully. The file watcher runs alongside when reload is enabled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.options.Addr)
	if err != nil {
		return errors.New("E401").WithDetail("listen on " + s.options.Addr).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	watchErr := make(chan error, 1)
	if s.options.Reload {
		w := s.newWatcher()
		go func() { watchErr <- w.Start(ctx) }()
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	s.log.Info().Str("addr", ln.Addr().String()).Bool("reload", s.options.Reload).Msg("preview server started")

	for running := true; running; {
		select {
		case <-ctx.Done():
			running = false
		case err := <-watchErr:
			// Pages are still served; only live reload is lost.
			if err != nil {
				s.log.Warn().Err(err).Msg("file watcher stopped, live reload disabled")
			}
		case err := <-serveErr:
			if err != nil && err != http.ErrServerClosed {
				return errors.New("E401").Wrap(err)
			}
			return nil
		}
	}

	s.hub.Close()
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("E401").WithDetail("shutdown").Wrap(err)
	}
	s.log.Info().Msg("preview server stopped")
	return nil
}

func (s *Server) newWatcher() *Watcher {
	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()

	w := NewWatcher(WatcherConfig{
		Paths:    cfg.WatchPaths(),
		Interval: cfg.Preview.PollInterval,
		Debounce: cfg.Preview.Debounce,
	})
	for _, p := range w.Missing() {
		s.log.Warn().Str("path", p).Msg("watch path does not exist yet")
	}
	w.OnChange(func(paths []string) {
		s.log.Info().Strs("paths", paths).Msg("change detected")
		_ = s.Refresh()
	})
	return w
}

// Refresh reloads the configuration and catalog. Browsers are told to
// reload on success and shown the error otherwise; the previous state is
// kept on failure.
func (s *Server) Refresh() error {
	s.mu.RLock()
	path := s.config.Path()
	s.mu.RUnlock()

	cfg := config.New()
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	}
	if err != nil {
		s.log.Error().Err(err).Msg("config reload failed")
		s.hub.NotifyError(overlayText(err))
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("catalog reload failed")
		s.hub.NotifyError(overlayText(err))
		return err
	}

	s.mu.Lock()
	s.config = cfg
	s.catalog = cat
	s.mu.Unlock()

	n := s.hub.NotifyReload()
	s.log.Debug().Int("clients", n).Msg("reload sent")
	return nil
}

// overlayText is the error shown in the browser overlay.
func overlayText(err error) string {
	de := errors.FromError(err, "E403")
	text := de.FormatCompact()
	if de.Detail != "" {
		text += "\n" + de.Detail
	}
	return text
}

func (s *Server) snapshot() (*config.Config, *catalog.Catalog) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.catalog
}

// pageOptions resolves ?theme= and builds links that keep it.
func (s *Server) pageOptions(r *http.Request, cfg *config.Config) (site.PageOptions, error) {
	opts := site.PageOptions{
		Site:  cfg.Site,
		Links: site.ServerLinks(nil),
		Year:  s.now().Year(),
	}

	if raw := r.URL.Query().Get("theme"); raw != "" {
		theme, ok := daisy.ParseThemeName(raw)
		if !ok {
			return opts, fmt.Errorf("unknown theme %q", raw)
		}
		opts.Theme = theme.String()
		opts.Links = site.ServerLinks(map[string][]string{"theme": {opts.Theme}})
	}

	if s.options.Reload {
		opts.Scripts = []render.ScriptTag{{Inline: ReloadScript}}
	}
	return opts, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	cfg, cat := s.snapshot()
	opts, err := s.pageOptions(r, cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writePage(w, "index", site.Document(opts, "", site.IndexPage(cat, opts)))
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	cfg, cat := s.snapshot()
	opts, err := s.pageOptions(r, cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := chi.URLParam(r, "name")
	body, err := site.ComponentPage(cat, name, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	entry, _ := cat.Get(name)
	s.writePage(w, name, site.Document(opts, entry.Title, body))
}

// handleDemo serves a single demo without the document shell.
func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	_, cat := s.snapshot()
	name, demo := chi.URLParam(r, "name"), chi.URLParam(r, "demo")

	start := time.Now()
	node, err := cat.RenderDemo(name, demo)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if raw := r.URL.Query().Get("theme"); raw != "" {
		theme, ok := daisy.ParseThemeName(raw)
		if !ok {
			http.Error(w, fmt.Sprintf("unknown theme %q", raw), http.StatusBadRequest)
			return
		}
		node = vdom.Div(vdom.Attribute("data-theme", theme.String()), node)
	}

	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		s.writeError(w, errors.New("E301").Wrap(err))
		return
	}
	s.metrics.ObserveRender(name+"/"+demo, time.Since(start))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

type componentJSON struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Parts       []string `json:"parts"`
	Demos       []string `json:"demos"`
	URL         string   `json:"url"`
}

func (s *Server) handleAPIComponents(w http.ResponseWriter, r *http.Request) {
	_, cat := s.snapshot()
	links := site.ServerLinks(nil)

	entries := cat.List()
	if q := r.URL.Query().Get("q"); q != "" {
		entries = cat.Search(q)
	}

	out := make([]componentJSON, 0, len(entries))
	for _, e := range entries {
		demos := make([]string, 0, len(e.Demos))
		for _, d := range e.Demos {
			demos = append(demos, d.Name)
		}
		out = append(out, componentJSON{
			Name:        e.Name,
			Title:       e.Title,
			Category:    e.Category,
			Description: e.Description,
			Parts:       e.Parts,
			Demos:       demos,
			URL:         links.Component(e.Name),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// writePage streams the document so the head reaches the browser before
// the body is rendered. A failure after the first flush can only be logged.
func (s *Server) writePage(w http.ResponseWriter, page string, data render.PageData) {
	start := time.Now()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.NewRenderer(render.RendererConfig{}).StreamPage(w, data); err != nil {
		s.log.Error().Err(err).Str("page", page).Msg("render failed")
		return
	}
	s.metrics.ObserveRender(page, time.Since(start))
}

// writeError maps catalog lookups to 404 and everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.Code(err) {
	case "E202", "E203":
		status = http.StatusNotFound
	default:
		s.log.Error().Err(err).Msg("request failed")
	}

	msg := err.Error()
	if de := errors.FromError(err, "E301"); de != nil && de.Detail != "" {
		msg += "\n" + de.Detail
	}
	http.Error(w, msg, status)
}
