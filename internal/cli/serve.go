package cli

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/errors"
	"github.com/matzehuels/wordmark/pkg/pipeline"
	"github.com/matzehuels/wordmark/pkg/render/preview"
	"github.com/matzehuels/wordmark/pkg/render/variants"
)

const (
	defaultAddr     = "127.0.0.1:8740"
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// serveCommand runs a local preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags brandFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve live previews over HTTP",
		Long: `Serve the preview pages over HTTP. Query parameters override settings
keys per request, e.g. /?left=ACME&color_red=%23c00.

Routes:
  /                 gallery of all variants (?select=<variant> highlights one)
  /v/{variant}      single variant page
  /v/{variant}/svg  raw SVG document
  /api/catalog      rendered catalog as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			popts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, flags.cacheOpts)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           newPreviewServer(runner, popts, c.Logger).routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			printSuccess("Serving previews")
			printFile("http://" + addr + "/")
			printDetail("Press Ctrl+C to stop")
			return listenAndServe(ctx, srv)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}

// listenAndServe runs srv until ctx is canceled, then shuts it down.
func listenAndServe(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// previewServer renders pages on demand from a base set of options.
type previewServer struct {
	runner *pipeline.Runner
	base   pipeline.Options
	logger *log.Logger
}

func newPreviewServer(runner *pipeline.Runner, base pipeline.Options, logger *log.Logger) *previewServer {
	return &previewServer{runner: runner, base: base, logger: logger}
}

func (s *previewServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", s.handleGallery)
	r.Get("/v/{ref}", s.handleSingle)
	r.Get("/v/{ref}/svg", s.handleSVG)
	r.Get("/api/catalog", s.handleCatalog)
	return r
}

func (s *previewServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start))
	})
}

func (s *previewServer) handleGallery(w http.ResponseWriter, r *http.Request) {
	_, outs, err := s.render(r, nil)
	if err != nil {
		s.writeError(w, err)
		return
	}
	idx, err := selectedIndex(outs, r.URL.Query().Get("select"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeHTML(w, preview.Gallery(outs, idx))
}

func (s *previewServer) handleSingle(w http.ResponseWriter, r *http.Request) {
	out, err := s.renderOne(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeHTML(w, preview.Single(out.Label, out.SVG))
}

func (s *previewServer) handleSVG(w http.ResponseWriter, r *http.Request) {
	out, err := s.renderOne(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(out.SVG))
}

// catalogResponse is the body of /api/catalog.
type catalogResponse struct {
	Config   brand.Config      `json:"config"`
	Variants []variants.Output `json:"variants"`
}

func (s *previewServer) handleCatalog(w http.ResponseWriter, r *http.Request) {
	cfg, outs, err := s.render(r, nil)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(catalogResponse{Config: cfg, Variants: outs})
}

func (s *previewServer) renderOne(r *http.Request) (variants.Output, error) {
	v, err := variants.Default().Lookup(chi.URLParam(r, "ref"))
	if err != nil {
		return variants.Output{}, err
	}
	_, outs, err := s.render(r, []string{v.ID})
	if err != nil {
		return variants.Output{}, err
	}
	return outs[0], nil
}

// render applies the request's query overrides to the base options and
// renders the selection. A nil only keeps the base selection.
func (s *previewServer) render(r *http.Request, only []string) (brand.Config, []variants.Output, error) {
	opts, err := s.requestOptions(r)
	if err != nil {
		return brand.Config{}, nil, err
	}
	if only != nil {
		opts.Only = only
	}

	ctx := r.Context()
	cfg, warnings, err := s.runner.LoadConfig(ctx, opts)
	if err != nil {
		return brand.Config{}, nil, err
	}
	for _, w := range warnings {
		s.logger.Warn("query value ignored", "error", w)
	}
	outs, err := s.runner.Render(ctx, cfg, opts)
	return cfg, outs, err
}

// requestOptions copies the base options and layers query parameters on
// top. "preset" picks a preset; "select" is reserved for the gallery; every
// other parameter must be a settings key.
func (s *previewServer) requestOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.base
	overrides := maps.Clone(s.base.Overrides)
	if overrides == nil {
		overrides = map[string]any{}
	}
	keys := brand.Keys()
	for key, values := range r.URL.Query() {
		value := values[len(values)-1]
		switch {
		case key == "preset":
			opts.Preset = value
		case key == "select":
		case slices.Contains(keys, key):
			overrides[key] = value
		default:
			return opts, errors.New(errors.ErrCodeInvalidConfig, "unknown settings key %q", key)
		}
	}
	opts.Overrides = overrides
	return opts, nil
}

func (s *previewServer) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidVariant, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidPreset, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}
