package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/textlabel/pkg/buildinfo"
	"github.com/matzehuels/textlabel/pkg/errors"
	pkgio "github.com/matzehuels/textlabel/pkg/io"
	"github.com/matzehuels/textlabel/pkg/observability"
	"github.com/matzehuels/textlabel/pkg/pipeline"
	"github.com/matzehuels/textlabel/pkg/render/sink"
)

const (
	// defaultAddr is the listen address of the layout service.
	defaultAddr = ":8080"

	// defaultMaxBody caps request documents at 1 MiB.
	defaultMaxBody = 1 << 20

	// requestIDHeader carries the request ID in both directions.
	requestIDHeader = "X-Request-ID"

	shutdownTimeout = 10 * time.Second
)

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

// serveCommand creates the serve command, which exposes the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve label layout and rendering over HTTP",
		Long: `Serve label layout and rendering over HTTP.

Endpoints:
  POST /v1/layout                       JSON document in, label descriptors out
  POST /v1/render?format=svg|json|png|pdf  JSON document in, rendered output out
  GET  /healthz                         liveness and version

Every response carries an X-Request-ID header; a client-supplied ID is echoed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, maxBody)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", defaultMaxBody, "maximum request body size in bytes")

	return cmd
}

// runServe listens on addr until ctx is cancelled, then shuts down gracefully.
func (c *CLI) runServe(ctx context.Context, addr string, maxBody int64) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(c.newRunner(), c.Logger, maxBody),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printInfo("Listening on %s", StyleHighlight.Render(addr))
	printKeyValue("Version", buildinfo.Version)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// =============================================================================
// Router
// =============================================================================

type server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	maxBody int64
}

// newServer builds the HTTP handler of the layout service.
func newServer(runner *pipeline.Runner, logger *log.Logger, maxBody int64) http.Handler {
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}
	s := &server{runner: runner, logger: logger, maxBody: maxBody}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})
	return r
}

// requestID assigns every request an ID and a logger carrying it.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := withLogger(r.Context(), s.logger.With("request_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := w.Header().Get(requestIDHeader)
		hooks := observability.Server()
		hooks.OnRequest(ctx, id, r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(ctx, id, r.Method, r.URL.Path, status, elapsed)
		loggerFromContext(ctx).Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed)
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	doc, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	labels, err := s.runner.LayoutDocument(ctx, doc, pipeline.Options{Logger: loggerFromContext(ctx)})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := sink.RenderJSON(labels, sink.WithJSONSize(doc.Width, doc.Height))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode layout"))
		return
	}
	w.Header().Set("Content-Type", contentTypes[pipeline.FormatJSON])
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	doc, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(ctx, doc, pipeline.Options{
		Formats:    []string{format},
		Background: r.URL.Query().Get("background"),
		Logger:     loggerFromContext(ctx),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

// decode reads a JSON label document from the request body.
func (s *server) decode(w http.ResponseWriter, r *http.Request) (*pkgio.Document, error) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	defer body.Close()
	return s.runner.Decode(r.Context(), body, pkgio.FormatJSON)
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError maps err to a status code: validation failures are 400,
// oversized bodies 413, a missing rasterizer 501, everything else 500.
func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.IsInvalid(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeUnsupported):
		status = http.StatusNotImplemented
	}

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		loggerFromContext(r.Context()).Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: string(code), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
