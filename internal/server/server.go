// Package server hosts the contact page over HTTP.
//
// Every route that touches the controller runs behind one mutex, so events
// are handled one at a time and each completes before the next starts.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-contacts/pkg/controller"
	"github.com/goliatone/go-contacts/pkg/render"
	"github.com/goliatone/go-contacts/pkg/renderers/vanilla"
)

// FragmentHeader asks the delete route for a list fragment instead of a
// redirect. The bundled runtime script sends it with the value "list".
const FragmentHeader = "X-Contacts-Fragment"

type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderer replaces the HTML renderer. Its links must use the same base
// path as the server.
func WithRenderer(renderer render.PageRenderer) Option {
	return func(s *Server) {
		s.renderer = renderer
	}
}

// WithRenderOptions sets the options passed to every render call. Messages
// are filled per request.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(s *Server) {
		s.options = options
	}
}

// WithBasePath mounts every route under base, e.g. "/app".
func WithBasePath(base string) Option {
	return func(s *Server) {
		s.basePath = normalizeBasePath(base)
	}
}

// WithAssets replaces the filesystem served under /assets/.
func WithAssets(assets fs.FS) Option {
	return func(s *Server) {
		s.assets = assets
	}
}

// WithOpenAPI serves document as /openapi.json.
func WithOpenAPI(document []byte) Option {
	return func(s *Server) {
		s.openapi = append([]byte(nil), document...)
	}
}

// WithGracePeriod bounds how long Serve waits for in-flight requests.
func WithGracePeriod(grace time.Duration) Option {
	return func(s *Server) {
		if grace > 0 {
			s.grace = grace
		}
	}
}

// Server serves the page, the list fragment and the form events.
type Server struct {
	mu       sync.Mutex
	ctrl     *controller.Controller
	renderer render.PageRenderer
	options  render.RenderOptions
	basePath string
	assets   fs.FS
	openapi  []byte
	grace    time.Duration
	logger   *zap.Logger
}

// New builds a server around ctrl. Without WithRenderer it renders with the
// vanilla renderer mounted at the configured base path.
func New(ctrl *controller.Controller, opts ...Option) (*Server, error) {
	if ctrl == nil {
		return nil, errors.New("server: controller is required")
	}
	s := &Server{
		ctrl:   ctrl,
		assets: vanilla.AssetsFS(),
		grace:  5 * time.Second,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.renderer == nil {
		renderer, err := vanilla.New(
			vanilla.WithBasePath(s.basePath),
			vanilla.WithAssetsPath(s.basePath+"/assets"),
		)
		if err != nil {
			return nil, fmt.Errorf("server: default renderer: %w", err)
		}
		s.renderer = renderer
	}
	return s, nil
}

// Handler returns the routed handler wrapped in request logging and panic
// recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /contacts", s.handleList)
	mux.HandleFunc("POST /contacts", s.handleSubmit)
	mux.HandleFunc("GET /contacts/{id}/edit", s.handleEdit)
	mux.HandleFunc("POST /contacts/{id}/delete", s.handleDelete)
	mux.HandleFunc("POST /form/reset", s.handleReset)
	mux.HandleFunc("GET /openapi.json", s.handleOpenAPI)
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(s.assets)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var handler http.Handler = mux
	if s.basePath != "" {
		root := http.NewServeMux()
		root.Handle(s.basePath+"/", http.StripPrefix(s.basePath, mux))
		handler = root
	}
	return s.recovery(s.requestLog(handler))
}

// ListenAndServe listens on addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down within
// the grace period. It owns ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", zap.String("addr", ln.Addr().String()), zap.String("base", s.basePath+"/"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()

	s.logger.Info("shutting down", zap.Duration("grace", s.grace))
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	<-errCh
	return nil
}

func normalizeBasePath(base string) string {
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	if base != "" && base[0] != '/' {
		base = "/" + base
	}
	return base
}
