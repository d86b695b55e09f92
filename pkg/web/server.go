// Package web serves the estimation form, the data table and the history log over HTTP.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/StudioSol/set"
	"github.com/evanw/esbuild/pkg/api"
	"github.com/jpillora/backoff"
	"github.com/patrickmn/go-cache"
	"github.com/yorrLorenz/eggprice/pkg/core"
	"github.com/yorrLorenz/eggprice/pkg/logger"
)

// Static assets embedded in the binary
var (
	//go:embed assets
	staticFiles embed.FS
)

const (
	defaultPort    = 8080
	listenAttempts = 5
	historyRows    = 20
	curveSamples   = 60
	historyTTL     = 5 * time.Second
	historyKey     = "entries"
)

// ErrListen is returned by Start when the port stays busy after every retry
var ErrListen = errors.New("failed to listen")

// Estimator is the engine the web shell forwards queries to
type Estimator interface {
	Estimate(date time.Time, points int) (*core.Result, error)
	Series() *core.Series
	BaseDate() time.Time
}

// HistoryReader gives read access to the history log
type HistoryReader interface {
	Entries(filters ...core.HistoryFilter) ([]core.HistoryEntry, error)
}

// Server is the web shell over an Estimator
type Server struct {
	sync.Mutex
	port          int
	debug         bool
	estimator     Estimator
	history       HistoryReader
	historyCache  *cache.Cache
	generation    uint64
	metrics       *metrics
	selected      *set.LinkedHashSetINT64
	last          *core.Result
	scriptContent string
	indexHTML     *template.Template
	log           logger.Logger
}

// Option configures a Server
type Option func(*Server)

// WithPort sets the HTTP server port
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

// WithDebug disables script minification
func WithDebug() Option {
	return func(s *Server) {
		s.debug = true
	}
}

// WithHistory shows and exports the given history log
func WithHistory(history HistoryReader) Option {
	return func(s *Server) {
		s.history = history
	}
}

// NewServer creates a web shell with the provided options
func NewServer(estimator Estimator, log logger.Logger, options ...Option) (*Server, error) {
	server := &Server{
		port:         defaultPort,
		estimator:    estimator,
		selected:     set.NewLinkedHashSetINT64(),
		historyCache: cache.New(historyTTL, 2*historyTTL),
		metrics:      newMetrics(),
		log:          log,
	}

	for _, option := range options {
		option(server)
	}

	var err error
	server.indexHTML, err = template.ParseFS(staticFiles, "assets/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	appJS, err := staticFiles.ReadFile("assets/app.js")
	if err != nil {
		return nil, fmt.Errorf("failed to read app.js: %w", err)
	}

	transpiled := api.Transform(string(appJS), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifySyntax:      !server.debug,
		MinifyIdentifiers: !server.debug,
		MinifyWhitespace:  !server.debug,
	})

	if len(transpiled.Errors) > 0 {
		return nil, fmt.Errorf("app script failed with: %v", transpiled.Errors)
	}

	server.scriptContent = string(transpiled.Code)

	return server, nil
}

// Handler returns the routes of the web shell
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/assets/app.js", s.handleScript)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/history", s.handleHistory)
	mux.HandleFunc("/data", s.handleData)
	mux.Handle("/metrics", s.metrics.handler())
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

// Start serves the web shell until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	listener, err := s.listen(ctx)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				s.log.WithError(err).Error("Failed to shut down web server")
			}
		case <-done:
		}
	}()

	s.log.Infof("Web shell available at http://localhost:%d", s.port)

	if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// listen binds the port, retrying with exponential backoff while it is busy
func (s *Server) listen(ctx context.Context) (net.Listener, error) {
	b := &backoff.Backoff{
		Min:    200 * time.Millisecond,
		Max:    3 * time.Second,
		Factor: 2,
	}

	for {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
		if err == nil {
			b.Reset()
			return listener, nil
		}

		if int(b.Attempt())+1 >= listenAttempts {
			return nil, fmt.Errorf("%w on port %d: %v", ErrListen, s.port, err)
		}

		wait := b.Duration()
		s.log.WithError(err).Warnf("Port %d unavailable, retrying in %s", s.port, wait)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// remember keeps result as the one shown by /data and highlighted in the data table
func (s *Server) remember(result *core.Result) {
	s.Lock()
	defer s.Unlock()

	s.last = result
	s.generation++
	s.historyCache.Delete(historyKey)
	s.selected = set.NewLinkedHashSetINT64()
	for _, week := range result.Weeks {
		s.selected.Add(int64(week))
	}
}

// historyEntries reads the history log, keeping a copy for historyTTL.
// The copy is dropped whenever a new estimate is recorded, and a read that
// overlapped a recording is returned without being cached.
func (s *Server) historyEntries() ([]core.HistoryEntry, error) {
	if cached, ok := s.historyCache.Get(historyKey); ok {
		return cached.([]core.HistoryEntry), nil
	}

	s.Lock()
	generation := s.generation
	s.Unlock()

	entries, err := s.history.Entries()
	if err != nil {
		return nil, err
	}

	s.Lock()
	if s.generation == generation {
		s.historyCache.SetDefault(historyKey, entries)
	}
	s.Unlock()

	return entries, nil
}

func (s *Server) selectedWeeks() []int {
	s.Lock()
	defer s.Unlock()

	weeks := make([]int, 0)
	for week := range s.selected.Iter() {
		weeks = append(weeks, int(week))
	}
	return weeks
}

func (s *Server) lastResult() *core.Result {
	s.Lock()
	defer s.Unlock()
	return s.last
}
