package aztecfeed

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/0xsequence/aztekit/aztecfield"
	"github.com/go-chi/traceid"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/goware/logger"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Addr            string
	Path            string
	ShutdownTimeout time.Duration
}

var DefaultOptions = Options{
	Addr:            ":3002",
	Path:            "/ws",
	ShutdownTimeout: 5 * time.Second,
}

// Server holds the last published value and serves it over websocket.
type Server struct {
	log      logger.Logger
	opts     Options
	setter   Setter
	upgrader websocket.Upgrader

	setMu sync.Mutex
	mu    sync.RWMutex
	value aztecfield.Fr
}

func NewServer(log logger.Logger, setter Setter, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultOptions.Addr
	}
	if opts.Path == "" {
		opts.Path = DefaultOptions.Path
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultOptions.ShutdownTimeout
	}
	if log == nil {
		log = logger.NewLogger(logger.LogLevel_INFO)
	}
	return &Server{
		log:    log,
		opts:   opts,
		setter: setter,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Value returns the last value accepted by a set request.
func (s *Server) Value() aztecfield.Fr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.opts.Path, s.serveWS)
	return traceid.Middleware(mux)
}

// Run listens on opts.Addr until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Infof("aztecfeed: listening on %s%s", ln.Addr(), s.opts.Path)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnf("aztecfeed: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	traceID := traceid.FromContext(r.Context())
	s.log.Debugf("aztecfeed: conn %s opened (trace %s)", connID, traceID)

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warnf("aztecfeed: conn %s: %v", connID, err)
			}
			return
		}

		res := s.handle(r.Context(), connID, req)
		if err := conn.WriteJSON(res); err != nil {
			s.log.Warnf("aztecfeed: conn %s: write failed: %v", connID, err)
			return
		}
	}
}

func (s *Server) handle(ctx context.Context, connID string, req Request) Response {
	switch req.Action {
	case ActionSet:
		v, err := parseNumber(req.Value)
		if err != nil {
			return Response{Error: err.Error()}
		}

		s.setMu.Lock()
		defer s.setMu.Unlock()

		var txHash string
		if s.setter != nil {
			txHash, err = s.setter.Set(ctx, v)
			if err != nil {
				s.log.Errorf("aztecfeed: conn %s: set %s failed: %v", connID, v, err)
				return Response{Error: err.Error()}
			}
		}

		s.mu.Lock()
		s.value = v
		s.mu.Unlock()

		s.log.Infof("aztecfeed: conn %s: value set to %s", connID, v)
		return Response{Status: "ok", Value: numberOf(v), TxHash: txHash}

	case ActionGet:
		return Response{Value: numberOf(s.Value())}

	default:
		return Response{Error: "unknown action '" + req.Action + "'"}
	}
}
