package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"sync/atomic"

	"devopsmvp/internal/config"
	"devopsmvp/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func init() {
	// GIN_MODE が指定されていなければデバッグ出力を抑止する
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// State はサーバーの状態
type State int32

// State の定数定義
const (
	StateIdle    State = iota // バインド済み、未受付
	StateRunning              // 接続受付中
	StateStopped              // 停止済み (再利用不可)
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	logger     *logrus.Logger
	listener   net.Listener
	httpServer *http.Server
	errorLog   *io.PipeWriter

	state     atomic.Int32
	closeOnce sync.Once
	closeErr  error
}

// Create はリッスンアドレスにバインドしたServerを作成する
// 接続の受付は Serve を呼ぶまで開始しない
func Create(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	addr := cfg.ServerAddress()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}

	handler := NewHandler(router.New(), cfg.Server.UnsupportedMethodStatus)
	errorLog := logger.WriterLevel(logrus.ErrorLevel)

	return &Server{
		config:   cfg,
		logger:   logger,
		listener: listener,
		errorLog: errorLog,
		httpServer: &http.Server{
			Handler:  NewEngine(handler, logger),
			ErrorLog: log.New(errorLog, "", 0),
		},
	}, nil
}

// CreateServer はホストとポートを解決してServerを作成する
// nil の引数は環境変数またはデフォルト値で補う
func CreateServer(host *string, port *int, logger *logrus.Logger) (*Server, error) {
	resolvedPort, err := config.ResolvePort(port)
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	cfg.Server.Host = config.ResolveHost(host)
	cfg.Server.Port = resolvedPort

	return Create(cfg, logger)
}

// Addr はバインドされたアドレスを返す
func (s *Server) Addr() *net.TCPAddr {
	return s.listener.Addr().(*net.TCPAddr)
}

// State は現在の状態を返す
func (s *Server) State() State {
	return State(s.state.Load())
}

// Serve は接続の受付を開始し、ctx がキャンセルされるまでブロックする
// 戻る前に必ずリスナーを閉じる
func (s *Server) Serve(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		if s.State() == StateStopped {
			return ErrServerClosed
		}
		return ErrServerRunning
	}
	defer s.Close()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("接続の受付に失敗: %w", err)
	}
}

// Close はリスナーと全接続を即座に閉じる
// 複数回呼んでも安全
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		s.state.Store(int32(StateStopped))

		err := s.httpServer.Close()
		// Serve 前に閉じた場合はリスナーが http.Server に渡っていない
		if lerr := s.listener.Close(); lerr != nil && !errors.Is(lerr, net.ErrClosed) {
			err = errors.Join(err, lerr)
		}
		_ = s.errorLog.Close()

		if err != nil {
			s.closeErr = fmt.Errorf("サーバーのクローズに失敗: %w", err)
		}
	})
	return s.closeErr
}
