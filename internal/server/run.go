package server

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"devopsmvp/internal/config"
	"devopsmvp/internal/logging"

	"github.com/sirupsen/logrus"
)

// RunOptions は Run の動作を調整する
type RunOptions struct {
	Overrides config.Overrides

	// LogOutput はログの出力先 (デフォルト: 標準エラー出力)
	LogOutput io.Writer
	// Logger が指定された場合は LogOutput と LOG_LEVEL より優先して使う
	Logger *logrus.Logger
	// OnListen はバインド後、受付開始前に呼ばれる
	OnListen func(addr *net.TCPAddr)
}

// Run は設定を読み込んでサーバーを起動し、割り込みシグナルか ctx のキャンセルで停止する
// 停止は正常終了として nil を返す。設定エラーとバインドエラーはそのまま返す
func Run(ctx context.Context, opts RunOptions) error {
	cfg, err := config.Load(opts.Overrides)
	if err != nil {
		return err
	}

	logger := opts.Logger
	if logger == nil {
		out := opts.LogOutput
		if out == nil {
			out = os.Stderr
		}
		logger = logging.New(out, cfg.Log.Level)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := Create(cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	addr := srv.Addr()
	logger.Infof("HTTPサーバーを起動しています: http://%s", addr)
	if opts.OnListen != nil {
		opts.OnListen(addr)
	}

	if err := srv.Serve(ctx); err != nil {
		return err
	}

	logger.Info("サーバーをシャットダウンしました")
	return nil
}
