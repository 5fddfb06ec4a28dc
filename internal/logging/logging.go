// Package logging はプロセス全体で共有するロガーを構築する
//
// ロガーはグローバル変数ではなく、起動処理で一度だけ作成して
// 必要なコンポーネントへ渡す。
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// levelAliases は logrus が解釈しないレベル名の別名
var levelAliases = map[string]logrus.Level{
	"critical": logrus.FatalLevel,
	"notset":   logrus.TraceLevel,
}

// ParseLevel はログレベル名を解釈する (大文字小文字は区別しない)
func ParseLevel(name string) (logrus.Level, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if lvl, ok := levelAliases[key]; ok {
		return lvl, nil
	}
	return logrus.ParseLevel(key)
}

// New は出力先とレベルを指定してロガーを作成する
// 不明なレベル名の場合は INFO を使い、警告を出力する
func New(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	lvl, err := ParseLevel(level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
		logger.WithError(err).Warnf("不明なログレベル %q のため INFO を使用します", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}

// RequestIDKey はgin.Contextに保存するリクエストIDのキー
const RequestIDKey = "request_id"

// AccessLog はリクエストごとのアクセスログをロガーへ出力するミドルウェア
// 標準出力へは直接書き込まない
func AccessLog(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set(RequestIDKey, requestID)

		c.Next()

		line := fmt.Sprintf("\"%s %s %s\" %d %d",
			c.Request.Method, c.Request.RequestURI, c.Request.Proto,
			c.Writer.Status(), c.Writer.Size())

		logger.WithFields(logrus.Fields{
			RequestIDKey: requestID,
			"latency":    time.Since(start).String(),
		}).Infof("%s - - %s", c.ClientIP(), line)
	}
}
