package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"devopsmvp/internal/jsonbody"
	"devopsmvp/internal/logging"
	"devopsmvp/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MVPHandler はすべてのリクエストを router に委譲するハンドラ
type MVPHandler struct {
	router            *router.Router
	unsupportedStatus int
}

// NewHandler は新しいMVPHandlerを作成する
// unsupportedStatus はGET以外のメソッドに返すステータス
func NewHandler(r *router.Router, unsupportedStatus int) *MVPHandler {
	return &MVPHandler{
		router:            r,
		unsupportedStatus: unsupportedStatus,
	}
}

// NewEngine はハンドラとミドルウェアを登録したginエンジンを作成する
func NewEngine(h *MVPHandler, logger logrus.FieldLogger) *gin.Engine {
	engine := gin.New()

	// パスは完全一致で扱うため、ginによる補正は無効化する
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false
	engine.HandleMethodNotAllowed = false

	engine.Use(
		logging.AccessLog(logger),
		gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
			logger.WithField("panic", err).Error("リクエスト処理中にパニックが発生しました")
			c.AbortWithStatus(http.StatusInternalServerError)
		}),
	)

	// 全パス・全メソッドを同じハンドラで受ける
	engine.Any("/*path", h.Handle)
	engine.NoRoute(h.Handle)

	return engine
}

// Handle はリクエストURIをルーティングしJSONを書き込む
func (h *MVPHandler) Handle(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		h.handleUnsupportedMethod(c)
		return
	}

	// クエリ文字列を含む生のリクエストURIで判定する
	resp := h.router.Route(c.Request.RequestURI)
	writeJSON(c, resp.Status, resp.Payload)
}

// handleUnsupportedMethod はGET以外のメソッドに応答する
func (h *MVPHandler) handleUnsupportedMethod(c *gin.Context) {
	if h.unsupportedStatus == http.StatusMethodNotAllowed {
		c.Header("Allow", http.MethodGet)
	}
	writeJSON(c, h.unsupportedStatus, map[string]string{
		"error": fmt.Sprintf("unsupported method (%s)", c.Request.Method),
	})
}

// writeJSON はステータス、Content-Type、Content-Length、ボディを書き込む
func writeJSON(c *gin.Context, status int, payload map[string]string) {
	body := jsonbody.Marshal(payload)
	c.Header("Content-Length", strconv.Itoa(len(body)))
	c.Data(status, jsonbody.ContentType, body)
}
