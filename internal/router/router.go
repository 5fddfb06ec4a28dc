package router

import "net/http"

// 既定ルートのパス
const (
	PathHealth = "/healthz"
	PathRoot   = "/"
)

// WelcomeMessage はルートパスで返す挨拶メッセージ
const WelcomeMessage = "Welcome to the Parameta DevOps MVP"

// Response はルーティング結果
type Response struct {
	Status  int               // HTTPステータスコード
	Payload map[string]string // JSONとして返すペイロード
}

// HandlerFunc はパスに対するレスポンスを生成する関数
type HandlerFunc func(path string) Response

// Router はパスの完全一致でハンドラを選ぶルーティングテーブル
type Router struct {
	routes   map[string]HandlerFunc
	fallback HandlerFunc
}

// New は既定のルート (/healthz, /) を登録したRouterを作成する
func New() *Router {
	r := NewEmpty()
	r.Handle(PathHealth, Health)
	r.Handle(PathRoot, Welcome)
	return r
}

// NewEmpty はルート未登録のRouterを作成する
// 未登録のパスはすべて NotFound になる
func NewEmpty() *Router {
	return &Router{
		routes:   make(map[string]HandlerFunc),
		fallback: NotFound,
	}
}

// Handle はパスにハンドラを登録する
// 同じパスを再登録した場合は後勝ち
func (r *Router) Handle(path string, h HandlerFunc) {
	r.routes[path] = h
}

// Route はパスに対応するレスポンスを返す
func (r *Router) Route(path string) Response {
	if h, ok := r.routes[path]; ok {
		return h(path)
	}
	return r.fallback(path)
}

// Len は登録済みのパス数を返す
func (r *Router) Len() int {
	return len(r.routes)
}

var defaultRouter = New()

// Route は既定のRouterでパスを解決する
func Route(path string) Response {
	return defaultRouter.Route(path)
}

// Health はヘルスチェックのレスポンス
func Health(string) Response {
	return Response{Status: http.StatusOK, Payload: map[string]string{"status": "ok"}}
}

// Welcome はルートパスのレスポンス
func Welcome(string) Response {
	return Response{Status: http.StatusOK, Payload: map[string]string{"message": WelcomeMessage}}
}

// NotFound は未知のパスに対するレスポンス
func NotFound(string) Response {
	return Response{Status: http.StatusNotFound, Payload: map[string]string{"error": "not found"}}
}
