// Package server は、HTTPサーバーの起動と停止を管理します。
//
// このパッケージは、設定の解決、リスニングソケットのバインド、
// リクエストのルーティングとJSONレスポンスの書き込みを担当します。
//
// 責務:
//   - 設定からリッスンアドレスを決定しソケットをバインドする
//   - 受け付けたGETリクエストを router に渡しレスポンスを書き込む
//   - 割り込みシグナルでリスナーを閉じて終了する
//   - アクセスログをプロセスのロガーへ出力する
//
// 仕様:
//   - HTTPエンジンにはgin-gonic/ginを使用
//   - 接続ごとにゴルーチンで処理し、遅いクライアントが他を妨げない
//   - 接続ごとのタイムアウトは設けない
//   - 停止時は処理中の接続を待たずに即座にリスナーを閉じる
//   - サーバーの状態は idle → running → stopped の一方向のみ
package server
