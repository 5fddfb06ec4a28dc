// Package router はリクエストパスからレスポンスを決定する
//
// # 責務
// - パス文字列を (ステータスコード, JSONペイロード) に対応付ける
// - 未知のパスに対して 404 を返す
//
// # 仕様
// - 完全一致のみ。前方一致・パターンマッチは行わない
// - クエリ文字列や末尾スラッシュ付きのパスは未知のパスとして扱う
// - 副作用なし。あらゆる入力に対して結果を返す
// - 構築後のルーティングテーブルは読み取り専用のため、並行呼び出しに対して安全
package router
