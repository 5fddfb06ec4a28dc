package server

import (
	"errors"
	"fmt"
)

var (
	// ErrServerClosed は停止済みのサーバーを再利用しようとした場合のエラー
	ErrServerClosed = errors.New("サーバーは停止済みです")
	// ErrServerRunning は起動中のサーバーを再度起動しようとした場合のエラー
	ErrServerRunning = errors.New("サーバーは既に起動しています")
)

// BindError はリッスンアドレスにバインドできなかった場合のエラー
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s へのバインドに失敗: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
