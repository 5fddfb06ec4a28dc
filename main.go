package main

import (
	"context"

	"devopsmvp/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	// サーバーを起動 (割り込みシグナルで正常終了する)
	if err := server.Run(context.Background(), server.RunOptions{}); err != nil {
		logrus.WithError(err).Fatal("サーバーの起動に失敗しました")
	}
}
