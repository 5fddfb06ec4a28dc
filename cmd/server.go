// Package main はDevOps MVPサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"devopsmvp/internal/config"
	"devopsmvp/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	// コマンドラインオプション
	var (
		host       = flag.String("host", "", "サーバーのホスト (デフォルト: $APP_HOST または 0.0.0.0)")
		port       = flag.Int("port", -1, "サーバーのポート (デフォルト: $APP_PORT または 8000)")
		configFile = flag.String("config", "", "YAML設定ファイル (デフォルト: $APP_CONFIG)")
		help       = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Parameta DevOps MVP")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 指定されたオプションだけを上書きに使う
	overrides := config.Overrides{ConfigFile: *configFile}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			overrides.Host = host
		case "port":
			overrides.Port = port
		}
	})

	if err := server.Run(context.Background(), server.RunOptions{Overrides: overrides}); err != nil {
		logrus.WithError(err).Fatal("サーバーの起動に失敗しました")
	}
}
