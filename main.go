package main

import (
	"flag"
	"log"

	"github.com/decker502/cryptfall/pkg/app"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "游戏数值配置文件路径（默认使用嵌入的 data/game.yaml）")
	seed := flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	skipMenu := flag.Bool("play", false, "跳过主菜单直接开始")
	flag.Parse()

	// 初始化嵌入数据，必须在加载任何配置之前
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		SkipMenu:   *skipMenu,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
