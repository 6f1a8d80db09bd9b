package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/aeiou/pkg/app"
	"github.com/decker502/aeiou/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging and debug overlay")
	configPath := flag.String("config", "", "app config file on disk (default: embedded data/aeiou.yaml)")
	watch := flag.Bool("watch", false, "reload -config when it changes")
	assetsDir := flag.String("assets", "assets", "directory holding the media files")
	flag.Parse()

	fmt.Println("aeiou")

	// 媒体文件从磁盘读取，配置从二进制中嵌入的 data/ 读取
	embedded.Init(embedded.Mount("assets", os.DirFS(*assetsDir)), dataFS)

	appCfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Watch:      *watch,
	}, appCfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(appCfg.Window.Width, appCfg.Window.Height)
	ebiten.SetWindowTitle(appCfg.Window.Title)
	if appCfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	if !appCfg.Window.CursorVisible {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		log.Printf("[main] Warning: %v", err)
	}
	if runErr != nil {
		// NewApp 在非 verbose 模式下丢弃了日志输出，致命错误仍然需要打印
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
