package main

import (
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/polypath/internal/app"
	"github.com/philipparndt/polypath/internal/logging"
	"github.com/philipparndt/polypath/pkg/config"
	"github.com/philipparndt/polypath/pkg/geometry"
	"github.com/philipparndt/polypath/pkg/surface"
	"github.com/philipparndt/polypath/pkg/viewer"
	"github.com/philipparndt/polypath/version"
	"github.com/spf13/cobra"
)

const (
	panelWidth    = 320
	panelPadding  = 12
	panelFontSize = 16
	lineHeight    = 22
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "polypath-raylib",
	Short: "Polygon path widget rendered with raylib",
	Long: `polypath-raylib shows the same drawing surface as polypath in a raylib
window. Points are placed with the left mouse button; the controls are
keyboard shortcuts listed in the side panel.`,
	Version: version.GetFullVersion(),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(os.Stderr, logLevel)
		if err != nil {
			return err
		}

		cfg := config.Default()
		if configPath != "" {
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
		}

		run(cfg, log)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML file with surface size and colors")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func run(cfg config.Config, log *slog.Logger) {
	width := int32(cfg.Surface.Width)
	height := int32(cfg.Surface.Height)

	rl.InitWindow(width+panelWidth, height, fmt.Sprintf("PolyPath %s", version.GetVersion()))
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	list := viewer.NewDisplayList()
	session := app.NewSession(list, surface.StyleFromConfig(cfg.Style), log)
	background := rlColor(config.MustColor(cfg.Surface.Background))

	log.Info("starting", "version", version.GetFullVersion(), "width", width, "height", height)

	for !rl.WindowShouldClose() {
		handleInput(session, float32(width), float32(height))

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(30, 30, 30, 255))

		rl.DrawRectangle(0, 0, width, height, background)
		list.Replay(rlPainter{})

		drawPanel(session.Controller, width)

		rl.EndDrawing()
	}
}

// handleInput routes clicks inside the surface and typed shortcuts to the session
func handleInput(session *app.Session, width, height float32) {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if pos.X >= 0 && pos.X < width && pos.Y >= 0 && pos.Y < height {
			session.Click(geometry.NewPoint(float64(pos.X), float64(pos.Y)))
		}
	}

	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if action, ok := app.ActionForKey(rune(ch)); ok {
			session.Controller.Trigger(action)
		}
	}
}

func drawPanel(controller *app.Controller, x int32) {
	status := controller.Status()
	x += panelPadding
	y := int32(panelPadding)

	for _, line := range controller.KeyHelp() {
		rl.DrawText(line, x, y, panelFontSize, rl.RayWhite)
		y += lineHeight
	}
	y += lineHeight

	for i, line := range status.StatusLines() {
		col := rl.LightGray
		if i == 0 {
			switch status.CountState {
			case app.CountValid:
				col = rl.Green
			case app.CountInvalid:
				col = rl.Red
			}
		}
		rl.DrawText(line, x, y, panelFontSize, col)
		y += lineHeight
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
