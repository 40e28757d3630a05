package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruitbox/internal/assets"
	"github.com/vovakirdan/fruitbox/internal/audio"
	"github.com/vovakirdan/fruitbox/internal/core"
	"github.com/vovakirdan/fruitbox/internal/games/fruitbox"
	"github.com/vovakirdan/fruitbox/internal/platform/gui"
	"github.com/vovakirdan/fruitbox/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGUI        bool
	flagScale      float64
	flagSprite     string
	flagGallery    []string
	flagMusic      string
	flagVolume     float64
	flagLight      bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game on its title screen. Click Play, then drag over
tokens that add up to 10.

Controls:
  Mouse drag  - Select a rectangle of cells
  R           - Back to the title screen with a fresh board
  L           - Toggle light colors
  M           - Play/pause music (with --music)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 3 minute rounds
  normal - 2 minute rounds
  hard   - 1 minute rounds

Examples:
  fruitbox play
  fruitbox play --difficulty hard
  fruitbox play --gui --sprite apple.png --gallery us1.jpg --gallery us2.jpg
  fruitbox play --gui --music song.mp3
  fruitbox play --log-file fruitbox.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window scale (with --gui)")
	playCmd.Flags().StringVar(&flagSprite, "sprite", "", "Image drawn inside every token")
	playCmd.Flags().StringSliceVar(&flagGallery, "gallery", nil, "Pictures for the end screen (repeatable)")
	playCmd.Flags().StringVar(&flagMusic, "music", "", "Background music file (wav, mp3, ogg)")
	playCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultVolume, "Music volume from 0 to 1")
	playCmd.Flags().BoolVar(&flagLight, "light", false, "Start with light colors")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal mode)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logOut, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()
	var dst io.Writer = logOut
	if flagGUI && flagLogFile == "" {
		// A window leaves stderr free.
		dst = os.Stderr
	}
	logger, err := newLogger(dst, "fruitbox")
	if err != nil {
		return err
	}

	game := fruitbox.New(cfg)
	game.SetLight(flagLight)
	loadAssets(game, logger)

	if flagMusic != "" {
		music, musicErr := audio.Open(flagMusic, flagVolume)
		if musicErr != nil {
			logger.Warn("music disabled", "path", flagMusic, "err", musicErr)
		} else {
			defer music.Close()
			game.SetMusic(music)
		}
	}

	logger.Debug("starting",
		"gui", flagGUI,
		"round", cfg.Clock.Duration,
		"cols", cfg.Board.Cols,
		"rows", cfg.Board.Rows)

	if flagGUI {
		game.Reset(core.RuntimeConfig{
			ScreenW:  int(cfg.Board.Width),
			ScreenH:  int(cfg.Board.Height),
			TickRate: flagFPS,
			Seed:     seedOrNow(flagSeed),
		})
		opts := gui.DefaultOptions()
		opts.Scale = flagScale
		opts.TPS = flagFPS
		if err := gui.Run(game, opts, logger); err != nil {
			return fmt.Errorf("running window: %w", err)
		}
		return nil
	}

	// Get terminal size before the program takes over
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadAssets attaches the optional sprite and gallery. Missing or broken
// files only cost the decoration.
func loadAssets(game *fruitbox.Game, logger *log.Logger) {
	if flagSprite != "" {
		sprite, err := assets.LoadImage(flagSprite)
		if err != nil {
			logger.Warn("sprite disabled", "err", err)
		} else {
			game.SetSprite(sprite)
		}
	}
	if len(flagGallery) > 0 {
		imgs, err := assets.LoadGallery(flagGallery)
		if err != nil {
			logger.Warn("some gallery pictures were skipped", "err", err)
		}
		game.SetGallery(imgs)
	}
}

func seedOrNow(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
