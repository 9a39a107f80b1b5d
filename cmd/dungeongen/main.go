// Package main is the entry point for dungeongen.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeongen/internal/config"
	"github.com/samdwyer/dungeongen/internal/dungeon"
	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/logger"
	"github.com/samdwyer/dungeongen/internal/report"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/ui"
	"github.com/samdwyer/dungeongen/internal/viewer"
)

type flags struct {
	configPath string
	seed       int64
	width      int
	height     int
	mapType    string
	theme      string
	view       bool
	plain      bool
	lang       string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", "dungeongen.yaml", "path to YAML config file")
	flag.Int64Var(&f.seed, "seed", 0, "generation seed (0 keeps the configured seed)")
	flag.IntVar(&f.width, "width", 0, "grid width in cells")
	flag.IntVar(&f.height, "height", 0, "grid height in cells")
	flag.StringVar(&f.mapType, "map", "", "map type: maze, rooms, cave, open or modular")
	flag.StringVar(&f.theme, "theme", "", "dungeon theme id")
	flag.BoolVar(&f.view, "view", false, "browse dungeons interactively")
	flag.BoolVar(&f.plain, "plain", false, "disable colour output")
	flag.StringVar(&f.lang, "lang", "", "summary language (defaults to $LANG)")
	flag.Parse()
	return f
}

// apply overrides configured values with any flags the user set.
func (f flags) apply(cfg *config.Config) error {
	g := &cfg.Generator
	if f.seed != 0 {
		g.Seed = f.seed
	}
	if f.width != 0 {
		g.Width = f.width
	}
	if f.height != 0 {
		g.Height = f.height
	}
	if f.mapType != "" {
		g.MapType = f.mapType
	}
	if f.theme != "" {
		g.DungeonType = f.theme
	}
	return cfg.Validate()
}

func main() {
	f := parseFlags()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := f.apply(cfg); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	if telemetry.ConfigureHoneycombEnv(cfg.Telemetry) {
		cfg.Telemetry.Enabled = true
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generation will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	lang := f.lang
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	tr, err := report.NewTranslator(lang)
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	if f.view {
		if err := runViewer(ctx, cfg.Generator.Options(), catalog, tr); err != nil {
			log.Fatalf("Viewer error: %v", err)
		}
		return
	}

	if err := generate(ctx, cfg.Generator.Options(), catalog, tr, f.plain); err != nil {
		logger.Error("generation failed", "error", err)
		log.Fatalf("Generation failed: %v", err)
	}
}

func runViewer(ctx context.Context, opts dungeon.Options, catalog *gamedata.Catalog, tr *report.Translator) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	return viewer.New(screen, opts, catalog, tr).Run(ctx)
}

// generate writes one dungeon and its summary to stdout.
func generate(ctx context.Context, opts dungeon.Options, catalog *gamedata.Catalog, tr *report.Translator, plain bool) error {
	gen, err := dungeon.New(opts, catalog)
	if err != nil {
		return err
	}
	d, err := gen.Generate(ctx)
	if err != nil {
		return err
	}

	theme := gen.Theme()
	if plain || !report.IsTerminal(os.Stdout) {
		theme = nil
	} else if w, _ := report.TerminalSize(os.Stdout); d.Width > w {
		logger.Warning("dungeon is wider than the terminal", "width", d.Width, "terminal_width", w)
	}
	if err := report.Dump(os.Stdout, d, theme); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout)
	return report.Summary(os.Stdout, d, tr)
}
