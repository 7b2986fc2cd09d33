package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/claude/liftlog/internal/importer"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "LiftLog server URL (e.g. http://localhost:8080)")
	token := flag.String("token", "", "session token (from /api/v1/auth/login)")
	exportPath := flag.String("path", "", "directory of workout export .json files (required)")
	dryRun := flag.Bool("dry-run", false, "parse and validate but don't send to server")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftlog-import", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftlog-import -server <URL> -token <token> -path <export dir> [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if (*serverURL == "" || *token == "") && !*dryRun {
		fmt.Fprintf(os.Stderr, "Error: -server and -token are required (or use -dry-run)\n")
		os.Exit(1)
	}

	info, err := os.Stat(*exportPath)
	if err != nil || !info.IsDir() {
		log.Error("export path does not exist or is not a directory", "path", *exportPath)
		os.Exit(1)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	state, err := importer.OpenStateDB(filepath.Join(homeDir, ".liftlog-import"))
	if err != nil {
		log.Error("failed to open state db", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	if *dryRun {
		log.Info("DRY RUN mode — nothing will be sent to the server")
	}

	client := importer.NewClient(*serverURL, *token)
	imp := importer.New(client, state, *exportPath, *dryRun, log)
	stats, err := imp.Run()
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}

	printStats(log, stats)
	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"files_total", stats.FilesTotal,
		"files_imported", stats.FilesImported,
		"files_skipped", stats.FilesSkipped,
		"files_errored", stats.FilesErrored,
		"workouts_created", stats.WorkoutsCreated,
		"exercises_linked", stats.ExercisesLinked,
		"sets_created", stats.SetsCreated,
	)
	if len(stats.UnknownExercises) > 0 {
		log.Info("unknown exercises (not in catalog)", "exercises", stats.UnknownExercises)
	}
}
