package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// seedExercise is one catalog entry in the seed file.
type seedExercise struct {
	Name         string   `yaml:"name"`
	Category     string   `yaml:"category"`
	MuscleGroups []string `yaml:"muscle_groups"`
	Equipment    string   `yaml:"equipment"`
	Difficulty   string   `yaml:"difficulty"`
	Description  string   `yaml:"description"`
	Instructions []string `yaml:"instructions"`
}

type seedFile struct {
	Exercises []seedExercise `yaml:"exercises"`
}

// liftlog-seed loads the built-in exercise catalog into the database.
// Re-running is safe: existing entries are left untouched.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	seedPath := flag.String("seed", "seed/exercises.yaml", "path to exercise seed file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Error("failed to read seed file", "path", *seedPath, "error", err)
		os.Exit(1)
	}
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Error("failed to parse seed file", "error", err)
		os.Exit(1)
	}
	if err := validateSeed(seed); err != nil {
		log.Error("invalid seed file", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	inserted, skipped := 0, 0
	for _, e := range seed.Exercises {
		ok, err := db.InsertExercise(ctx, models.Exercise{
			ID:           uuid.New(),
			Name:         e.Name,
			Category:     e.Category,
			MuscleGroups: e.MuscleGroups,
			Equipment:    e.Equipment,
			Difficulty:   e.Difficulty,
			Description:  e.Description,
			Instructions: e.Instructions,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			log.Error("insert failed", "exercise", e.Name, "error", err)
			os.Exit(1)
		}
		if ok {
			inserted++
		} else {
			skipped++
		}
	}

	log.Info("seed complete", "inserted", inserted, "already_present", skipped)
}

func validateSeed(seed seedFile) error {
	if len(seed.Exercises) == 0 {
		return fmt.Errorf("seed file contains no exercises")
	}
	for i, e := range seed.Exercises {
		if e.Name == "" {
			return fmt.Errorf("exercise %d: name is required", i)
		}
		if !models.ValidCategory(e.Category) {
			return fmt.Errorf("exercise %q: unknown category %q", e.Name, e.Category)
		}
	}
	return nil
}
