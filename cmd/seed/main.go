// Package main provides a tool to seed the comment bank with the Ontario
// learning-skills starter set.
//
// Usage:
//
//	go run ./cmd/seed --db-path ~/classroomhub/hub.db
//	go run ./cmd/seed --db-path ~/classroomhub/data --backend badger
//	go run ./cmd/seed --db-path ~/classroomhub/hub.db --backfill  # Also run level and tag backfills
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/classroomhub/hub-server/internal/comment"
	"github.com/classroomhub/hub-server/internal/service"
	"github.com/classroomhub/hub-server/internal/store"
	"github.com/classroomhub/hub-server/internal/store/badger"
	"github.com/classroomhub/hub-server/internal/store/sqlite"
)

var (
	backend  = flag.String("backend", "sqlite", "Store backend: sqlite or badger")
	dbPath   = flag.String("db-path", "hub.db", "Database file (sqlite) or directory (badger)")
	backfill = flag.Bool("backfill", false, "Also backfill levels and Ontario tags on existing templates")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		st  store.TemplateStore
		err error
	)
	switch *backend {
	case "sqlite":
		st, err = sqlite.Open(*dbPath, logger)
	case "badger":
		st, err = badger.Open(*dbPath, logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown backend %q\n", *backend)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx := context.Background()
	comments := service.NewCommentService(st, nil, comment.DefaultEmoji(), logger)
	seeder := service.NewSeedService(st, comments, logger)

	result, err := seeder.SeedOntario(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seeding failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded Ontario comment bank: %d created, %d skipped, %d failed\n",
		result.Created, result.Skipped, result.Failed)

	if *backfill {
		levels, err := seeder.BackfillLevels(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "level backfill failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Backfilled levels: %d updated, %d skipped, %d failed\n",
			levels.Updated, levels.Skipped, levels.Failed)

		tags, err := seeder.BackfillOntarioTags(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tag backfill failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Backfilled Ontario tags: %d updated, %d skipped, %d failed\n",
			tags.Updated, tags.Skipped, tags.Failed)
	}
}
