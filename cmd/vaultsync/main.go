// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/vaultsync"
	"github.com/poiesic/vaultsync/ai"
	"github.com/poiesic/vaultsync/ingestion"
	"github.com/urfave/cli/v2"
)

func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "Document store host",
			Value: "localhost",
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "Document store port",
			Value: 8000,
		},
		&cli.StringFlag{
			Name:    "collection",
			Aliases: []string{"c"},
			Usage:   "Collection name",
			Value:   vaultsync.DefaultCollection,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Per-request timeout for store calls",
			Value: 30 * time.Second,
		},
	}
}

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-minilm",
		},
	}
}

func main() {
	app := &cli.App{
		Name:  "vaultsync",
		Usage: "Sync a markdown vault into a vector document store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "index",
				Usage:     "Reindex markdown files from a vault into the collection",
				ArgsUsage: "VAULT_ROOT [FOLDER...]",
				Action:    indexCommand,
				Flags: append(storeFlags(),
					&cli.IntFlag{
						Name:    "batch-size",
						Aliases: []string{"b"},
						Usage:   "Number of documents per upload batch",
						Value:   ingestion.DefaultBatchSize,
					},
					&cli.StringFlag{
						Name:  "path",
						Usage: "Index a single file or subtree instead of the whole vault",
					},
				),
			},
			{
				Name:   "clear",
				Usage:  "Delete every document in the collection",
				Action: clearCommand,
				Flags:  storeFlags(),
			},
			{
				Name:      "query",
				Usage:     "Run a semantic search against the collection",
				ArgsUsage: "QUERY",
				Action:    queryCommand,
				Flags: append(storeFlags(),
					append(embeddingFlags(),
						&cli.IntFlag{
							Name:    "results",
							Aliases: []string{"n"},
							Usage:   "Maximum number of results to return",
							Value:   5,
						})...,
				),
			},
			{
				Name:   "count",
				Usage:  "Print the number of documents in the collection",
				Action: countCommand,
				Flags:  storeFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func connect(c *cli.Context, opts ...vaultsync.ClientOption) (*vaultsync.Client, error) {
	opts = append(opts, vaultsync.WithCallTimeout(c.Duration("timeout")))
	client, err := vaultsync.Connect(c.Context, c.String("host"), c.Int("port"), c.String("collection"), opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func indexCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("vault root is required")
	}
	root := c.Args().First()
	folders := c.Args().Tail()

	batchSize := c.Int("batch-size")
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}

	client, err := connect(c)
	if err != nil {
		return err
	}

	pipeline, err := client.NewPipeline(
		ingestion.WithBatchSize(batchSize),
		ingestion.WithProgressWriter(os.Stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	ctx := c.Context
	var report *ingestion.Report
	if path := c.String("path"); path != "" {
		report, err = pipeline.IndexPath(ctx, root, path)
	} else {
		report, err = pipeline.Index(ctx, root, folders...)
	}
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	report.Write(os.Stderr)
	return nil
}

func clearCommand(c *cli.Context) error {
	client, err := connect(c)
	if err != nil {
		return err
	}

	pipeline, err := client.NewPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	deleted, err := pipeline.Clear(c.Context)
	if err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Deleted %d documents from collection '%s'\n", deleted, c.String("collection"))
	return nil
}

func queryCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("query text is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	maxResults := c.Int("results")
	if maxResults <= 0 {
		return fmt.Errorf("results must be greater than 0")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	client, err := connect(c, vaultsync.WithAIConfig(aiConfig))
	if err != nil {
		return err
	}

	searcher, err := client.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	results, err := searcher.Query(c.Context, query, maxResults)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for i, result := range results {
		fmt.Printf("%d. %s (distance: %.4f)\n", i+1, result.Id, result.Distance)
		content := result.Document
		if len(content) > 200 {
			content = content[:200] + "..."
		}
		fmt.Printf("   %s\n\n", content)
	}
	return nil
}

func countCommand(c *cli.Context) error {
	client, err := connect(c)
	if err != nil {
		return err
	}

	count, err := client.Count(c.Context)
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}

	fmt.Printf("%d\n", count)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
