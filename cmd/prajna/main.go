// Copyright 2026 Prajna Labs
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
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/prajna-labs/prajna"
	"github.com/prajna-labs/prajna/ai"
	"github.com/prajna-labs/prajna/ai/google"
	"github.com/prajna-labs/prajna/ai/openai"
	"github.com/prajna-labs/prajna/chat"
	"github.com/prajna-labs/prajna/config"
	"github.com/prajna-labs/prajna/ingestion"
	"github.com/prajna-labs/prajna/storage/badger"
	"github.com/prajna-labs/prajna/web"
)

func main() {
	app := &cli.App{
		Name:  "prajna",
		Usage: "Conversational assistant for the Bhagavad Gita and Yoga Sutras",
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
				Name:   "ingest",
				Usage:  "Index a directory of source files into the vector store",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "source",
						Aliases:  []string{"s"},
						Usage:    "Directory containing CSV, XLSX, and PDF files",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Chunk size in characters",
						Value: 2000,
					},
					&cli.IntFlag{
						Name:  "chunk-overlap",
						Usage: "Overlap between consecutive chunks in characters",
						Value: 500,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to embed and store per batch",
						Value: 100,
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the conversational web UI",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to the API key configuration file",
						Value:   "config.json",
					},
					&cli.StringFlag{
						Name:  "addr",
						Usage: "HTTP listen address",
						Value: ":8080",
					},
					&cli.StringFlag{
						Name:  "chat-host",
						Usage: "Chat completion service host URL",
						Value: "https://api.groq.com/openai/v1",
					},
					&cli.StringFlag{
						Name:  "chat-model",
						Usage: "Chat completion model name",
						Value: "llama-3.1-70b-versatile",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of chunks retrieved per question",
						Value: 4,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewChunkRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.ValidateEmbedding(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	pipeline, err := ingestion.NewPipeline(repo, embedder,
		ingestion.WithChunkSize(c.Int("chunk-size")),
		ingestion.WithChunkOverlap(c.Int("chunk-overlap")),
		ingestion.WithBatchSize(c.Int("batch-size")),
	)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	stats, err := pipeline.Run(ctx, c.String("source"))
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %d chunks from %d documents in %d files\n",
		stats.Chunks, stats.Documents, stats.Files)
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if err := cfg.RequireSearch(); err != nil {
		return err
	}

	aiConfig := ai.NewConfig(
		ai.WithChatHost(c.String("chat-host")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithChatToken(cfg.GroqAPIKey),
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	translator, err := google.NewTranslator(ctx, cfg.GoogleAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	searcher, err := google.NewQuoteSearcher(ctx, cfg.GoogleAPIKey, cfg.SearchEngineID)
	if err != nil {
		return fmt.Errorf("failed to create quote searcher: %w", err)
	}

	assistant, err := prajna.NewAssistant(c.String("db"), translator, searcher,
		prajna.WithAIConfig(aiConfig),
		prajna.WithEngineOptions(chat.WithTopK(c.Int("top-k"))),
	)
	if err != nil {
		return fmt.Errorf("failed to open assistant: %w", err)
	}
	defer assistant.Close()

	server, err := web.NewServer(assistant.Engine(), assistant.Quotes())
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	slog.Info("serving", "addr", c.String("addr"))
	return http.ListenAndServe(c.String("addr"), server)
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
