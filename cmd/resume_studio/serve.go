package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/analysis"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/gateway"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/server"
	"github.com/jonathan/resume-studio/internal/storage"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume document, AI operations and export pipeline over REST.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()

	blobs, err := storage.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open state storage: %w", err)
	}
	defer blobs.Close()

	doc, jobContext, err := loadState(blobs)
	if err != nil {
		return err
	}

	st := store.New(doc, jobContext)
	wirePersistence(st, blobs)

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	exporter, err := export.New(cfg.OutDir, cfg.ChromePath)
	if err != nil {
		return err
	}

	cache := analysis.New()
	gw := gateway.New(st, cache, client)

	srv := server.New(server.Config{Port: cfg.Port}, st, cache, gw, exporter)
	return srv.Start()
}

// loadState reads the persisted document and job context. A corrupt document
// blob is recovered silently with defaults; the user never sees an error.
func loadState(blobs *storage.Store) (types.ResumeDocument, string, error) {
	doc, err := blobs.LoadDocument()
	if err != nil {
		var corrupt *storage.CorruptStateError
		if !errors.As(err, &corrupt) {
			return types.ResumeDocument{}, "", fmt.Errorf("failed to load document: %w", err)
		}
		log.Printf("[STATE] %v, starting from defaults", err)
	}

	jobContext, err := blobs.LoadJobContext()
	if err != nil {
		return types.ResumeDocument{}, "", fmt.Errorf("failed to load job context: %w", err)
	}
	return doc, jobContext, nil
}

// wirePersistence saves every document or job-context change as it happens.
func wirePersistence(st *store.Store, blobs *storage.Store) {
	st.OnDocumentChange(func(doc types.ResumeDocument) {
		if err := blobs.SaveDocument(doc); err != nil {
			log.Printf("[STATE] failed to persist document: %v", err)
		}
	})
	st.OnJobContextChange(func(text string) {
		if err := blobs.SaveJobContext(text); err != nil {
			log.Printf("[STATE] failed to persist job context: %v", err)
		}
	})
}
