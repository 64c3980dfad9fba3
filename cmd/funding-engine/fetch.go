// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fkguo/zotero-inspire-sub006/internal/textsource"
	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [doc-ids...]",
	Short: "Fetch paper text from the worker service",
	Long: `Fetch pulls plain text for the given document IDs from the configured
worker service and caches it under papers/text/, ready for extraction.
Documents with locally cached text are skipped. Metadata sidecars are
written for arXiv-shaped IDs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	papersDir, _ := cmd.Flags().GetString("papers-dir")
	workerURL, _ := cmd.Flags().GetString("worker-url")
	if workerURL == "" {
		workerURL = viper.GetString("worker_url")
	}
	if workerURL == "" {
		return fmt.Errorf("worker URL required: use --worker-url or set worker_url in the config")
	}
	maxPages, _ := cmd.Flags().GetInt("max-pages")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	src := textsource.New(types.TextSourceConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "funding-engine/" + version,
		},
		PapersDir:   papersDir,
		WorkerURL:   workerURL,
		WorkerToken: secretDefault("worker-api-key", ""),
		MaxPages:    maxPages,
	})

	ctx := context.Background()
	failed := 0
	for _, docID := range args {
		text, err := src.Text(ctx, docID)
		if err != nil {
			fmt.Printf("failed  %s: %v\n", docID, err)
			failed++
			continue
		}
		if text == "" {
			fmt.Printf("no text %s\n", docID)
			continue
		}
		src.Meta(ctx, docID)
		fmt.Printf("fetched %s (%d chars)\n", docID, len(text))
	}

	if failed > 0 {
		return fmt.Errorf("%d document(s) failed", failed)
	}
	return nil
}

func init() {
	fetchCmd.Flags().String("papers-dir", "papers", "base directory for papers (contains text/, metadata/)")
	fetchCmd.Flags().String("worker-url", "", "base URL of the text worker service")
	fetchCmd.Flags().Int("max-pages", types.DefaultMaxPages, "maximum pages the worker should extract")
	fetchCmd.Flags().Duration("timeout", 60*time.Second, "HTTP timeout per request")

	rootCmd.AddCommand(fetchCmd)
}
