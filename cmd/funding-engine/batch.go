// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fkguo/zotero-inspire-sub006/internal/extract"
	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract funding from every paper text in the papers directory",
	Long: `Batch processes all text files under papers/text/ and writes one
funding YAML per paper to papers/funding/. Papers whose text has not
changed since the last run are skipped.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	papersDir, _ := cmd.Flags().GetString("papers-dir")
	maxInput, _ := cmd.Flags().GetInt("max-input")
	footnoteCap, _ := cmd.Flags().GetInt("footnote-cap")

	cfg := types.ExtractionConfig{
		PapersDir:   papersDir,
		MaxInputLen: maxInput,
		FootnoteCap: footnoteCap,
	}

	summary, err := extract.ExtractAll(cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("\nextracted: %d, skipped: %d, failed: %d (total: %d)\n",
		summary.Extracted, summary.Skipped, summary.Failed, summary.Total())

	if summary.HasFailures() {
		return fmt.Errorf("%d paper(s) failed extraction", summary.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("papers-dir", "papers", "base directory for papers (contains text/, funding/)")
	batchCmd.Flags().Int("max-input", 0, "maximum input length in characters (0 = default)")
	batchCmd.Flags().Int("footnote-cap", 0, "footnote section length cap in characters (0 = default)")

	rootCmd.AddCommand(batchCmd)
}
