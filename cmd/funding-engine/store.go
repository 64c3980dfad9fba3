// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fkguo/zotero-inspire-sub006/internal/format"
	"github.com/fkguo/zotero-inspire-sub006/internal/store"
	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the persistent funding database (index, query, export)",
	Long: `Store manages a local SQLite database of extracted funding records.
Use subcommands to index funding YAML files, query them, export, or
forget a paper.`,
}

// --- index subcommand ---

var storeIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Ingest funding YAML files into the database",
	Long: `Index reads funding YAML files from papers/funding/, ingests them into
a SQLite database with FTS5 indexing over the raw acknowledgment text,
and refreshes the export file. Unchanged papers are skipped.`,
	RunE: runStoreIndex,
}

func runStoreIndex(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d paper(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- query subcommand ---

var storeQueryCmd = &cobra.Command{
	Use:   "query [search terms]",
	Short: "Query the funding database",
	Long: `Query searches funding records using FTS5 full-text search over the
raw acknowledgment passages, structured filters (funder, category,
paper), or both. Use --table for a per-paper TSV summary.`,
	RunE: runStoreQuery,
}

func runStoreQuery(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := storeQueryOpts(cmd, args)

	tableOut, _ := cmd.Flags().GetBool("table")
	if tableOut {
		results, err := s.Results(context.Background(), opts)
		if err != nil {
			return err
		}
		fmt.Print(format.Table(results, types.FormatConfig{}))
		fmt.Printf("\n%d papers, %d unique funders, %d grants\n",
			len(results), format.UniqueFunders(results), format.GrantCount(results))
		return nil
	}

	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search terms, --funder, --category, or --paper")
	}

	records, err := s.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(records, jsonOutput)
}

func formatQueryOutput(records []store.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-14s  %-20s  %-8s  %s\n",
		"Rank", "Paper", "Funder", "Grant", "Category", "Confidence")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for i, r := range records {
		paper := r.PaperID
		if len(paper) > 20 {
			paper = paper[:17] + "..."
		}
		grant := r.GrantNumber
		if len(grant) > 20 {
			grant = grant[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-14s  %-20s  %-8s  %.2f\n",
			i+1, paper, r.FunderID, grant, r.Category, r.Confidence)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(records))
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the funding database to YAML or JSON",
	Long: `Export writes the full funding database (or a filtered subset) to
knowledge/index/export.yaml or export.json. Supports the same filter
flags as query for partial exports.`,
	RunE: runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	outFormat, _ := cmd.Flags().GetString("format")

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := storeQueryOpts(cmd, args)

	switch outFormat {
	case "yaml", "":
		if err := s.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to knowledge/index/export.yaml")
	case "json":
		if err := s.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to knowledge/index/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", outFormat)
	}

	return nil
}

// --- forget subcommand ---

var storeForgetCmd = &cobra.Command{
	Use:   "forget [paper-id]",
	Short: "Remove a paper and its funding records from the database",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreForget,
}

func runStoreForget(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	paperID := args[0]
	if err := s.ForgetPaper(context.Background(), paperID); err != nil {
		return err
	}
	fmt.Printf("forgot %s\n", paperID)
	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*store.Store, error) {
	knowledgeDir, _ := cmd.Flags().GetString("knowledge-dir")
	if knowledgeDir == "" {
		knowledgeDir = "knowledge"
	}
	papersDir, _ := cmd.Flags().GetString("papers-dir")
	if papersDir == "" {
		papersDir = "papers"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	cfg := types.StoreConfig{
		KnowledgeDir: knowledgeDir,
		MaxResults:   maxResults,
	}
	return store.NewStore(cfg, papersDir)
}

func storeQueryOpts(cmd *cobra.Command, args []string) store.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	funderID, _ := cmd.Flags().GetString("funder")
	category, _ := cmd.Flags().GetString("category")
	paperID, _ := cmd.Flags().GetString("paper")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.QueryOptions{
		Query:      queryText,
		FunderID:   funderID,
		Category:   types.FunderCategory(category),
		PaperID:    paperID,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("knowledge-dir", "knowledge", "base directory for the database (contains index/)")
	storeCmd.PersistentFlags().String("papers-dir", "papers", "base directory for papers (contains funding/)")
	storeCmd.PersistentFlags().Int("max-results", 50, "maximum number of query results")

	// Query flags.
	storeQueryCmd.Flags().String("query", "", "full-text search query")
	storeQueryCmd.Flags().String("funder", "", "filter by funder ID, e.g. NSFC")
	storeQueryCmd.Flags().String("category", "", "filter by category: china, us, eu, asia, intl")
	storeQueryCmd.Flags().String("paper", "", "filter by paper ID")
	storeQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeQueryCmd.Flags().Bool("table", false, "output a per-paper TSV summary")
	storeQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	storeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	storeExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	storeExportCmd.Flags().String("funder", "", "filter by funder ID for partial export")
	storeExportCmd.Flags().String("category", "", "filter by category for partial export")
	storeExportCmd.Flags().String("paper", "", "filter by paper ID for partial export")
	storeExportCmd.Flags().Int("limit", 0, "maximum records to export (0 = all)")

	// Wire subcommands.
	storeCmd.AddCommand(storeIndexCmd)
	storeCmd.AddCommand(storeQueryCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeForgetCmd)

	rootCmd.AddCommand(storeCmd)
}
