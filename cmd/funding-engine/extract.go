// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/fkguo/zotero-inspire-sub006/internal/cache"
	"github.com/fkguo/zotero-inspire-sub006/internal/extract"
	"github.com/fkguo/zotero-inspire-sub006/internal/format"
	"github.com/fkguo/zotero-inspire-sub006/internal/locate"
	"github.com/fkguo/zotero-inspire-sub006/internal/registry"
	"github.com/fkguo/zotero-inspire-sub006/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract funding information from document text",
	Long: `Extract reads plain text from files (or stdin when no files are given),
locates the acknowledgment section, and reports the funding agencies and
grant numbers found there.

The default output is one compact line per document, such as
"NSFC: 12075126, 11835015; DFG: 279384907". Use --yaml for the full
records with confidence scores and match positions, or --table for a
TSV table across multiple files.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	listFunders, _ := cmd.Flags().GetBool("list-funders")
	if listFunders {
		return printFunders(os.Stdout)
	}

	yamlOut, _ := cmd.Flags().GetBool("yaml")
	tableOut, _ := cmd.Flags().GetBool("table")
	categories := categoriesFromFlags(cmd)
	opts := extractOptsFromFlags(cmd)
	footnoteCap, _ := cmd.Flags().GetInt("footnote-cap")

	results, err := extractFiles(args, opts, footnoteCap, categories)
	if err != nil {
		return err
	}

	switch {
	case tableOut:
		fmt.Print(format.Table(results, types.FormatConfig{}))
		fmt.Printf("\n%d unique funders, %d grants\n",
			format.UniqueFunders(results), format.GrantCount(results))
	case yamlOut:
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		os.Stdout.Write(data)
	default:
		for _, r := range results {
			line := format.Compact(r.Funding, types.FormatConfig{})
			if line == "" {
				line = "(no funding found)"
			}
			if len(results) > 1 {
				fmt.Printf("%s\t%s\n", r.Title, line)
			} else {
				fmt.Println(line)
			}
		}
	}

	return nil
}

// extractFiles runs the engine over each input. Repeated paths are served
// from the session cache rather than re-extracted; the category filter is
// applied at read time so the cache always holds full results.
func extractFiles(paths []string, opts extract.Options, footnoteCap int, categories []types.FunderCategory) ([]*types.FundingResult, error) {
	sessionCache, err := cache.New(types.DefaultCacheCapacity)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		r := extractOne("stdin", string(text), opts, footnoteCap)
		r.Funding = cache.Filter(r.Funding, categories...)
		return []*types.FundingResult{r}, nil
	}

	var results []*types.FundingResult
	for _, path := range paths {
		docID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		if r, ok := sessionCache.Get(docID, categories...); ok {
			results = append(results, r)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		r := extractOne(docID, string(data), opts, footnoteCap)
		sessionCache.Put(docID, r)

		filtered, _ := sessionCache.Get(docID, categories...)
		results = append(results, filtered)
	}

	return results, nil
}

func extractOne(docID, text string, opts extract.Options, footnoteCap int) *types.FundingResult {
	result := &types.FundingResult{
		Title:  docID,
		Source: types.ResultNone,
	}
	if strings.TrimSpace(text) == "" {
		return result
	}

	section := locate.Locate(text, footnoteCap)
	result.Source = types.ResultPDF
	result.Funding = extract.Extract(section.Text, opts)
	return result
}

// printFunders lists the registry in priority order.
func printFunders(w io.Writer) error {
	fmt.Fprintf(w, "%-20s  %-8s  %-8s  %s\n", "ID", "Category", "Priority", "Name")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, f := range registry.All() {
		fmt.Fprintf(w, "%-20s  %-8s  %-8d  %s\n", f.ID, f.Category, f.Priority, f.Name)
	}
	fmt.Fprintf(w, "\n%d funders\n", registry.Len())
	return nil
}

func categoriesFromFlags(cmd *cobra.Command) []types.FunderCategory {
	raw, _ := cmd.Flags().GetStringSlice("category")
	var categories []types.FunderCategory
	for _, c := range raw {
		if c != "" {
			categories = append(categories, types.FunderCategory(c))
		}
	}
	return categories
}

func extractOptsFromFlags(cmd *cobra.Command) extract.Options {
	maxInput, _ := cmd.Flags().GetInt("max-input")
	mergeDist, _ := cmd.Flags().GetInt("dfg-merge-distance")
	return extract.Options{
		MaxInputLen:      maxInput,
		DFGMergeDistance: mergeDist,
	}
}

func init() {
	extractCmd.Flags().Bool("yaml", false, "output full records as YAML")
	extractCmd.Flags().Bool("table", false, "output a TSV table across files")
	extractCmd.Flags().StringSlice("category", nil, "filter by funder category: china, us, eu, asia, intl")
	extractCmd.Flags().Bool("list-funders", false, "list the funder registry and exit")
	extractCmd.Flags().Int("max-input", 0, "maximum input length in characters (0 = default)")
	extractCmd.Flags().Int("footnote-cap", 0, "footnote section length cap in characters (0 = default)")
	extractCmd.Flags().Int("dfg-merge-distance", 0, "max distance for DFG project/center merging (0 = default)")

	rootCmd.AddCommand(extractCmd)
}
