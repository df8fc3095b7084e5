package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/logger"
)

var (
	mergeTemplateFile string
	mergeDataFile     string
	mergeMapPairs     []string
	mergeAutoMap      bool
	mergeOutDir       string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Fill a template for every row of a dataset",
	Long: `Expands a template into one document per data row.

The template carries bracketed placeholders such as [Name]. The data
file is comma-separated text whose first row names the columns.
Tokens are bound to columns with repeated --map Token=Column flags,
or guessed with --auto-map; unmapped tokens are left verbatim.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeTemplateFile, "template", "t", "", "template file (required)")
	mergeCmd.Flags().StringVarP(&mergeDataFile, "data", "d", "", "comma-separated data file (required)")
	mergeCmd.Flags().StringArrayVarP(&mergeMapPairs, "map", "m", nil, "token=column binding (repeatable)")
	mergeCmd.Flags().BoolVar(&mergeAutoMap, "auto-map", false, "guess token bindings from column names")
	mergeCmd.Flags().StringVarP(&mergeOutDir, "out-dir", "o", ".", "directory for generated documents")
	//nolint:errcheck // Flags exist, MarkFlagRequired cannot fail here
	mergeCmd.MarkFlagRequired("template")
	//nolint:errcheck // Flags exist, MarkFlagRequired cannot fail here
	mergeCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, _ []string) error {
	if mergeService == nil {
		return errors.New("merge service not configured")
	}

	template, err := os.ReadFile(mergeTemplateFile)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}
	data, err := os.ReadFile(mergeDataFile)
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}

	table, err := mergeService.ParseTable(string(data))
	if err != nil {
		if errors.Is(err, domain.ErrNothingToGenerate) {
			return errors.New("data file has no rows to merge")
		}
		return fmt.Errorf("parsing data: %w", err)
	}

	tokens := mergeService.ExtractTokens(string(template))
	if len(tokens) == 0 {
		cmd.Println("Template has no placeholders; every output will be identical.")
	}

	mapping, err := buildMapping(tokens, table.Columns)
	if err != nil {
		return err
	}
	for _, token := range tokens {
		if col, ok := mapping.Column(token); ok {
			logger.Debug("token [%s] bound to column %q", token, col)
		} else {
			logger.Debug("token [%s] unmapped, left verbatim", token)
		}
	}

	docs, err := mergeService.Merge(string(template), table, mapping)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	if err := os.MkdirAll(mergeOutDir, 0700); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(mergeTemplateFile), filepath.Ext(mergeTemplateFile))
	for _, doc := range docs {
		name := fmt.Sprintf("%s_%03d.txt", base, doc.RowIndex+1)
		path := filepath.Join(mergeOutDir, name)
		if err := os.WriteFile(path, []byte(doc.Content), 0600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	cmd.Printf("Generated %d documents in %s.\n", len(docs), mergeOutDir)
	return nil
}

// buildMapping combines auto-suggested bindings with explicit --map
// overrides. Explicit bindings always win.
func buildMapping(tokens, columns []string) (domain.FieldMapping, error) {
	mapping := domain.FieldMapping{}
	if mergeAutoMap {
		mapping = mergeService.SuggestMapping(tokens, columns)
	}

	for _, pair := range mergeMapPairs {
		token, column, ok := strings.Cut(pair, "=")
		if !ok || token == "" {
			return nil, fmt.Errorf("invalid --map %q, expected Token=Column", pair)
		}
		mapping[token] = column
	}
	return mapping, nil
}
