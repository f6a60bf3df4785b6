package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"arfigyelo-search/internal/config"
	"arfigyelo-search/internal/dataset"
	"arfigyelo-search/internal/search/model"
	svc "arfigyelo-search/internal/search/service"
)

var (
	flagLimit    int
	flagMinScore float64
	flagSource   string
	flagRefresh  bool
)

var rootCmd = &cobra.Command{
	Use:          "arfigyelo-search <query>",
	Short:        "Fuzzy product search over the Árfigyelő price list export",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true, // don't print usage on operational errors
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagLimit, "limit", model.DefaultLimit, "maximum matches to return")
	rootCmd.Flags().Float64Var(&flagMinScore, "min-score", model.DefaultMinScore, "minimum similarity score (0-100)")
	rootCmd.Flags().StringVar(&flagSource, "source", "", "local price list file to use instead of downloading")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "re-download the export before searching")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagSource != "" {
		cfg.DatasetSource = flagSource
	}

	provider := dataset.New(cfg.DatasetURL, cfg.CacheDir, cfg.DatasetSource, cfg.HTTPTimeout)
	table, err := provider.Load(flagRefresh)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	opts := model.Options{Limit: flagLimit, MinScore: flagMinScore}
	if flagMinScore == 0 {
		opts.MinScore = -1
	}
	results, err := svc.Search(table, query, opts)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No matches found")
		os.Exit(1)
	}
	for i, m := range results {
		fmt.Printf("#%d score=%.1f label=%s\n", i+1, m.Score, m.Label)
		if m.Brand != "" {
			fmt.Printf("  brand: %s\n", m.Brand)
		}
		if m.Store != "" {
			fmt.Printf("  store: %s\n", m.Store)
		}
		if m.ProductID != "" {
			fmt.Printf("  id: %s\n", m.ProductID)
		}
		if len(m.Prices) > 0 {
			fmt.Println("  prices:")
			cols := make([]string, 0, len(m.Prices))
			for col := range m.Prices {
				cols = append(cols, col)
			}
			sort.Strings(cols)
			for _, col := range cols {
				fmt.Printf("    %s: %g\n", col, m.Prices[col])
			}
		}
		fmt.Println()
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
