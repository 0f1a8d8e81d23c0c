package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovchar/storenav/internal/catalog"
	"github.com/ovchar/storenav/internal/highlight"
	"github.com/ovchar/storenav/internal/search"
)

// resolution is the machine shape of a search outcome: the per-query
// results, the aggregated highlight set, and the map route to navigate
// to (empty when nothing was found).
type resolution struct {
	Results  []catalog.SearchResultItem `json:"results"`
	Sections []string                   `json:"sections"`
	Route    string                     `json:"route,omitempty"`
}

// NewSearchCommand creates the search command group.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Customer product search",
	}

	cmd.AddCommand(newSearchSuggestCommand(rootOpts))
	cmd.AddCommand(newSearchSelectCommand(rootOpts))
	cmd.AddCommand(newSearchListCommand(rootOpts))

	return cmd
}

func newSearchSuggestCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query>",
		Short: "Autocomplete product names",
		Long: `Match the query as a case-insensitive substring of product names.

Closest matches print first. An empty query yields no suggestions.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			candidates := search.Suggest(args[0], a.catalog.Products())
			if rootOpts.Format == "json" {
				if candidates == nil {
					candidates = []catalog.Product{}
				}
				return f.Success(candidates)
			}
			if len(candidates) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "nothing found for %q\n", args[0])
				return nil
			}
			for _, p := range candidates {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.ID, p.Name)
			}
			return nil
		},
	}
}

func newSearchSelectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select <product-id>",
		Short: "Resolve a suggestion selection to a map route",
		Long: `Resolve the selected product to its current sections and emit the
map route with those sections highlighted.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			item, ok := search.ResolveProduct(args[0], a.catalog.Products())
			if !ok {
				_ = f.Error(string(catalog.ErrCodeNotFound), fmt.Sprintf("product %q not found", args[0]))
				return NewExitError(ExitFailure, "product not found")
			}

			return printResolution(f, cmd.OutOrStdout(), rootOpts, []catalog.SearchResultItem{item})
		},
	}
}

func newSearchListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "Resolve a newline-separated product list",
		Long: `Resolve a block of raw product names, one per line, read from the
given file or from stdin when no file is given.

Each line resolves independently by exact name; the emitted route
highlights the union of all matched sections.

Example:
  storenav search list shopping.txt
  echo "Кола" | storenav search list`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var text []byte
			var err error
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to read list file", err)
				}
			} else {
				text, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to read stdin", err)
				}
			}

			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			results := search.ResolveText(string(text), a.catalog.Products())
			return printResolution(f, cmd.OutOrStdout(), rootOpts, results)
		},
	}
}

// printResolution renders results, the aggregated highlight set, and
// the navigation route. The route parameter is omitted when the
// highlight set is empty; "no results at all" prints no route line.
func printResolution(f *OutputFormatter, w io.Writer, rootOpts *RootOptions, results []catalog.SearchResultItem) error {
	sections := highlight.Aggregate(results)

	res := resolution{Results: results, Sections: sections}
	anyFound := false
	for _, r := range results {
		if r.Found {
			anyFound = true
			break
		}
	}
	if anyFound {
		res.Route = highlight.MapRoute(sections)
	}

	if rootOpts.Format == "json" {
		return f.Success(res)
	}

	for _, r := range results {
		if r.Found {
			fmt.Fprintf(w, "%s: %s\n", r.ProductName, strings.Join(r.SectionNames, ", "))
		} else {
			fmt.Fprintf(w, "%s: not found\n", r.ProductName)
		}
	}
	if !anyFound {
		fmt.Fprintln(w, "no results")
		return nil
	}
	fmt.Fprintf(w, "navigate: %s\n", res.Route)
	return nil
}
