package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovchar/storenav/internal/catalog"
	"github.com/ovchar/storenav/internal/importer"
	"github.com/ovchar/storenav/internal/notify"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.txt>",
		Short: "Bulk-import a product list from a TXT file",
		Long: `Reconcile a product-list TXT file into the catalog.

Each line is "Name;Section,Section,...". New names are added, existing
names get their section list overwritten, and section references that
don't resolve degrade to warnings. Lines without a ';' are skipped.

Example:
  storenav import products.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !strings.HasSuffix(strings.ToLower(path), ".txt") {
				return NewExitError(ExitCommandError, "please choose a .txt file")
			}

			text, err := os.ReadFile(path)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read import file", err)
			}

			ctx := cmd.Context()
			a, err := openApp(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			res := importer.Import(string(text), a.catalog.Products(), a.catalog.Sections(), catalog.UUIDv7Source{})
			a.catalog.ReplaceProducts(res.Products)

			if err := a.save(ctx); err != nil {
				return err
			}

			// One notification per import, whatever the mix of outcomes.
			a.notifier.Show(res.Summary(), notify.DurationLong)
			return f.Successf(struct {
				Added    int `json:"added"`
				Updated  int `json:"updated"`
				Warnings int `json:"warnings"`
			}{res.Added, res.Updated, res.Warnings}, "%s", res.Summary())
		},
	}
}
