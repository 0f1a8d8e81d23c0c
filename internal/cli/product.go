package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovchar/storenav/internal/catalog"
	"github.com/ovchar/storenav/internal/notify"
)

// NewProductCommand creates the product command group.
func NewProductCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Operator product maintenance",
	}

	cmd.AddCommand(newProductAddCommand(rootOpts))
	cmd.AddCommand(newProductDeleteCommand(rootOpts))
	cmd.AddCommand(newProductAssignCommand(rootOpts))
	cmd.AddCommand(newProductListCommand(rootOpts))

	return cmd
}

func newProductAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a product to the catalog",
		Long: `Add a product with no assigned sections.

The name must be unique (case-sensitive). A duplicate is rejected
before any state changes.

Example:
  storenav product add "Чипсы Lays"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			p, err := a.catalog.AddProduct(args[0])
			if catalog.IsDuplicateName(err) {
				msg := fmt.Sprintf("Product named %q already exists!", args[0])
				a.notifier.Show(msg, notify.DurationShort)
				_ = f.Error(string(catalog.ErrCodeDuplicateName), msg)
				return NewExitError(ExitFailure, msg)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to add product", err)
			}

			if err := a.save(ctx); err != nil {
				return err
			}
			return f.Successf(p, "added product %q (id %s)", p.Name, p.ID)
		},
	}
}

func newProductDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a product by id",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			p, ok := a.catalog.FindProductByID(args[0])
			if err := a.catalog.DeleteProduct(args[0]); err != nil {
				_ = f.Error(string(catalog.ErrCodeNotFound), err.Error())
				return NewExitError(ExitFailure, err.Error())
			}

			if err := a.save(ctx); err != nil {
				return err
			}
			if ok {
				a.notifier.Show(fmt.Sprintf("Product %q deleted", p.Name), notify.DurationShort)
			}
			return f.Successf(p, "deleted product %q", p.Name)
		},
	}
}

func newProductAssignCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <id> [section...]",
		Short: "Replace a product's section assignments",
		Long: `Replace the product's section list with the given names.

This is a full overwrite: assigning nothing clears the list. Names are
not validated against the section catalog; the assignment surface is
expected to offer only valid names.

Example:
  storenav product assign 0190a5e2-... Бакалея Напитки`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			if err := a.catalog.AssignSections(args[0], args[1:]); err != nil {
				_ = f.Error(string(catalog.ErrCodeNotFound), err.Error())
				return NewExitError(ExitFailure, err.Error())
			}

			if err := a.save(ctx); err != nil {
				return err
			}
			p, _ := a.catalog.FindProductByID(args[0])
			return f.Successf(p, "assigned %q to [%s]", p.Name, strings.Join(p.SectionNames, ", "))
		},
	}
}

func newProductListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List catalog products",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			products := a.catalog.Products()
			if rootOpts.Format == "json" {
				return f.Success(products)
			}
			for _, p := range products {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t[%s]\n", p.ID, p.Name, strings.Join(p.SectionNames, ", "))
			}
			return nil
		},
	}
}
