package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovchar/storenav/internal/catalog"
	"github.com/ovchar/storenav/internal/notify"
)

// SectionAddOptions holds flags for the section add command.
type SectionAddOptions struct {
	*RootOptions
	X float64
	Y float64
	W float64
	H float64
}

// NewSectionCommand creates the section command group.
func NewSectionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Operator map section maintenance",
	}

	cmd.AddCommand(newSectionAddCommand(rootOpts))
	cmd.AddCommand(newSectionDeleteCommand(rootOpts))
	cmd.AddCommand(newSectionListCommand(rootOpts))

	return cmd
}

func newSectionAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SectionAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a map section",
		Long: `Add a named rectangular section in map-image pixel space.

The name must be unique. A duplicate is rejected before any state
changes.

Example:
  storenav section add Фрукты --x 40 --y 10 --w 120 --h 80`,
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

			coords := catalog.Rect{X: opts.X, Y: opts.Y, W: opts.W, H: opts.H}
			s, err := a.catalog.AddSection(args[0], coords)
			if catalog.IsDuplicateName(err) {
				msg := fmt.Sprintf("Section named %q already exists!", args[0])
				a.notifier.Show(msg, notify.DurationShort)
				_ = f.Error(string(catalog.ErrCodeDuplicateName), msg)
				return NewExitError(ExitFailure, msg)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to add section", err)
			}

			if err := a.save(ctx); err != nil {
				return err
			}
			return f.Successf(s, "added section %q (id %s)", s.Name, s.ID)
		},
	}

	cmd.Flags().Float64Var(&opts.X, "x", 0, "left edge in map pixels")
	cmd.Flags().Float64Var(&opts.Y, "y", 0, "top edge in map pixels")
	cmd.Flags().Float64Var(&opts.W, "w", 0, "width in map pixels")
	cmd.Flags().Float64Var(&opts.H, "h", 0, "height in map pixels")

	return cmd
}

func newSectionDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a section by id",
		Long: `Delete a section and strip its name from all products.

References from products to sections are soft; stripping on delete
keeps them from dangling.`,
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

			if err := a.catalog.DeleteSection(args[0]); err != nil {
				_ = f.Error(string(catalog.ErrCodeNotFound), err.Error())
				return NewExitError(ExitFailure, err.Error())
			}

			if err := a.save(ctx); err != nil {
				return err
			}
			return f.Successf(struct{}{}, "deleted section %s", args[0])
		},
	}
}

func newSectionListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List map sections",
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

			sections := a.catalog.Sections()
			if rootOpts.Format == "json" {
				return f.Success(sections)
			}
			for _, s := range sections {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%.0f,%.0f %.0fx%.0f)\n",
					s.ID, s.Name, s.Coords.X, s.Coords.Y, s.Coords.W, s.Coords.H)
			}
			return nil
		},
	}
}
