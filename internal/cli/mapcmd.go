package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovchar/storenav/internal/mapimage"
	"github.com/ovchar/storenav/internal/notify"
)

// MapOptions holds flags for the map command group.
type MapOptions struct {
	*RootOptions
	Dir string // directory for stored map images
}

// NewMapCommand creates the map command group.
func NewMapCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MapOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Store map image maintenance",
	}

	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", "maps", "directory for stored map images")

	cmd.AddCommand(newMapSetCommand(opts))
	cmd.AddCommand(newMapStatusCommand(opts))

	return cmd
}

func newMapSetCommand(opts *MapOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "set <image-file>",
		Short:         "Store the map image and remember its location",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			switch strings.ToLower(filepath.Ext(path)) {
			case ".png", ".jpg", ".jpeg", ".webp":
			default:
				return NewExitError(ExitCommandError, "please choose an image file")
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read image", err)
			}

			ctx := cmd.Context()
			a, err := openApp(ctx, opts.RootOptions)
			if err != nil {
				return err
			}
			defer a.close()

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

			files := mapimage.OSStore{BaseDir: opts.Dir}
			uri, err := mapimage.Save(ctx, a.store, files, filepath.Base(path), data)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to store map image", err)
			}

			a.notifier.Show("Map image saved", notify.DurationShort)
			return f.Successf(struct {
				URI string `json:"uri"`
			}{uri}, "map image stored at %s", uri)
		},
	}
}

func newMapStatusCommand(opts *MapOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "status",
		Short:         "Report whether a map image is available",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, opts.RootOptions)
			if err != nil {
				return err
			}
			defer a.close()

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

			files := mapimage.OSStore{BaseDir: opts.Dir}
			data, err := mapimage.Load(ctx, a.store, files)
			if errors.Is(err, mapimage.ErrUnavailable) {
				// Expected state, not a crash; catalog and search still work.
				return f.Successf(struct {
					Available bool `json:"available"`
				}{false}, "map unavailable")
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load map image", err)
			}

			return f.Successf(struct {
				Available bool `json:"available"`
				Bytes     int  `json:"bytes"`
			}{true, len(data)}, "map available (%d bytes)", len(data))
		},
	}
}

