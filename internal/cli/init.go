package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/pyship/internal/config"
	"github.com/specialistvlad/pyship/internal/hcl_adapter"
	"github.com/spf13/cobra"
)

func initCmd(opts *Options, flags *globalFlags) *cobra.Command {
	var force bool
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a project file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := filepath.Abs(flags.dir)
			if err != nil {
				return usageError(err)
			}
			path := flags.config
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}

			err = hcl_adapter.WriteTemplate(path, config.Default(dir), force)
			if errors.Is(err, hcl_adapter.ErrTemplateExists) {
				return &ExitError{Code: ExitFailure, Message: err.Error() + " (use --force to overwrite)"}
			}
			if err != nil {
				return &ExitError{Code: ExitFailure, Message: err.Error()}
			}
			fmt.Fprintf(opts.Out, "Wrote %s\n", path)
			return nil
		},
	}
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing project file.")
	return c
}
