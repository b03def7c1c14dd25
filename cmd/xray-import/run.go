package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rwx-research/xray-import/internal/errors"
)

var (
	runInstance string

	// runCmd is the "run" sub-command
	runCmd = &cobra.Command{
		Use:   "run <name>",
		Short: "Run an import stored in the config file",
		Long:  descriptionRun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(cmd)
			if err != nil {
				return errors.WithStack(err)
			}

			name := args[0]
			imp, ok := cfg.Imports[name]
			if !ok {
				return errors.NewConfigurationError(
					fmt.Sprintf("The import %q was not found", name),
					"'xray-import run' only runs imports stored in the 'imports' section of the config file.",
					"Add the import to your config file or use 'xray-import results' instead.",
				)
			}

			return importWith(cmd, name, imp, runInstance)
		},
	}
)

func init() {
	runCmd.Flags().StringVar(&runInstance, "instance", "",
		"the Xray instance to import into, overriding the one stored on the import")
}
