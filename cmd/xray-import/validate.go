package main

import (
	"github.com/spf13/cobra"

	"github.com/rwx-research/xray-import/internal/errors"
)

// validateCmd is the "validate" sub-command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every import stored in the config file",
	Long:  descriptionValidate,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return errors.WithStack(err)
		}

		return markLogged(xrayImport.ValidateImports(cfg.ConfigFile))
	},
}
