package main

import (
	"github.com/spf13/cobra"
)

// formatsCmd is the "formats" sub-command
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported result formats",
	Long:  descriptionFormats,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		xrayImport.PrintFormats()
		return nil
	},
}
