package main

import (
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rwx-research/xray-import/internal/cli"
	"github.com/rwx-research/xray-import/internal/errors"
	"github.com/rwx-research/xray-import/internal/fs"
	"github.com/rwx-research/xray-import/internal/logging"
	"github.com/rwx-research/xray-import/internal/templating"
)

const envPrefix = "XRAY_IMPORT"

type rootCliArgs struct {
	configFilePath  string
	workspace       string
	debug           bool
	dryRun          bool
	insecure        bool
	failOnNoResults bool
	metadataFile    string
	summaryFile     string
	version         bool
}

var (
	cliArgs    rootCliArgs
	xrayImport cli.Service

	// initializationErrors collects errors of `init` functions, they are reported once the root command is configured.
	initializationErrors *multierror.Error

	rootCmd = &cobra.Command{
		Use:               "xray-import",
		Short:             "Import test results into Xray",
		Long:              descriptionXrayImport,
		PersistentPreRunE: initCLIService,
		SilenceErrors:     true, // Errors are manually printed in 'main'
		SilenceUsage:      true, // Disables usage text on error
		RunE: func(cmd *cobra.Command, args []string) error {
			if cliArgs.version {
				xrayImport.PrintVersion()
				return nil
			}

			return errors.WithStack(cmd.Help())
		},
	}
)

func configureRootCmd(rootCmd *cobra.Command) error {
	if err := initializationErrors.ErrorOrNil(); err != nil {
		return errors.WithStack(err)
	}

	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cliArgs.configFilePath, "config-file", "", "the config file for xray-import")
	flags.StringVar(&cliArgs.workspace, "workspace", "",
		"the directory relative paths are resolved against (default: the current working directory)")
	flags.BoolVar(&cliArgs.debug, "debug", false, "enable debug output")
	flags.BoolVar(&cliArgs.dryRun, "dry-run", false,
		"record requests under '.xray/dry-run' instead of sending them to Xray")
	flags.BoolVar(&cliArgs.insecure, "insecure", false, "skip verification of TLS certificates")
	flags.BoolVar(&cliArgs.failOnNoResults, "fail-on-no-results", false, "fail if no result file matches")
	flags.StringVar(&cliArgs.metadataFile, "metadata-file", "", "write build metadata to this file in dotenv format")
	flags.StringVar(&cliArgs.summaryFile, "summary-file", "", "write a markdown summary of the import to this file")
	rootCmd.Flags().BoolVar(&cliArgs.version, "version", false, "print the version of xray-import")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	for _, name := range []string{
		"workspace", "debug", "dry-run", "insecure", "fail-on-no-results", "metadata-file", "summary-file",
	} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			return errors.WithStack(err)
		}
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return nil
}

func initCLIService(cmd *cobra.Command, _ []string) error {
	cfg, err := InitConfig(cmd, cliArgs)
	if err != nil {
		return errors.WithStack(err)
	}

	logger := logging.NewProductionLogger()
	if cfg.Debug {
		logger = logging.NewDebugLogger()
	}

	xrayImport = cli.Service{
		Log:        logger,
		FileSystem: fs.Local{},
		Expander:   templating.NewEnvironment(nil),
	}

	return nil
}

// bindRootCmdFlags applies flags & their `XRAY_IMPORT_*` environment variables on top of the config file.
func bindRootCmdFlags(cfg Config) (Config, error) {
	cfg.Workspace = viper.GetString("workspace")
	if cfg.Workspace == "" {
		pwd, err := os.Getwd()
		if err != nil {
			return cfg, errors.NewSystemError("unable to determine the working directory: %s", err)
		}

		cfg.Workspace = pwd
	}

	cfg.Debug = viper.GetBool("debug") || cfg.Output.Debug
	cfg.DryRun = viper.GetBool("dry-run")
	cfg.Insecure = viper.GetBool("insecure")
	cfg.FailOnNoResults = viper.GetBool("fail-on-no-results")

	cfg.MetadataFile = viper.GetString("metadata-file")
	if cfg.MetadataFile == "" {
		cfg.MetadataFile = cfg.Output.MetadataFile
	}

	cfg.SummaryFile = viper.GetString("summary-file")
	if cfg.SummaryFile == "" {
		cfg.SummaryFile = cfg.Output.SummaryFile
	}

	return cfg, nil
}
