package main

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/rwx-research/xray-import/internal/catalog"
	"github.com/rwx-research/xray-import/internal/config"
	"github.com/rwx-research/xray-import/internal/errors"
)

type resultsCliArgs struct {
	instance         string
	format           string
	results          string
	info             string
	infoFile         string
	projectKey       string
	testExecKey      string
	testPlanKey      string
	testEnvironments string
	revision         string
	fixVersion       string
	sameExecution    bool
}

var (
	resultsArgs resultsCliArgs

	// resultsCmd is the "results" sub-command
	resultsCmd = &cobra.Command{
		Use:   "results",
		Short: "Import result files into Xray",
		Long:  descriptionResults,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			imp, err := resultsArgs.toImport()
			if err != nil {
				return err
			}

			return importWith(cmd, "", imp, resultsArgs.instance)
		},
	}
)

func init() {
	flags := resultsCmd.Flags()

	flags.StringVar(&resultsArgs.instance, "instance", "", "the Xray instance from the config file to import into")
	flags.StringVar(&resultsArgs.format, "format", "", "the format of the result files, see 'xray-import formats'")
	flags.StringVar(&resultsArgs.results, "results", "", "path or glob of the result files")
	flags.StringVar(&resultsArgs.info, "info", "", "Test Execution info as inline JSON (multipart formats)")
	flags.StringVar(&resultsArgs.infoFile, "info-file", "", "path of a Test Execution info file (multipart formats)")
	flags.StringVar(&resultsArgs.projectKey, "project-key", "", "the key of the Jira project")
	flags.StringVar(&resultsArgs.testExecKey, "test-exec-key", "", "the key of an existing Test Execution")
	flags.StringVar(&resultsArgs.testPlanKey, "test-plan-key", "", "the key of the Test Plan")
	flags.StringVar(&resultsArgs.testEnvironments, "test-environments", "", "test environments, separated by ';'")
	flags.StringVar(&resultsArgs.revision, "revision", "", "the source code revision")
	flags.StringVar(&resultsArgs.fixVersion, "fix-version", "", "the fix version")
	flags.BoolVar(&resultsArgs.sameExecution, "same-execution", false,
		"import every matching file into the Test Execution created by the first one")

	for _, name := range []string{"format", "results"} {
		if err := resultsCmd.MarkFlagRequired(name); err != nil {
			initializationErrors = multierror.Append(initializationErrors, err)
		}
	}

	resultsCmd.MarkFlagsMutuallyExclusive("info", "info-file")
}

func (a resultsCliArgs) toImport() (config.Import, error) {
	format, ok := catalog.ResolveFormat(a.format)
	if !ok {
		return config.Import{}, errors.NewConfigurationError(
			fmt.Sprintf("Unknown format %q", a.format),
			"The format selects the Xray import endpoint and decides which fields an import accepts.",
			"Run 'xray-import formats' to list all supported formats.",
		)
	}

	values := map[string]string{
		catalog.DataParameterResults.Key():           a.results,
		catalog.QueryParameterProjectKey.Key():       a.projectKey,
		catalog.QueryParameterTestExecKey.Key():      a.testExecKey,
		catalog.QueryParameterTestPlanKey.Key():      a.testPlanKey,
		catalog.QueryParameterTestEnvironments.Key(): a.testEnvironments,
		catalog.QueryParameterRevision.Key():         a.revision,
		catalog.QueryParameterFixVersion.Key():       a.fixVersion,
		catalog.FieldImportToSameExecution:           strconv.FormatBool(a.sameExecution),
	}

	switch {
	case a.infoFile != "":
		values[catalog.DataParameterInfo.Key()] = a.infoFile
		values[catalog.FieldInputInfoSwitcher] = catalog.InfoSwitcherFilePath
	case a.info != "":
		values[catalog.DataParameterInfo.Key()] = a.info
		values[catalog.FieldInputInfoSwitcher] = catalog.InfoSwitcherFileContent
	}

	return config.NewImport(a.instance, format, values), nil
}
