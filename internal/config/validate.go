package config

import (
	"fmt"
	"strings"

	"github.com/rwx-research/xray-import/internal/catalog"
	"github.com/rwx-research/xray-import/internal/errors"
)

// Validate checks an import before anything is read or uploaded and returns the first violation it finds. It never
// touches the file system.
func Validate(imp Import) error {
	if _, ok := imp.ResolvedFormat(); !ok {
		return errors.NewConfigurationError(
			"passed format is empty or could not be found",
			fmt.Sprintf("The format %q does not match any result format supported by Xray.", displayFormat(imp)),
			"Run 'xray-import formats' to list the supported formats.",
		)
	}

	if strings.TrimSpace(imp.ResultsPath()) == "" {
		return missingField(catalog.DataParameterResults.Label())
	}

	for _, dp := range catalog.DataParameters() {
		if value, ok := imp.Field(dp.Key()); ok && dp.Required() && strings.TrimSpace(value) == "" {
			return missingField(dp.Label())
		}
	}

	for _, qp := range catalog.QueryParameters() {
		if value, ok := imp.Field(qp.Key()); ok && qp.Required() && strings.TrimSpace(value) == "" {
			return missingField(qp.Label())
		}
	}

	paths := []string{imp.ResultsPath()}
	if imp.InfoIsFilePath() {
		paths = append(paths, imp.Info())
	}

	return ValidatePaths(paths...)
}

// ValidatePaths rejects result and info paths that point to an upper directory. It is run on the configured values and
// again once variables are expanded.
func ValidatePaths(paths ...string) error {
	for _, path := range paths {
		if pointsToUpperDirectory(path) {
			return errors.NewConfigurationError(
				"You cannot provide file paths for upper directories.",
				"Result and info files are resolved relative to the workspace and may not leave it.",
				"Remove any '../' segment from the configured paths and from the variables they reference.",
			)
		}
	}

	return nil
}

func missingField(label string) error {
	return errors.NewConfigurationError(
		fmt.Sprintf("You must configure the field %s", label),
		fmt.Sprintf("The field %q is required by the selected format but has no value.", label),
		"Set a value for it in the import configuration or pass the matching flag.",
	)
}

func pointsToUpperDirectory(path string) bool {
	return strings.Contains(path, "../") || strings.Contains(path, `..\`)
}

func displayFormat(imp Import) string {
	if imp.Format != "" {
		return imp.Format
	}

	return imp.FormatSuffix
}
