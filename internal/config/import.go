// Package config describes a single results import: the Xray instance to talk to, the result format and the values
// of the fields that format exposes.
package config

import (
	"strings"

	"github.com/rwx-research/xray-import/internal/catalog"
)

// Import holds the configuration of one import. It can be expressed in two shapes: the canonical one (`Format` +
// `Fields`) and a legacy one where every field has its own attribute. `Migrate` reconciles both.
type Import struct {
	Instance string `yaml:"instance"`

	Format string            `yaml:"format"`
	Fields map[string]string `yaml:"fields"`

	FormatSuffix          string `yaml:"formatSuffix"`
	ProjectKey            string `yaml:"projectKey"`
	TestEnvironments      string `yaml:"testEnvironments"`
	TestPlanKey           string `yaml:"testPlanKey"`
	FixVersion            string `yaml:"fixVersion"`
	ImportFilePath        string `yaml:"importFilePath"`
	TestExecKey           string `yaml:"testExecKey"`
	Revision              string `yaml:"revision"`
	ImportInfo            string `yaml:"importInfo"`
	InputInfoSwitcher     string `yaml:"inputInfoSwitcher"`
	ImportToSameExecution string `yaml:"importToSameExecution"`
}

// NewImport builds an import for the given format. Every field the format exposes is present in the result, blank
// unless a value was supplied. Values for keys the format does not expose are dropped.
func NewImport(instance string, format catalog.Format, values map[string]string) Import {
	fields := make(map[string]string)
	for _, key := range format.Fields() {
		fields[key] = strings.TrimSpace(values[key])
	}

	return Migrate(Import{Instance: instance, Format: format.Key(), Fields: fields})
}

// ResolvedFormat looks up the configured format, falling back to the legacy endpoint suffix.
func (i Import) ResolvedFormat() (catalog.Format, bool) {
	if f, ok := catalog.ResolveFormat(i.Format); ok {
		return f, true
	}

	return catalog.LookupFormatBySuffix(i.FormatSuffix)
}

// Field returns the value of a canonical field and whether it is present at all.
func (i Import) Field(key string) (string, bool) {
	value, ok := i.Fields[key]
	return value, ok
}

// ResultsPath is the configured path (or glob) of the result files.
func (i Import) ResultsPath() string {
	return i.Fields[catalog.DataParameterResults.Key()]
}

// Info is the configured Test Execution info, either a path or inline content depending on `InfoIsFilePath`.
func (i Import) Info() string {
	return i.Fields[catalog.DataParameterInfo.Key()]
}

// InfoIsFilePath reports whether the info field holds a path rather than inline content.
func (i Import) InfoIsFilePath() bool {
	return i.Fields[catalog.FieldInputInfoSwitcher] == catalog.InfoSwitcherFilePath
}

// SameExecution reports whether the user asked for all result files to be imported into one Test Execution.
func (i Import) SameExecution() bool {
	return strings.EqualFold(strings.TrimSpace(i.Fields[catalog.FieldImportToSameExecution]), "true")
}

// legacyFields maps every canonical key onto the matching legacy attribute.
func (i *Import) legacyFields() map[string]*string {
	return map[string]*string{
		catalog.QueryParameterProjectKey.Key():       &i.ProjectKey,
		catalog.QueryParameterTestEnvironments.Key(): &i.TestEnvironments,
		catalog.QueryParameterTestPlanKey.Key():      &i.TestPlanKey,
		catalog.QueryParameterFixVersion.Key():       &i.FixVersion,
		catalog.DataParameterResults.Key():           &i.ImportFilePath,
		catalog.QueryParameterTestExecKey.Key():      &i.TestExecKey,
		catalog.QueryParameterRevision.Key():         &i.Revision,
		catalog.DataParameterInfo.Key():              &i.ImportInfo,
		catalog.FieldInputInfoSwitcher:               &i.InputInfoSwitcher,
		catalog.FieldImportToSameExecution:           &i.ImportToSameExecution,
	}
}
