package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rwx-research/xray-import/internal/backend"
	"github.com/rwx-research/xray-import/internal/config"
	"github.com/rwx-research/xray-import/internal/errors"
)

// ConfigFile holds all options that can be set over the config file
type ConfigFile struct {
	Instances map[string]InstanceConfig
	Imports   map[string]config.Import
	Output    struct {
		Debug        bool
		MetadataFile string `yaml:"metadata-file"`
		SummaryFile  string `yaml:"summary-file"`
	}
}

// InstanceConfig describes a single Xray instance. Credentials are never read from the config file.
type InstanceConfig struct {
	Hosting       string
	ServerAddress string `yaml:"server-address"`
	CloudAddress  string `yaml:"cloud-address"`
	Insecure      bool
}

// Instance finds the instance an import should run against. An explicit name wins over the one stored on the import.
// Without either, a config file with exactly one instance uses that one.
func (cf ConfigFile) Instance(name string) (string, InstanceConfig, backend.Hosting, error) {
	if name == "" && len(cf.Instances) == 1 {
		for only := range cf.Instances {
			name = only
		}
	}

	instance, ok := cf.Instances[name]
	if !ok {
		return "", InstanceConfig{}, "", errors.NewConfigurationError(
			fmt.Sprintf("The Xray instance %q was not found", name),
			fmt.Sprintf("Configured instances: %s", cf.instanceNames()),
			"Add the instance to the 'instances' section of your config file or select one using '--instance'.",
		)
	}

	hosting, ok := backend.ParseHosting(instance.Hosting)
	if !ok {
		return "", InstanceConfig{}, "", errors.NewConfigurationError(
			fmt.Sprintf("Hosting type %q of instance %q not recognized", instance.Hosting, name),
			"The hosting type of an instance must be either 'server' or 'cloud'.",
			"Set 'hosting' on the instance in your config file.",
		)
	}

	return name, instance, hosting, nil
}

func (cf ConfigFile) instanceNames() string {
	if len(cf.Instances) == 0 {
		return "none"
	}

	names := make([]string, 0, len(cf.Instances))
	for name := range cf.Instances {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}
