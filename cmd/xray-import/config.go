package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v7"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rwx-research/xray-import/internal/cli"
	"github.com/rwx-research/xray-import/internal/errors"
	"github.com/rwx-research/xray-import/internal/fs"
)

// Config is the internal representation of the configuration.
type Config struct {
	cli.ConfigFile

	Workspace       string
	Debug           bool
	DryRun          bool
	Insecure        bool
	FailOnNoResults bool
	MetadataFile    string
	SummaryFile     string

	Secrets struct {
		Token        string `env:"XRAY_TOKEN"`
		Username     string `env:"XRAY_USERNAME"`
		Password     string `env:"XRAY_PASSWORD"`
		ClientID     string `env:"XRAY_CLIENT_ID"`
		ClientSecret string `env:"XRAY_CLIENT_SECRET"`
	}
}

type contextKey string

var configKey = contextKey("xrayImportConfig")

func getConfig(cmd *cobra.Command) (Config, error) {
	var val any
	if ctx := cmd.Context(); ctx != nil {
		val = ctx.Value(configKey)
	}

	if val == nil {
		return Config{}, errors.NewInternalError(
			"Tried to fetch config from the command but it wasn't set. This should never happen!")
	}

	cfg, ok := val.(Config)
	if !ok {
		return Config{}, errors.NewInternalError(
			"Tried to fetch config from the command but it was of the wrong type. This should never happen!")
	}

	return cfg, nil
}

// adds config to cmd's context
func setConfigContext(cmd *cobra.Command, cfg Config) error {
	if _, err := getConfig(cmd); err == nil {
		return errors.NewInternalError("Tried to set config on the command but it was already set. This should never happen!")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmd.SetContext(context.WithValue(ctx, configKey, cfg))
	return nil
}

const (
	xrayDirectory  = ".xray"
	configFileName = "config"
)

var configFileExtensions = []string{"yaml", "yml"}

// findInParentDir starts at the current working directory and walk up to the root, trying
// to find the specified fileName
func findInParentDir(fileName string) (string, error) {
	var match string
	var walk func(string, string) error

	walk = func(base, root string) error {
		match = path.Join(base, fileName)

		info, err := os.Stat(match)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.WithStack(err)
		}

		if info != nil {
			return nil
		}

		if base == root {
			return errors.WithStack(os.ErrNotExist)
		}

		return walk(filepath.Dir(base), root)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.WithStack(err)
	}

	volumeName := filepath.VolumeName(pwd)
	if volumeName == "" {
		volumeName = string(os.PathSeparator)
	}

	if err := walk(pwd, volumeName); err != nil {
		return "", errors.WithStack(err)
	}

	return match, nil
}

// InitConfig reads our configuration from the system.
// Environment variables take precedence over a config file.
// Flags take precedence over all other options.
func InitConfig(cmd *cobra.Command, cliArgs rootCliArgs) (cfg Config, err error) {
	configFilePath := cliArgs.configFilePath

	if configFilePath == "" {
		configFilePath, err = discoverConfigFile()
		if err != nil {
			return cfg, err
		}
	}

	if configFilePath != "" {
		if err = decodeConfigFile(fs.Local{}, configFilePath, &cfg.ConfigFile); err != nil {
			return cfg, err
		}
	}

	if err = env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "unable to parse environment variables")
	}

	if cfg, err = bindRootCmdFlags(cfg); err != nil {
		return cfg, err
	}

	if err = setConfigContext(cmd, cfg); err != nil {
		return cfg, errors.WithStack(err)
	}

	return cfg, nil
}

func discoverConfigFile() (string, error) {
	possibleConfigFilePaths := make([]string, 0, len(configFileExtensions))

	for _, extension := range configFileExtensions {
		configFilePath, err := findInParentDir(
			filepath.Join(xrayDirectory, fmt.Sprintf("%s.%s", configFileName, extension)),
		)

		if err == nil {
			possibleConfigFilePaths = append(possibleConfigFilePaths, configFilePath)
			continue
		}

		if !errors.Is(err, os.ErrNotExist) {
			return "", errors.NewConfigurationError(
				"Unable to read configuration file",
				fmt.Sprintf("The following system error occurred while looking for a config file: %s", err.Error()),
				"Please make sure that xray-import has the correct permissions to access the config file.",
			)
		}
	}

	if len(possibleConfigFilePaths) > 1 {
		return "", errors.NewConfigurationError(
			"Unable to identify configuration file",
			fmt.Sprintf(
				"xray-import found multiple configuration files in your environment: %s\n",
				strings.Join(possibleConfigFilePaths, ", "),
			),
			"Please make sure only one config file is present in your environment or explicitly specify "+
				"one using the '--config-file' flag.",
		)
	}

	if len(possibleConfigFilePaths) == 0 {
		return "", nil
	}

	return possibleConfigFilePaths[0], nil
}

func decodeConfigFile(fileSystem fs.FileSystem, configFilePath string, configFile *cli.ConfigFile) error {
	fd, err := fileSystem.Open(configFilePath)
	if err != nil {
		return errors.NewConfigurationError(
			fmt.Sprintf("Unable to open config file %q", configFilePath),
			err.Error(),
			"Please make sure the file passed to '--config-file' exists and is readable.",
		)
	}
	defer fd.Close()

	decoder := yaml.NewDecoder(fd)
	decoder.KnownFields(true)
	if err = decoder.Decode(configFile); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		typeError := new(yaml.TypeError)
		if errors.As(err, &typeError) {
			err = errors.NewConfigurationError(
				"Parsing Error",
				strings.Join(typeError.Errors, "\n"),
				"Please refer to the 'instances' & 'imports' sections of the README for the correct config file syntax.",
			)
		}

		return errors.Wrap(err, "unable to parse config file")
	}

	return nil
}
