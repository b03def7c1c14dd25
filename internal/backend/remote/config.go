package remote

import (
	"strings"

	"go.uber.org/zap"

	"github.com/rwx-research/xray-import/internal/backend"
	"github.com/rwx-research/xray-import/internal/errors"
)

// ClientConfig is the configuration object for the Xray API client
type ClientConfig struct {
	Debug         bool
	Hosting       backend.Hosting
	ServerAddress string
	CloudAddress  string
	Insecure      bool
	Log           *zap.SugaredLogger

	// Server & Data Center: either a personal access token or basic auth
	Token    string
	Username string
	Password string

	// Cloud: API key
	ClientID     string
	ClientSecret string
}

// Validate checks the configuration for errors
func (cfg ClientConfig) Validate() error {
	if cfg.Log == nil {
		return errors.NewInternalError("missing logger")
	}

	switch cfg.Hosting {
	case backend.HostingServer:
		if cfg.ServerAddress == "" {
			return errors.NewConfigurationError(
				"missing server address",
				"Xray Server and Data Center instances need the address of the Jira instance.",
				"Set 'server-address' on the instance in your config file.",
			)
		}

		if cfg.Token == "" && (cfg.Username == "" || cfg.Password == "") {
			return errors.NewConfigurationError(
				"missing Jira credentials",
				"Neither a personal access token nor a username and password were provided.",
				"Set XRAY_TOKEN, or XRAY_USERNAME and XRAY_PASSWORD.",
			)
		}
	case backend.HostingCloud:
		if cfg.ClientID == "" || cfg.ClientSecret == "" {
			return errors.NewConfigurationError(
				"missing Xray Cloud API key",
				"Xray Cloud requires a client ID and a client secret to authenticate.",
				"Set XRAY_CLIENT_ID and XRAY_CLIENT_SECRET.",
			)
		}
	default:
		return errors.NewConfigurationError(
			"unknown hosting type",
			"The hosting type of an instance must be either 'server' or 'cloud'.",
			"Set 'hosting' on the instance in your config file.",
		)
	}

	return nil
}

// WithDefaults returns a copy of the configuration with defaults applied where necessary.
func (cfg ClientConfig) WithDefaults() ClientConfig {
	if cfg.CloudAddress == "" {
		cfg.CloudAddress = defaultCloudAddress
	}

	cfg.CloudAddress = strings.TrimRight(cfg.CloudAddress, "/")
	cfg.ServerAddress = strings.TrimRight(cfg.ServerAddress, "/")

	return cfg
}
