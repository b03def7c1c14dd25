package cli

import "github.com/rwx-research/xray-import/internal/config"

// ImportConfig holds the configuration for importing results (used by `ImportResults`)
type ImportConfig struct {
	Name            string
	Import          config.Import
	Workspace       string
	FailOnNoResults bool
	MetadataFile    string
	SummaryFile     string
}
