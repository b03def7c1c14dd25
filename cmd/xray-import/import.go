package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rwx-research/xray-import/internal/backend"
	"github.com/rwx-research/xray-import/internal/backend/local"
	"github.com/rwx-research/xray-import/internal/backend/remote"
	"github.com/rwx-research/xray-import/internal/cli"
	"github.com/rwx-research/xray-import/internal/config"
	"github.com/rwx-research/xray-import/internal/errors"
	"github.com/rwx-research/xray-import/internal/fs"
)

// importWith runs a single import against the instance it names, or the one selected by `instanceName`.
func importWith(cmd *cobra.Command, name string, imp config.Import, instanceName string) error {
	cfg, err := getConfig(cmd)
	if err != nil {
		return errors.WithStack(err)
	}

	if instanceName == "" {
		instanceName = imp.Instance
	}

	_, instance, hosting, err := cfg.Instance(instanceName)
	if err != nil {
		return errors.WithStack(err)
	}

	uploader, err := newUploader(cfg, instance, hosting)
	if err != nil {
		return errors.WithStack(err)
	}

	service := xrayImport
	service.Uploader = uploader
	service.KeyExtractor = backend.ExtractorFor(hosting)

	_, err = service.ImportResults(cmd.Context(), cli.ImportConfig{
		Name:            name,
		Import:          imp,
		Workspace:       cfg.Workspace,
		FailOnNoResults: cfg.FailOnNoResults,
		MetadataFile:    cfg.MetadataFile,
		SummaryFile:     cfg.SummaryFile,
	})

	return markLogged(err)
}

func newUploader(cfg Config, instance cli.InstanceConfig, hosting backend.Hosting) (backend.Uploader, error) {
	if cfg.DryRun {
		dir := filepath.Join(cfg.Workspace, filepath.FromSlash(local.DefaultDir))
		xrayImport.Log.Infof("Dry run: recording requests in %s", dir)

		client, err := local.NewClient(fs.Local{}, dir, hosting)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return client, nil
	}

	client, err := remote.NewClient(remote.ClientConfig{
		Debug:         cfg.Debug,
		Hosting:       hosting,
		ServerAddress: instance.ServerAddress,
		CloudAddress:  instance.CloudAddress,
		Insecure:      cfg.Insecure || instance.Insecure,
		Log:           xrayImport.Log,
		Token:         cfg.Secrets.Token,
		Username:      cfg.Secrets.Username,
		Password:      cfg.Secrets.Password,
		ClientID:      cfg.Secrets.ClientID,
		ClientSecret:  cfg.Secrets.ClientSecret,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to create Xray client")
	}

	return client, nil
}
