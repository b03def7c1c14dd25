package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rwx-research/xray-import/internal/catalog"
	"github.com/rwx-research/xray-import/internal/cli"
	"github.com/rwx-research/xray-import/internal/errors"
	"github.com/rwx-research/xray-import/internal/fs"
	"github.com/rwx-research/xray-import/internal/mocks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const exampleConfig = `instances:
  jira:
    hosting: server
    server-address: https://jira.example.com
imports:
  nightly:
    instance: jira
    format: junit
    fields:
      importFilePath: build/**/*.xml
      projectKey: PROJ
  legacy:
    formatSuffix: /cucumber
    importFilePath: cucumber.json
    projectKey: PROJ
output:
  metadata-file: .xray/metadata.env
`

var _ = Describe("InitConfig", func() {
	var (
		dir  string
		args rootCliArgs
		cmd  *cobra.Command
		cfg  Config
		err  error
	)

	writeConfig := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
		return path
	}

	setenv := func(name, value string) {
		Expect(os.Setenv(name, value)).To(Succeed())
		DeferCleanup(os.Unsetenv, name)
	}

	BeforeEach(func() {
		for _, env := range os.Environ() {
			if strings.HasPrefix(env, "XRAY_") {
				pair := strings.SplitN(env, "=", 2)
				os.Unsetenv(pair[0])
			}
		}

		var err error
		dir, err = os.MkdirTemp("", "xray-import-config")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		pwd, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(dir)).To(Succeed())
		DeferCleanup(os.Chdir, pwd)

		cmd = &cobra.Command{}
		cmd.SetContext(context.Background())
		Expect(configureRootCmd(cmd)).To(Succeed())

		args = rootCliArgs{}
	})

	JustBeforeEach(func() {
		cfg, err = InitConfig(cmd, args)
	})

	Context("without a config file", func() {
		It("uses the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Instances).To(BeEmpty())
			Expect(cfg.Imports).To(BeEmpty())
			Expect(cfg.DryRun).To(BeFalse())
			Expect(cfg.Workspace).NotTo(BeEmpty())
		})

		It("stores the config on the command", func() {
			stored, err := getConfig(cmd)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Workspace).To(Equal(cfg.Workspace))
		})
	})

	Context("with an explicit config file", func() {
		BeforeEach(func() {
			args.configFilePath = writeConfig("custom.yaml", exampleConfig)
		})

		It("parses instances & imports", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Instances).To(HaveKey("jira"))
			Expect(cfg.Instances["jira"].ServerAddress).To(Equal("https://jira.example.com"))

			Expect(cfg.Imports).To(HaveLen(2))
			Expect(cfg.Imports["nightly"].Format).To(Equal("junit"))
			Expect(cfg.Imports["nightly"].Fields).To(HaveKeyWithValue("projectKey", "PROJ"))
			Expect(cfg.Imports["legacy"].FormatSuffix).To(Equal("/cucumber"))
			Expect(cfg.Imports["legacy"].ImportFilePath).To(Equal("cucumber.json"))
		})

		It("falls back to the output section of the config file", func() {
			Expect(cfg.MetadataFile).To(Equal(".xray/metadata.env"))
		})

		Context("and a metadata file in the environment", func() {
			BeforeEach(func() {
				setenv("XRAY_IMPORT_METADATA_FILE", "out/build.env")
			})

			It("prefers the environment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.MetadataFile).To(Equal("out/build.env"))
			})
		})
	})

	Context("with a config file that does not exist", func() {
		BeforeEach(func() {
			args.configFilePath = filepath.Join(dir, "missing.yaml")
		})

		It("returns a configuration error", func() {
			_, ok := errors.AsConfigurationError(err)
			Expect(ok).To(BeTrue())
		})
	})

	Context("with unknown keys in the config file", func() {
		BeforeEach(func() {
			args.configFilePath = writeConfig("custom.yaml", "instances:\n  jira:\n    hostname: jira\n")
		})

		It("returns a parsing error", func() {
			e, ok := errors.AsConfigurationError(err)
			Expect(ok).To(BeTrue())
			Expect(e.Error()).To(Equal("Parsing Error"))
		})
	})

	Context("with a config file in a parent directory", func() {
		BeforeEach(func() {
			writeConfig(".xray/config.yml", exampleConfig)

			nested := filepath.Join(dir, "services", "api")
			Expect(os.MkdirAll(nested, 0o755)).To(Succeed())
			Expect(os.Chdir(nested)).To(Succeed())
		})

		It("finds it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Imports).To(HaveKey("nightly"))
		})
	})

	Context("with both a .yaml and a .yml config file", func() {
		BeforeEach(func() {
			writeConfig(".xray/config.yml", exampleConfig)
			writeConfig(".xray/config.yaml", exampleConfig)
		})

		It("refuses to pick one", func() {
			e, ok := errors.AsConfigurationError(err)
			Expect(ok).To(BeTrue())
			Expect(e.Error()).To(Equal("Unable to identify configuration file"))
		})
	})

	Context("with credentials in the environment", func() {
		BeforeEach(func() {
			setenv("XRAY_TOKEN", "personal-access-token")
			setenv("XRAY_CLIENT_ID", "client-id")
			setenv("XRAY_CLIENT_SECRET", "client-secret")
		})

		It("reads them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Secrets.Token).To(Equal("personal-access-token"))
			Expect(cfg.Secrets.ClientID).To(Equal("client-id"))
			Expect(cfg.Secrets.ClientSecret).To(Equal("client-secret"))
			Expect(cfg.Secrets.Username).To(BeEmpty())
		})
	})

	Context("with flags set through the environment", func() {
		BeforeEach(func() {
			setenv("XRAY_IMPORT_DRY_RUN", "true")
			setenv("XRAY_IMPORT_WORKSPACE", "/builds/project")
		})

		It("applies them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.DryRun).To(BeTrue())
			Expect(cfg.Workspace).To(Equal("/builds/project"))
		})
	})
})

var _ = Describe("results flags", func() {
	It("builds an import for the selected format", func() {
		imp, err := resultsCliArgs{
			format:        "junit-multipart",
			results:       "build/*.xml",
			infoFile:      "info.json",
			sameExecution: true,
		}.toImport()
		Expect(err).NotTo(HaveOccurred())

		format, ok := imp.ResolvedFormat()
		Expect(ok).To(BeTrue())
		Expect(format).To(Equal(catalog.FormatJUnitMultipart))
		Expect(imp.ResultsPath()).To(Equal("build/*.xml"))
		Expect(imp.Info()).To(Equal("info.json"))
		Expect(imp.InfoIsFilePath()).To(BeTrue())
		Expect(imp.SameExecution()).To(BeTrue())
		Expect(imp.Fields).NotTo(HaveKey("projectKey"))
	})

	It("sends inline info as content", func() {
		imp, err := resultsCliArgs{format: "xray-multipart", results: "out.json", info: `{"fields":{}}`}.toImport()
		Expect(err).NotTo(HaveOccurred())
		Expect(imp.InfoIsFilePath()).To(BeFalse())
		Expect(imp.Info()).To(Equal(`{"fields":{}}`))
	})

	It("rejects unknown formats", func() {
		_, err := resultsCliArgs{format: "mocha", results: "out.json"}.toImport()
		_, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
	})
})

var _ = Describe("decodeConfigFile", func() {
	var (
		fileSystem *mocks.FileSystem
		file       *mocks.File
	)

	open := func(content string) {
		fileSystem.MockOpen = func(name string) (fs.File, error) {
			file = mocks.NewFile(name, content)
			return file, nil
		}
	}

	BeforeEach(func() {
		fileSystem = new(mocks.FileSystem)
	})

	It("accepts an empty file", func() {
		open("")

		var configFile cli.ConfigFile
		Expect(decodeConfigFile(fileSystem, "config.yaml", &configFile)).To(Succeed())
		Expect(configFile.Imports).To(BeEmpty())
	})

	It("reads the output section", func() {
		open("output:\n  debug: true\n  summary-file: summary.md\n")

		var configFile cli.ConfigFile
		Expect(decodeConfigFile(fileSystem, "config.yaml", &configFile)).To(Succeed())
		Expect(configFile.Output.Debug).To(BeTrue())
		Expect(configFile.Output.SummaryFile).To(Equal("summary.md"))
		Expect(file.Closed).To(BeTrue())
	})

	It("reports files that cannot be opened", func() {
		fileSystem.MockOpen = func(name string) (fs.File, error) {
			return nil, os.ErrPermission
		}

		err := decodeConfigFile(fileSystem, "config.yaml", new(cli.ConfigFile))
		e, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
		Expect(e.Error()).To(Equal(`Unable to open config file "config.yaml"`))
	})
})
