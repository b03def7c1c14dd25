//go:build integration

package integration_test

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rwx-research/xray-import/internal/backend/local"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const configFile = `instances:
  jira:
    hosting: server
    server-address: https://jira.example.com
imports:
  nightly:
    format: junit
    fields:
      importFilePath: "**/target/TEST-*.xml"
      projectKey: PROJ
      importToSameExecution: "true"
      revision: ${GIT_SHA}
  broken:
    format: junit
    fields:
      importFilePath: ../outside/*.xml
      projectKey: PROJ
`

var _ = Describe("xray-import", func() {
	var workspace string

	write := func(name, content string) {
		path := filepath.Join(workspace, name)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	}

	records := func() []local.Record {
		dir := filepath.Join(workspace, filepath.FromSlash(local.DefaultDir))
		entries, err := os.ReadDir(dir)
		Expect(err).ToNot(HaveOccurred())

		result := make([]local.Record, 0, len(entries))
		for _, entry := range entries {
			content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			Expect(err).ToNot(HaveOccurred())

			var record local.Record
			Expect(yaml.Unmarshal(content, &record)).To(Succeed())
			result = append(result, record)
		}

		return result
	}

	BeforeEach(func() {
		var err error
		workspace, err = os.MkdirTemp("", "xray-import-integration")
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, workspace)

		write(".xray/config.yaml", configFile)
		write("api/target/TEST-api.xml", "<testsuite/>")
		write("web/target/TEST-web.xml", "<testsuite/>")
		write("web/target/TEST-e2e.xml", "<testsuite/>")
	})

	It("prints its version", func() {
		result := runXrayImport(xrayImportArgs{args: []string{"--version"}, dir: workspace})

		Expect(result.exitCode).To(Equal(0))
		Expect(result.stdout).ToNot(BeEmpty())
	})

	It("lists the supported formats", func() {
		result := runXrayImport(xrayImportArgs{args: []string{"formats"}, dir: workspace})

		Expect(result.exitCode).To(Equal(0))
		Expect(result.stdout).To(ContainSubstring("junit-multipart"))
		Expect(result.stdout).To(ContainSubstring("/robot/multipart"))
	})

	Context("running a stored import", func() {
		It("imports every file into the same Test Execution", func() {
			result := runXrayImport(xrayImportArgs{
				args: []string{"run", "nightly", "--dry-run", "--metadata-file", "out/metadata.env"},
				dir:  workspace,
				env:  map[string]string{"GIT_SHA": "abc123"},
			})

			Expect(result.exitCode).To(Equal(0))
			Expect(result.stdout).To(ContainSubstring("Starting to import results from TEST-api.xml"))
			Expect(result.stdout).To(ContainSubstring("Successfully imported JUnit XML results from TEST-web.xml"))

			recorded := records()
			Expect(recorded).To(HaveLen(3))
			Expect(recorded[0].Query).To(Equal(map[string]string{"projectKey": "PROJ", "revision": "abc123"}))
			Expect(recorded[1].Query).To(HaveKeyWithValue("testExecKey", "PROJ-1"))
			Expect(recorded[2].Query).To(HaveKeyWithValue("testExecKey", "PROJ-1"))

			metadata, err := os.ReadFile(filepath.Join(workspace, "out", "metadata.env"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(metadata)).To(ContainSubstring(`XRAY_IS_REQUEST_SUCCESSFUL="true"`))
			Expect(string(metadata)).To(ContainSubstring(`XRAY_TEST_EXECS="PROJ-1"`))
		})

		It("fails for unknown imports", func() {
			result := runXrayImport(xrayImportArgs{args: []string{"run", "weekly", "--dry-run"}, dir: workspace})

			Expect(result.exitCode).To(Equal(1))
			Expect(result.stderr).To(ContainSubstring(`The import "weekly" was not found`))
		})

		It("fails for invalid imports", func() {
			result := runXrayImport(xrayImportArgs{args: []string{"run", "broken", "--dry-run"}, dir: workspace})

			Expect(result.exitCode).To(Equal(1))
			Expect(result.stderr).To(ContainSubstring("You cannot provide file paths for upper directories."))
		})
	})

	Context("importing from flags", func() {
		It("uploads a single file", func() {
			write("cucumber.json", "[]")

			result := runXrayImport(xrayImportArgs{
				args: []string{
					"results", "--dry-run", "--format", "cucumber", "--results", "cucumber.json",
					"--project-key", "PROJ", "--test-plan-key", "PROJ-42",
				},
				dir: workspace,
			})

			Expect(result.exitCode).To(Equal(0))

			recorded := records()
			Expect(recorded).To(HaveLen(1))
			Expect(recorded[0].Endpoint).To(Equal("/import/execution/cucumber"))
			Expect(recorded[0].Query).To(HaveKeyWithValue("testPlanKey", "PROJ-42"))
			Expect(recorded[0].Payloads).To(HaveLen(1))
			Expect(recorded[0].Payloads[0].MediaType).To(Equal("application/json"))
		})

		It("fails when nothing matches and a match is required", func() {
			result := runXrayImport(xrayImportArgs{
				args: []string{
					"results", "--dry-run", "--fail-on-no-results",
					"--format", "junit", "--results", "missing/*.xml", "--project-key", "PROJ",
				},
				dir: workspace,
			})

			Expect(result.exitCode).To(Equal(1))
			Expect(result.stderr).To(ContainSubstring(`no result files matched "missing/*.xml"`))
		})
	})

	It("validates every stored import", func() {
		result := runXrayImport(xrayImportArgs{args: []string{"validate"}, dir: workspace})

		Expect(result.exitCode).To(Equal(1))
		Expect(result.stdout).To(ContainSubstring("nightly: valid"))
		Expect(result.stderr).To(ContainSubstring("broken: You cannot provide file paths for upper directories."))
	})
})
