package templating_test

import (
	"github.com/rwx-research/xray-import/internal/templating"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Environment", func() {
	var environment templating.Environment

	BeforeEach(func() {
		environment = templating.Environment{
			Overrides: map[string]string{"BUILD_NUMBER": "42"},
			LookupEnv: func(name string) (string, bool) {
				switch name {
				case "JOB_NAME":
					return "nightly", true
				case "BUILD_NUMBER":
					return "1", true
				case "EMPTY":
					return "", true
				}
				return "", false
			},
		}
	})

	It("leaves values without references alone", func() {
		Expect(environment.Expand("PROJ-1")).To(Equal("PROJ-1"))
	})

	It("expands both reference styles", func() {
		Expect(environment.Expand("$JOB_NAME #${JOB_NAME}")).To(Equal("nightly #nightly"))
	})

	It("prefers overrides over the environment", func() {
		Expect(environment.Expand("build-${BUILD_NUMBER}")).To(Equal("build-42"))
	})

	It("keeps references to unknown variables", func() {
		Expect(environment.Expand("${TEST_EXEC}")).To(Equal("${TEST_EXEC}"))
		Expect(environment.Expand("$TEST_EXEC")).To(Equal("${TEST_EXEC}"))
		Expect(environment.Expand("cost: $5")).To(Equal("cost: $5"))
	})

	It("expands known but empty variables to an empty string", func() {
		Expect(environment.Expand("$EMPTY")).To(Equal(""))
	})

	It("works without an environment lookup", func() {
		Expect(templating.Environment{}.Expand("${A}")).To(Equal("${A}"))
	})
})

var _ = Describe("Unresolved", func() {
	It("flags blank values and leftover references", func() {
		Expect(templating.Unresolved("")).To(BeTrue())
		Expect(templating.Unresolved("  ")).To(BeTrue())
		Expect(templating.Unresolved("${TEST_EXEC}")).To(BeTrue())
		Expect(templating.Unresolved("PROJ-12")).To(BeFalse())
	})
})
