package catalog_test

import (
	"github.com/rwx-research/xray-import/internal/catalog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Format", func() {
	It("can be looked up by key and by suffix for every format", func() {
		for _, format := range catalog.Formats() {
			byKey, ok := catalog.LookupFormat(format.Key())
			Expect(ok).To(BeTrue(), format.Key())
			Expect(byKey).To(Equal(format))

			if format.Suffix() == "" {
				continue
			}

			bySuffix, ok := catalog.LookupFormatBySuffix(format.Suffix())
			Expect(ok).To(BeTrue(), format.Suffix())
			Expect(bySuffix).To(Equal(format))
		}
	})

	It("has unique keys and suffixes", func() {
		keys := map[string]struct{}{}
		suffixes := map[string]struct{}{}

		for _, format := range catalog.Formats() {
			Expect(keys).NotTo(HaveKey(format.Key()))
			Expect(suffixes).NotTo(HaveKey(format.Suffix()))
			keys[format.Key()] = struct{}{}
			suffixes[format.Suffix()] = struct{}{}
		}

		Expect(keys).To(HaveLen(16))
	})

	It("resolves keys before suffixes", func() {
		format, ok := catalog.ResolveFormat("junit-multipart")
		Expect(ok).To(BeTrue())
		Expect(format).To(Equal(catalog.FormatJUnitMultipart))

		format, ok = catalog.ResolveFormat("/testng")
		Expect(ok).To(BeTrue())
		Expect(format).To(Equal(catalog.FormatTestNG))
	})

	It("never resolves blank or unknown values", func() {
		for _, value := range []string{"", "   ", "/jest", "jest"} {
			_, ok := catalog.ResolveFormat(value)
			Expect(ok).To(BeFalse(), value)
		}
	})

	It("maps multipart-only formats onto their generic equivalent", func() {
		generic, ok := catalog.FormatJUnitMultipart.GenericMultipartEquivalent()
		Expect(ok).To(BeTrue())
		Expect(generic).To(Equal(catalog.FormatJUnit))
		Expect(catalog.FormatJUnitMultipart.IsMultipartOnly()).To(BeTrue())

		_, ok = catalog.FormatJUnit.GenericMultipartEquivalent()
		Expect(ok).To(BeFalse())
		Expect(catalog.FormatJUnit.IsMultipartOnly()).To(BeFalse())

		for _, format := range catalog.Formats() {
			generic, ok := format.GenericMultipartEquivalent()
			if ok {
				Expect(generic.IsMultipartOnly()).To(BeFalse())
				Expect(format.Suffix()).To(HaveSuffix("/multipart"))
			}
		}
	})

	It("only allows merging for glob formats", func() {
		Expect(catalog.FormatJUnit.SupportsGlob()).To(BeTrue())
		Expect(catalog.FormatRobotMultipart.SupportsSameExecutionMerge()).To(BeTrue())
		Expect(catalog.FormatCucumber.SupportsGlob()).To(BeFalse())
		Expect(catalog.FormatCucumber.SupportsSameExecutionMerge()).To(BeFalse())
	})

	It("exposes the format's configurable fields", func() {
		Expect(catalog.FormatJUnit.Fields()).To(Equal([]string{
			"importToSameExecution", "importFilePath",
			"projectKey", "testExecKey", "testPlanKey", "testEnvironments", "revision", "fixVersion",
		}))
		Expect(catalog.FormatCucumberMultipart.Fields()).To(Equal([]string{
			"importFilePath", "importInfo", "inputInfoSwitcher",
		}))
	})

	It("carries media types", func() {
		Expect(catalog.FormatNUnit.ResultsMediaType()).To(Equal("application/xml"))
		Expect(catalog.FormatBehaveMultipart.InfoMediaType()).To(Equal("application/json"))
		Expect(catalog.Format(0).String()).To(Equal("unknown"))
	})
})

var _ = Describe("Parameters", func() {
	It("declares labels and required-ness per parameter", func() {
		Expect(catalog.DataParameterResults.Label()).To(Equal("Execution Report File"))
		Expect(catalog.DataParameterResults.Required()).To(BeTrue())
		Expect(catalog.QueryParameterProjectKey.Required()).To(BeTrue())
		Expect(catalog.QueryParameterTestExecKey.Required()).To(BeFalse())
		Expect(catalog.QueryParameters()).To(HaveLen(6))
	})
})
