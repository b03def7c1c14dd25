// Package catalog holds the static tables describing which result formats Xray accepts and which parameters an import
// request carries. Everything in here is immutable and safe for concurrent use.
package catalog

import "strings"

// Format is a result format accepted by the Xray import endpoints.
type Format int

// The supported formats. The zero value is not a valid format.
const (
	FormatXray Format = iota + 1
	FormatXrayMultipart
	FormatCucumber
	FormatCucumberMultipart
	FormatBehave
	FormatBehaveMultipart
	FormatJUnit
	FormatJUnitMultipart
	FormatTestNG
	FormatTestNGMultipart
	FormatNUnit
	FormatNUnitMultipart
	FormatXUnit
	FormatXUnitMultipart
	FormatRobot
	FormatRobotMultipart
)

const (
	mediaTypeJSON = "application/json"
	mediaTypeXML  = "application/xml"
)

type capability struct {
	key              string
	label            string
	suffix           string
	resultsMediaType string
	infoMediaType    string
	supportsGlob     bool
	supportsMerge    bool
	generic          Format
}

var capabilities = map[Format]capability{
	FormatXray: {
		key: "xray", label: "Xray JSON", suffix: "",
		resultsMediaType: mediaTypeJSON,
	},
	FormatXrayMultipart: {
		key: "xray-multipart", label: "Xray JSON multipart", suffix: "/multipart",
		resultsMediaType: mediaTypeJSON, infoMediaType: mediaTypeJSON, generic: FormatXray,
	},
	FormatCucumber: {
		key: "cucumber", label: "Cucumber JSON", suffix: "/cucumber",
		resultsMediaType: mediaTypeJSON,
	},
	FormatCucumberMultipart: {
		key: "cucumber-multipart", label: "Cucumber JSON multipart", suffix: "/cucumber/multipart",
		resultsMediaType: mediaTypeJSON, infoMediaType: mediaTypeJSON, generic: FormatCucumber,
	},
	FormatBehave: {
		key: "behave", label: "Behave JSON", suffix: "/behave",
		resultsMediaType: mediaTypeJSON,
	},
	FormatBehaveMultipart: {
		key: "behave-multipart", label: "Behave JSON multipart", suffix: "/behave/multipart",
		resultsMediaType: mediaTypeJSON, infoMediaType: mediaTypeJSON, generic: FormatBehave,
	},
	FormatJUnit: {
		key: "junit", label: "JUnit XML", suffix: "/junit",
		resultsMediaType: mediaTypeXML, supportsGlob: true, supportsMerge: true,
	},
	FormatJUnitMultipart: {
		key: "junit-multipart", label: "JUnit XML multipart", suffix: "/junit/multipart",
		resultsMediaType: mediaTypeXML, infoMediaType: mediaTypeJSON, supportsGlob: true, supportsMerge: true,
		generic: FormatJUnit,
	},
	FormatTestNG: {
		key: "testng", label: "TestNG XML", suffix: "/testng",
		resultsMediaType: mediaTypeXML, supportsGlob: true, supportsMerge: true,
	},
	FormatTestNGMultipart: {
		key: "testng-multipart", label: "TestNG XML multipart", suffix: "/testng/multipart",
		resultsMediaType: mediaTypeXML, infoMediaType: mediaTypeJSON, supportsGlob: true, supportsMerge: true,
		generic: FormatTestNG,
	},
	FormatNUnit: {
		key: "nunit", label: "NUnit XML", suffix: "/nunit",
		resultsMediaType: mediaTypeXML, supportsGlob: true, supportsMerge: true,
	},
	FormatNUnitMultipart: {
		key: "nunit-multipart", label: "NUnit XML multipart", suffix: "/nunit/multipart",
		resultsMediaType: mediaTypeXML, infoMediaType: mediaTypeJSON, supportsGlob: true, supportsMerge: true,
		generic: FormatNUnit,
	},
	FormatXUnit: {
		key: "xunit", label: "xUnit XML", suffix: "/xunit",
		resultsMediaType: mediaTypeXML, supportsGlob: true, supportsMerge: true,
	},
	FormatXUnitMultipart: {
		key: "xunit-multipart", label: "xUnit XML multipart", suffix: "/xunit/multipart",
		resultsMediaType: mediaTypeXML, infoMediaType: mediaTypeJSON, supportsGlob: true, supportsMerge: true,
		generic: FormatXUnit,
	},
	FormatRobot: {
		key: "robot", label: "Robot XML", suffix: "/robot",
		resultsMediaType: mediaTypeXML, supportsGlob: true, supportsMerge: true,
	},
	FormatRobotMultipart: {
		key: "robot-multipart", label: "Robot XML multipart", suffix: "/robot/multipart",
		resultsMediaType: mediaTypeXML, infoMediaType: mediaTypeJSON, supportsGlob: true, supportsMerge: true,
		generic: FormatRobot,
	},
}

// Formats returns every supported format in a stable order.
func Formats() []Format {
	formats := make([]Format, 0, len(capabilities))
	for f := FormatXray; f <= FormatRobotMultipart; f++ {
		formats = append(formats, f)
	}

	return formats
}

// LookupFormat finds a format by its key, e.g. "junit-multipart".
func LookupFormat(key string) (Format, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, false
	}

	for _, f := range Formats() {
		if strings.EqualFold(capabilities[f].key, key) {
			return f, true
		}
	}

	return 0, false
}

// LookupFormatBySuffix finds a format by its endpoint suffix, e.g. "/junit/multipart". A blank suffix never resolves,
// even though the Xray JSON endpoint has no suffix.
func LookupFormatBySuffix(suffix string) (Format, bool) {
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return 0, false
	}

	for _, f := range Formats() {
		if capabilities[f].suffix == suffix {
			return f, true
		}
	}

	return 0, false
}

// ResolveFormat accepts either a format key or an endpoint suffix.
func ResolveFormat(keyOrSuffix string) (Format, bool) {
	if f, ok := LookupFormat(keyOrSuffix); ok {
		return f, true
	}

	return LookupFormatBySuffix(keyOrSuffix)
}

// Valid reports whether f is one of the declared formats.
func (f Format) Valid() bool {
	_, ok := capabilities[f]
	return ok
}

func (f Format) Key() string              { return capabilities[f].key }
func (f Format) Label() string            { return capabilities[f].label }
func (f Format) Suffix() string           { return capabilities[f].suffix }
func (f Format) ResultsMediaType() string { return capabilities[f].resultsMediaType }
func (f Format) InfoMediaType() string    { return capabilities[f].infoMediaType }

// SupportsGlob reports whether the format accepts a glob pattern matching many result files.
func (f Format) SupportsGlob() bool { return capabilities[f].supportsGlob }

// SupportsSameExecutionMerge reports whether several result files of this format can be imported into one Test
// Execution.
func (f Format) SupportsSameExecutionMerge() bool { return capabilities[f].supportsMerge }

// GenericMultipartEquivalent returns the format whose endpoint accepts an explicit Test Execution key in place of this
// multipart-only format.
func (f Format) GenericMultipartEquivalent() (Format, bool) {
	generic := capabilities[f].generic
	return generic, generic != 0
}

// IsMultipartOnly reports whether the format's endpoint takes the Test Execution key from the info payload rather than
// the query string.
func (f Format) IsMultipartOnly() bool {
	_, ok := f.GenericMultipartEquivalent()
	return ok
}

// Fields returns the configuration keys a format exposes, in display order.
func (f Format) Fields() []string {
	fields := make([]string, 0, 10)

	if f.SupportsSameExecutionMerge() {
		fields = append(fields, FieldImportToSameExecution)
	}

	fields = append(fields, DataParameterResults.Key())

	if f.IsMultipartOnly() {
		return append(fields, DataParameterInfo.Key(), FieldInputInfoSwitcher)
	}

	for _, qp := range QueryParameters() {
		fields = append(fields, qp.Key())
	}

	return fields
}

func (f Format) String() string {
	if !f.Valid() {
		return "unknown"
	}

	return f.Key()
}
