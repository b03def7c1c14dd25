package catalog

// Keys of configuration fields that are neither data nor query parameters.
const (
	FieldInputInfoSwitcher     = "inputInfoSwitcher"
	FieldImportToSameExecution = "importToSameExecution"
)

// Values of the `inputInfoSwitcher` field.
const (
	InfoSwitcherFilePath    = "filePath"
	InfoSwitcherFileContent = "fileContent"
)

// DataParameter is a payload attached to the multipart body of an import request.
type DataParameter string

const (
	DataParameterResults DataParameter = "importFilePath"
	DataParameterInfo    DataParameter = "importInfo"
)

// QueryParameter is a string value appended to the query string of an import request.
type QueryParameter string

const (
	QueryParameterProjectKey       QueryParameter = "projectKey"
	QueryParameterTestExecKey      QueryParameter = "testExecKey"
	QueryParameterTestPlanKey      QueryParameter = "testPlanKey"
	QueryParameterTestEnvironments QueryParameter = "testEnvironments"
	QueryParameterRevision         QueryParameter = "revision"
	QueryParameterFixVersion       QueryParameter = "fixVersion"
)

type parameter struct {
	label    string
	required bool
}

var dataParameters = map[DataParameter]parameter{
	DataParameterResults: {label: "Execution Report File", required: true},
	DataParameterInfo:    {label: "Test Execution Info", required: true},
}

var queryParameters = map[QueryParameter]parameter{
	QueryParameterProjectKey:       {label: "Project Key", required: true},
	QueryParameterTestExecKey:      {label: "Test Execution Key"},
	QueryParameterTestPlanKey:      {label: "Test Plan Key"},
	QueryParameterTestEnvironments: {label: "Test Environments"},
	QueryParameterRevision:         {label: "Revision"},
	QueryParameterFixVersion:       {label: "Fix Version"},
}

// DataParameters returns all data parameters in a stable order.
func DataParameters() []DataParameter {
	return []DataParameter{DataParameterResults, DataParameterInfo}
}

// QueryParameters returns all query parameters in a stable order.
func QueryParameters() []QueryParameter {
	return []QueryParameter{
		QueryParameterProjectKey,
		QueryParameterTestExecKey,
		QueryParameterTestPlanKey,
		QueryParameterTestEnvironments,
		QueryParameterRevision,
		QueryParameterFixVersion,
	}
}

func (p DataParameter) Key() string    { return string(p) }
func (p DataParameter) Label() string  { return dataParameters[p].label }
func (p DataParameter) Required() bool { return dataParameters[p].required }

func (p QueryParameter) Key() string    { return string(p) }
func (p QueryParameter) Label() string  { return queryParameters[p].label }
func (p QueryParameter) Required() bool { return queryParameters[p].required }
