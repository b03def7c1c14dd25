package errors

import (
	"strings"
	"text/template"

	"github.com/mitchellh/go-wordwrap"
)

const decorationWidth = 100

var decoration = template.Must(template.New("error").Parse(`{{ .Type }}: {{ .Title }}

{{ .Description }}
{{- if .Resolution }}

{{ .Resolution }}
{{- end }}
`))

// detailedError is implemented by every error category that can explain itself to end-users.
type detailedError interface {
	Description() string
	Error() string
	Resolution() string
	Type() string
}

type decorationVariables struct {
	Title       string
	Type        string
	Description string
	Resolution  string
}

// decorate renders the title, description & resolution of an error. Errors without a description are rendered as
// their plain message.
func decorate(err detailedError) string {
	vars := decorationVariables{
		Title:       strings.TrimSpace(err.Error()),
		Type:        err.Type(),
		Description: wordwrap.WrapString(strings.TrimSpace(err.Description()), decorationWidth),
		Resolution:  wordwrap.WrapString(strings.TrimSpace(err.Resolution()), decorationWidth),
	}

	if vars.Title == "" || vars.Type == "" || vars.Description == "" {
		return err.Error()
	}

	var buf strings.Builder
	if renderErr := decoration.Execute(&buf, vars); renderErr != nil {
		return err.Error()
	}

	return buf.String()
}
