package reporting

import (
	"io"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/acarl005/stripansi"

	"github.com/rwx-research/xray-import/internal/errors"
)

type markdownUpload struct {
	File       string
	StatusCode int
	Icon       string
}

const markdownTemplate = `# Xray Import

{{ if .Successful }}✅ Imported {{ len .Uploads }} result {{ if eq (len .Uploads) 1 }}file{{ else }}files{{ end }}{{ else }}❌ Import failed{{ end }}
{{- if .TestExecs }}

**Test Executions:** {{ join .TestExecs ", " }}
{{- end }}
{{- if .Uploads }}

| File | Status |
| --- | --- |
{{- range .Uploads }}
| ` + "`{{ .File }}`" + ` | {{ .Icon }} {{ .StatusCode }} |
{{- end }}
{{- end }}
{{- if .Failure }}

` + "```" + `
{{ .Failure }}
` + "```" + `
{{- end }}
`

var markdown = template.Must(template.New("markdown").Funcs(template.FuncMap{"join": strings.Join}).Parse(markdownTemplate))

// WriteMarkdownSummary renders a summary suitable for CI job summaries. Colour codes in error messages are stripped.
func WriteMarkdownSummary(w io.Writer, metadata Metadata) error {
	uploads := make([]markdownUpload, len(metadata.Uploads))
	for i, upload := range metadata.Uploads {
		icon := "✅"
		if !upload.Successful() {
			icon = "❌"
		}

		uploads[i] = markdownUpload{File: filepath.Base(upload.File), StatusCode: upload.StatusCode, Icon: icon}
	}

	data := struct {
		Successful bool
		TestExecs  []string
		Uploads    []markdownUpload
		Failure    string
	}{
		Successful: metadata.Successful,
		TestExecs:  metadata.TestExecs,
		Uploads:    uploads,
		Failure:    strings.TrimSpace(stripansi.Strip(metadata.Failure)),
	}

	return errors.WithStack(markdown.Execute(w, data))
}
