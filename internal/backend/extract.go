// Package backend holds the types shared by the different upload backends.
package backend

import (
	"strings"

	"github.com/tidwall/gjson"
)

// KeyExtractor finds the key of the Test Execution an import created in the raw response of Xray.
type KeyExtractor interface {
	ExtractKey(message string) (string, bool)
}

// JSONPathExtractor reads the key from a JSON document using a gjson path.
type JSONPathExtractor struct {
	Path string
}

// ExtractKey implements KeyExtractor. Anything but a non-blank string at the path is treated as absent.
func (e JSONPathExtractor) ExtractKey(message string) (string, bool) {
	if !gjson.Valid(message) {
		return "", false
	}

	result := gjson.Get(message, e.Path)
	if result.Type != gjson.String {
		return "", false
	}

	key := strings.TrimSpace(result.String())
	return key, key != ""
}

// ExtractorFor returns the strategy that matches the response layout of a hosting type.
func ExtractorFor(hosting Hosting) KeyExtractor {
	if hosting == HostingCloud {
		return JSONPathExtractor{Path: "key"}
	}

	return JSONPathExtractor{Path: "testExecIssue.key"}
}
