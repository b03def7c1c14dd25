package reporting

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/rwx-research/xray-import/internal/errors"
)

// WriteDotenv writes the build variables in dotenv format, sorted by name. Values are always double-quoted.
func WriteDotenv(w io.Writer, metadata Metadata) error {
	variables := metadata.Variables()

	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s=%s\n", name, strconv.Quote(variables[name])); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
