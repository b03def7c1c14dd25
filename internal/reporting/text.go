package reporting

import (
	"fmt"
	"io"

	"github.com/rwx-research/xray-import/internal/errors"
)

func WriteTextSummary(w io.Writer, metadata Metadata) error {
	pluralizeFiles := "files"
	if len(metadata.Uploads) == 1 {
		pluralizeFiles = "file"
	}

	status := "succeeded"
	if !metadata.Successful {
		status = "failed"
	}

	_, err := fmt.Fprintf(w, "Import of %d result %s %s.\n", len(metadata.Uploads), pluralizeFiles, status)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(metadata.TestExecs) > 0 {
		if _, err := fmt.Fprintf(w, "\nTest Executions (%d):\n", len(metadata.TestExecs)); err != nil {
			return errors.WithStack(err)
		}

		for _, key := range metadata.TestExecs {
			if _, err := fmt.Fprintf(w, "- %s\n", key); err != nil {
				return errors.WithStack(err)
			}
		}
	}

	if metadata.Failure != "" {
		if _, err := fmt.Fprintf(w, "\nError: %s\n", metadata.Failure); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
