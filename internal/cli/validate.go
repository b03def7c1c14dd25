package cli

import (
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/rwx-research/xray-import/internal/config"
	"github.com/rwx-research/xray-import/internal/errors"
)

// ValidateImports migrates & validates every import of the config file. Unlike a single run, it does not stop at the
// first invalid import but reports all of them.
func (s Service) ValidateImports(cf ConfigFile) error {
	var result *multierror.Error

	names := make([]string, 0, len(cf.Imports))
	for name := range cf.Imports {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		imp := config.Migrate(cf.Imports[name])

		err := config.Validate(imp)
		if err == nil {
			_, _, _, err = cf.Instance(imp.Instance)
		}

		if err != nil {
			s.Log.Errorf("%s: %s", name, err)
			result = multierror.Append(result, errors.Wrapf(err, "import %q", name))
			continue
		}

		s.Log.Infof("%s: valid", name)
	}

	return errors.WithStack(result.ErrorOrNil())
}
