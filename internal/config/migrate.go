package config

import "strings"

// Migrate reconciles the legacy attributes of an import with its canonical field map and returns the result. Running
// it more than once has no further effect.
//
// A canonical field that is missing or blank is taken from its legacy attribute. Otherwise the canonical value wins
// and is copied onto the legacy attribute.
func Migrate(imp Import) Import {
	migrated := imp
	migrated.Fields = make(map[string]string, len(imp.Fields))
	for key, value := range imp.Fields {
		migrated.Fields[key] = value
	}

	for key, legacy := range migrated.legacyFields() {
		value := migrated.Fields[key]

		if strings.TrimSpace(value) == "" && strings.TrimSpace(*legacy) != "" {
			migrated.Fields[key] = *legacy
			continue
		}

		if _, ok := migrated.Fields[key]; ok {
			*legacy = value
		}
	}

	if format, ok := migrated.ResolvedFormat(); ok {
		migrated.Format = format.Key()
		migrated.FormatSuffix = format.Suffix()
	}

	return migrated
}
