package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// CheckConfigCompatibility reports whether a configuration file written for
// configVersion can be read by a binary that supports supported.
//
// Rules:
//   - "main" on either side skips the check (development builds)
//   - major versions must match
//   - the file's minor version must not be newer than the binary's
//   - patch versions are ignored
//
// Examples:
//   - binary 1.2.0, file 1.2.7 -> OK
//   - binary 1.2.0, file 1.1.0 -> OK (older file)
//   - binary 1.2.0, file 1.3.0 -> ERROR (file needs newer fields)
//   - binary 2.0.0, file 1.0.0 -> ERROR
func CheckConfigCompatibility(supported, configVersion string) error {
	supported = strings.TrimPrefix(supported, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if supported == "main" || configVersion == "main" {
		return nil
	}

	binary, err := semver.NewVersion(supported)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid supported version '%s'", supported)
	}

	file, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if binary.Major() != file.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"major version mismatch: binary reads %d.x.x but config is %d.x.x",
			binary.Major(), file.Major())
	}

	if file.Minor() > binary.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"config version %d.%d.x is newer than supported %d.%d.x",
			file.Major(), file.Minor(), binary.Major(), binary.Minor())
	}

	return nil
}
