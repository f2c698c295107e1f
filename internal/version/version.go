package version

// Version is the build version of the signals binary, set with
// -ldflags "-X github.com/rxtech-lab/argo-signals/internal/version.Version=1.2.3".
// "main" marks a development build.
var Version = "main"

// ConfigVersion is the configuration format this binary reads.
const ConfigVersion = "1.0.0"

// GetVersion returns the build version.
func GetVersion() string {
	return Version
}
