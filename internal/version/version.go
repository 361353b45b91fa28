package version

// Version is the reverie release, set at build time:
// go build -ldflags "-X git.home.luguber.info/inful/reverie/internal/version.Version=v0.3.0".
var Version = "dev"

// Build metadata, also injected via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Generator is the string written to feed <generator> elements.
func Generator() string {
	return "reverie " + Version
}
