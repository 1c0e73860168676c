// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/darkswitch"
}

// Short returns "version (commit)", omitting unknown parts.
func (i Info) Short() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if i.Commit == "" || i.Commit == "unknown" || i.Commit == "none" {
		return version
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return version + " (" + commit + ")"
}
