// Package buildinfo carries version stamps set with
//
//	-ldflags "-X matrixclock/internal/buildinfo.Version=v1.2.0 -X ..."
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Banner is the boot log line.
func Banner() string {
	s := "matrix clock " + Short()
	if Date != "" && Date != "unknown" {
		s += " (" + Date + ")"
	}
	return s
}
