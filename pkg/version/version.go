package version

// Overridden at build time via -ldflags.
var (
	Version   = "dev"
	CommitSHA = "unknown"
)

type Info struct {
	Version   string `json:"version"`
	CommitSHA string `json:"commit_sha"`
}

func GetInfo() Info {
	return Info{
		Version:   Version,
		CommitSHA: CommitSHA,
	}
}
