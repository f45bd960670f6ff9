package probe

// Build describes the compile-time choice behind Default.
type Build struct {
	OpenCVTag bool   `json:"opencv_tag"`
	CGO       bool   `json:"cgo"`
	Provider  string `json:"provider"`
	Real      bool   `json:"real"`
}

// BuildInfo returns how this binary was configured.
func BuildInfo() Build {
	p := Default()
	return Build{
		OpenCVTag: openCVTag,
		CGO:       cgoEnabled,
		Provider:  p.Name(),
		Real:      p.Available(),
	}
}
