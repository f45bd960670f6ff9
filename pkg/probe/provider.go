package probe

// FallbackText is returned when OpenCV is not available to the build.
const FallbackText = "OpenCV SDK missing (install third_party/opencv-android-sdk)"

// Provider answers what version of the vision library is present.
type Provider interface {
	// Name identifies the provider in logs and build info.
	Name() string

	// Available reports whether Version returns a real library version.
	Available() bool

	// Version returns the version text. Fallback providers return FallbackText.
	Version() string
}

// RealProvider reports the version returned by a library accessor.
type RealProvider struct {
	name    string
	version func() string
}

// NewRealProvider wraps a version accessor such as gocv.OpenCVVersion.
// A nil accessor yields a provider that is not available.
func NewRealProvider(name string, version func() string) *RealProvider {
	if name == "" {
		name = "opencv"
	}
	return &RealProvider{name: name, version: version}
}

// Name returns the provider name.
func (p *RealProvider) Name() string {
	return p.name
}

// Available is true when an accessor is wired.
func (p *RealProvider) Available() bool {
	return p.version != nil
}

// Version calls the accessor.
func (p *RealProvider) Version() string {
	if p.version == nil {
		return ""
	}
	return p.version()
}

// FallbackProvider stands in when OpenCV is not compiled in.
type FallbackProvider struct{}

// Name returns "fallback".
func (FallbackProvider) Name() string { return "fallback" }

// Available is always false.
func (FallbackProvider) Available() bool { return false }

// Version returns FallbackText.
func (FallbackProvider) Version() string { return FallbackText }
