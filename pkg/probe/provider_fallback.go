//go:build !opencv || !cgo

package probe

// Default returns FallbackProvider. Rebuild with CGO_ENABLED=1 and
// -tags opencv to report the linked OpenCV version.
func Default() Provider {
	return FallbackProvider{}
}
