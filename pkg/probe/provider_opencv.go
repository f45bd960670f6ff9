//go:build opencv && cgo

package probe

import "gocv.io/x/gocv"

// Default returns the gocv-backed provider.
func Default() Provider {
	return NewRealProvider("gocv-"+gocv.Version(), gocv.OpenCVVersion)
}
