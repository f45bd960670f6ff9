// Package probe reports the version of the optional OpenCV dependency.
//
// Which provider backs Default is decided at compile time. Building with
// cgo enabled and the opencv tag links gocv and reports the library's own
// version; any other build reports FallbackText. Both providers compile
// into every test binary through NewRealProvider and FallbackProvider, so
// either path can be exercised without a second build configuration.
//
// A probe never fails. Every call to Report emits exactly one log record
// whose message is the returned text: INFO for a real version, WARN for
// the fallback.
package probe
