//go:build opencv

package probe

const openCVTag = true
