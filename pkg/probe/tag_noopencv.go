//go:build !opencv

package probe

const openCVTag = false
