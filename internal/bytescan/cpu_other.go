//go:build !amd64 && !arm64

package bytescan

const wideChunks = false
