//go:build arm64

package bytescan

import (
	"golang.org/x/sys/cpu"
)

var wideChunks = cpu.ARM64.HasASIMD
