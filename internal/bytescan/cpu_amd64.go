//go:build amd64

package bytescan

import (
	"golang.org/x/sys/cpu"
)

// Cores with 256-bit vector units have the load bandwidth to make the
// four-word stride pay off.
var wideChunks = cpu.X86.HasAVX2
