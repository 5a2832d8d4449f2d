// SPDX-License-Identifier: MIT

//go:build amd64

package multiply

import "golang.org/x/sys/cpu"

// wideLanesSupported reports whether the processor can retire the 8-wide
// batched kernel efficiently. Checked once at startup; ScatterSIMD256
// consults it on every call and falls back to DenseConvert when false.
var wideLanesSupported = cpu.X86.HasAVX
