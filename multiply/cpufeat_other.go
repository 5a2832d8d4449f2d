// SPDX-License-Identifier: MIT

//go:build !amd64

package multiply

// Non-x86 targets take the conservative path: ScatterSIMD256 falls back
// to the dense-conversion kernel.
var wideLanesSupported = false
