//go:build !linux && !darwin

package diskcheck

import (
	"fmt"
	"runtime"
)

// freeBytes is not supported on this platform; the check stays
// advisory and passes with an explanatory detail.
func freeBytes(string) (uint64, error) {
	return 0, fmt.Errorf("free space probing not supported on %s", runtime.GOOS)
}
