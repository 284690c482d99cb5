//go:build linux || darwin

package diskcheck

import "golang.org/x/sys/unix"

// freeBytes returns free space via statfs on Unix-like systems.
func freeBytes(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return st.Bavail * uint64(st.Bsize), nil
}
