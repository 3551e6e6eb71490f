// Package osutil holds platform names and file modes used across avail
package osutil

const Windows = "windows"

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)
