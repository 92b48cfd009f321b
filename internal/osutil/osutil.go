// Package osutil holds operating system constants shared across pomo
package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)

// Code returns the exit code as accepted by os.Exit.
func (c exitCode) Code() int {
	return int(c)
}
