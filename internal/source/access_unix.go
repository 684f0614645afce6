//go:build unix

package source

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// readable asks the kernel whether the caller may open path for reading.
func readable(path string, _ fs.FileInfo) error {
	return unix.Access(path, unix.R_OK)
}
