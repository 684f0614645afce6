//go:build !unix

package source

import "io/fs"

func readable(_ string, info fs.FileInfo) error {
	if info.Mode().Perm()&0o444 == 0 {
		return fs.ErrPermission
	}
	return nil
}
