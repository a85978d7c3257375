//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO points the stdout and stderr descriptors at path so panics
// and prints from every goroutine land in the file.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			return err
		}
	}
	return nil
}
