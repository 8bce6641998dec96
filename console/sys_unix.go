//go:build unix

package console

import "golang.org/x/sys/unix"

// Sys is the production Transport: raw single-byte reads from fd 0 and
// unbuffered writes to fds 1 and 2. No libc, no runtime buffering, just
// the read/write/exit primitives the Summit runtime is specified against.
type Sys struct{}

func (Sys) ReadByte() (byte, bool) {
	var buf [1]byte
	for {
		n, err := unix.Read(0, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err != nil || n == 0 {
			return 0, false
		}
		return buf[0], true
	}
}

func (Sys) Write(p []byte) (int, error) {
	return unix.Write(1, p)
}

func (Sys) WriteErr(p []byte) (int, error) {
	return unix.Write(2, p)
}

func (Sys) Exit(code int) {
	unix.Exit(code)
}
