package console

import "bytes"

// Transport is the byte-oriented capability the runtime consumes from its
// environment: read one byte, write a buffer, terminate the process. It is
// the only seam between the console and the operating system, so hosts and
// tests can substitute their own implementation.
type Transport interface {
	// ReadByte returns the next input byte. ok is false at end-of-input
	// or on a transport error; the two are indistinguishable by contract.
	ReadByte() (b byte, ok bool)

	// Write sends p to the output stream. Partial writes are not retried
	// by the console.
	Write(p []byte) (int, error)

	// WriteErr sends p to the error stream.
	WriteErr(p []byte) (int, error)

	// Exit terminates the process with the given status code. The
	// production transport never returns from this call.
	Exit(code int)
}

// Memory is an in-memory Transport for tests and embedding. Input is a
// fixed script of bytes; output, error output, and the exit status are
// captured instead of reaching an operating system.
type Memory struct {
	in  []byte
	pos int

	Out bytes.Buffer // captured output stream
	Err bytes.Buffer // captured error stream

	Exited bool // Exit was called
	Code   int  // status passed to Exit
}

// NewMemory returns a Memory transport whose input script is input.
func NewMemory(input string) *Memory {
	return &Memory{in: []byte(input)}
}

func (m *Memory) ReadByte() (byte, bool) {
	if m.pos >= len(m.in) {
		return 0, false
	}
	b := m.in[m.pos]
	m.pos++
	return b, true
}

func (m *Memory) Write(p []byte) (int, error) {
	return m.Out.Write(p)
}

func (m *Memory) WriteErr(p []byte) (int, error) {
	return m.Err.Write(p)
}

// Exit records the status code. Unlike the production transport it
// returns, so a test can observe the fatal path.
func (m *Memory) Exit(code int) {
	m.Exited = true
	m.Code = code
}
