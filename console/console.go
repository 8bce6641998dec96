// Package console implements the Summit runtime's line-buffered terminal
// I/O on top of a two-primitive byte Transport.
//
// A Console owns a single reusable line buffer and exposes the typed
// read/print surface the Summit compiler links against: ReadLine, one
// Read<T> per parseable integer width, Print/Println for raw text, and
// per-width integer and bool printing. Reads are line-oriented: every
// typed read consumes one input line and parses it in full.
//
// A Console is single-threaded by design. The line buffer is shared
// mutable state with no locking; calling ReadLine (directly or through
// any typed read) from more than one goroutine is a caller error.
package console

import "github.com/Summit-Language/summit/numio"

// DefaultLineCapacity is the line buffer size, including the reserved
// terminator slot: a returned line holds at most DefaultLineCapacity-1
// bytes.
const DefaultLineCapacity = 4096

// Console is the line-buffered I/O context. The zero value is not usable;
// construct with New.
type Console struct {
	t   Transport
	buf []byte
	eof bool
}

// Option configures a Console.
type Option func(*Console)

// WithLineCapacity overrides the line buffer capacity. Values below 2
// (one byte plus the terminator slot) are ignored.
func WithLineCapacity(n int) Option {
	return func(c *Console) {
		if n >= 2 {
			c.buf = make([]byte, 0, n)
		}
	}
}

// New creates a Console over the given transport.
func New(t Transport, opts ...Option) *Console {
	c := &Console{
		t:   t,
		buf: make([]byte, 0, DefaultLineCapacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadLine reads one line from the transport, one byte at a time, until a
// newline (consumed but not returned), end-of-input, or a full buffer.
// On a full buffer the excess bytes before the newline are left unread
// and will surface on the next call.
//
// The returned slice aliases the internal line buffer and is only valid
// until the next ReadLine. It never includes the line terminator.
func (c *Console) ReadLine() []byte {
	c.buf = c.buf[:0]
	for len(c.buf) < cap(c.buf)-1 {
		b, ok := c.t.ReadByte()
		if !ok {
			c.eof = true
			break
		}
		if b == '\n' {
			break
		}
		c.buf = append(c.buf, b)
	}
	return c.buf
}

// EOF reports whether a previous read hit end-of-input (or a transport
// error; the transport does not distinguish them).
func (c *Console) EOF() bool {
	return c.eof
}

// fatal reports an invalid typed read on the error stream and terminates
// via the transport with status 1. With a transport whose Exit returns
// (the in-memory one), the failed read returns its type's zero value.
func (c *Console) fatal(typ string) {
	c.Eprintln("Error: Invalid " + typ + " input")
	c.t.Exit(1)
}

// ReadInt8 reads one line and parses it as an i8. Invalid input is fatal.
func (c *Console) ReadInt8() int8 {
	v, err := numio.ParseInt8(c.ReadLine())
	if err != nil {
		c.fatal("i8")
		return 0
	}
	return v
}

// ReadUint8 reads one line and parses it as a u8. Invalid input is fatal.
func (c *Console) ReadUint8() uint8 {
	v, err := numio.ParseUint8(c.ReadLine())
	if err != nil {
		c.fatal("u8")
		return 0
	}
	return v
}

// ReadInt16 reads one line and parses it as an i16. Invalid input is fatal.
func (c *Console) ReadInt16() int16 {
	v, err := numio.ParseInt16(c.ReadLine())
	if err != nil {
		c.fatal("i16")
		return 0
	}
	return v
}

// ReadUint16 reads one line and parses it as a u16. Invalid input is fatal.
func (c *Console) ReadUint16() uint16 {
	v, err := numio.ParseUint16(c.ReadLine())
	if err != nil {
		c.fatal("u16")
		return 0
	}
	return v
}

// ReadInt32 reads one line and parses it as an i32. Invalid input is fatal.
func (c *Console) ReadInt32() int32 {
	v, err := numio.ParseInt32(c.ReadLine())
	if err != nil {
		c.fatal("i32")
		return 0
	}
	return v
}

// ReadUint32 reads one line and parses it as a u32. Invalid input is fatal.
func (c *Console) ReadUint32() uint32 {
	v, err := numio.ParseUint32(c.ReadLine())
	if err != nil {
		c.fatal("u32")
		return 0
	}
	return v
}

// ReadInt64 reads one line and parses it as an i64. Invalid input is fatal.
func (c *Console) ReadInt64() int64 {
	v, err := numio.ParseInt64(c.ReadLine())
	if err != nil {
		c.fatal("i64")
		return 0
	}
	return v
}

// ReadUint64 reads one line and parses it as a u64. Invalid input is fatal.
func (c *Console) ReadUint64() uint64 {
	v, err := numio.ParseUint64(c.ReadLine())
	if err != nil {
		c.fatal("u64")
		return 0
	}
	return v
}

// Print writes s to the output stream.
func (c *Console) Print(s string) {
	if len(s) > 0 {
		c.t.Write([]byte(s))
	}
}

// Println writes s and a trailing newline to the output stream. The
// newline is written even when s is empty.
func (c *Console) Println(s string) {
	if len(s) > 0 {
		c.t.Write([]byte(s))
	}
	c.t.Write([]byte{'\n'})
}

// Eprint writes s to the error stream.
func (c *Console) Eprint(s string) {
	if len(s) > 0 {
		c.t.WriteErr([]byte(s))
	}
}

// Eprintln writes s and a trailing newline to the error stream.
func (c *Console) Eprintln(s string) {
	if len(s) > 0 {
		c.t.WriteErr([]byte(s))
	}
	c.t.WriteErr([]byte{'\n'})
}

// PrintInt64 writes the decimal representation of v.
func (c *Console) PrintInt64(v int64) {
	var buf [numio.MaxLen64]byte
	c.t.Write(numio.AppendInt(buf[:0], v))
}

// PrintlnInt64 writes the decimal representation of v and a newline.
func (c *Console) PrintlnInt64(v int64) {
	var buf [numio.MaxLen64 + 1]byte
	c.t.Write(append(numio.AppendInt(buf[:0], v), '\n'))
}

// PrintUint64 writes the decimal representation of v.
func (c *Console) PrintUint64(v uint64) {
	var buf [numio.MaxLen64]byte
	c.t.Write(numio.AppendUint(buf[:0], v))
}

// PrintlnUint64 writes the decimal representation of v and a newline.
func (c *Console) PrintlnUint64(v uint64) {
	var buf [numio.MaxLen64 + 1]byte
	c.t.Write(append(numio.AppendUint(buf[:0], v), '\n'))
}

// PrintInt128 writes the decimal representation of v.
func (c *Console) PrintInt128(v numio.Int128) {
	var buf [numio.MaxLen128]byte
	c.t.Write(numio.AppendInt128(buf[:0], v))
}

// PrintlnInt128 writes the decimal representation of v and a newline.
func (c *Console) PrintlnInt128(v numio.Int128) {
	var buf [numio.MaxLen128 + 1]byte
	c.t.Write(append(numio.AppendInt128(buf[:0], v), '\n'))
}

// PrintUint128 writes the decimal representation of v.
func (c *Console) PrintUint128(v numio.Uint128) {
	var buf [numio.MaxLen128]byte
	c.t.Write(numio.AppendUint128(buf[:0], v))
}

// PrintlnUint128 writes the decimal representation of v and a newline.
func (c *Console) PrintlnUint128(v numio.Uint128) {
	var buf [numio.MaxLen128 + 1]byte
	c.t.Write(append(numio.AppendUint128(buf[:0], v), '\n'))
}

// PrintBool writes "true" or "false".
func (c *Console) PrintBool(b bool) {
	if b {
		c.Print("true")
	} else {
		c.Print("false")
	}
}

// PrintlnBool writes "true" or "false" and a newline.
func (c *Console) PrintlnBool(b bool) {
	if b {
		c.Println("true")
	} else {
		c.Println("false")
	}
}
