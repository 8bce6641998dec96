// summit-io - Summit runtime console diagnostic tool
//
// Usage:
//
//	summit-io demo                Run the interactive prompt/echo demo
//	summit-io convert <type>      Reformat decimal tokens from stdin, one per line
//	summit-io version             Print runtime version info
//
// <type> is one of: i8 u8 i16 u16 i32 u32 i64 u64.
//
// convert parses each input line as the given Summit type and prints the
// canonical spelling; lines that fail to parse are reported on stderr and
// skipped. demo drives the same typed-read path the compiled Summit
// runtime uses, including the fatal exit on invalid input.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Summit-Language/summit/console"
	"github.com/Summit-Language/summit/numio"
)

const runtimeVersion = "0.3.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch cmd := os.Args[1]; cmd {
	case "demo":
		cmdDemo()
	case "convert":
		if len(os.Args) < 3 {
			fatal("convert: missing type argument")
		}
		cmdConvert(os.Args[2])
	case "version":
		fmt.Printf("summit-io %s\n", runtimeVersion)
	default:
		fmt.Fprintf(os.Stderr, "summit-io: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// cmdDemo mirrors the canonical Summit hello program over the raw
// syscall transport.
func cmdDemo() {
	c := console.New(console.Sys{})
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	if interactive {
		c.Print("Enter your name: ")
	}
	name := string(c.ReadLine())
	c.Print("Your name is: ")
	c.Print(name)
	c.Println("")

	if interactive {
		c.Print("Enter your age: ")
	}
	age := c.ReadUint8()
	c.Print("Your age is: ")
	c.PrintlnUint64(uint64(age))
}

// cmdConvert reads decimal tokens line by line and echoes the canonical
// spelling for the requested type. Parse failures are reported, not fatal,
// so a whole batch can be checked in one pass.
func cmdConvert(typ string) {
	if !validType(typ) {
		fatal("convert: unknown type %q (want i8/u8/i16/u16/i32/u32/i64/u64)", typ)
	}

	c := console.New(console.Sys{})
	for {
		line := c.ReadLine()
		if len(line) == 0 && c.EOF() {
			return
		}
		out, err := reformat(typ, line)
		if err != nil {
			c.Eprintln(err.Error())
			continue
		}
		c.Println(out)
	}
}

func validType(typ string) bool {
	switch typ {
	case "i8", "u8", "i16", "u16", "i32", "u32", "i64", "u64":
		return true
	}
	return false
}

// reformat parses line as the given type and formats the value back.
func reformat(typ string, line []byte) (string, error) {
	switch typ {
	case "i8":
		v, err := numio.ParseInt8(line)
		if err != nil {
			return "", err
		}
		return numio.FormatInt(int64(v)), nil
	case "u8":
		v, err := numio.ParseUint8(line)
		if err != nil {
			return "", err
		}
		return numio.FormatUint(uint64(v)), nil
	case "i16":
		v, err := numio.ParseInt16(line)
		if err != nil {
			return "", err
		}
		return numio.FormatInt(int64(v)), nil
	case "u16":
		v, err := numio.ParseUint16(line)
		if err != nil {
			return "", err
		}
		return numio.FormatUint(uint64(v)), nil
	case "i32":
		v, err := numio.ParseInt32(line)
		if err != nil {
			return "", err
		}
		return numio.FormatInt(int64(v)), nil
	case "u32":
		v, err := numio.ParseUint32(line)
		if err != nil {
			return "", err
		}
		return numio.FormatUint(uint64(v)), nil
	case "i64":
		v, err := numio.ParseInt64(line)
		if err != nil {
			return "", err
		}
		return numio.FormatInt(v), nil
	case "u64":
		v, err := numio.ParseUint64(line)
		if err != nil {
			return "", err
		}
		return numio.FormatUint(v), nil
	}
	return "", fmt.Errorf("unknown type %q", typ)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `summit-io - Summit runtime console diagnostic tool

Usage:
  summit-io demo                Run the interactive prompt/echo demo
  summit-io convert <type>      Reformat decimal tokens from stdin
  summit-io version             Print runtime version info`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "summit-io: "+format+"\n", args...)
	os.Exit(1)
}
