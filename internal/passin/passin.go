// Package passin reads a password from standard input without leaving
// stray copies of it in memory.
package passin

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Hussein-Mazeh/multihash/krypto"
)

const (
	// Terminator ends a password read from a pipe. A NUL is used instead of
	// a newline so passwords may contain line breaks.
	Terminator = 0x00

	chunkSize = 64
)

// Read obtains the password from in. When in is a terminal and prompting is
// allowed, the user is asked on w without echo; otherwise bytes are read up
// to the first NUL or EOF.
func Read(in io.Reader, w io.Writer, allowPrompt bool) ([]byte, error) {
	if f, ok := in.(*os.File); ok && allowPrompt && term.IsTerminal(int(f.Fd())) {
		return Prompt(int(f.Fd()), w, "Password: ")
	}
	return ReadNUL(in)
}

// Prompt reads a line from the terminal fd with echo disabled.
func Prompt(fd int, w io.Writer, prompt string) ([]byte, error) {
	fmt.Fprint(w, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}

// ReadNUL reads from r until the first NUL byte or EOF. The terminator is
// not included. Bytes after the terminator may be consumed and discarded.
// Every intermediate buffer is zeroed before it is released.
func ReadNUL(r io.Reader) ([]byte, error) {
	var chunk [chunkSize]byte
	defer krypto.Wipe(chunk[:])

	var pw []byte
	for {
		n, err := r.Read(chunk[:])
		if n > 0 {
			data := chunk[:n]
			end := bytes.IndexByte(data, Terminator)
			if end >= 0 {
				data = data[:end]
			}
			pw = grow(pw, data)
			if end >= 0 {
				return pw, nil
			}
		}
		if errors.Is(err, io.EOF) {
			return pw, nil
		}
		if err != nil {
			krypto.Wipe(pw)
			return nil, fmt.Errorf("read password: %w", err)
		}
	}
}

// grow appends data to buf, zeroing the old backing array when it has to
// be reallocated.
func grow(buf, data []byte) []byte {
	if len(buf)+len(data) <= cap(buf) {
		return append(buf, data...)
	}
	next := make([]byte, len(buf), 2*cap(buf)+len(data))
	copy(next, buf)
	krypto.Wipe(buf[:cap(buf)])
	return append(next, data...)
}
