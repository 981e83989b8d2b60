package krypto

import (
	"errors"
	"fmt"
	"hash"
)

var errContextClosed = errors.New("context is closed")

// Context is a reusable hashing state bound to one algorithm.
type Context struct {
	alg *Algorithm
	h   hash.Hash
}

// NewContext allocates a hashing context for a.
func (a *Algorithm) NewContext() (*Context, error) {
	h, err := a.newHash()
	if err != nil {
		return nil, newError(KindContextCreate, a.Name, err)
	}
	if h == nil {
		return nil, newError(KindContextCreate, a.Name, errors.New("constructor returned nil"))
	}
	return &Context{alg: a, h: h}, nil
}

// Algorithm returns the digest the context computes.
func (c *Context) Algorithm() *Algorithm {
	return c.alg
}

// Init discards any buffered input and starts a new digest.
func (c *Context) Init() error {
	if c.h == nil {
		return newError(KindDigestInit, c.alg.Name, errContextClosed)
	}
	c.h.Reset()
	return nil
}

// Update feeds p into the digest. The returned error is not tagged with a
// Kind; the caller knows which input it was feeding.
func (c *Context) Update(p []byte) error {
	if c.h == nil {
		return errContextClosed
	}
	n, err := c.h.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(p))
	}
	return nil
}

// Final appends the digest to dst[:0] and returns it.
func (c *Context) Final(dst []byte) ([]byte, error) {
	if c.h == nil {
		return nil, newError(KindDigestFinal, c.alg.Name, errContextClosed)
	}
	sum := c.h.Sum(dst[:0])
	if len(sum) != c.alg.Size {
		wipe(sum)
		return nil, newError(KindDigestFinal, c.alg.Name,
			fmt.Errorf("digest has %d bytes, want %d", len(sum), c.alg.Size))
	}
	return sum, nil
}

// Close scrubs, resets and releases the hash state. It is safe to call
// more than once.
func (c *Context) Close() {
	if c.h == nil {
		return
	}
	scrub(c.h)
	c.h.Reset()
	c.h = nil
}

// scrub overwrites the block buffer of h with zeros. Reset only rewinds the
// buffer offset, leaving the last partial block (salt and password bytes)
// in place. Feeding one byte at a time keeps every byte on the buffered
// path, so BlockSize writes cover each buffer position exactly once.
func scrub(h hash.Hash) {
	var zero [1]byte
	for i := 0; i < h.BlockSize(); i++ {
		h.Write(zero[:])
	}
}
