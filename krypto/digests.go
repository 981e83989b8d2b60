package krypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

type builtinDigest struct {
	name    string
	size    int
	newHash NewFunc
	aliases []string
}

// builtinDigests uses OpenSSL digest names and common aliases.
var builtinDigests = []builtinDigest{
	{"md4", md4.Size, infallible(md4.New), nil},
	{"md5", md5.Size, infallible(md5.New), nil},
	{"md5-sha1", md5.Size + sha1.Size, infallible(newMD5SHA1), nil},
	{"sha1", sha1.Size, infallible(sha1.New), []string{"sha-1"}},
	{"sha224", sha256.Size224, infallible(sha256.New224), []string{"sha-224", "sha2-224"}},
	{"sha256", sha256.Size, infallible(sha256.New), []string{"sha-256", "sha2-256"}},
	{"sha384", sha512.Size384, infallible(sha512.New384), []string{"sha-384", "sha2-384"}},
	{"sha512", sha512.Size, infallible(sha512.New), []string{"sha-512", "sha2-512"}},
	{"sha512-224", sha512.Size224, infallible(sha512.New512_224), []string{"sha2-512/224", "sha512/224"}},
	{"sha512-256", sha512.Size256, infallible(sha512.New512_256), []string{"sha2-512/256", "sha512/256"}},
	{"sha3-224", 28, infallible(sha3.New224), nil},
	{"sha3-256", 32, infallible(sha3.New256), nil},
	{"sha3-384", 48, infallible(sha3.New384), nil},
	{"sha3-512", 64, infallible(sha3.New512), nil},
	{"shake128", 16, newShake(sha3.NewShake128, 16), nil},
	{"shake256", 32, newShake(sha3.NewShake256, 32), nil},
	{"blake2b512", blake2b.Size, func() (hash.Hash, error) { return blake2b.New512(nil) }, []string{"blake2b-512"}},
	{"blake2s256", blake2s.Size, func() (hash.Hash, error) { return blake2s.New256(nil) }, []string{"blake2s-256"}},
	{"ripemd160", ripemd160.Size, infallible(ripemd160.New), []string{"ripemd", "rmd160", "ripemd-160"}},
}

func infallible(fn func() hash.Hash) NewFunc {
	return func() (hash.Hash, error) { return fn(), nil }
}

// shake adapts an extendable-output function to hash.Hash with a fixed output length.
type shake struct {
	s    sha3.ShakeHash
	size int
}

func newShake(fn func() sha3.ShakeHash, size int) NewFunc {
	return func() (hash.Hash, error) {
		return &shake{s: fn(), size: size}, nil
	}
}

func (x *shake) Write(p []byte) (int, error) { return x.s.Write(p) }
func (x *shake) Reset()                      { x.s.Reset() }
func (x *shake) Size() int                   { return x.size }
func (x *shake) BlockSize() int              { return x.s.BlockSize() }

func (x *shake) Sum(b []byte) []byte {
	out := make([]byte, x.size)
	// Read finalises the state, so squeeze from a copy to keep Sum repeatable.
	clone := x.s.Clone()
	defer clone.Reset()
	if _, err := clone.Read(out); err != nil {
		panic("krypto: shake read: " + err.Error())
	}
	b = append(b, out...)
	Wipe(out)
	return b
}

// md5sha1 is the TLS 1.0 style concatenation MD5(m) || SHA1(m).
type md5sha1 struct {
	md5  hash.Hash
	sha1 hash.Hash
}

func newMD5SHA1() hash.Hash {
	return &md5sha1{md5: md5.New(), sha1: sha1.New()}
}

func (m *md5sha1) Write(p []byte) (int, error) {
	if _, err := m.md5.Write(p); err != nil {
		return 0, err
	}
	return m.sha1.Write(p)
}

func (m *md5sha1) Sum(b []byte) []byte {
	b = m.md5.Sum(b)
	return m.sha1.Sum(b)
}

func (m *md5sha1) Reset() {
	m.md5.Reset()
	m.sha1.Reset()
}

func (m *md5sha1) Size() int      { return md5.Size + sha1.Size }
func (m *md5sha1) BlockSize() int { return md5.BlockSize }
