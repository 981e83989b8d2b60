package krypto_test

import (
	"crypto/sha256"
	"errors"
	"hash"
	"testing"

	"github.com/Hussein-Mazeh/multihash/krypto"
)

func TestLoadDigestsSizes(t *testing.T) {
	r := krypto.LoadDigests()
	t.Cleanup(r.Close)

	cases := map[string]int{
		"md4":        16,
		"md5":        16,
		"md5-sha1":   36,
		"sha1":       20,
		"sha224":     28,
		"sha256":     32,
		"sha384":     48,
		"sha512":     64,
		"sha512-224": 28,
		"sha512-256": 32,
		"sha3-224":   28,
		"sha3-256":   32,
		"sha3-384":   48,
		"sha3-512":   64,
		"shake128":   16,
		"shake256":   32,
		"blake2b512": 64,
		"blake2s256": 32,
		"ripemd160":  20,
	}

	for name, size := range cases {
		alg, err := r.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if alg.Size != size {
			t.Fatalf("%s size = %d, want %d", name, alg.Size, size)
		}

		ctx, err := alg.NewContext()
		if err != nil {
			t.Fatalf("%s NewContext: %v", name, err)
		}
		if err := ctx.Init(); err != nil {
			t.Fatalf("%s Init: %v", name, err)
		}
		sum, err := ctx.Final(make([]byte, krypto.MaxDigestSize))
		if err != nil {
			t.Fatalf("%s Final: %v", name, err)
		}
		if len(sum) != size {
			t.Fatalf("%s produced %d bytes, want %d", name, len(sum), size)
		}
		ctx.Close()
	}

	if got := len(r.Names()); got != len(cases) {
		t.Fatalf("Names() has %d entries, want %d", got, len(cases))
	}
}

func TestLookupIsCaseInsensitiveAndResolvesAliases(t *testing.T) {
	r := krypto.LoadDigests()
	t.Cleanup(r.Close)

	for _, name := range []string{"SHA256", "sha-256", "SHA2-256", " sha256 "} {
		alg, err := r.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if alg.Name != "sha256" {
			t.Fatalf("Lookup(%q) resolved to %q", name, alg.Name)
		}
	}
}

func TestLookupUnknownAlgorithm(t *testing.T) {
	r := krypto.LoadDigests()
	t.Cleanup(r.Close)

	_, err := r.Lookup("not-a-real-hash")
	if krypto.KindOf(err) != krypto.KindUnknownAlgorithm {
		t.Fatalf("expected KindUnknownAlgorithm, got %v", err)
	}
	if !errors.Is(err, &krypto.Error{Kind: krypto.KindUnknownAlgorithm}) {
		t.Fatalf("errors.Is did not match kind: %v", err)
	}
}

func TestClosedRegistryForgetsAlgorithms(t *testing.T) {
	r := krypto.LoadDigests()
	r.Close()

	if _, err := r.Lookup("sha256"); krypto.KindOf(err) != krypto.KindUnknownAlgorithm {
		t.Fatalf("expected lookup on closed registry to fail, got %v", err)
	}
	if err := r.Register("x", 32, func() (hash.Hash, error) { return sha256.New(), nil }); err == nil {
		t.Fatal("expected Register on closed registry to fail")
	}
	if len(r.Names()) != 0 {
		t.Fatal("expected no names after Close")
	}
}

func TestRegisterValidation(t *testing.T) {
	newSHA := func() (hash.Hash, error) { return sha256.New(), nil }

	cases := []struct {
		name    string
		algName string
		size    int
		fn      krypto.NewFunc
	}{
		{name: "empty name", algName: "  ", size: 32, fn: newSHA},
		{name: "zero size", algName: "a", size: 0, fn: newSHA},
		{name: "oversized", algName: "a", size: krypto.MaxDigestSize + 1, fn: newSHA},
		{name: "nil constructor", algName: "a", size: 32, fn: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := krypto.NewRegistry()
			if err := r.Register(tc.algName, tc.size, tc.fn); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	t.Run("duplicate alias", func(t *testing.T) {
		r := krypto.NewRegistry()
		if err := r.Register("first", 32, newSHA, "shared"); err != nil {
			t.Fatalf("Register first: %v", err)
		}
		if err := r.Register("second", 32, newSHA, "SHARED"); err == nil {
			t.Fatal("expected duplicate alias to be rejected")
		}
		if names := r.Names(); len(names) != 1 || names[0] != "first" {
			t.Fatalf("unexpected names after rejected register: %v", names)
		}
	})
}
