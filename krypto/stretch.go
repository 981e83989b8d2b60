package krypto

import "encoding/hex"

// Stretch loads the supported digests, runs Registry.Stretch and unloads
// them again before returning.
func Stretch(algorithm string, salt []byte, count int, password []byte) ([]byte, error) {
	r := LoadDigests()
	defer r.Close()
	return r.Stretch(algorithm, salt, count, password)
}

// Stretch hashes password count times with the named algorithm and returns
// the final digest as lowercase hex.
//
// The first round computes H(salt || password); every later round computes
// H(salt || previous digest) on the raw digest bytes. Only the final digest
// is hex encoded.
//
// Stretch takes ownership of password: it is zeroed once the first round has
// consumed it, or before returning on any error. Intermediate digests are
// zeroed as soon as they are replaced. The returned slice holds secret
// material and should be wiped by the caller after use.
func (r *Registry) Stretch(algorithm string, salt []byte, count int, password []byte) ([]byte, error) {
	defer wipe(password)

	if count <= 0 {
		return nil, newError(KindInvalidCount, algorithm, nil)
	}

	alg, err := r.Lookup(algorithm)
	if err != nil {
		return nil, err
	}

	ctx, err := alg.NewContext()
	if err != nil {
		return nil, err
	}
	defer ctx.Close()

	// Rounds alternate between two buffers so the previous digest can be fed
	// in while the next one is written.
	var scratch [2][MaxDigestSize]byte
	defer wipe(scratch[0][:])
	defer wipe(scratch[1][:])

	current := password
	for i := 0; i < count; i++ {
		if err := ctx.Init(); err != nil {
			return nil, err
		}
		if err := ctx.Update(salt); err != nil {
			return nil, newError(KindSaltUpdate, alg.Name, err)
		}
		if err := ctx.Update(current); err != nil {
			return nil, newError(KindPasswordUpdate, alg.Name, err)
		}

		next, err := ctx.Final(scratch[i%2][:alg.Size])
		if err != nil {
			return nil, err
		}

		wipe(current)
		current = next
	}

	out := make([]byte, hex.EncodedLen(len(current)))
	hex.Encode(out, current)
	wipe(current)
	return out, nil
}
