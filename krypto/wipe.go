package krypto

// Wipe overwrites buf with zeros in place.
func Wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// wipe is the erase hook used by Stretch; tests replace it to observe zeroing.
var wipe = Wipe
