package common

// WipeByteArray zeroes the contents of b. Used to clear password buffers
// once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
