package common

// WipeBytes overwrites b with zeros. Passwords are wiped once they have been
// sent. A nil slice is a no-op.
func WipeBytes(b []byte) {
	clear(b)
}
