// Package caesar implements the Caesar shift cipher over the Latin alphabet.
//
// Letters rotate within their own case range (a-z, A-Z) so that case is preserved and
// encryption and decryption are exact inverses. Every other byte, including digits,
// punctuation, whitespace and multi-byte UTF-8 sequences, passes through unchanged.
package caesar

// AlphabetSize is the number of letters in each case range, and therefore the size of the key space.
const AlphabetSize = 26

// Candidate is one possible plaintext produced by Enumerate.
type Candidate struct {
	// Key is the shift that was used to decrypt.
	Key int

	// Text is the ciphertext decrypted with Key.
	Text string
}

// Normalize reduces an arbitrary key into [0, AlphabetSize).
// Rotating by the result is equivalent to rotating by key.
func Normalize(key int) int {
	// Go's % keeps the sign of the dividend.
	return ((key % AlphabetSize) + AlphabetSize) % AlphabetSize
}

// Rotate shifts r by shift positions within its case range.
// Runes outside a-z and A-Z are returned unchanged.
func Rotate(r rune, shift int) rune {
	base, ok := caseBase(r)
	if !ok {
		return r
	}

	return base + rune(Normalize(int(r-base)+Normalize(shift)))
}

// Encrypt shifts every letter of plaintext forward by key.
func Encrypt(plaintext string, key int) string {
	return transform(plaintext, Normalize(key))
}

// Decrypt shifts every letter of ciphertext backward by key.
func Decrypt(ciphertext string, key int) string {
	return transform(ciphertext, Normalize(-Normalize(key)))
}

// Enumerate decrypts ciphertext with every key in ascending order, 0 through AlphabetSize-1.
func Enumerate(ciphertext string) []Candidate {
	candidates := make([]Candidate, AlphabetSize)

	for key := range AlphabetSize {
		candidates[key] = Candidate{Key: key, Text: Decrypt(ciphertext, key)}
	}

	return candidates
}

// transform rotates every ASCII letter of text by shift, which must already be normalized.
// Working on bytes is safe: UTF-8 continuation and lead bytes never fall in the ASCII range.
func transform(text string, shift int) string {
	if shift == 0 {
		return text
	}

	buf := []byte(text)

	for i, c := range buf {
		if base, ok := caseBase(rune(c)); ok {
			buf[i] = byte(base) + byte((int(rune(c)-base)+shift)%AlphabetSize)
		}
	}

	return string(buf)
}

// caseBase returns the first letter of the case range r belongs to.
func caseBase(r rune) (rune, bool) {
	switch {
	case 'a' <= r && r <= 'z':
		return 'a', true
	case 'A' <= r && r <= 'Z':
		return 'A', true
	default:
		return 0, false
	}
}
