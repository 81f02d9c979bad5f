package session

import "strings"

// alphabet is every character the input line may hold.
const alphabet = "0123456789.+-*/() "

// InputBuffer holds the expression being edited. It only ever contains
// characters from the calculator alphabet.
type InputBuffer struct {
	Value string
}

// Append adds text to the buffer, dropping characters outside the alphabet.
func (b *InputBuffer) Append(text string) {
	b.Value += Sanitize(text)
}

// Backspace removes the last character.
func (b *InputBuffer) Backspace() {
	if len(b.Value) > 0 {
		r := []rune(b.Value)
		b.Value = string(r[:len(r)-1])
	}
}

// Clear resets the buffer.
func (b *InputBuffer) Clear() {
	b.Value = ""
}

// Sanitize returns text with every character outside the alphabet removed.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(alphabet, r) {
			return r
		}
		return -1
	}, text)
}
