package roomid

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// CodeLength is the length of a human-shareable room code.
const CodeLength = 6

// codeAlphabet deliberately omits visually ambiguous characters (I/O/1/0)
// so codes survive being read aloud or scribbled on a napkin.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// RandSource interface for dependency injection of randomness
type RandSource interface {
	IntN(n int) int
}

// Generator produces room codes and session IDs with configurable randomness
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a new generator. A nil RandSource falls back to
// crypto/rand.
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// NewCode generates a room code using the default crypto/rand source.
func NewCode() string {
	return NewGenerator(nil).NewCode()
}

// NewCode generates a CodeLength-character room code.
func (g *Generator) NewCode() string {
	var b strings.Builder
	b.Grow(CodeLength)
	for i := 0; i < CodeLength; i++ {
		b.WriteByte(codeAlphabet[g.intn(len(codeAlphabet))])
	}
	return b.String()
}

// NewSessionID generates an opaque participant identifier. Unlike room
// codes these are never typed by humans, so a longer hex form is fine.
func (g *Generator) NewSessionID() string {
	var buf [16]byte
	if g.randSource != nil {
		for i := range buf {
			buf[i] = byte(g.randSource.IntN(256))
		}
	} else {
		if _, err := rand.Read(buf[:]); err != nil {
			panic("failed to generate random bytes: " + err.Error())
		}
	}
	return fmt.Sprintf("%x", buf)
}

func (g *Generator) intn(n int) int {
	if g.randSource != nil {
		return g.randSource.IntN(n)
	}
	var b [1]byte
	// Rejection sampling keeps the distribution uniform.
	max := 256 - (256 % n)
	for {
		if _, err := rand.Read(b[:]); err != nil {
			panic("failed to generate random bytes: " + err.Error())
		}
		if int(b[0]) < max {
			return int(b[0]) % n
		}
	}
}

// Validate checks that a room code is well formed (length and alphabet).
func Validate(code string) error {
	if len(code) != CodeLength {
		return fmt.Errorf("room code must be exactly %d characters, got %d", CodeLength, len(code))
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(codeAlphabet, rune(code[i])) {
			return fmt.Errorf("invalid character %c at position %d", code[i], i)
		}
	}
	return nil
}
