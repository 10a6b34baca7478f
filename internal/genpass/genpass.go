// Package genpass generates random passwords that always contain at least
// one lowercase letter, one uppercase letter, one digit and one symbol.
package genpass

import (
	"math/rand/v2"
	"strings"
)

// Length is the number of characters in a generated password.
const Length = 20

// Character class pools.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// pools lists every class pool in the order they are seeded into a password.
var pools = []string{Lowercase, Uppercase, Digits, Symbols}

// Generator produces passwords from a general-purpose PRNG.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator reading from src. A nil src seeds a PCG source
// from the runtime's random generator.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// Generate returns a Length-character password.
func (g *Generator) Generate() string {
	buf := make([]byte, 0, Length)
	for _, pool := range pools {
		buf = append(buf, g.pick(pool))
	}
	for len(buf) < Length {
		buf = append(buf, g.pick(pools[g.rng.IntN(len(pools))]))
	}

	// Without the shuffle the first four characters would always follow pool order.
	g.rng.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})
	return string(buf)
}

func (g *Generator) pick(pool string) byte {
	return pool[g.rng.IntN(len(pool))]
}

// Valid reports whether password has the generated length, covers every
// class pool and uses no characters outside them.
func Valid(password string) bool {
	if len(password) != Length {
		return false
	}
	seen := make([]bool, len(pools))
	for _, c := range password {
		found := false
		for i, pool := range pools {
			if strings.ContainsRune(pool, c) {
				seen[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}
	return true
}
