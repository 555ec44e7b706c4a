package passgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Generator draws passwords from a cryptographically secure source.
type Generator struct {
	random io.Reader
}

// NewGenerator returns a Generator reading from r. Production code passes
// crypto/rand.Reader; r must be a CSPRNG.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{random: r}
}

var defaultGenerator = NewGenerator(rand.Reader)

// Generate produces a password with the default crypto/rand generator.
func Generate(opts Options) (string, error) {
	return defaultGenerator.Generate(opts)
}

// Generate returns a password of exactly opts.Length characters. One
// character of each enabled class is drawn first, the rest come from the
// union alphabet, and the result is shuffled so the guaranteed characters
// have no fixed position.
func (g *Generator) Generate(opts Options) (string, error) {
	pool, err := NewPool(opts)
	if err != nil {
		return "", err
	}

	out := make([]byte, 0, opts.Length)

	for _, alphabet := range pool.Classes() {
		c, err := g.pick(alphabet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	union := pool.Alphabet()
	for len(out) < opts.Length {
		c, err := g.pick(union)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	if err := g.shuffle(out); err != nil {
		return "", err
	}

	return string(out), nil
}

func (g *Generator) pick(alphabet string) (byte, error) {
	i, err := g.intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// shuffle is a Fisher-Yates permutation.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(v.Int64()), nil
}
