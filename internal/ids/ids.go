// Package ids generates the string identifiers used for routines,
// exercises, sets and the other user-owned documents.
//
// An identifier looks like <prefix>_<unix millis>_<9 base36 chars>,
// e.g. set_1718031546123_k3j9x0a2b.
package ids

import (
	"crypto/rand"
	"io"
	"math/big"
	"strconv"
	"time"
)

const (
	PrefixRoutine  = "rt"
	PrefixExercise = "ex"
	PrefixSet      = "set"
	PrefixUser     = "u"
	PrefixProgress = "pe"

	suffixLen = 9
	base36    = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var defaultGenerator = &Generator{
	Now:  time.Now,
	Rand: rand.Reader,
}

// Generator holds the clock and the random source used to build ids.
type Generator struct {
	Now  func() time.Time
	Rand io.Reader
}

// New returns a fresh identifier with the given prefix.
func New(prefix string) string {
	return defaultGenerator.New(prefix)
}

func (g *Generator) New(prefix string) string {
	millis := g.Now().UnixMilli()
	return prefix + "_" + strconv.FormatInt(millis, 10) + "_" + g.suffix()
}

func (g *Generator) suffix() string {
	max := big.NewInt(int64(len(base36)))
	b := make([]byte, suffixLen)
	for i := range b {
		n, err := rand.Int(g.Rand, max)
		if err != nil {
			// a broken entropy source must not produce colliding ids
			panic("ids: read random source: " + err.Error())
		}
		b[i] = base36[n.Int64()]
	}
	return string(b)
}
