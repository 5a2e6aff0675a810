package card

import (
	"crypto/cipher"
	"encoding/binary"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// streamSource reads 64-bit values from a kyber random stream.
type streamSource struct {
	stream cipher.Stream
	buf    [8]byte
}

// NewSource returns a rand.Source backed by the random stream of the Ed25519
// suite, which mixes crypto/rand entropy. It is not safe for concurrent use.
func NewSource() rand.Source {
	return &streamSource{stream: suite.RandomStream()}
}

func (s *streamSource) Uint64() uint64 {
	clear(s.buf[:])
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}
