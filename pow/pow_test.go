package pow

import (
	"math/big"
	"testing"

	"github.com/joulecoin/jouled/chaincfg"
	"github.com/joulecoin/jouled/util"
	"github.com/joulecoin/jouled/util/chainhash"
)

// bigToHash packs a big.Int into the little-endian hash wire form so tests
// can state hash values as plain integers.
func bigToHash(n *big.Int) *chainhash.Hash {
	var hash chainhash.Hash
	b := n.Bytes()
	for i, v := range b {
		hash[len(b)-1-i] = v
	}
	return &hash
}

// TestCheckProofOfWork verifies hash-versus-target comparison and the range
// checks on the claimed bits.
func TestCheckProofOfWork(t *testing.T) {
	params := &chaincfg.MainNetParams

	const bits = uint32(0x1e00ffff)
	target := util.CompactToBig(bits)

	tests := []struct {
		name   string
		hash   *chainhash.Hash
		bits   uint32
		accept bool
	}{
		{"hash below target", bigToHash(big.NewInt(1)), bits, true},
		{"hash equal to target", bigToHash(target), bits, true},
		{"hash above target", bigToHash(new(big.Int).Add(target, big.NewInt(1))), bits, false},
		{"zero target", bigToHash(big.NewInt(0)), 0x00000000, false},
		{"negative target", bigToHash(big.NewInt(0)), 0x01810000, false},
		{"overflowing target", bigToHash(big.NewInt(0)), 0xff123456, false},
		{"target above pow limit", bigToHash(big.NewInt(0)), 0x1f00ffff, false},
	}

	for _, test := range tests {
		accepted := CheckProofOfWork(test.hash, test.bits, params)
		if accepted != test.accept {
			t.Errorf("TestCheckProofOfWork (%s): got %t want %t",
				test.name, accepted, test.accept)
		}
	}
}
