package pow

import (
	"math"
	"math/big"
	"testing"

	"github.com/joulecoin/jouled/chaincfg"
)

// TestGetBlockProof ensures block work is derived from the block's bits and
// collapses to zero for unusable encodings.
func TestGetBlockProof(t *testing.T) {
	tests := []struct {
		bits uint32
		want int64
	}{
		// 2^256 / (0xffff * 2^208 + 1).
		{0x1d00ffff, 4295032833},

		// Zero, negative and overflowing bits carry no work.
		{0x00000000, 0},
		{0x01810000, 0},
		{0xff123456, 0},
	}

	for x, test := range tests {
		node := newTestNode(nil, 0, 0, test.bits)
		proof := GetBlockProof(node)
		if proof.Int64() != test.want {
			t.Errorf("TestGetBlockProof test #%d failed: got %v want %d",
				x, proof, test.want)
		}
	}
}

// TestGetBlockProofEquivalentTime checks the work-difference to time
// conversion, its sign symmetry, and its saturation behavior.
func TestGetBlockProofEquivalentTime(t *testing.T) {
	params := &chaincfg.MainNetParams

	// The reference tip mines at the pow limit, whose work per block is
	// 2^256 / ((2^20-1)*2^216 + 1) = 2^20 + 1.
	tip := newTestNode(nil, 100, 0, params.PowLimitBits)
	workPerBlock := big.NewInt(1 << 20 | 1)

	from := &testBlockNode{height: 10, chainWork: big.NewInt(0)}
	to := &testBlockNode{
		height:    110,
		chainWork: new(big.Int).Mul(workPerBlock, big.NewInt(100)),
	}

	// 100 blocks worth of work at 45 seconds per block.
	got := GetBlockProofEquivalentTime(to, from, tip, params)
	if got != 4500 {
		t.Errorf("TestGetBlockProofEquivalentTime: got %d want 4500", got)
	}

	// Swapping the endpoints negates the estimate.
	got = GetBlockProofEquivalentTime(from, to, tip, params)
	if got != -4500 {
		t.Errorf("TestGetBlockProofEquivalentTime: swapped endpoints got %d "+
			"want -4500", got)
	}

	// A work difference needing more than 63 bits saturates instead of
	// wrapping.
	huge := &testBlockNode{
		height:    1000,
		chainWork: new(big.Int).Lsh(big.NewInt(1), 130),
	}
	got = GetBlockProofEquivalentTime(huge, from, tip, params)
	if got != math.MaxInt64 {
		t.Errorf("TestGetBlockProofEquivalentTime: saturation got %d want %d",
			got, int64(math.MaxInt64))
	}
	got = GetBlockProofEquivalentTime(from, huge, tip, params)
	if got != -math.MaxInt64 {
		t.Errorf("TestGetBlockProofEquivalentTime: negative saturation got %d "+
			"want %d", got, int64(-math.MaxInt64))
	}

	// A reference tip with no usable work has no rate to convert with.
	zeroTip := newTestNode(nil, 100, 0, 0)
	got = GetBlockProofEquivalentTime(to, from, zeroTip, params)
	if got != 0 {
		t.Errorf("TestGetBlockProofEquivalentTime: zero-work tip got %d want 0", got)
	}
}
