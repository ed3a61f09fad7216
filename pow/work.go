package pow

import (
	"math"
	"math/big"
	"time"

	"github.com/joulecoin/jouled/chaincfg"
	"github.com/joulecoin/jouled/util"
)

// GetBlockProof returns the amount of work the given block contributes to the
// total chain work, which is 2^256 divided by the block's target plus one.
// Blocks carrying unusable bits contribute zero work rather than
// failing; such blocks never validate anyway.
func GetBlockProof(node BlockNode) *big.Int {
	return util.CalcWork(node.Bits())
}

// GetBlockProofEquivalentTime estimates how long the chain would need to mine
// the amount of work separating two chain entries, assuming the work rate
// implied by the reference tip's difficulty. The result is negative when
// `from` has accumulated more work than `to`, and saturates at the int64
// range instead of wrapping.
func GetBlockProofEquivalentTime(to, from, tip BlockNode, params *chaincfg.Params) int64 {
	var r *big.Int
	sign := int64(1)
	if to.ChainWork().Cmp(from.ChainWork()) > 0 {
		r = new(big.Int).Sub(to.ChainWork(), from.ChainWork())
	} else {
		r = new(big.Int).Sub(from.ChainWork(), to.ChainWork())
		sign = -1
	}

	tipProof := GetBlockProof(tip)
	if tipProof.Sign() == 0 {
		// A tip with unusable bits has no work rate to convert with.
		log.Debugf("GetBlockProofEquivalentTime: reference tip at height %d "+
			"carries zero work", tip.Height())
		return 0
	}

	r.Mul(r, big.NewInt(int64(params.TargetTimePerBlock/time.Second)))
	r.Div(r, tipProof)
	if r.BitLen() > 63 {
		return sign * math.MaxInt64
	}
	return sign * r.Int64()
}
