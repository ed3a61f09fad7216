package pow

import (
	"github.com/joulecoin/jouled/chaincfg"
	"github.com/joulecoin/jouled/util"
	"github.com/joulecoin/jouled/util/chainhash"
)

// CheckProofOfWork returns whether the given block hash satisfies the claimed
// compact target, and whether that target itself lies within the valid range
// for the network. Failures are logged and reported as false; this function
// never errors on malformed input.
func CheckProofOfWork(hash *chainhash.Hash, bits uint32, params *chaincfg.Params) bool {
	target, isNegative, isOverflow := util.CompactToBigWithFlags(bits)

	// Check range.
	if isNegative || isOverflow || target.Sign() == 0 {
		log.Debugf("CheckProofOfWork: bits %08x do not decode to a usable "+
			"target (negative %t, overflow %t)", bits, isNegative, isOverflow)
		return false
	}
	if target.Cmp(params.PowLimit) > 0 {
		log.Debugf("CheckProofOfWork: target %064x is higher than the %s "+
			"proof of work limit", target, params.Name)
		return false
	}

	// The block hash must be less than or equal to the claimed target.
	if util.HashToBig(hash).Cmp(target) > 0 {
		log.Debugf("CheckProofOfWork: block hash %s is higher than the "+
			"claimed target %064x", hash, target)
		return false
	}

	return true
}
