// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/joulecoin/jouled/chaincfg"
	"github.com/joulecoin/jouled/util"
)

// Activation heights of the second and third retargeting eras. Blocks below
// era2ActivationHeight follow the first era's policy.
const (
	era2ActivationHeight = 32000
	era3ActivationHeight = 90000
)

// retargetEra describes one height-activated retargeting policy: how many
// trailing blocks inform the next target and how far the measured timespan
// may deviate from the nominal one.
//
// maxShrinkPercent bounds how much the actual timespan may fall short of the
// averaging timespan, which is the direction that makes the next target
// harder. maxGrowPercent bounds the opposite, easing direction.
type retargetEra struct {
	activationHeight uint64
	averagingWindow  uint64
	maxShrinkPercent int64
	maxGrowPercent   int64
}

// retargetEras holds every era ordered by descending activation height.
// eraForHeight scans it front to back and picks the first era the given
// height has reached, so later entries act as fallbacks down to genesis.
var retargetEras = []retargetEra{
	{activationHeight: era3ActivationHeight, averagingWindow: 8, maxShrinkPercent: 3, maxGrowPercent: 1},
	{activationHeight: era2ActivationHeight, averagingWindow: 8, maxShrinkPercent: 1, maxGrowPercent: 1},
	{activationHeight: 0, averagingWindow: 160, maxShrinkPercent: 10, maxGrowPercent: 1},
}

func eraForHeight(height uint64) *retargetEra {
	for i := range retargetEras {
		if height >= retargetEras[i].activationHeight {
			return &retargetEras[i]
		}
	}

	// The last entry activates at height 0, so the scan cannot fall
	// through.
	panic(errors.Errorf("no retarget era covers height %d", height))
}

// averagingTimespan returns the nominal amount of time, in seconds, that the
// era's averaging window is expected to span.
func (era *retargetEra) averagingTimespan(params *chaincfg.Params) int64 {
	return int64(era.averagingWindow) * int64(params.TargetTimePerBlock/time.Second)
}

// actualTimespanBounds returns the clamp range for the measured timespan of
// the era's averaging window.
func (era *retargetEra) actualTimespanBounds(params *chaincfg.Params) (min, max int64) {
	timespan := era.averagingTimespan(params)
	min = timespan * (100 - era.maxShrinkPercent) / 100
	max = timespan * (100 + era.maxGrowPercent) / 100
	return min, max
}

// NextRequiredDifficulty calculates the required difficulty, in compact form,
// for a block built on top of the given tip with the given timestamp.
//
// Passing a nil tip denotes the genesis block and yields the network's
// proof-of-work limit, as do the first blocks before a full era-one averaging
// window exists.
func NextRequiredDifficulty(tip BlockNode, newBlockTime time.Time, params *chaincfg.Params) uint32 {
	// Genesis block.
	if tip == nil {
		return params.PowLimitBits
	}
	nextHeight := tip.Height() + 1
	if nextHeight < eraForHeight(0).averagingWindow {
		return params.PowLimitBits
	}

	if params.PowAllowMinDifficultyBlocks {
		// Special difficulty rule for test networks: if the new
		// block's timestamp is more than twice the target spacing past
		// the tip, allow mining of a minimum-difficulty block.
		if newBlockTime.Unix() > tip.Timestamp()+2*int64(params.TargetTimePerBlock/time.Second) {
			return params.PowLimitBits
		}
		return findPrevTestNetDifficulty(tip, params)
	}

	era := eraForHeight(nextHeight)

	// Go back by what we want to be the era's averaging window worth of
	// blocks.
	first := tip
	for i := uint64(0); i < era.averagingWindow-1; i++ {
		first = first.Parent()
		if first == nil {
			panic(errors.Errorf("chain view ends after %d ancestors while its "+
				"tip claims height %d, wanted a window of %d blocks",
				i+1, tip.Height(), era.averagingWindow))
		}
	}

	return CalculateNextWorkRequired(tip, first.Timestamp(), params)
}

// findPrevTestNetDifficulty walks backward from the tip and returns the
// difficulty of the most recent block that was not mined under the
// minimum-difficulty exception, stopping at adjustment-interval boundaries.
// This keeps one slowly-mined minimum-difficulty block from dragging the
// whole test network down to the difficulty floor.
func findPrevTestNetDifficulty(tip BlockNode, params *chaincfg.Params) uint32 {
	interval := params.DifficultyAdjustmentInterval()
	node := tip
	for node.Parent() != nil &&
		int64(node.Height())%interval != 0 &&
		node.Bits() == params.PowLimitBits {
		node = node.Parent()
	}
	return node.Bits()
}

// CalculateNextWorkRequired computes the target for the block after the given
// tip from the time the tip's averaging window actually took, clamped by the
// active era's policy. firstBlockTime is the timestamp of the first block in
// that window.
func CalculateNextWorkRequired(tip BlockNode, firstBlockTime int64, params *chaincfg.Params) uint32 {
	if params.PowNoRetargeting {
		return tip.Bits()
	}

	era := eraForHeight(tip.Height() + 1)
	averagingTimespan := era.averagingTimespan(params)
	minActualTimespan, maxActualTimespan := era.actualTimespanBounds(params)

	// Limit adjustment step.
	actualTimespan := tip.Timestamp() - firstBlockTime
	log.Debugf("Actual timespan %ds before bounds [%ds, %ds]",
		actualTimespan, minActualTimespan, maxActualTimespan)
	if actualTimespan < minActualTimespan {
		actualTimespan = minActualTimespan
	}
	if actualTimespan > maxActualTimespan {
		actualTimespan = maxActualTimespan
	}

	// Retarget. Multiply before dividing so no precision is lost; big.Int
	// keeps the intermediate product exact.
	oldTarget := util.CompactToBig(tip.Bits())
	newTarget := new(big.Int).Mul(oldTarget, big.NewInt(actualTimespan))
	newTarget.Div(newTarget, big.NewInt(averagingTimespan))

	if newTarget.Cmp(params.PowLimit) > 0 {
		newTarget.Set(params.PowLimit)
	}

	newTargetBits := util.BigToCompact(newTarget)
	log.Debugf("Difficulty retarget at height %d", tip.Height()+1)
	log.Debugf("Old target %08x (%064x)", tip.Bits(), oldTarget)
	log.Debugf("New target %08x (%064x)", newTargetBits, util.CompactToBig(newTargetBits))
	return newTargetBits
}
