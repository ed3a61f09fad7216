// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// These variables are the proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowMax is the highest proof of work value a block can have for
	// the main network. It is the value 2^236 - 1.
	mainPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// testnetPowMax is the highest proof of work value a block can have
	// for the test network. It is the value 2^236 - 1.
	testnetPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowMax is the highest proof of work value a block can
	// have for the regression test network. It is the value 2^255 - 1.
	regressionPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	// simnetPowMax is the highest proof of work value a block can have
	// for the simulation test network. It is the value 2^255 - 1.
	simnetPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

const (
	// targetTimePerBlock is the nominal amount of time between mined
	// blocks on every default network.
	targetTimePerBlock = 45 * time.Second
)

// Params defines a network by its consensus parameters. These parameters may
// be used by applications to differentiate networks as well as to drive the
// difficulty retargeting and proof-of-work validation rules.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PowLimit defines the highest allowed proof of work value for a
	// block as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// PowAllowMinDifficultyBlocks defines whether the network should allow
	// minimum difficulty blocks. They can occur when a block has not been
	// mined for long enough without a block being found.
	PowAllowMinDifficultyBlocks bool

	// PowNoRetargeting defines whether the network has difficulty
	// retargeting enabled or not. This should only be set to true for
	// regression and simulation test networks.
	PowNoRetargeting bool
}

// DifficultyAdjustmentInterval returns, in blocks, how often the legacy
// adjustment-interval boundary recurs. It is derived from the target timespan
// and per-block spacing the same way the reference implementation derives it.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return int64(p.TargetTimespan / p.TargetTimePerBlock)
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name: "mainnet",

	PowLimit:                    mainPowMax,
	PowLimitBits:                0x1e0fffff,
	TargetTimePerBlock:          targetTimePerBlock,
	TargetTimespan:              targetTimePerBlock,
	PowAllowMinDifficultyBlocks: false,
	PowNoRetargeting:            false,
}

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name: "testnet",

	PowLimit:                    testnetPowMax,
	PowLimitBits:                0x1e0fffff,
	TargetTimePerBlock:          targetTimePerBlock,
	TargetTimespan:              targetTimePerBlock,
	PowAllowMinDifficultyBlocks: true,
	PowNoRetargeting:            false,
}

// RegressionNetParams defines the network parameters for the regression test
// network. Difficulty never retargets so tests can mine blocks at will.
var RegressionNetParams = Params{
	Name: "regtest",

	PowLimit:                    regressionPowMax,
	PowLimitBits:                0x207fffff,
	TargetTimePerBlock:          targetTimePerBlock,
	TargetTimespan:              targetTimePerBlock,
	PowAllowMinDifficultyBlocks: true,
	PowNoRetargeting:            true,
}

// SimNetParams defines the network parameters for the simulation test
// network.
var SimNetParams = Params{
	Name: "simnet",

	PowLimit:                    simnetPowMax,
	PowLimitBits:                0x207fffff,
	TargetTimePerBlock:          targetTimePerBlock,
	TargetTimespan:              targetTimePerBlock,
	PowAllowMinDifficultyBlocks: true,
	PowNoRetargeting:            true,
}
