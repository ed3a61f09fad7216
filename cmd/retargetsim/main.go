// retargetsim drives the difficulty retarget engine over a synthetic chain
// and reports how the required target reacts to a chosen block rate. It is a
// development tool for eyeballing retarget behavior around era boundaries
// without mining anything.
package main

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/joulecoin/jouled/pow"
	"github.com/joulecoin/jouled/util/panics"
)

// simNode is one simulated block. It implements pow.BlockNode.
type simNode struct {
	height    uint64
	timestamp int64
	bits      uint32
	chainWork *big.Int
	parent    *simNode
}

func (node *simNode) Height() uint64 { return node.height }

func (node *simNode) Timestamp() int64 { return node.timestamp }

func (node *simNode) Bits() uint32 { return node.bits }

func (node *simNode) ChainWork() *big.Int { return node.chainWork }

func (node *simNode) Parent() pow.BlockNode {
	if node.parent == nil {
		return nil
	}
	return node.parent
}

func main() {
	defer panics.HandlePanic(log, nil)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	spawn := panics.GoroutineWrapperFunc(log)
	done := make(chan struct{})
	spawn(func() {
		defer close(done)
		simulate(cfg)
	})
	<-done

	backendLog.Close()
}

func simulate(cfg *config) {
	params := activeNetParams
	log.Infof("Simulating %d blocks on %s with %d seconds between blocks",
		cfg.NumBlocks, params.Name, cfg.BlockDelay)

	var genesis, tip *simNode
	timestamp := cfg.StartTime
	retargets := 0
	for height := uint64(0); height < cfg.NumBlocks; height++ {
		bits := pow.NextRequiredDifficulty(tip, time.Unix(timestamp, 0), params)
		node := &simNode{
			height:    height,
			timestamp: timestamp,
			bits:      bits,
			parent:    tip,
		}
		node.chainWork = pow.GetBlockProof(node)
		if tip != nil {
			node.chainWork.Add(node.chainWork, tip.chainWork)
		}

		if tip != nil && bits != tip.bits {
			retargets++
			log.Debugf("Height %d: retarget %08x -> %08x", height, tip.bits, bits)
		}
		if height == 32000 || height == 90000 {
			log.Infof("Height %d: retarget era change, difficulty %08x", height, bits)
		}

		if genesis == nil {
			genesis = node
		}
		tip = node
		timestamp += cfg.BlockDelay
	}

	equivalentTime := pow.GetBlockProofEquivalentTime(tip, genesis, tip, params)
	log.Infof("Tip at height %d, final difficulty %08x after %d retargets",
		tip.height, tip.bits, retargets)
	log.Infof("Cumulative chain work %x, worth ~%d seconds of mining at the "+
		"final rate", tip.chainWork, equivalentTime)
}
