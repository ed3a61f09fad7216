package pow

import (
	"math/big"

	"github.com/joulecoin/jouled/util"
)

// testBlockNode is a plain in-memory BlockNode used to build synthetic
// ancestor chains for the tests in this package.
type testBlockNode struct {
	height    uint64
	timestamp int64
	bits      uint32
	chainWork *big.Int
	parent    *testBlockNode
}

func (node *testBlockNode) Height() uint64 { return node.height }

func (node *testBlockNode) Timestamp() int64 { return node.timestamp }

func (node *testBlockNode) Bits() uint32 { return node.bits }

func (node *testBlockNode) ChainWork() *big.Int { return node.chainWork }

func (node *testBlockNode) Parent() BlockNode {
	if node.parent == nil {
		return nil
	}
	return node.parent
}

// newTestNode appends a node to the given parent, accumulating chain work
// from the node's own bits.
func newTestNode(parent *testBlockNode, height uint64, timestamp int64, bits uint32) *testBlockNode {
	work := util.CalcWork(bits)
	if parent != nil {
		work.Add(work, parent.chainWork)
	}
	return &testBlockNode{
		height:    height,
		timestamp: timestamp,
		bits:      bits,
		chainWork: work,
		parent:    parent,
	}
}

// buildTestChain returns the tip of a synthetic chain of length nodes ending
// at tipHeight. Blocks are spaced spacing seconds apart starting at
// firstTimestamp and all carry the same bits. The deepest node has no parent,
// so tests must not walk past it.
func buildTestChain(tipHeight uint64, length int, firstTimestamp, spacing int64, bits uint32) *testBlockNode {
	var node *testBlockNode
	height := tipHeight - uint64(length-1)
	timestamp := firstTimestamp
	for i := 0; i < length; i++ {
		node = newTestNode(node, height, timestamp, bits)
		height++
		timestamp += spacing
	}
	return node
}
