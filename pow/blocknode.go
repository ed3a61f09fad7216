package pow

import "math/big"

// BlockNode is a read-only view of a single entry in an ancestor chain of
// block headers. Implementations are owned by the caller (typically a chain
// store); this package only walks backward through them and never mutates or
// retains them.
type BlockNode interface {
	// Height returns the height of the block within its chain. The
	// genesis block has height 0.
	Height() uint64

	// Timestamp returns the block time in Unix seconds.
	Timestamp() int64

	// Bits returns the compact difficulty target the block was mined
	// against.
	Bits() uint32

	// ChainWork returns the total amount of work in the chain up to and
	// including this block.
	ChainWork() *big.Int

	// Parent returns the immediate ancestor of this block, or nil if this
	// is the genesis block.
	Parent() BlockNode
}
