package outcome

import (
	"fmt"
	"time"

	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MaxDepth bounds the tree size: 6^10 leaves already take hundreds of megabytes.
const MaxDepth = 10

type node struct {
	face  domain.Dice
	first int32
}

// Tree holds every sequence of dice faces up to a fixed depth. Children of a node
// are stored contiguously in one arena. A built tree is never mutated, so it can be
// shared by any number of goroutines.
type Tree struct {
	nodes []node
	depth int
}

func New(depth int, logger *zap.Logger) (*Tree, error) {
	if depth < 0 {
		return nil, errors.WithMessagef(domain.ErrIllegalArgument, "negative outcome tree depth %d", depth)
	}
	if depth > MaxDepth {
		return nil, errors.WithMessagef(errDepthTooLarge, "depth %d exceeds %d", depth, MaxDepth)
	}
	start := time.Now()
	size := 0
	for d, level := 0, 1; d <= depth; d, level = d+1, level*domain.FaceCount {
		size += level
	}
	nodes := make([]node, 1, size)
	nodes[0] = node{first: -1}
	levelStart, levelEnd := 0, 1
	for d := 0; d < depth; d++ {
		for i := levelStart; i < levelEnd; i++ {
			nodes[i].first = int32(len(nodes))
			for face := domain.Dice(1); face <= domain.FaceCount; face++ {
				nodes = append(nodes, node{face: face, first: -1})
			}
		}
		levelStart, levelEnd = levelEnd, len(nodes)
	}
	logger.Info("built outcome tree",
		zap.Int("depth", depth),
		zap.Int("nodes", len(nodes)),
		zap.Duration("took", time.Since(start)))
	return &Tree{nodes: nodes, depth: depth}, nil
}

func (t *Tree) Depth() int {
	return t.depth
}

// Outcomes is the number of sequences of the given length: 6^depth.
func Outcomes(depth int) int {
	n := 1
	for i := 0; i < depth; i++ {
		n *= domain.FaceCount
	}
	return n
}

// Enumerate calls visit once for every sequence of depth faces, depth first.
// The slice passed to visit is reused between calls and must not be retained.
// Asking for more dice than the tree was built for is a programming error.
func (t *Tree) Enumerate(depth int, visit func(seq []domain.Dice)) {
	if depth < 0 || depth > t.depth {
		panic(fmt.Sprintf("outcome: enumerate depth %d outside tree depth %d", depth, t.depth))
	}
	t.walk(0, make([]domain.Dice, depth), 0, visit)
}

func (t *Tree) walk(i int32, acc []domain.Dice, level int, visit func([]domain.Dice)) {
	if level == len(acc) {
		visit(acc)
		return
	}
	first := t.nodes[i].first
	for c := first; c < first+domain.FaceCount; c++ {
		acc[level] = t.nodes[c].face
		t.walk(c, acc, level+1, visit)
	}
}

// Count returns how many of the 6^depth sequences satisfy favorable, and the total.
func (t *Tree) Count(depth int, favorable func(seq []domain.Dice) bool) (int, int) {
	hits := 0
	t.Enumerate(depth, func(seq []domain.Dice) {
		if favorable(seq) {
			hits++
		}
	})
	return hits, Outcomes(depth)
}
