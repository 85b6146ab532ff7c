package quantize

import (
	"cmp"
	"slices"

	"github.com/gogpu/chroma/colorspace"
)

// octreeDepth is the number of RGB bit planes the tree splits on.
const octreeDepth = 8

// Octree is the classic RGB octree quantizer. Every histogram color is
// inserted at depth 8; while more leaves than colors remain, the deepest
// internal nodes are folded into leaves, least populated first. Palette
// entries are the weighted means of the surviving leaves, alpha included.
type Octree struct{}

type octNode struct {
	sum      [4]uint64 // a, r, g, b weighted by count
	count    uint64
	children [8]*octNode
	leaf     bool
	path     uint32 // child indices from the root, for stable ordering
}

func (n *octNode) add(c colorspace.ARGB32, count uint64) {
	a, r, g, b := c.Split()
	n.sum[0] += uint64(a) * count
	n.sum[1] += uint64(r) * count
	n.sum[2] += uint64(g) * count
	n.sum[3] += uint64(b) * count
	n.count += count
}

func (n *octNode) mean() colorspace.ARGB32 {
	half := n.count / 2
	ch := func(s uint64) uint8 { return uint8((s + half) / n.count) }
	return colorspace.PackARGB32(ch(n.sum[0]), ch(n.sum[1]), ch(n.sum[2]), ch(n.sum[3]))
}

func octIndex(c colorspace.ARGB32, level int) int {
	shift := uint(7 - level)
	return int((c.R()>>shift)&1)<<2 | int((c.G()>>shift)&1)<<1 | int((c.B()>>shift)&1)
}

// GeneratePalette implements Quantizer.
func (Octree) GeneratePalette(h Histogram, maxColors int) (Palette, error) {
	if err := validate(h, maxColors); err != nil {
		return nil, err
	}
	if p, ok := exact(h, maxColors); ok {
		return p, nil
	}

	root := &octNode{}
	// levels[d] holds the internal nodes at depth d.
	var levels [octreeDepth][]*octNode
	levels[0] = append(levels[0], root)
	leaves := 0

	for _, e := range sortedEntries(h) {
		n := root
		n.add(e.color, e.count)
		for level := 0; level < octreeDepth; level++ {
			i := octIndex(e.color, level)
			child := n.children[i]
			if child == nil {
				child = &octNode{path: n.path<<3 | uint32(i)}
				n.children[i] = child
				if level == octreeDepth-1 {
					child.leaf = true
					leaves++
				} else {
					levels[level+1] = append(levels[level+1], child)
				}
			}
			child.add(e.color, e.count)
			n = child
		}
	}

	// Deepest level first. Sums are aggregated on insertion, so folding a
	// node only drops its children.
	for d := octreeDepth - 1; d >= 0 && leaves > maxColors; d-- {
		nodes := levels[d]
		slices.SortFunc(nodes, func(a, b *octNode) int {
			if c := cmp.Compare(a.count, b.count); c != 0 {
				return c
			}
			return cmp.Compare(a.path, b.path)
		})
		for _, n := range nodes {
			if leaves <= maxColors {
				break
			}
			kids := 0
			for i, c := range n.children {
				if c != nil {
					kids++
					n.children[i] = nil
				}
			}
			n.leaf = true
			leaves -= kids - 1
		}
	}

	var entries []weighted
	var walk func(n *octNode)
	walk = func(n *octNode) {
		if n.leaf {
			entries = append(entries, weighted{n.mean(), n.count})
			return
		}
		for _, c := range n.children {
			if c != nil {
				walk(c)
			}
		}
	}
	walk(root)
	return order(entries), nil
}
