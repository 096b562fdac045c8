package deque

import "github.com/delaneyj/toolbelt"

var (
	nodePool      = toolbelt.New(func() *node { return &node{} })
	nodeSlicePool = toolbelt.New(func() []*node { return make([]*node, 0, 16) })
)

func getNode(tag string) *node {
	n := nodePool.Get()
	n.tag = tag
	return n
}

func putNode(n *node) {
	if n == nil {
		return
	}
	*n = node{}
	nodePool.Put(n)
}

func getNodeSlice(n int) []*node {
	if n <= 0 {
		return nil
	}
	s := nodeSlicePool.Get()
	if cap(s) < n {
		return make([]*node, 0, n)
	}
	return s[:0]
}

func putNodeSlice(s []*node) {
	if s == nil {
		return
	}
	for i := range s {
		s[i] = nil
	}
	s = s[:0]
	nodeSlicePool.Put(s)
}
