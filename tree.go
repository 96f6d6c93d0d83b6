package tedjoin

// RawNode is the tree representation produced by the parser: a plain,
// pointer-based, ordered tree with no auxiliary indexing. It is consumed by
// IndexTree and otherwise only by the unparser.
type RawNode struct {
	Label    string
	Children []*RawNode
}

// LabelID identifies an interned label. See LabelDict.
type LabelID int32

// TreeIndex is the flattened, arena-style representation every algorithmic
// component in this package operates on. Nodes are addressed by their
// 1-based postorder position; index 0 is an unused placeholder in every
// array so that postorder ids can be used directly as indices.
type TreeIndex struct {
	// Size is the number of nodes. Size == 0 denotes the empty tree.
	Size int

	// LLD[v] is the postorder id of the leftmost leaf descendant of v.
	LLD []int

	// KeyRoots lists, in ascending order, every node that is either the
	// root or has a left sibling. It always ends with Size (the root).
	KeyRoots []int

	// LabelID[v] is the interned label of node v.
	LabelID []LabelID

	// Children[v] holds the postorder ids of v's direct children, in
	// left-to-right order. Empty for leaves.
	Children [][]int
}

// IsAncestor reports whether u is an ancestor of v, or v itself, using the
// O(1) leftmost-leaf-descendant range test: u is an ancestor-or-self of v
// iff LLD[u] <= v <= u.
func (idx *TreeIndex) IsAncestor(u, v int) bool {
	return idx.LLD[u] <= v && v <= u
}

// indexFrame tracks, for one node being visited, the postorder ids of the
// children discovered so far. Used by IndexTree's explicit traversal stack
// in place of the recursive out-parameter style of the reference
// implementation this package's algorithms are drawn from.
type indexFrame struct {
	node       *RawNode
	childIdx   int
	childPosts []int
}

// IndexTree performs one iterative postorder traversal of root, assigning
// 1-based postorder ids in left-to-right, children-before-parent order, and
// computing LLD, KeyRoots, and Children in the same pass. A nil root indexes
// to the empty tree (Size == 0, all arrays empty).
func IndexTree(root *RawNode, dict *LabelDict) *TreeIndex {
	if root == nil {
		return &TreeIndex{
			LLD:      []int{0},
			KeyRoots: nil,
			LabelID:  []LabelID{0},
			Children: [][]int{nil},
		}
	}

	n := countNodes(root)
	idx := &TreeIndex{
		Size:     n,
		LLD:      make([]int, n+1),
		LabelID:  make([]LabelID, n+1),
		Children: make([][]int, n+1),
	}

	stack := []*indexFrame{{node: root}}
	post := 0

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.childIdx < len(top.node.Children) {
			child := top.node.Children[top.childIdx]
			top.childIdx++
			stack = append(stack, &indexFrame{node: child})
			continue
		}

		// All children of top have been assigned postorder ids; assign
		// top's own id and fold it into its parent frame.
		post++
		idx.LabelID[post] = dict.Intern(top.node.Label)
		idx.Children[post] = top.childPosts

		if len(top.childPosts) == 0 {
			idx.LLD[post] = post
		} else {
			idx.LLD[post] = idx.LLD[top.childPosts[0]]
			for _, c := range top.childPosts[1:] {
				idx.KeyRoots = append(idx.KeyRoots, c)
			}
		}

		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.childPosts = append(parent.childPosts, post)
		}
	}

	idx.KeyRoots = append(idx.KeyRoots, n)
	sortInts(idx.KeyRoots)

	return idx
}

func countNodes(n *RawNode) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.Children {
		count += countNodes(c)
	}
	return count
}

// sortInts sorts xs ascending in place. The traversal above appends a
// node's non-first children to KeyRoots only when the node itself
// finishes, which can come after keyroots deeper inside those children, so
// KeyRoots is mostly but not always ascending; insertion sort is cheap on
// such input and avoids pulling in sort.Ints for one call site.
func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
