package compare

import "github.com/kvindex/bptree/bptree"

// TreeIndex adapts a bptree.Tree[int64, []byte] to the Index interface so
// bptreebench can drive it through the same harness as PebbleIndex.
type TreeIndex struct {
	tree *bptree.Tree[int64, []byte]
}

// NewTreeIndex wraps a fresh bptree.Tree of the given degree.
func NewTreeIndex(degree int) (*TreeIndex, error) {
	tree, err := bptree.New[int64, []byte](degree)
	if err != nil {
		return nil, err
	}
	return &TreeIndex{tree: tree}, nil
}

func (t *TreeIndex) Insert(key int64, value []byte) error {
	return t.tree.Insert(key, value)
}

func (t *TreeIndex) Get(key int64) ([]byte, error) {
	v, ok := t.tree.Search(key)
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (t *TreeIndex) Delete(key int64) error {
	t.tree.Delete(key)
	return nil
}

// Range returns the values in [start, end]. bptree.Tree's RangeQuery
// contract (spec'd to return values only, not key/value pairs) means the
// returned iterator cannot report real keys; Key always reads 0. Nothing
// in the benchmark workloads calls it — Range is only ever drained with
// Next.
func (t *TreeIndex) Range(start, end int64) (Iterator, error) {
	return &treeIndexIterator{values: t.tree.RangeQuery(start, end), idx: -1}, nil
}

func (t *TreeIndex) Close() error { return nil }

type treeIndexIterator struct {
	values [][]byte
	idx    int
}

func (it *treeIndexIterator) Next() bool {
	it.idx++
	return it.idx < len(it.values)
}

func (it *treeIndexIterator) Key() int64    { return 0 }
func (it *treeIndexIterator) Value() []byte { return it.values[it.idx] }
func (it *treeIndexIterator) Error() error  { return nil }
func (it *treeIndexIterator) Close() error  { return nil }
