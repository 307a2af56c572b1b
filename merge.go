package xidx

import (
	"github.com/signadot/xidx-format/go-xidx/debug"
	"github.com/signadot/xidx-format/go-xidx/xnode"
)

// itemMerge holds the result of reconciling a list of data items with the
// DataItem children of an element.  Nothing is written to the existing items
// until commit.
type itemMerge struct {
	owner   Node
	targets []*DataItem
	staged  []*DataItem
}

// mergeItems reconciles items with the DataItem children of n by position.
// The i-th child is decoded for items[i] when there is one, so that existing
// pointers stay valid after commit, and for a new item otherwise.  Items
// beyond the number of children are dropped.
func mergeItems(owner Node, items []*DataItem, n *xnode.Node) (*itemMerge, error) {
	m := &itemMerge{owner: owner}
	i := 0
	for c := range n.Named(dataItemTag) {
		var d *DataItem
		if i < len(items) {
			d = items[i]
		} else {
			d = NewDataItem("")
		}
		v, err := d.decode(c)
		if err != nil {
			return nil, err
		}
		m.targets = append(m.targets, d)
		m.staged = append(m.staged, v)
		i++
	}
	if debug.Merge() {
		debug.Logf("merged %d children of %s into %d placeholders, dropped %d\n",
			i, n.Path(), len(items), max(len(items)-i, 0))
	}
	return m, nil
}

func (m *itemMerge) len() int {
	if m == nil {
		return 0
	}
	return len(m.targets)
}

// decoded returns the decoded state of the i-th item.
func (m *itemMerge) decoded(i int) *DataItem { return m.staged[i] }

// drop removes the first k items from the merge.
func (m *itemMerge) drop(k int) {
	m.targets = m.targets[k:]
	m.staged = m.staged[k:]
}

// commit writes the decoded state into the target items and returns them.
func (m *itemMerge) commit() []*DataItem {
	if m.len() == 0 {
		return nil
	}
	for i, d := range m.targets {
		d.SetParent(m.owner)
		d.assign(m.staged[i])
	}
	return m.targets
}
