package deque

import "github.com/moneta-go/value"

// Iterator walks a deque from head to tail. It does not lock; the caller
// must not modify the deque through other means while iterating.
type Iterator struct {
	d   *Deque
	cur *node
	// Tag and Value describe the current entry after a successful Next.
	Tag   string
	Value *value.Value
}

// Iterator returns an iterator positioned before the head.
func (d *Deque) Iterator() *Iterator {
	return &Iterator{d: d, cur: d.head}
}

// Next advances to the next entry and reports whether there was one.
func (it *Iterator) Next() bool {
	if it.cur == nil || it.cur.next == nil || it.cur.next == it.d.tail {
		it.Tag, it.Value = "", nil
		return false
	}
	it.cur = it.cur.next
	it.Tag, it.Value = it.cur.tag, it.cur.val
	return true
}

// Remove destroys the current entry. The next call to Next continues with
// the entry that followed it.
func (it *Iterator) Remove() error {
	if it.cur == nil || it.cur == it.d.head || it.Value == nil {
		return nil
	}
	prev := it.cur.prev
	_, v := it.d.unlink(it.cur)
	it.cur = prev
	it.Tag, it.Value = "", nil
	return v.Destroy()
}
