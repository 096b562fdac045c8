// Package deque is a double-ended queue of optionally tagged, owned Values.
package deque

import (
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/moneta-go/value"
	"github.com/moneta-go/value/internal/textbuf"
)

type node struct {
	tag  string
	val  *value.Value
	prev *node
	next *node
}

// Deque owns every Value it holds. It is not safe for concurrent use unless
// created with WithThreadSafe.
type Deque struct {
	mu         sync.RWMutex
	threadSafe bool
	size       int
	head       *node
	tail       *node
}

// Option configures a Deque.
type Option func(*Deque)

// WithThreadSafe guards every operation except iteration with a RWMutex.
func WithThreadSafe() Option {
	return func(d *Deque) {
		d.threadSafe = true
	}
}

// New returns an empty deque.
func New(opts ...Option) *Deque {
	d := &Deque{
		head: &node{},
		tail: &node{},
	}
	d.head.next = d.tail
	d.tail.prev = d.head
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Deque) lock() {
	if d.threadSafe {
		d.mu.Lock()
	}
}

func (d *Deque) unlock() {
	if d.threadSafe {
		d.mu.Unlock()
	}
}

func (d *Deque) rlock() {
	if d.threadSafe {
		d.mu.RLock()
	}
}

func (d *Deque) runlock() {
	if d.threadSafe {
		d.mu.RUnlock()
	}
}

// Add creates a Value of type t from data and appends it at the tail.
func (d *Deque) Add(tag string, t value.Type, data any) error {
	v, err := value.Create(t, data)
	if err != nil {
		return err
	}
	d.AddValue(tag, v)
	return nil
}

// AddValue appends v at the tail and takes ownership of it.
func (d *Deque) AddValue(tag string, v *value.Value) {
	d.lock()
	defer d.unlock()
	n := getNode(tag)
	n.val = v
	d.link(d.tail.prev, n)
}

// AddFirst creates a Value of type t from data and prepends it at the head.
func (d *Deque) AddFirst(tag string, t value.Type, data any) error {
	v, err := value.Create(t, data)
	if err != nil {
		return err
	}
	d.lock()
	defer d.unlock()
	n := getNode(tag)
	n.val = v
	d.link(d.head, n)
	return nil
}

// link inserts n after prev.
func (d *Deque) link(prev, n *node) {
	n.prev = prev
	n.next = prev.next
	prev.next.prev = n
	prev.next = n
	d.size++
}

// unlink detaches n and returns its tag and Value.
func (d *Deque) unlink(n *node) (string, *value.Value) {
	n.prev.next = n.next
	n.next.prev = n.prev
	tag, v := n.tag, n.val
	putNode(n)
	d.size--
	return tag, v
}

// Poll removes the head entry. Ownership of the Value moves to the caller.
func (d *Deque) Poll() (string, *value.Value, bool) {
	d.lock()
	defer d.unlock()
	if d.size == 0 {
		return "", nil, false
	}
	tag, v := d.unlink(d.head.next)
	return tag, v, true
}

// PollLast removes the tail entry. Ownership of the Value moves to the caller.
func (d *Deque) PollLast() (string, *value.Value, bool) {
	d.lock()
	defer d.unlock()
	if d.size == 0 {
		return "", nil, false
	}
	tag, v := d.unlink(d.tail.prev)
	return tag, v, true
}

// Peek returns the head entry without removing it.
func (d *Deque) Peek() (string, *value.Value, bool) {
	d.rlock()
	defer d.runlock()
	if d.size == 0 {
		return "", nil, false
	}
	return d.head.next.tag, d.head.next.val, true
}

// PeekLast returns the tail entry without removing it.
func (d *Deque) PeekLast() (string, *value.Value, bool) {
	d.rlock()
	defer d.runlock()
	if d.size == 0 {
		return "", nil, false
	}
	return d.tail.prev.tag, d.tail.prev.val, true
}

// Get returns the raw data of the first entry tagged tag.
func (d *Deque) Get(tag string) (any, bool) {
	d.rlock()
	defer d.runlock()
	for n := d.head.next; n != d.tail; n = n.next {
		if n.tag == tag {
			return n.val.Data(), true
		}
	}
	return nil, false
}

// Remove destroys every entry tagged tag and returns how many were removed.
func (d *Deque) Remove(tag string) (int, error) {
	d.lock()
	defer d.unlock()
	var (
		removed int
		err     error
	)
	for n := d.head.next; n != d.tail; {
		next := n.next
		if n.tag == tag {
			_, v := d.unlink(n)
			err = multierr.Append(err, v.Destroy())
			removed++
		}
		n = next
	}
	return removed, err
}

// Size returns the number of entries.
func (d *Deque) Size() int {
	d.rlock()
	defer d.runlock()
	return d.size
}

// Empty reports whether the deque has no entries.
func (d *Deque) Empty() bool {
	return d.Size() == 0
}

// Sort orders entries by tag. Entries with equal tags keep their order.
func (d *Deque) Sort() {
	d.lock()
	defer d.unlock()
	if d.size < 2 {
		return
	}
	nodes := getNodeSlice(d.size)
	for n := d.head.next; n != d.tail; n = n.next {
		nodes = append(nodes, n)
	}
	defer putNodeSlice(nodes)
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].tag < nodes[j].tag
	})
	prev := d.head
	for _, n := range nodes {
		prev.next = n
		n.prev = prev
		prev = n
	}
	prev.next = d.tail
	d.tail.prev = prev
}

// Destroy destroys every Value and empties the deque.
func (d *Deque) Destroy() error {
	if d == nil {
		return nil
	}
	d.lock()
	defer d.unlock()
	var err error
	for d.size > 0 {
		_, v := d.unlink(d.head.next)
		err = multierr.Append(err, v.Destroy())
	}
	return err
}

// ToString renders the deque as a bracket block, one item per line. Tagged
// items are labelled "tag: ".
func (d *Deque) ToString(tag string, indent int) string {
	d.rlock()
	defer d.runlock()
	buf := textbuf.Indent(nil, tag, indent)
	if d.size == 0 {
		return textbuf.String(textbuf.Append(buf, "[]"))
	}
	buf = textbuf.Append(buf, "[\n")
	for n := d.head.next; n != d.tail; n = n.next {
		label := ""
		if n.tag != "" {
			label = n.tag + ": "
		}
		buf = textbuf.Append(buf, n.val.ToString(label, indent+textbuf.Step))
		if n.next != d.tail {
			buf = textbuf.Append(buf, ",")
		}
		buf = textbuf.Append(buf, "\n")
	}
	buf = textbuf.Indent(buf, "", indent)
	return textbuf.String(textbuf.Append(buf, "]"))
}
