package storage

import (
	"slices"
	"sync"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/ndn"
)

func _() {
	var _ ndn.Store = &MemoryStore{}
}

// MemoryStore keeps packets in a tree of name components.
type MemoryStore struct {
	// root of the store, nil once closed
	root *memoryStoreNode
	// thread safety
	mutex sync.RWMutex
}

type memoryStoreNode struct {
	// children by component key
	children map[string]*memoryStoreNode
	// data wire
	wire []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		root: &memoryStoreNode{},
	}
}

func (s *MemoryStore) String() string {
	return "memory-store"
}

func (s *MemoryStore) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.root = nil
	return nil
}

func (s *MemoryStore) Get(name enc.Name, prefix bool) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.root == nil {
		return nil, ErrClosed
	}

	node := s.root.find(name)
	if node == nil {
		return nil, nil
	}
	if prefix {
		return node.findLast(), nil
	}
	return node.wire, nil
}

func (s *MemoryStore) Put(name enc.Name, wire []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.root == nil {
		return ErrClosed
	}
	if wire == nil {
		wire = []byte{}
	}
	s.root.insert(name, wire)
	return nil
}

func (s *MemoryStore) Remove(name enc.Name) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.root == nil {
		return ErrClosed
	}
	s.root.remove(name, false)
	return nil
}

func (s *MemoryStore) RemovePrefix(prefix enc.Name) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.root == nil {
		return ErrClosed
	}
	if len(prefix) == 0 {
		s.root = &memoryStoreNode{}
		return nil
	}
	s.root.remove(prefix, true)
	return nil
}

func (s *MemoryStore) RemoveFlatRange(prefix enc.Name, first enc.Component, last enc.Component) error {
	if err := checkRange(first, last); err != nil {
		return err
	}
	firstKey, lastKey := compKey(first), compKey(last)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.root == nil {
		return ErrClosed
	}
	pfx := s.root.find(prefix)
	if pfx == nil {
		return nil
	}
	for child := range pfx.children {
		if child >= firstKey && child <= lastKey {
			delete(pfx.children, child)
		}
	}
	return nil
}

// MemSize returns the total size of the stored wires.
func (s *MemoryStore) MemSize() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	size := 0
	if s.root != nil {
		s.root.walk(func(n *memoryStoreNode) { size += len(n.wire) })
	}
	return size
}

func (n *memoryStoreNode) find(name enc.Name) *memoryStoreNode {
	if len(name) == 0 {
		return n
	}
	if n.children == nil {
		return nil
	}
	if child := n.children[compKey(name[0])]; child != nil {
		return child.find(name[1:])
	}
	return nil
}

// findLast returns the wire with the greatest name in this subtree.
func (n *memoryStoreNode) findLast() []byte {
	keys := make([]string, 0, len(n.children))
	for key := range n.children {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for i := len(keys) - 1; i >= 0; i-- {
		if wire := n.children[keys[i]].findLast(); wire != nil {
			return wire
		}
	}
	return n.wire
}

func (n *memoryStoreNode) insert(name enc.Name, wire []byte) {
	if len(name) == 0 {
		n.wire = wire
		return
	}

	if n.children == nil {
		n.children = make(map[string]*memoryStoreNode)
	}

	key := compKey(name[0])
	child := n.children[key]
	if child == nil {
		child = &memoryStoreNode{}
		n.children[key] = child
	}
	child.insert(name[1:], wire)
}

// remove reports whether the parent should prune this node.
func (n *memoryStoreNode) remove(name enc.Name, prefix bool) bool {
	if len(name) == 0 {
		n.wire = nil
		if prefix {
			n.children = nil // prune subtree
		}
		return len(n.children) == 0
	}

	if n.children == nil {
		return false
	}

	key := compKey(name[0])
	if child := n.children[key]; child != nil {
		if child.remove(name[1:], prefix) {
			delete(n.children, key)
		}
	}

	return n.wire == nil && len(n.children) == 0
}

func (n *memoryStoreNode) walk(f func(*memoryStoreNode)) {
	f(n)
	for _, child := range n.children {
		child.walk(f)
	}
}
