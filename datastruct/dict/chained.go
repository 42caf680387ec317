package dict

import "kvmap/datastruct/vtype"

// DefaultCapacity 是默认的 bucket 数量
const DefaultCapacity = 1024

type entry struct {
	key  *vtype.Value
	val  *vtype.Value
	next *entry
}

// ChainedHashMap 是容量固定的拉链法哈希表，不会扩容。
// key 位于下标为 hash(key) mod capacity 的 bucket 中
type ChainedHashMap struct {
	buckets []*entry
	size    int
	entries *entryPool
}

func NewChainedHashMap(capacity int) *ChainedHashMap {
	if capacity <= 0 {
		panic("Non-positive capacity")
	}
	return &ChainedHashMap{
		buckets: make([]*entry, capacity),
		size:    0,
		entries: newEntryPool(capacity),
	}
}

func (m *ChainedHashMap) Size() int {
	m.check()
	return m.size
}

func (m *ChainedHashMap) Capacity() int {
	m.check()
	return len(m.buckets)
}

// Set 接管 key 和 val 的所有权。
// 若 key 已存在，则销毁旧的 val 并保留原有的 key，传入的 key 随即被销毁
func (m *ChainedHashMap) Set(key, val *vtype.Value) {
	m.check()
	if key == nil || val == nil {
		panic("Nil key or value")
	}
	index := m.codeIndex(key.Hash())
	for e := m.buckets[index]; e != nil; e = e.next {
		if !e.key.Equals(key) {
			continue
		}
		if old := e.val; old != val {
			e.val = val
			old.Destroy()
		}
		if key != e.key {
			key.Destroy()
		}
		return
	}
	e := m.entries.borrow()
	e.key, e.val = key, val
	e.next = m.buckets[index]
	m.buckets[index] = e
	m.size++
}

// Get 返回的 val 仍归 map 所有，在下一次修改 map 之前有效
func (m *ChainedHashMap) Get(key *vtype.Value) (val *vtype.Value, ok bool) {
	m.check()
	if e := m.find(key); e != nil {
		return e.val, true
	}
	return nil, false
}

func (m *ChainedHashMap) Remove(key *vtype.Value) (ok bool) {
	m.check()
	index := m.codeIndex(key.Hash())
	var prev *entry
	for e := m.buckets[index]; e != nil; prev, e = e, e.next {
		if !e.key.Equals(key) {
			continue
		}
		if prev == nil {
			m.buckets[index] = e.next
		} else {
			prev.next = e.next
		}
		m.release(e)
		m.size--
		return true
	}
	return false
}

func (m *ChainedHashMap) ForEach(c Consumer) {
	m.check()
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if !c(e.key, e.val) {
				return
			}
		}
	}
}

// Free 销毁所有 entry 以及其中的 key 和 val，之后 map 不可再使用
func (m *ChainedHashMap) Free() {
	m.check()
	for i, head := range m.buckets {
		e := head
		for e != nil {
			next := e.next
			m.release(e)
			e = next
		}
		m.buckets[i] = nil
	}
	m.entries.close()
	m.buckets = nil
	m.size = 0
}

func (m *ChainedHashMap) find(key *vtype.Value) *entry {
	for e := m.buckets[m.codeIndex(key.Hash())]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e
		}
	}
	return nil
}

// release 销毁 entry 持有的 key 和 val，并把 entry 归还给 pool
func (m *ChainedHashMap) release(e *entry) {
	e.key.Destroy()
	e.val.Destroy()
	m.entries.release(e)
}

// codeIndex 根据哈希函数的结果，得到相应 bucket 的下标
func (m *ChainedHashMap) codeIndex(code uint32) uint32 {
	return code % uint32(len(m.buckets))
}

func (m *ChainedHashMap) check() {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	if m.buckets == nil {
		panic("ChainedHashMap already freed")
	}
}
