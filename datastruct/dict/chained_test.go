package dict

import (
	"strings"
	"testing"

	"kvmap/datastruct/vtype"
	"kvmap/lib/utils"
)

func text(s string) *vtype.Value {
	return vtype.MakeTextString(s)
}

func integer(i int32) *vtype.Value {
	return vtype.MakeInteger(i)
}

func countEntries(m *ChainedHashMap) int {
	n := 0
	m.ForEach(func(_, _ *vtype.Value) bool {
		n++
		return true
	})
	return n
}

func TestSetAndGet(t *testing.T) {
	m := NewChainedHashMap(DefaultCapacity)
	defer m.Free()
	m.Set(text("alpha"), integer(1))
	m.Set(text("beta"), integer(2))
	m.Set(integer(42), text("answer"))
	if m.Size() != 3 {
		t.Errorf("expected size 3, got %d", m.Size())
	}
	val, ok := m.Get(text("beta"))
	if !ok || !val.Equals(integer(2)) {
		t.Errorf("unexpected value for beta: %v", val)
	}
	val, ok = m.Get(integer(42))
	if !ok || val.String() != "answer" {
		t.Errorf("unexpected value for 42: %v", val)
	}
	if _, ok = m.Get(text("42")); ok {
		t.Error("Text \"42\" found Integer 42")
	}
	if _, ok = m.Get(text("missing")); ok {
		t.Error("found a missing key")
	}
}

func TestOverwrite(t *testing.T) {
	m := NewChainedHashMap(DefaultCapacity)
	defer m.Free()
	m.Set(text("k"), integer(10))
	old, _ := m.Get(text("k"))
	dupKey := text("k")
	newVal := integer(20)
	m.Set(dupKey, newVal)
	if m.Size() != 1 {
		t.Errorf("expected size 1, got %d", m.Size())
	}
	if dupKey.Alive() {
		t.Error("duplicate key was not destroyed")
	}
	if old.Alive() {
		t.Error("replaced value was not destroyed")
	}
	val, ok := m.Get(text("k"))
	if !ok || val != newVal || !val.Equals(integer(20)) {
		t.Errorf("unexpected value %v", val)
	}
	// 重复设置同一个 val 不应销毁它
	m.Set(text("k"), newVal)
	if !newVal.Alive() {
		t.Error("value destroyed when set again under the same key")
	}
}

func TestRemove(t *testing.T) {
	m := NewChainedHashMap(DefaultCapacity)
	defer m.Free()
	m.Set(text("stay"), integer(0))
	sizeBefore := m.Size()
	key, val := text("x"), integer(1)
	m.Set(key, val)
	lookup := text("x")
	if !m.Remove(lookup) {
		t.Error("remove of existing key returned false")
	}
	if !lookup.Alive() {
		t.Error("lookup key was consumed by remove")
	}
	if key.Alive() || val.Alive() {
		t.Error("stored key or value not destroyed on remove")
	}
	if _, ok := m.Get(lookup); ok {
		t.Error("key still present after remove")
	}
	if m.Size() != sizeBefore {
		t.Errorf("expected size %d, got %d", sizeBefore, m.Size())
	}
	if m.Remove(lookup) {
		t.Error("second remove returned true")
	}
	if m.Size() != sizeBefore {
		t.Error("failed remove changed size")
	}
}

func TestEmptyText(t *testing.T) {
	m := NewChainedHashMap(DefaultCapacity)
	defer m.Free()
	key := text("")
	if key.Hash() != 5381 {
		t.Errorf("unexpected hash %d", key.Hash())
	}
	m.Set(key, text(""))
	val, ok := m.Get(text(""))
	if !ok || val.Len() != 0 {
		t.Error("empty text not retrievable")
	}
	if e := m.buckets[5381%DefaultCapacity]; e == nil || e.key != key {
		t.Error("empty text stored in the wrong bucket")
	}
}

func TestBucketPlacement(t *testing.T) {
	m := NewChainedHashMap(DefaultCapacity)
	defer m.Free()
	extremes := []int32{2147483647, -2147483647, 0}
	indexes := make(map[uint32]bool)
	for _, i := range extremes {
		index := m.codeIndex(integer(i).Hash())
		indexes[index] = true
		m.Set(integer(i), integer(i))
		if m.buckets[index] == nil || !m.buckets[index].key.Equals(integer(i)) {
			t.Errorf("%d is not stored in bucket %d", i, index)
		}
	}
	if len(indexes) < 2 {
		t.Errorf("extreme integers share buckets: %v", indexes)
	}
}

func TestCollision(t *testing.T) {
	m := NewChainedHashMap(DefaultCapacity)
	defer m.Free()
	m.Set(integer(0), text("a"))
	m.Set(integer(1024), text("b"))
	m.Set(integer(2048), text("c"))
	if m.codeIndex(integer(0).Hash()) != m.codeIndex(integer(1024).Hash()) {
		t.Fatal("0 and 1024 are expected to collide")
	}
	chain := 0
	for e := m.buckets[0]; e != nil; e = e.next {
		chain++
	}
	if chain != 3 {
		t.Errorf("expected a chain of 3, got %d", chain)
	}
	for _, c := range []struct {
		key int32
		val string
	}{{0, "a"}, {1024, "b"}, {2048, "c"}} {
		val, ok := m.Get(integer(c.key))
		if !ok || val.String() != c.val {
			t.Errorf("get %d: expected %s, got %v", c.key, c.val, val)
		}
	}
	if !m.Remove(integer(1024)) {
		t.Error("failed to remove middle of chain")
	}
	if _, ok := m.Get(integer(1024)); ok {
		t.Error("1024 still present")
	}
	for _, key := range []int32{0, 2048} {
		if _, ok := m.Get(integer(key)); !ok {
			t.Errorf("%d lost after removing its neighbour", key)
		}
	}
	if !m.Remove(integer(2048)) || !m.Remove(integer(0)) {
		t.Error("failed to remove remaining chain")
	}
	if m.Size() != 0 || m.buckets[0] != nil {
		t.Error("bucket not empty after removing every key")
	}
}

func TestSizeAccounting(t *testing.T) {
	m := NewChainedHashMap(16)
	defer m.Free()
	keys := make([]string, 0, 200)
	seen := make(map[string]bool)
	for len(keys) < 200 {
		k := utils.AlnumString(6)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
		m.Set(text(k), text(strings.ToLower(k)))
	}
	removed := 0
	for i, k := range keys {
		if i%3 == 0 && m.Remove(text(k)) {
			removed++
		}
	}
	if m.Size() != len(keys)-removed {
		t.Errorf("expected size %d, got %d", len(keys)-removed, m.Size())
	}
	if countEntries(m) != m.Size() {
		t.Error("reachable entries differ from size")
	}
	if m.entries.active() != m.Size() {
		t.Errorf("expected %d borrowed entries, got %d", m.Size(), m.entries.active())
	}
	for i, k := range keys {
		_, ok := m.Get(text(k))
		if ok == (i%3 == 0) {
			t.Errorf("unexpected presence of %s: %v", k, ok)
		}
	}
}

func TestFree(t *testing.T) {
	m := NewChainedHashMap(8)
	var owned []*vtype.Value
	for i := int32(0); i < 20; i++ {
		k, v := integer(i), text(utils.AlnumString(4))
		owned = append(owned, k, v)
		m.Set(k, v)
	}
	m.Free()
	for _, v := range owned {
		if v.Alive() {
			t.Errorf("%p survived Free", v)
		}
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a freed map")
		}
	}()
	m.Size()
}

func TestInvalidCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero capacity")
		}
	}()
	NewChainedHashMap(0)
}

func TestDoubleRelease(t *testing.T) {
	p := newEntryPool(4)
	defer p.close()
	e := p.borrow()
	p.release(e)
	defer func() {
		if recover() == nil {
			t.Error("expected panic when releasing an entry twice")
		}
	}()
	p.release(e)
}
