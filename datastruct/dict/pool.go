package dict

import (
	"context"
	"errors"

	pool "github.com/jolestar/go-commons-pool/v2"
)

type entryFactory struct{}

func (f *entryFactory) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	return pool.NewPooledObject(&entry{}), nil
}

func (f *entryFactory) DestroyObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

func (f *entryFactory) ValidateObject(_ context.Context, _ *pool.PooledObject) bool {
	return true
}

func (f *entryFactory) ActivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

// PassivateObject 在 entry 归还时清空引用，避免 pool 中的 entry 继续指向已销毁的 Value
func (f *entryFactory) PassivateObject(_ context.Context, obj *pool.PooledObject) error {
	e, ok := obj.Object.(*entry)
	if !ok {
		return errors.New("type mismatch")
	}
	e.key, e.val, e.next = nil, nil, nil
	return nil
}

// entryPool 负责分配和回收 entry。
// 同一个 entry 被归还两次会得到 pool 的错误，此时直接 panic
type entryPool struct {
	ctx     context.Context
	objects *pool.ObjectPool
}

func newEntryPool(maxIdle int) *entryPool {
	ctx := context.Background()
	cfg := pool.NewDefaultPoolConfig()
	cfg.MaxTotal = -1
	cfg.MaxIdle = maxIdle
	cfg.BlockWhenExhausted = false
	return &entryPool{
		ctx:     ctx,
		objects: pool.NewObjectPool(ctx, &entryFactory{}, cfg),
	}
}

func (p *entryPool) borrow() *entry {
	obj, err := p.objects.BorrowObject(p.ctx)
	if err != nil {
		panic(err)
	}
	return obj.(*entry)
}

func (p *entryPool) release(e *entry) {
	if err := p.objects.ReturnObject(p.ctx, e); err != nil {
		panic(err)
	}
}

// active 返回尚未归还的 entry 数量
func (p *entryPool) active() int {
	return p.objects.GetNumActive()
}

func (p *entryPool) close() {
	p.objects.Close(p.ctx)
}
