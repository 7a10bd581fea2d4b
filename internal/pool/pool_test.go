package pool

import (
	"sync"
	"testing"
)

func TestPoolGetPut(t *testing.T) {
	p := New(func() *[]byte {
		buf := make([]byte, 0, 64)
		return &buf
	})

	obj := p.Get()
	if obj == nil {
		t.Fatal("Get returned nil")
	}
	p.Put(obj)
}

func TestPoolResetRunsOnGet(t *testing.T) {
	p := NewWithReset(
		func() *[]int { s := make([]int, 4); return &s },
		func(s *[]int) {
			for i := range *s {
				(*s)[i] = 0
			}
		},
	)

	obj := p.Get()
	(*obj)[0] = 42
	p.Put(obj)

	got := p.Get()
	if (*got)[0] != 0 {
		t.Errorf("reused object not reset: got %d", (*got)[0])
	}
}

func TestPoolPutNil(t *testing.T) {
	p := New(func() *int { v := 0; return &v })
	p.Put(nil) // must not panic
}

func TestPoolConcurrent(t *testing.T) {
	p := NewWithReset(
		func() *[]byte { buf := make([]byte, 0, 32); return &buf },
		func(buf *[]byte) { *buf = (*buf)[:0] },
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				obj := p.Get()
				*obj = append(*obj, byte(j))
				p.Put(obj)
			}
		}()
	}
	wg.Wait()
}
