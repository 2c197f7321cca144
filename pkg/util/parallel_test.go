package util

import (
	"context"
	"errors"
	"testing"
)

func TestParallelMap_Order(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	out, err := ParallelMap(context.Background(), in, 3, func(_ context.Context, n int) (int, error) {
		return n * 10, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range out {
		if v != in[i]*10 {
			t.Errorf("out[%d] = %d, want %d", i, v, in[i]*10)
		}
	}
}

func TestParallelMap_Error(t *testing.T) {
	boom := errors.New("boom")
	_, err := ParallelMap(context.Background(), []int{1, 2, 3}, 2, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestParallelMap_Empty(t *testing.T) {
	out, err := ParallelMap(context.Background(), nil, 4, func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	if err != nil || len(out) != 0 {
		t.Fatalf("got %v, %v; want empty, nil", out, err)
	}
}
