// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe_test

import (
	"testing"

	"code.hybscloud.com/pipe"
)

func TestBuildSelection(t *testing.T) {
	tests := []struct {
		name  string
		build func() pipe.Pipe[int]
		check func(pipe.Pipe[int]) bool
	}{
		{
			"bounded default → BoundedExplicit",
			func() pipe.Pipe[int] { return pipe.Build[int](pipe.New(8)) },
			func(p pipe.Pipe[int]) bool { _, ok := p.(*pipe.BoundedExplicit[int]); return ok },
		},
		{
			"bounded fair → BoundedExplicit",
			func() pipe.Pipe[int] { return pipe.Build[int](pipe.New(8).Fair()) },
			func(p pipe.Pipe[int]) bool { _, ok := p.(*pipe.BoundedExplicit[int]); return ok },
		},
		{
			"bounded monitor → BoundedMonitor",
			func() pipe.Pipe[int] { return pipe.Build[int](pipe.New(8).Monitor()) },
			func(p pipe.Pipe[int]) bool { _, ok := p.(*pipe.BoundedMonitor[int]); return ok },
		},
		{
			"unbounded default → UnboundedExplicit",
			func() pipe.Pipe[int] { return pipe.Build[int](pipe.NewUnbounded()) },
			func(p pipe.Pipe[int]) bool { _, ok := p.(*pipe.UnboundedExplicit[int]); return ok },
		},
		{
			"unbounded monitor → UnboundedMonitor",
			func() pipe.Pipe[int] { return pipe.Build[int](pipe.NewUnbounded().Monitor().Fair()) },
			func(p pipe.Pipe[int]) bool { _, ok := p.(*pipe.UnboundedMonitor[int]); return ok },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.build()
			if !tt.check(p) {
				t.Fatalf("Build: got %T", p)
			}
		})
	}
}

func TestBuildBounded(t *testing.T) {
	p := pipe.BuildBounded[string](pipe.New(3).Monitor())
	if p.Cap() != 3 {
		t.Fatalf("Cap: got %d, want 3", p.Cap())
	}
	q := pipe.BuildBounded[string](pipe.New(5).Fair())
	if q.Cap() != 5 {
		t.Fatalf("Cap: got %d, want 5", q.Cap())
	}
	if !pipe.New(1).Bounded() || pipe.NewUnbounded().Bounded() {
		t.Fatal("Bounded: wrong classification")
	}
}

func TestBuildBoundedPanicsOnUnbounded(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("BuildBounded(NewUnbounded()): expected panic")
		}
	}()
	pipe.BuildBounded[int](pipe.NewUnbounded())
}
