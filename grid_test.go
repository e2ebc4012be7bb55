package patternlock

import "testing"

func TestNewGrid_Layout(t *testing.T) {
	g := NewGrid(300)

	if g.Radius() != 30 {
		t.Fatalf("radius = %v, want 30", g.Radius())
	}

	want := [NodeCount]Vec2{
		{60, 60}, {150, 60}, {240, 60},
		{60, 150}, {150, 150}, {240, 150},
		{60, 240}, {150, 240}, {240, 240},
	}
	for i, w := range want {
		n := g.Node(i)
		if n.Index != i {
			t.Errorf("node %d: index %d", i, n.Index)
		}
		if n.Center != w {
			t.Errorf("node %d: center %v, want %v", i, n.Center, w)
		}
		if n.Radius != 30 {
			t.Errorf("node %d: radius %v, want 30", i, n.Radius)
		}
		if n.Active {
			t.Errorf("node %d: should start inactive", i)
		}
	}
}

func TestGrid_HitTest(t *testing.T) {
	g := NewGrid(300)

	tests := []struct {
		name   string
		p      Vec2
		want   int
		wantOK bool
	}{
		{"node 0 center", Vec2{60, 60}, 0, true},
		{"node 4 edge", Vec2{180, 150}, 4, true},
		{"node 8 inside", Vec2{250, 230}, 8, true},
		{"gap between 0 and 1", Vec2{105, 60}, -1, false},
		{"corner of board", Vec2{0, 0}, -1, false},
		{"negative", Vec2{-60, -60}, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.HitTest(tt.p)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("HitTest(%v) = (%d, %v), want (%d, %v)", tt.p, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGrid_CrossNode(t *testing.T) {
	g := NewGrid(300)

	tests := []struct {
		from, to int
		want     int
		wantOK   bool
	}{
		{0, 2, 1, true},
		{2, 0, 1, true},
		{0, 6, 3, true},
		{2, 8, 5, true},
		{6, 8, 7, true},
		{0, 8, 4, true},
		{2, 6, 4, true},
		{8, 0, 4, true},
		{0, 1, -1, false}, // adjacent
		{1, 7, -1, false}, // endpoint is an edge midpoint
		{3, 5, -1, false},
		{0, 5, -1, false}, // knight move
		{0, 0, -1, false},
		{-1, 2, -1, false},
		{0, 9, -1, false},
	}
	for _, tt := range tests {
		got, ok := g.CrossNode(tt.from, tt.to)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CrossNode(%d, %d) = (%d, %v), want (%d, %v)",
				tt.from, tt.to, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsEdgeMidpoint(t *testing.T) {
	want := map[int]bool{1: true, 3: true, 4: true, 5: true, 7: true}
	for i := -1; i <= NodeCount; i++ {
		if got := IsEdgeMidpoint(i); got != want[i] {
			t.Errorf("IsEdgeMidpoint(%d) = %v, want %v", i, got, want[i])
		}
	}
}
