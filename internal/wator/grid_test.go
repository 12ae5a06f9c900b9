package wator

import "testing"

func TestNeighborsWrapAround(t *testing.T) {
	g := NewGrid(5, 7)

	got := g.Neighbors(P(0, 0))
	want := [4]Pos{P(1, 0), P(0, 1), P(4, 0), P(0, 6)}
	if got != want {
		t.Errorf("Neighbors(0,0) = %v, want %v", got, want)
	}

	got = g.Neighbors(P(4, 6))
	want = [4]Pos{P(0, 6), P(4, 0), P(3, 6), P(4, 5)}
	if got != want {
		t.Errorf("Neighbors(4,6) = %v, want %v", got, want)
	}
}

func TestNeighborsDistinctAndOrthogonal(t *testing.T) {
	dims := []struct{ rows, cols int }{{3, 3}, {4, 5}, {10, 10}, {7, 3}}

	for _, d := range dims {
		g := NewGrid(d.rows, d.cols)
		for row := 0; row < d.rows; row++ {
			for col := 0; col < d.cols; col++ {
				p := P(row, col)
				seen := make(map[Pos]bool)
				for _, n := range g.Neighbors(p) {
					if seen[n] {
						t.Fatalf("%dx%d: duplicate neighbor %v of %v", d.rows, d.cols, n, p)
					}
					seen[n] = true

					dr := mod(n.Row-row, d.rows)
					dc := mod(n.Col-col, d.cols)
					vertical := dc == 0 && (dr == 1 || dr == d.rows-1)
					horizontal := dr == 0 && (dc == 1 || dc == d.cols-1)
					if !vertical && !horizontal {
						t.Fatalf("%dx%d: %v is not orthogonally adjacent to %v", d.rows, d.cols, n, p)
					}
				}
				if len(seen) != 4 {
					t.Fatalf("%dx%d: expected 4 neighbors of %v, got %d", d.rows, d.cols, p, len(seen))
				}
			}
		}
	}
}

func TestNeighborIndicesMatchNeighbors(t *testing.T) {
	g := NewGrid(4, 6)
	for idx := range g.Cells {
		byPos := g.Neighbors(g.pos(idx))
		byIdx := g.neighborIndices(idx)
		for i := range byPos {
			if g.index(byPos[i]) != byIdx[i] {
				t.Fatalf("cell %d neighbor %d: index %d, pos %v", idx, i, byIdx[i], byPos[i])
			}
		}
	}
}

func TestGridGetSetWraps(t *testing.T) {
	g := NewGrid(3, 4)

	g.Set(P(-1, -1), Fish(2))
	if got := g.Get(P(2, 3)); got != Fish(2) {
		t.Errorf("Get(2,3) = %v, want Fish(2)", got)
	}
	if got := g.Get(P(5, 7)); got != Fish(2) {
		t.Errorf("Get(5,7) = %v, want Fish(2)", got)
	}
}

func TestGridCounts(t *testing.T) {
	g := NewGrid(3, 3)
	if !g.IsExtinct() {
		t.Error("empty grid should be extinct")
	}
	if g.IsFishSaturated() {
		t.Error("empty grid should not be saturated")
	}

	g.Set(P(0, 0), Fish(1))
	g.Set(P(1, 1), Fish(3))
	g.Set(P(2, 2), Shark(5))

	if g.FishCount() != 2 {
		t.Errorf("FishCount() = %d, want 2", g.FishCount())
	}
	if g.SharkCount() != 1 {
		t.Errorf("SharkCount() = %d, want 1", g.SharkCount())
	}
	if g.Occupied() != 3 {
		t.Errorf("Occupied() = %d, want 3", g.Occupied())
	}
	if g.IsExtinct() {
		t.Error("populated grid should not be extinct")
	}

	sharks := g.Positions(KindShark)
	if len(sharks) != 1 || sharks[0] != P(2, 2) {
		t.Errorf("Positions(shark) = %v, want [(2,2)]", sharks)
	}
}

func TestGridFishSaturated(t *testing.T) {
	g := NewGrid(2, 3)
	for i := range g.Cells {
		g.Cells[i] = Fish(1)
	}
	if !g.IsFishSaturated() {
		t.Error("grid full of fish should be saturated")
	}

	g.Set(P(1, 2), Shark(3))
	if g.IsFishSaturated() {
		t.Error("grid with a shark should not be saturated")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(P(0, 1), Shark(4))

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone should equal original")
	}

	c.Set(P(0, 1), Empty())
	if g.Get(P(0, 1)) != Shark(4) {
		t.Error("modifying clone changed original")
	}
	if c.Equal(g) {
		t.Error("grids should differ after modification")
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Empty(), "Empty"},
		{Fish(3), "Fish(3)"},
		{Shark(7), "Shark(7)"},
	}
	for _, tc := range tests {
		if got := tc.cell.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
