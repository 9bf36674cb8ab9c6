package geom

import "testing"

func TestLocationOffset(t *testing.T) {
	loc := NewLocation(100, 200)

	tests := []struct {
		name string
		got  Location
		want Location
	}{
		{name: "offset", got: loc.Offset(-10, 5), want: Location{X: 90, Y: 205}},
		{name: "above", got: loc.Above(50), want: Location{X: 100, Y: 150}},
		{name: "below", got: loc.Below(50), want: Location{X: 100, Y: 250}},
		{name: "left", got: loc.Left(30), want: Location{X: 70, Y: 200}},
		{name: "right", got: loc.Right(30), want: Location{X: 130, Y: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	// 原始点不应被修改
	if loc.X != 100 || loc.Y != 200 {
		t.Errorf("Location 被意外修改: %v", loc)
	}
}

func TestRegionCorners(t *testing.T) {
	r := NewRegion(10, 20, 100, 50)

	if got := r.Center(); got != (Location{X: 60, Y: 45}) {
		t.Errorf("Center() = %v", got)
	}
	if got := r.TopLeft(); got != (Location{X: 10, Y: 20}) {
		t.Errorf("TopLeft() = %v", got)
	}
	if got := r.TopRight(); got != (Location{X: 110, Y: 20}) {
		t.Errorf("TopRight() = %v", got)
	}
	if got := r.BottomLeft(); got != (Location{X: 10, Y: 70}) {
		t.Errorf("BottomLeft() = %v", got)
	}
	if got := r.BottomRight(); got != (Location{X: 110, Y: 70}) {
		t.Errorf("BottomRight() = %v", got)
	}
}

func TestRegionDerivations(t *testing.T) {
	r := NewRegion(100, 100, 200, 100)

	tests := []struct {
		name string
		got  Region
		want Region
	}{
		{name: "grow", got: r.Grow(10), want: Region{X: 90, Y: 90, W: 220, H: 120}},
		{name: "nearby equals grow", got: r.Nearby(50), want: r.Grow(50)},
		{name: "above with height", got: r.Above(40), want: Region{X: 100, Y: 60, W: 200, H: 40}},
		{name: "above to screen top", got: r.Above(0), want: Region{X: 100, Y: 0, W: 200, H: 100}},
		{name: "below", got: r.Below(40), want: Region{X: 100, Y: 200, W: 200, H: 40}},
		{name: "left of", got: r.LeftOf(30), want: Region{X: 70, Y: 100, W: 30, H: 100}},
		{name: "left of to screen edge", got: r.LeftOf(0), want: Region{X: 0, Y: 100, W: 100, H: 100}},
		{name: "right of", got: r.RightOf(30), want: Region{X: 300, Y: 100, W: 30, H: 100}},
		{name: "move to", got: r.MoveTo(Location{X: 5, Y: 6}), want: Region{X: 5, Y: 6, W: 200, H: 100}},
		{name: "offset", got: r.Offset(-50, 25), want: Region{X: 50, Y: 125, W: 200, H: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRegionContains(t *testing.T) {
	r := NewRegion(10, 10, 100, 100)

	if !r.Contains(Location{X: 10, Y: 10}) {
		t.Error("左上角应在区域内")
	}
	if r.Contains(Location{X: 110, Y: 110}) {
		t.Error("右下角边界外不应在区域内")
	}
	if !r.ContainsRegion(NewRegion(20, 20, 50, 50)) {
		t.Error("内部区域应被包含")
	}
	if r.ContainsRegion(NewRegion(50, 50, 100, 100)) {
		t.Error("越界区域不应被包含")
	}
}

func TestRegionIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Region
		want Region
	}{
		{
			name: "overlapping",
			a:    NewRegion(0, 0, 100, 100),
			b:    NewRegion(50, 50, 100, 100),
			want: Region{X: 50, Y: 50, W: 50, H: 50},
		},
		{
			name: "disjoint",
			a:    NewRegion(0, 0, 10, 10),
			b:    NewRegion(100, 100, 10, 10),
			want: Region{},
		},
		{
			name: "contained",
			a:    NewRegion(0, 0, 100, 100),
			b:    NewRegion(20, 20, 10, 10),
			want: Region{X: 20, Y: 20, W: 10, H: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegionUnion(t *testing.T) {
	a := NewRegion(0, 0, 10, 10)
	b := NewRegion(20, 20, 10, 10)
	want := Region{X: 0, Y: 0, W: 30, H: 30}
	if got := a.Union(b); got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}

	if got := (Region{}).Union(b); got != b {
		t.Errorf("空区域 Union = %v, want %v", got, b)
	}
}

func TestMatchTarget(t *testing.T) {
	m := &Match{Region: NewRegion(100, 100, 20, 10), Similarity: 0.9}

	if got := m.Target(); got != (Location{X: 110, Y: 105}) {
		t.Errorf("Target() = %v, want (110,105)", got)
	}

	m.TargetDX, m.TargetDY = 5, -5
	if got := m.Target(); got != (Location{X: 115, Y: 100}) {
		t.Errorf("Target() with offset = %v, want (115,100)", got)
	}
}

func TestSortAndBestMatch(t *testing.T) {
	matches := []*Match{
		{Similarity: 0.7},
		{Similarity: 0.95},
		{Similarity: 0.8},
	}

	if best := BestMatch(matches); best.Similarity != 0.95 {
		t.Errorf("BestMatch() = %v", best.Similarity)
	}

	SortMatches(matches)
	if matches[0].Similarity != 0.95 || matches[2].Similarity != 0.7 {
		t.Errorf("SortMatches 排序错误: %v, %v, %v",
			matches[0].Similarity, matches[1].Similarity, matches[2].Similarity)
	}

	if BestMatch(nil) != nil {
		t.Error("BestMatch(nil) 应返回 nil")
	}
}
