package geom

import "fmt"

// Region 表示一个矩形屏幕区域
type Region struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// NewRegion 创建矩形区域
func NewRegion(x, y, w, h int) Region {
	return Region{X: x, Y: y, W: w, H: h}
}

// Empty 判断区域是否为空 (宽或高 <= 0)
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center 返回区域中心点
func (r Region) Center() Location {
	return Location{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// TopLeft 返回左上角点
func (r Region) TopLeft() Location {
	return Location{X: r.X, Y: r.Y}
}

// TopRight 返回右上角点
func (r Region) TopRight() Location {
	return Location{X: r.X + r.W, Y: r.Y}
}

// BottomLeft 返回左下角点
func (r Region) BottomLeft() Location {
	return Location{X: r.X, Y: r.Y + r.H}
}

// BottomRight 返回右下角点
func (r Region) BottomRight() Location {
	return Location{X: r.X + r.W, Y: r.Y + r.H}
}

// MoveTo 返回左上角移动到指定位置的新区域 (尺寸不变)
func (r Region) MoveTo(loc Location) Region {
	return Region{X: loc.X, Y: loc.Y, W: r.W, H: r.H}
}

// Offset 返回平移后的新区域
func (r Region) Offset(dx, dy int) Region {
	return Region{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Grow 返回四边各向外扩展 d 像素的新区域
func (r Region) Grow(d int) Region {
	return Region{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Nearby 返回以当前区域为中心、四边各扩展 d 像素的附近区域。
// 与 Grow 等价，与原有自动化脚本的命名保持一致。
func (r Region) Nearby(d int) Region {
	return r.Grow(d)
}

// Above 返回紧贴当前区域上方、高度为 h 的区域。
// h <= 0 时延伸到屏幕顶部 (y=0)。
func (r Region) Above(h int) Region {
	if h <= 0 {
		h = r.Y
	}
	return Region{X: r.X, Y: r.Y - h, W: r.W, H: h}
}

// Below 返回紧贴当前区域下方、高度为 h 的区域
func (r Region) Below(h int) Region {
	return Region{X: r.X, Y: r.Y + r.H, W: r.W, H: h}
}

// LeftOf 返回紧贴当前区域左侧、宽度为 w 的区域。
// w <= 0 时延伸到屏幕左缘 (x=0)。
func (r Region) LeftOf(w int) Region {
	if w <= 0 {
		w = r.X
	}
	return Region{X: r.X - w, Y: r.Y, W: w, H: r.H}
}

// RightOf 返回紧贴当前区域右侧、宽度为 w 的区域
func (r Region) RightOf(w int) Region {
	return Region{X: r.X + r.W, Y: r.Y, W: w, H: r.H}
}

// Contains 判断位置点是否在区域内
func (r Region) Contains(loc Location) bool {
	return loc.X >= r.X && loc.X < r.X+r.W && loc.Y >= r.Y && loc.Y < r.Y+r.H
}

// ContainsRegion 判断另一个区域是否完全在区域内
func (r Region) ContainsRegion(other Region) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.W <= r.X+r.W && other.Y+other.H <= r.Y+r.H
}

// Intersect 返回与另一个区域的交集，不相交时返回空区域
func (r Region) Intersect(other Region) Region {
	x1 := maxInt(r.X, other.X)
	y1 := maxInt(r.Y, other.Y)
	x2 := minInt(r.X+r.W, other.X+other.W)
	y2 := minInt(r.Y+r.H, other.Y+other.H)
	if x2 <= x1 || y2 <= y1 {
		return Region{}
	}
	return Region{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Union 返回包含两个区域的最小矩形
func (r Region) Union(other Region) Region {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x1 := minInt(r.X, other.X)
	y1 := minInt(r.Y, other.Y)
	x2 := maxInt(r.X+r.W, other.X+other.W)
	y2 := maxInt(r.Y+r.H, other.Y+other.H)
	return Region{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.W, r.H)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
