// Package geom 提供屏幕几何类型: 位置点、矩形区域和匹配结果
package geom

import "fmt"

// Location 表示屏幕上的一个位置点
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewLocation 创建位置点
func NewLocation(x, y int) Location {
	return Location{X: x, Y: y}
}

// Offset 返回相对偏移后的新位置点 (<0 向左/上，>0 向右/下)
func (l Location) Offset(dx, dy int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy}
}

// Above 返回正上方距离 d 的位置点
func (l Location) Above(d int) Location {
	return Location{X: l.X, Y: l.Y - d}
}

// Below 返回正下方距离 d 的位置点
func (l Location) Below(d int) Location {
	return Location{X: l.X, Y: l.Y + d}
}

// Left 返回正左方距离 d 的位置点
func (l Location) Left(d int) Location {
	return Location{X: l.X - d, Y: l.Y}
}

// Right 返回正右方距离 d 的位置点
func (l Location) Right(d int) Location {
	return Location{X: l.X + d, Y: l.Y}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}
