// Package finder 实现跨平台多点找色引擎。
//
// 搜索分两步: 先用颜色范围掩码 (OpenCV inRange) 过滤出满足主点颜色的候选
// 像素，再对每个候选点按规格中的偏移采样点累计相似度，提前退出无法达标的
// 候选。匹配目标的外接矩形由采样点偏移边界推导。
//
// 引擎本身只处理帧数据，不负责截屏；实时搜索入口见 pkg/screen。
package finder

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pixseek/pixseek/pkg/geom"
)

// Frame 表示一帧紧凑排列的 RGBA 像素数据
type Frame struct {
	img *image.RGBA
}

// NewFrame 从任意图像创建 Frame。
// 非紧凑或非 RGBA 图像会被复制转换，坐标原点归零。
func NewFrame(img image.Image) *Frame {
	if rgba, ok := img.(*image.RGBA); ok {
		b := rgba.Bounds()
		if b.Min.X == 0 && b.Min.Y == 0 && rgba.Stride == b.Dx()*4 {
			return &Frame{img: rgba}
		}
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Frame{img: dst}
}

// Width 返回帧宽度
func (f *Frame) Width() int {
	return f.img.Rect.Dx()
}

// Height 返回帧高度
func (f *Frame) Height() int {
	return f.img.Rect.Dy()
}

// Bounds 返回帧覆盖的区域 (原点为 0,0)
func (f *Frame) Bounds() geom.Region {
	return geom.NewRegion(0, 0, f.Width(), f.Height())
}

// Pix 返回底层像素数据 (每像素 4 字节，R G B A 顺序)
func (f *Frame) Pix() []uint8 {
	return f.img.Pix
}

// RGBA 返回底层图像
func (f *Frame) RGBA() *image.RGBA {
	return f.img
}

// At 返回指定坐标的颜色
func (f *Frame) At(x, y int) color.RGBA {
	off := y*f.img.Stride + x*4
	return color.RGBA{R: f.img.Pix[off], G: f.img.Pix[off+1], B: f.img.Pix[off+2], A: f.img.Pix[off+3]}
}

// Sub 返回帧内指定区域的紧凑拷贝。
// 区域先与帧边界求交，交集为空时返回 nil。
func (f *Frame) Sub(r geom.Region) *Frame {
	clamped := r.Intersect(f.Bounds())
	if clamped.Empty() {
		return nil
	}
	if clamped == f.Bounds() {
		return f
	}
	dst := image.NewRGBA(image.Rect(0, 0, clamped.W, clamped.H))
	draw.Draw(dst, dst.Bounds(), f.img, image.Point{X: clamped.X, Y: clamped.Y}, draw.Src)
	return &Frame{img: dst}
}
