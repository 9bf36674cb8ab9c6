package finder

import (
	"image"
	"math"

	"github.com/disintegration/gift"
)

// resizeFrame 按系数缩放帧。系数 <= 0 或 == 1 时原样返回。
func resizeFrame(f *Frame, factor float64) *Frame {
	if factor <= 0 || factor == 1 {
		return f
	}
	w := maxInt(1, int(math.Round(float64(f.Width())*factor)))
	h := maxInt(1, int(math.Round(float64(f.Height())*factor)))

	g := gift.New(gift.Resize(w, h, gift.LanczosResampling))
	dst := image.NewRGBA(g.Bounds(f.img.Bounds()))
	g.Draw(dst, f.img)
	return &Frame{img: dst}
}

// unscale 把缩放帧内的坐标值还原到原始帧
func unscale(v int, factor float64) int {
	if factor <= 0 || factor == 1 {
		return v
	}
	return int(math.Round(float64(v) / factor))
}
