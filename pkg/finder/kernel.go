package finder

import (
	"image/color"
	"math"

	"github.com/pixseek/pixseek/pkg/colorspec"
)

// 每通道颜色差的最大总和 (255 * 3)，用于把颜色差归一化为匹配贡献
const maxChannelDiff = 765.0

// kernelPoint 内核采样点: 预展开为 int32 避免内层循环的重复转换
type kernelPoint struct {
	dx, dy     int
	r, g, b    int32
	br, bg, bb int32
}

// kernelHit 内核命中结果 (帧内坐标)
type kernelHit struct {
	x, y       int
	similarity float64
	color      color.RGBA
}

// buildKernel 把规格的采样点展开为内核点表。
// factor != 1 时偏移量按系数缩放，与缩放后的帧对齐。
func buildKernel(spec *colorspec.Spec, factor float64) []kernelPoint {
	pts := make([]kernelPoint, len(spec.Points))
	for i, p := range spec.Points {
		dx, dy := p.DX, p.DY
		if factor > 0 && factor != 1 {
			dx = int(math.Round(float64(p.DX) * factor))
			dy = int(math.Round(float64(p.DY) * factor))
		}
		pts[i] = kernelPoint{
			dx: dx, dy: dy,
			r: int32(p.Color.R), g: int32(p.Color.G), b: int32(p.Color.B),
			br: int32(p.Bias.R), bg: int32(p.Bias.G), bb: int32(p.Bias.B),
		}
	}
	return pts
}

// kernelBounds 返回内核点表的偏移边界 (主点计为 0,0)
func kernelBounds(pts []kernelPoint) (minDX, minDY, maxDX, maxDY int) {
	for _, p := range pts {
		if p.dx < minDX {
			minDX = p.dx
		}
		if p.dx > maxDX {
			maxDX = p.dx
		}
		if p.dy < minDY {
			minDY = p.dy
		}
		if p.dy > maxDY {
			maxDY = p.dy
		}
	}
	return minDX, minDY, maxDX, maxDY
}

// scoreCandidate 对单个候选主点累计相似度。
// 主点始终计满分 (已通过范围掩码初筛，不再计偏差)；采样点每通道
// 偏差都在容差内时按 1-(dr+dg+db)/765 计入；越界采样点不计分。
// 剩余点全部满分也无法达标时提前退出。
func scoreCandidate(f *Frame, ax, ay int, pts []kernelPoint, minScore float64) float64 {
	w, h := f.Width(), f.Height()
	pix := f.img.Pix
	stride := f.img.Stride

	score := 1.0
	for j, p := range pts {
		sx, sy := ax+p.dx, ay+p.dy
		if sx >= 0 && sx < w && sy >= 0 && sy < h {
			off := sy*stride + sx*4
			dr := absDiff(int32(pix[off]), p.r)
			dg := absDiff(int32(pix[off+1]), p.g)
			db := absDiff(int32(pix[off+2]), p.b)
			if dr <= p.br && dg <= p.bg && db <= p.bb {
				score += 1.0 - float64(dr+dg+db)/maxChannelDiff
			}
		}
		if score+float64(len(pts)-j-1) < minScore {
			return -1
		}
	}
	return score
}

// scanKernel 扫描候选点，返回首个达标命中；无命中返回 nil
func scanKernel(f *Frame, xs, ys []int, pts []kernelPoint, threshold float64) *kernelHit {
	total := float64(len(pts) + 1)
	minScore := total * threshold

	for i := range xs {
		score := scoreCandidate(f, xs[i], ys[i], pts, minScore)
		if score < 0 {
			continue
		}
		similarity := score / total
		if similarity < threshold {
			continue
		}
		return &kernelHit{x: xs[i], y: ys[i], similarity: similarity, color: f.At(xs[i], ys[i])}
	}
	return nil
}

// scanKernelAll 扫描全部候选点并收集达标命中。
// 与已接受命中的主点距离在规格外接矩形之内的候选被抑制，避免同一
// 目标的相邻像素产生成片的重复结果。limit > 0 时截断结果数量。
func scanKernelAll(f *Frame, xs, ys []int, pts []kernelPoint, threshold float64, limit int) []*kernelHit {
	total := float64(len(pts) + 1)
	minScore := total * threshold
	minDX, minDY, maxDX, maxDY := kernelBounds(pts)
	suppressW := maxInt(1, maxDX-minDX)
	suppressH := maxInt(1, maxDY-minDY)

	var hits []*kernelHit
	for i := range xs {
		ax, ay := xs[i], ys[i]
		if suppressed(hits, ax, ay, suppressW, suppressH) {
			continue
		}
		score := scoreCandidate(f, ax, ay, pts, minScore)
		if score < 0 {
			continue
		}
		similarity := score / total
		if similarity < threshold {
			continue
		}
		hits = append(hits, &kernelHit{x: ax, y: ay, similarity: similarity, color: f.At(ax, ay)})
		if limit > 0 && len(hits) >= limit {
			break
		}
	}
	return hits
}

func suppressed(hits []*kernelHit, x, y, w, h int) bool {
	for _, hit := range hits {
		if absInt(x-hit.x) <= w && absInt(y-hit.y) <= h {
			return true
		}
	}
	return false
}

func absDiff(a, b int32) int32 {
	if a > b {
		return a - b
	}
	return b - a
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
