package finder

import (
	"fmt"
	"image"

	"github.com/pixseek/pixseek/pkg/colorspec"
	"github.com/pixseek/pixseek/pkg/geom"
	"github.com/pixseek/pixseek/pkg/settings"
)

// Find 在图像中查找首个达标匹配，无匹配返回 nil
func Find(img image.Image, pat *colorspec.Pattern, opts ...Option) (*geom.Match, error) {
	if img == nil {
		return nil, fmt.Errorf("图像为空")
	}
	return FindFrame(NewFrame(img), pat, opts...)
}

// FindAll 在图像中查找全部达标匹配。
// 同一目标的相邻候选被抑制，结果按扫描顺序 (行优先) 排列。
func FindAll(img image.Image, pat *colorspec.Pattern, opts ...Option) ([]*geom.Match, error) {
	if img == nil {
		return nil, fmt.Errorf("图像为空")
	}
	return FindAllFrame(NewFrame(img), pat, opts...)
}

// FindSpec 用颜色串在图像中查找首个达标匹配
func FindSpec(img image.Image, spec string, opts ...Option) (*geom.Match, error) {
	pat, err := colorspec.NewPattern(spec)
	if err != nil {
		return nil, err
	}
	return Find(img, pat, opts...)
}

// FindFrame 在帧中查找首个达标匹配
func FindFrame(f *Frame, pat *colorspec.Pattern, opts ...Option) (*geom.Match, error) {
	matches, err := findFrame(f, pat, ApplyOptions(opts...), false)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

// FindAllFrame 在帧中查找全部达标匹配
func FindAllFrame(f *Frame, pat *colorspec.Pattern, opts ...Option) ([]*geom.Match, error) {
	return findFrame(f, pat, ApplyOptions(opts...), true)
}

// findFrame 搜索主流程: 裁剪 -> 缩放 -> 候选过滤 -> 内核扫描 -> 坐标还原
func findFrame(f *Frame, pat *colorspec.Pattern, o *Options, all bool) ([]*geom.Match, error) {
	if f == nil {
		return nil, fmt.Errorf("帧为空")
	}
	if pat == nil || pat.Spec() == nil {
		return nil, fmt.Errorf("找色模式为空")
	}

	threshold := resolveSimilarity(o, pat)

	// 裁剪搜索区域 (区域与帧求交，交集为空直接无匹配)
	sub := f
	offsetX, offsetY := 0, 0
	if o.Region != nil {
		clamped := o.Region.Intersect(f.Bounds())
		if clamped.Empty() {
			return nil, nil
		}
		sub = f.Sub(clamped)
		offsetX, offsetY = clamped.X, clamped.Y
	}

	// 缩放帧与采样点偏移保持对齐
	factor := o.Resize
	if factor <= 0 {
		factor = pat.Resize()
	}
	scaled := resizeFrame(sub, factor)

	spec := pat.Spec()
	xs, ys, err := anchorCandidates(scaled, spec.Anchor, spec.Bias)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, nil
	}

	pts := buildKernel(spec, factor)

	var hits []*kernelHit
	if all {
		hits = scanKernelAll(scaled, xs, ys, pts, threshold, o.Limit)
	} else {
		if hit := scanKernel(scaled, xs, ys, pts, threshold); hit != nil {
			hits = []*kernelHit{hit}
		}
	}
	if len(hits) == 0 {
		return nil, nil
	}

	minDX, minDY, maxDX, maxDY := kernelBounds(pts)
	targetDX, targetDY := pat.TargetOffset()

	matches := make([]*geom.Match, len(hits))
	for i, hit := range hits {
		matches[i] = &geom.Match{
			Region: geom.Region{
				X: offsetX + unscale(hit.x+minDX, factor),
				Y: offsetY + unscale(hit.y+minDY, factor),
				W: maxInt(1, unscale(maxDX-minDX, factor)),
				H: maxInt(1, unscale(maxDY-minDY, factor)),
			},
			Similarity: hit.similarity,
			Color:      hit.color,
			TargetDX:   targetDX,
			TargetDY:   targetDY,
		}
	}
	return matches, nil
}

// resolveSimilarity 按优先级取相似度阈值: 选项 > 模式 > 全局设置
func resolveSimilarity(o *Options, pat *colorspec.Pattern) float64 {
	if o.Similarity > 0 && o.Similarity <= 1 {
		return o.Similarity
	}
	if s := pat.Similar(); s > 0 && s <= 1 {
		return s
	}
	return settings.Get().Similarity()
}
