package colorspec

import "fmt"

// 相似度常量
const (
	// DefaultSimilar 默认相似度阈值
	DefaultSimilar = 0.7
	// ExactSimilar 接近精确匹配的相似度阈值
	ExactSimilar = 0.99
)

// Pattern 找色模式: 颜色规格加匹配参数 (相似度阈值、缩放系数、目标偏移)。
// 设置方法返回自身，支持链式调用:
//
//	pat, _ := colorspec.NewPattern(spec)
//	pat.SetSimilar(0.9).SetTargetOffset(10, 0)
type Pattern struct {
	spec     *Spec
	similar  float64
	resize   float64
	targetDX int
	targetDY int
}

// NewPattern 从颜色串创建 Pattern
func NewPattern(spec string) (*Pattern, error) {
	s, err := Parse(spec)
	if err != nil {
		return nil, err
	}
	return NewPatternFromSpec(s), nil
}

// NewPatternFromSpec 从已解析的 Spec 创建 Pattern
func NewPatternFromSpec(s *Spec) *Pattern {
	return &Pattern{
		spec:    s,
		similar: DefaultSimilar,
		resize:  1,
	}
}

// MustPattern 从颜色串创建 Pattern，解析失败时 panic。
// 仅用于硬编码的常量颜色串。
func MustPattern(spec string) *Pattern {
	p, err := NewPattern(spec)
	if err != nil {
		panic(fmt.Sprintf("colorspec: %v", err))
	}
	return p
}

// Spec 返回颜色规格
func (p *Pattern) Spec() *Spec {
	return p.spec
}

// Similar 返回相似度阈值
func (p *Pattern) Similar() float64 {
	return p.similar
}

// SetSimilar 设置相似度阈值 (0-1]，越界值被收紧到有效范围
func (p *Pattern) SetSimilar(sim float64) *Pattern {
	if sim <= 0 {
		sim = DefaultSimilar
	}
	if sim > 1 {
		sim = 1
	}
	p.similar = sim
	return p
}

// Exact 设置接近精确的相似度阈值
func (p *Pattern) Exact() *Pattern {
	p.similar = ExactSimilar
	return p
}

// Resize 返回帧缩放系数
func (p *Pattern) Resize() float64 {
	return p.resize
}

// SetResize 设置帧缩放系数。<= 0 或 1 表示不缩放。
// 缩放在候选过滤前作用于整帧，匹配坐标按系数还原。
func (p *Pattern) SetResize(factor float64) *Pattern {
	if factor <= 0 {
		factor = 1
	}
	p.resize = factor
	return p
}

// TargetOffset 返回点击目标相对匹配中心的偏移量
func (p *Pattern) TargetOffset() (dx, dy int) {
	return p.targetDX, p.targetDY
}

// SetTargetOffset 设置点击目标相对匹配中心的偏移量
func (p *Pattern) SetTargetOffset(dx, dy int) *Pattern {
	p.targetDX = dx
	p.targetDY = dy
	return p
}

func (p *Pattern) String() string {
	return fmt.Sprintf("<Pattern S:%.2f O:%d,%d R:%.2f %s>",
		p.similar, p.targetDX, p.targetDY, p.resize, truncateSpec(p.spec.String()))
}
