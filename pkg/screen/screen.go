package screen

import (
	"fmt"
	"image"

	"github.com/pixseek/pixseek/internal/logger"
	"github.com/pixseek/pixseek/pkg/colorspec"
	"github.com/pixseek/pixseek/pkg/geom"
)

// Screen 表示一个显示器，是实时找色的入口。
// 全部搜索操作在其整屏区域上执行；屏幕本身可派生子区域。
type Screen struct {
	displayID int
	grabber   Grabber
}

// NewScreen 创建显示器对象。displayID 从 0 开始。
func NewScreen(displayID int) *Screen {
	return &Screen{
		displayID: displayID,
		grabber:   &displayGrabber{displayID: displayID},
	}
}

// NewScreenWithGrabber 使用自定义截图来源创建 Screen (测试注入合成帧)
func NewScreenWithGrabber(g Grabber) *Screen {
	return &Screen{grabber: g}
}

// DisplayID 返回显示器编号
func (s *Screen) DisplayID() int {
	return s.displayID
}

// Bounds 返回显示器覆盖的屏幕区域 (绝对坐标)
func (s *Screen) Bounds() geom.Region {
	return s.grabber.Bounds()
}

// Capture 截取整屏
func (s *Screen) Capture() (image.Image, error) {
	b := s.Bounds()
	return s.grabber.Grab(b.X, b.Y, b.W, b.H)
}

// CaptureRegion 截取屏幕内的指定区域 (先与屏幕边界求交)
func (s *Screen) CaptureRegion(r geom.Region) (image.Image, error) {
	clamped := r.Intersect(s.Bounds())
	if clamped.Empty() {
		return nil, fmt.Errorf("截图区域与屏幕无交集: %s", r.String())
	}
	return s.grabber.Grab(clamped.X, clamped.Y, clamped.W, clamped.H)
}

// Region 返回屏幕内的子区域对象
func (s *Screen) Region(x, y, w, h int) *Region {
	return &Region{Rect: geom.NewRegion(x, y, w, h), screen: s}
}

// FullRegion 返回覆盖整个屏幕的区域对象
func (s *Screen) FullRegion() *Region {
	return &Region{Rect: s.Bounds(), screen: s}
}

// Find 在整屏上查找首个匹配
func (s *Screen) Find(pat *colorspec.Pattern, opts ...FindOption) (*geom.Match, error) {
	return s.FullRegion().Find(pat, opts...)
}

// FindSpec 用颜色串在整屏上查找首个匹配
func (s *Screen) FindSpec(spec string, opts ...FindOption) (*geom.Match, error) {
	return s.FullRegion().FindSpec(spec, opts...)
}

// FindAll 在整屏上查找全部匹配
func (s *Screen) FindAll(pat *colorspec.Pattern, opts ...FindOption) ([]*geom.Match, error) {
	return s.FullRegion().FindAll(pat, opts...)
}

// Wait 在整屏上等待模式出现
func (s *Screen) Wait(pat *colorspec.Pattern, opts ...FindOption) (*geom.Match, error) {
	return s.FullRegion().Wait(pat, opts...)
}

// Exists 检查模式当前是否在整屏上存在
func (s *Screen) Exists(pat *colorspec.Pattern, opts ...FindOption) bool {
	return s.FullRegion().Exists(pat, opts...)
}

// WaitVanish 在整屏上等待模式消失
func (s *Screen) WaitVanish(pat *colorspec.Pattern, opts ...FindOption) bool {
	return s.FullRegion().WaitVanish(pat, opts...)
}

// ShowDisplays 输出全部显示器的边界信息
func ShowDisplays() {
	n := GetDisplayCount()
	for i := 0; i < n; i++ {
		b := GetDisplayBounds(i)
		logger.Info("显示器 %d: %s", i, b.String())
	}
}
