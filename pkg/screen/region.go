package screen

import (
	"fmt"
	"image"
	"time"

	"github.com/pixseek/pixseek/internal/logger"
	"github.com/pixseek/pixseek/pkg/colorspec"
	"github.com/pixseek/pixseek/pkg/finder"
	"github.com/pixseek/pixseek/pkg/geom"
	"github.com/pixseek/pixseek/pkg/settings"
)

// Region 绑定到屏幕的搜索区域。
// 搜索操作截取区域所在的屏幕部分并调用找色引擎，匹配坐标换算为
// 屏幕绝对坐标。
type Region struct {
	// Rect 区域覆盖的屏幕范围 (绝对坐标)
	Rect geom.Region

	screen      *Screen
	lastMatch   *geom.Match
	lastMatches []*geom.Match
}

// Screen 返回区域所属的屏幕
func (r *Region) Screen() *Screen {
	return r.screen
}

// derive 以新的几何范围派生同屏区域
func (r *Region) derive(rect geom.Region) *Region {
	return &Region{Rect: rect, screen: r.screen}
}

// Offset 返回平移后的区域
func (r *Region) Offset(dx, dy int) *Region {
	return r.derive(r.Rect.Offset(dx, dy))
}

// Grow 返回四边各向外扩展 d 像素的区域
func (r *Region) Grow(d int) *Region {
	return r.derive(r.Rect.Grow(d))
}

// Nearby 返回附近区域 (四边各扩展 d 像素)
func (r *Region) Nearby(d int) *Region {
	return r.derive(r.Rect.Nearby(d))
}

// Above 返回上方区域，h <= 0 时延伸到屏幕顶部
func (r *Region) Above(h int) *Region {
	return r.derive(r.Rect.Above(h))
}

// Below 返回下方区域
func (r *Region) Below(h int) *Region {
	return r.derive(r.Rect.Below(h))
}

// LeftOf 返回左侧区域，w <= 0 时延伸到屏幕左缘
func (r *Region) LeftOf(w int) *Region {
	return r.derive(r.Rect.LeftOf(w))
}

// RightOf 返回右侧区域
func (r *Region) RightOf(w int) *Region {
	return r.derive(r.Rect.RightOf(w))
}

// MoveTo 返回左上角移动到指定位置的区域
func (r *Region) MoveTo(loc geom.Location) *Region {
	return r.derive(r.Rect.MoveTo(loc))
}

// SetRect 重设区域范围
func (r *Region) SetRect(x, y, w, h int) *Region {
	r.Rect = geom.NewRegion(x, y, w, h)
	return r
}

// LastMatch 返回最近一次成功的匹配结果
func (r *Region) LastMatch() *geom.Match {
	return r.lastMatch
}

// LastMatches 返回最近一次 FindAll 的全部结果
func (r *Region) LastMatches() []*geom.Match {
	return r.lastMatches
}

// Find 查找区域内首个匹配，无匹配返回 nil
func (r *Region) Find(pat *colorspec.Pattern, opts ...FindOption) (*geom.Match, error) {
	if pat == nil {
		return nil, fmt.Errorf("找色模式为空")
	}
	cfg := applyFindOptions(opts...)
	start := time.Now()
	m, err := r.findOnce(pat, cfg)
	r.logFind("FIND", pat, m != nil, start, err)
	if m != nil {
		r.lastMatch = m
	}
	return m, err
}

// FindSpec 用颜色串查找区域内首个匹配
func (r *Region) FindSpec(spec string, opts ...FindOption) (*geom.Match, error) {
	pat, err := colorspec.NewPattern(spec)
	if err != nil {
		return nil, err
	}
	return r.Find(pat, opts...)
}

// FindAll 查找区域内全部匹配
func (r *Region) FindAll(pat *colorspec.Pattern, opts ...FindOption) ([]*geom.Match, error) {
	if pat == nil {
		return nil, fmt.Errorf("找色模式为空")
	}
	cfg := applyFindOptions(opts...)
	start := time.Now()

	clamped, img, err := r.capture()
	if err != nil || img == nil {
		r.logFind("FINDALL", pat, false, start, err)
		return nil, err
	}

	matches, err := finder.FindAll(img, pat,
		finder.WithSimilarity(cfg.similarity),
		finder.WithResize(cfg.resize),
		finder.WithLimit(cfg.limit),
	)
	if err != nil {
		r.logFind("FINDALL", pat, false, start, err)
		return nil, err
	}

	for _, m := range matches {
		m.Region = m.Region.Offset(clamped.X, clamped.Y)
	}
	r.logFind("FINDALL", pat, len(matches) > 0, start, nil)
	if len(matches) > 0 {
		r.lastMatches = matches
		r.lastMatch = matches[0]
	}
	return matches, nil
}

// Wait 等待模式出现，按全局扫描频率轮询，超时返回错误
func (r *Region) Wait(pat *colorspec.Pattern, opts ...FindOption) (*geom.Match, error) {
	if pat == nil {
		return nil, fmt.Errorf("找色模式为空")
	}
	cfg := applyFindOptions(opts...)
	timeout := cfg.waitTimeout()
	interval := settings.Get().ScanInterval()

	start := time.Now()
	for {
		m, err := r.findOnce(pat, cfg)
		if err != nil {
			r.logFind("WAIT", pat, false, start, err)
			return nil, err
		}
		if m != nil {
			r.logFind("WAIT", pat, true, start, nil)
			r.lastMatch = m
			return m, nil
		}

		if timeout == 0 || time.Since(start) > timeout {
			r.logFind("WAIT", pat, false, start, nil)
			return nil, fmt.Errorf("等待模式超时: %s", pat.String())
		}
		time.Sleep(interval)
	}
}

// Exists 检查模式当前是否存在 (单次检查，不等待)
func (r *Region) Exists(pat *colorspec.Pattern, opts ...FindOption) bool {
	m, err := r.Find(pat, opts...)
	return err == nil && m != nil
}

// WaitVanish 等待模式消失。
// 模式在超时前消失返回 true，到期仍存在返回 false。
func (r *Region) WaitVanish(pat *colorspec.Pattern, opts ...FindOption) bool {
	if pat == nil {
		return false
	}
	cfg := applyFindOptions(opts...)
	timeout := cfg.waitTimeout()
	interval := settings.Get().ObserveInterval()

	start := time.Now()
	for {
		m, err := r.findOnce(pat, cfg)
		if err != nil {
			r.logFind("VANISH", pat, false, start, err)
			return false
		}
		if m == nil {
			r.logFind("VANISH", pat, true, start, nil)
			return true
		}

		if timeout == 0 || time.Since(start) > timeout {
			r.logFind("VANISH", pat, false, start, nil)
			return false
		}
		time.Sleep(interval)
	}
}

// findOnce 单次截图加搜索，返回屏幕绝对坐标的匹配
func (r *Region) findOnce(pat *colorspec.Pattern, cfg *findConfig) (*geom.Match, error) {
	clamped, img, err := r.capture()
	if err != nil || img == nil {
		return nil, err
	}

	m, err := finder.Find(img, pat,
		finder.WithSimilarity(cfg.similarity),
		finder.WithResize(cfg.resize),
	)
	if err != nil || m == nil {
		return nil, err
	}

	m.Region = m.Region.Offset(clamped.X, clamped.Y)
	return m, nil
}

// capture 截取区域与屏幕的交集。交集为空时返回空帧 (无匹配，不报错)。
func (r *Region) capture() (geom.Region, image.Image, error) {
	clamped := r.Rect.Intersect(r.screen.Bounds())
	if clamped.Empty() {
		return geom.Region{}, nil, nil
	}
	img, err := r.screen.grabber.Grab(clamped.X, clamped.Y, clamped.W, clamped.H)
	if err != nil {
		return geom.Region{}, nil, fmt.Errorf("截取搜索区域失败: %w", err)
	}
	return clamped, img, nil
}

// logFind 按全局设置记录搜索事件
func (r *Region) logFind(category string, pat *colorspec.Pattern, ok bool, start time.Time, err error) {
	if !settings.Get().ActionLogs {
		return
	}
	detail := fmt.Sprintf("%s @ %s", pat.String(), r.Rect.String())
	if err != nil {
		detail += " | " + err.Error()
	}
	logger.LogEvent(category, ok, float64(time.Since(start).Microseconds())/1000, detail)
}

func (r *Region) String() string {
	return fmt.Sprintf("<Region %s>", r.Rect.String())
}
