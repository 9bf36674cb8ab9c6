package screen

import (
	"fmt"
	"image"

	"github.com/pixseek/pixseek/pkg/geom"
)

// Grabber 截图来源。测试可注入合成帧实现。
type Grabber interface {
	// Grab 截取屏幕绝对坐标指定的矩形
	Grab(x, y, width, height int) (image.Image, error)
	// Bounds 返回截图来源覆盖的屏幕区域 (绝对坐标)
	Bounds() geom.Region
}

// displayGrabber 基于 robotgo 的真实显示器截图来源
type displayGrabber struct {
	displayID int
}

func (g *displayGrabber) Grab(x, y, width, height int) (image.Image, error) {
	img, err := CaptureRegion(x, y, width, height)
	if err != nil {
		return nil, fmt.Errorf("显示器 %d: %w", g.displayID, err)
	}
	return img, nil
}

func (g *displayGrabber) Bounds() geom.Region {
	return GetDisplayBounds(g.displayID)
}
