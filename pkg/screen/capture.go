// Package screen 提供屏幕截图与实时找色入口。
// 截图经 robotgo 完成；搜索委托给 pkg/finder，并把匹配坐标换算回屏幕
// 绝对坐标。
package screen

import (
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"

	"github.com/pixseek/pixseek/pkg/geom"
)

// CaptureScreen 截取全屏
func CaptureScreen() (image.Image, error) {
	img, err := robotgo.CaptureImg()
	if err != nil {
		return nil, fmt.Errorf("截屏失败: %w", err)
	}
	return img, nil
}

// CaptureRegion 截取屏幕区域
func CaptureRegion(x, y, width, height int) (image.Image, error) {
	img, err := robotgo.CaptureImg(x, y, width, height)
	if err != nil {
		return nil, fmt.Errorf("截取区域失败: %w", err)
	}
	return img, nil
}

// GetScreenSize 获取主屏幕尺寸
func GetScreenSize() (width, height int) {
	return robotgo.GetScreenSize()
}

// GetDisplayCount 获取显示器数量
func GetDisplayCount() int {
	return robotgo.DisplaysNum()
}

// GetDisplayBounds 获取指定显示器的边界区域
func GetDisplayBounds(displayID int) geom.Region {
	x, y, w, h := robotgo.GetDisplayBounds(displayID)
	return geom.NewRegion(x, y, w, h)
}
