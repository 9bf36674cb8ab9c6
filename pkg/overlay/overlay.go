// Package overlay 把找色结果绘制到截图上，用于调试与结果落盘
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pixseek/pixseek/pkg/geom"
)

var (
	matchColor  = color.RGBA{0, 255, 0, 255}
	targetColor = color.RGBA{255, 0, 0, 255}
	labelBg     = color.RGBA{255, 255, 255, 255}
	labelFg     = color.RGBA{0, 128, 0, 255}
)

var (
	fontOnce sync.Once
	ttf      *truetype.Font
)

func labelFont() *truetype.Font {
	fontOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err == nil {
			ttf = f
		}
	})
	return ttf
}

// DrawMatches 复制原图并在其上绘制所有匹配结果
func DrawMatches(src image.Image, matches []*geom.Match) *image.RGBA {
	bounds := src.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, src, bounds.Min, draw.Src)

	for _, m := range matches {
		if m == nil {
			continue
		}
		DrawMatch(rgba, m)
	}
	return rgba
}

// DrawMatch 绘制单个匹配: 边框 + 目标点十字 + 相似度标签
func DrawMatch(img *image.RGBA, m *geom.Match) {
	x1, y1 := m.X, m.Y
	x2, y2 := m.X+m.W-1, m.Y+m.H-1
	drawRect(img, x1, y1, x2, y2, matchColor, 2)

	target := m.Target()
	drawCross(img, target.X, target.Y, 5, targetColor)

	label := fmt.Sprintf("%.2f", m.Similarity)
	labelY := y1 - 18
	if labelY < 0 {
		labelY = y2 + 4
	}
	labelW := len(label)*8 + 8
	drawFilledRect(img, x1-1, labelY-1, x1+labelW, labelY+15, labelBg)
	drawRect(img, x1-1, labelY-1, x1+labelW, labelY+15, matchColor, 1)
	drawLabel(img, x1+3, labelY, label, 12, labelFg)
}

// SavePNG 保存图像到指定路径
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件失败: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return nil
}

// Dump 把带标注的结果存到目录下，文件名带时间戳
func Dump(src image.Image, matches []*geom.Match, dir string) (string, error) {
	annotated := DrawMatches(src, matches)
	name := fmt.Sprintf("find_%s.png", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := SavePNG(annotated, path); err != nil {
		return "", err
	}
	return path, nil
}

// drawLabel 用内置字体绘制标签文字
func drawLabel(img *image.RGBA, x, y int, text string, fontSize float64, col color.Color) {
	f := labelFont()
	if f == nil {
		// 字体解析失败，回退到不绘制
		return
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(col))
	c.SetHinting(font.HintingFull)

	pt := freetype.Pt(x, y+int(c.PointToFixed(fontSize)>>6))
	c.DrawString(text, pt)
}

// drawRect 绘制矩形边框
func drawRect(img *image.RGBA, x1, y1, x2, y2 int, col color.Color, thickness int) {
	for t := 0; t < thickness; t++ {
		for x := x1; x <= x2; x++ {
			img.Set(x, y1+t, col)
			img.Set(x, y2-t, col)
		}
		for y := y1; y <= y2; y++ {
			img.Set(x1+t, y, col)
			img.Set(x2-t, y, col)
		}
	}
}

// drawFilledRect 绘制填充矩形
func drawFilledRect(img *image.RGBA, x1, y1, x2, y2 int, col color.Color) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			img.Set(x, y, col)
		}
	}
}

// drawCross 绘制十字标记
func drawCross(img *image.RGBA, x, y, size int, col color.Color) {
	for d := -size; d <= size; d++ {
		img.Set(x+d, y, col)
		img.Set(x, y+d, col)
	}
}
