package colorspec

import (
	"fmt"
	"strconv"
	"strings"
)

// SamplePoint 偏移采样点: 相对主点的偏移量、期望颜色和允许偏差
type SamplePoint struct {
	DX    int `json:"dx"`
	DY    int `json:"dy"`
	Color RGB `json:"color"`
	Bias  RGB `json:"bias"`
}

// Spec 多点找色规格: 主点颜色范围加一组固定的偏移采样点
type Spec struct {
	Anchor RGB           `json:"anchor"` // 主点颜色
	Bias   RGB           `json:"bias"`   // 主点每通道允许偏差
	Points []SamplePoint `json:"points"` // 偏移采样点 (至少一个)
}

// Parse 解析颜色串为 Spec。
// 格式错误的采样点条目被跳过；没有任何有效采样点时返回错误。
func Parse(s string) (*Spec, error) {
	entries := strings.Split(s, ",")
	if len(entries) == 0 || strings.TrimSpace(entries[0]) == "" {
		return nil, fmt.Errorf("无效的颜色串或颜色点少于 2 个: %s", truncateSpec(s))
	}

	// 首条目为主点: "主色" 或 "主色|偏色"
	mainParts := strings.Split(strings.TrimSpace(entries[0]), "|")
	anchor, err := ParseHex(mainParts[0])
	if err != nil {
		return nil, fmt.Errorf("解析主点颜色失败: %w", err)
	}
	var anchorBias RGB
	if len(mainParts) > 1 {
		anchorBias, err = ParseHex(mainParts[1])
		if err != nil {
			return nil, fmt.Errorf("解析主点偏色失败: %w", err)
		}
	}

	// 其余条目为偏移采样点: "偏移X|偏移Y|次色" 或 "偏移X|偏移Y|次色|偏色"
	var points []SamplePoint
	for _, entry := range entries[1:] {
		parts := strings.Split(strings.TrimSpace(entry), "|")
		if len(parts) < 3 {
			continue
		}

		dx, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		dy, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}

		if len(parts[2]) != 6 {
			continue
		}
		c, err := ParseHex(parts[2])
		if err != nil {
			continue
		}

		var bias RGB
		if len(parts) >= 4 && len(parts[3]) == 6 {
			if b, err := ParseHex(parts[3]); err == nil {
				bias = b
			}
		}

		points = append(points, SamplePoint{DX: dx, DY: dy, Color: c, Bias: bias})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("无效的颜色串或颜色点少于 2 个: %s", truncateSpec(s))
	}

	return &Spec{Anchor: anchor, Bias: anchorBias, Points: points}, nil
}

// String 返回规范化的颜色串表示，可被 Parse 重新解析
func (s *Spec) String() string {
	var b strings.Builder
	b.WriteString(s.Anchor.Hex())
	if !s.Bias.IsZero() {
		b.WriteByte('|')
		b.WriteString(s.Bias.Hex())
	}
	for _, p := range s.Points {
		fmt.Fprintf(&b, ",%d|%d|%s", p.DX, p.DY, p.Color.Hex())
		if !p.Bias.IsZero() {
			b.WriteByte('|')
			b.WriteString(p.Bias.Hex())
		}
	}
	return b.String()
}

// Bounds 返回全部采样点相对主点的偏移边界 (主点本身计为 0,0)。
// 匹配目标的外接矩形由此推导: 宽 = maxDX-minDX, 高 = maxDY-minDY。
func (s *Spec) Bounds() (minDX, minDY, maxDX, maxDY int) {
	for _, p := range s.Points {
		if p.DX < minDX {
			minDX = p.DX
		}
		if p.DX > maxDX {
			maxDX = p.DX
		}
		if p.DY < minDY {
			minDY = p.DY
		}
		if p.DY > maxDY {
			maxDY = p.DY
		}
	}
	return minDX, minDY, maxDX, maxDY
}

// NumPoints 返回总点数 (采样点 + 主点)
func (s *Spec) NumPoints() int {
	return len(s.Points) + 1
}

// truncateSpec 截断过长的颜色串用于错误消息
func truncateSpec(s string) string {
	if len(s) <= 30 {
		return s
	}
	return s[:30] + "..."
}
