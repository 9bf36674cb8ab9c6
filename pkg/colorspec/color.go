// Package colorspec 提供多点找色的颜色规格模型与解析。
// 颜色串格式与取色工具输出保持一致:
//
//	"主色|偏色,偏移X|偏移Y|次色|偏色,..."
//	例如: "fafbfb|080808,-3|21|f9fafa|080808,5|18|6fb2db"
//
// 偏色为可选值，缺省表示精确匹配 (偏差 0)。
package colorspec

import (
	"fmt"
	"strconv"
)

// RGB 表示一个 RGB 颜色值
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex 解析六位十六进制颜色值 (如 "FF00AA")
func ParseHex(s string) (RGB, error) {
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("无效的颜色值: %q (期望六位十六进制)", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("无效的颜色值: %q", s)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex 返回六位十六进制表示 (小写)
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// IsZero 判断是否为零值 (000000)
func (c RGB) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

func (c RGB) String() string {
	return "#" + c.Hex()
}
