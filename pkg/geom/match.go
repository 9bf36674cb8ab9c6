package geom

import (
	"fmt"
	"image/color"
	"sort"
)

// Match 找色匹配结果: 带相似度评分和主点颜色的矩形区域
type Match struct {
	Region
	// Similarity 匹配比例 (0-1)
	Similarity float64 `json:"similarity"`
	// Color 主点的实际颜色
	Color color.RGBA `json:"-"`
	// TargetDX/TargetDY 点击目标相对中心的偏移量
	TargetDX int `json:"target_dx,omitempty"`
	TargetDY int `json:"target_dy,omitempty"`
}

// Target 返回点击目标位置: 区域中心加目标偏移量
func (m *Match) Target() Location {
	return m.Center().Offset(m.TargetDX, m.TargetDY)
}

// Score 返回相似度评分
func (m *Match) Score() float64 {
	return m.Similarity
}

// Less 按相似度比较两个匹配结果
func (m *Match) Less(other *Match) bool {
	return m.Similarity < other.Similarity
}

func (m *Match) String() string {
	return fmt.Sprintf("<Match %s S:%.2f>", m.Region.String(), m.Similarity)
}

// SortMatches 按相似度从高到低排序
func SortMatches(matches []*Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
}

// BestMatch 返回相似度最高的匹配结果，空切片返回 nil
func BestMatch(matches []*Match) *Match {
	var best *Match
	for _, m := range matches {
		if best == nil || m.Similarity > best.Similarity {
			best = m
		}
	}
	return best
}
