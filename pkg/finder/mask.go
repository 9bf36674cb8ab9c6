package finder

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/pixseek/pixseek/pkg/colorspec"
)

// anchorCandidates 用颜色范围掩码过滤出满足主点颜色的候选像素坐标。
// 掩码计算走 OpenCV 的 inRange，比逐像素比较快得多。
// 返回的坐标按行优先顺序排列，与内核扫描顺序一致。
func anchorCandidates(f *Frame, anchor, bias colorspec.RGB) (xs, ys []int, err error) {
	w, h := f.Width(), f.Height()
	if w == 0 || h == 0 {
		return nil, nil, nil
	}

	mat, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC4, f.Pix())
	if err != nil {
		return nil, nil, fmt.Errorf("构建图像矩阵失败: %w", err)
	}
	defer mat.Close()

	// 通道顺序与 Frame 一致 (R G B A)，alpha 通道放行全部值
	lower := gocv.NewScalar(
		clampChannel(int(anchor.R)-int(bias.R)),
		clampChannel(int(anchor.G)-int(bias.G)),
		clampChannel(int(anchor.B)-int(bias.B)),
		0,
	)
	upper := gocv.NewScalar(
		clampChannel(int(anchor.R)+int(bias.R)),
		clampChannel(int(anchor.G)+int(bias.G)),
		clampChannel(int(anchor.B)+int(bias.B)),
		255,
	)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.InRangeWithScalar(mat, lower, upper, &mask)

	if gocv.CountNonZero(mask) == 0 {
		return nil, nil, nil
	}

	data, err := mask.DataPtrUint8()
	if err != nil {
		return nil, nil, fmt.Errorf("读取掩码数据失败: %w", err)
	}

	for y := 0; y < h; y++ {
		row := data[y*w : (y+1)*w]
		for x, v := range row {
			if v != 0 {
				xs = append(xs, x)
				ys = append(ys, y)
			}
		}
	}
	return xs, ys, nil
}

func clampChannel(v int) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return float64(v)
}
