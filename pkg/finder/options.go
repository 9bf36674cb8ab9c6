package finder

import "github.com/pixseek/pixseek/pkg/geom"

// Option 配置选项函数类型
type Option func(*Options)

// Options 搜索配置
type Options struct {
	// Similarity 相似度阈值 (0-1)，0 表示使用模式/全局默认值
	Similarity float64
	// Region 帧内搜索区域 (nil 表示整帧)
	Region *geom.Region
	// Resize 帧缩放系数，覆盖模式的设置。0 或 1 表示不缩放
	Resize float64
	// Limit FindAll 的结果数量上限，0 表示不限制
	Limit int
}

// ApplyOptions 应用配置选项
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithSimilarity 设置相似度阈值
func WithSimilarity(s float64) Option {
	return func(o *Options) {
		o.Similarity = s
	}
}

// WithRegion 设置帧内搜索区域
func WithRegion(x, y, w, h int) Option {
	return func(o *Options) {
		r := geom.NewRegion(x, y, w, h)
		o.Region = &r
	}
}

// WithGeomRegion 设置帧内搜索区域
func WithGeomRegion(r geom.Region) Option {
	return func(o *Options) {
		o.Region = &r
	}
}

// WithResize 设置帧缩放系数
func WithResize(factor float64) Option {
	return func(o *Options) {
		o.Resize = factor
	}
}

// WithLimit 设置 FindAll 结果数量上限
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}
