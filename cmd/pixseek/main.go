package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pixseek/pixseek/pkg/colorspec"
	"github.com/pixseek/pixseek/pkg/config"
	"github.com/pixseek/pixseek/pkg/geom"
	"github.com/pixseek/pixseek/pkg/overlay"
	"github.com/pixseek/pixseek/pkg/permissions"
	"github.com/pixseek/pixseek/pkg/screen"
)

// 版本信息 (可通过 ldflags 注入)
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// 命令行参数
	var (
		specStr      = flag.String("spec", "", "颜色串 (例: e54d42|101010,5|4|333333,...)")
		similarity   = flag.Float64("similarity", 0, "最低相似度 (0-1, 默认使用配置值)")
		regionStr    = flag.String("region", "", "限定搜索区域 x,y,w,h (默认全屏)")
		display      = flag.Int("display", -1, "显示器编号 (默认使用配置值)")
		timeout      = flag.Duration("timeout", 0, "等待超时时间 (例: 5s, 0 表示只找一次)")
		findAll      = flag.Bool("all", false, "查找所有匹配而非首个")
		limit        = flag.Int("limit", 0, "查找所有匹配时的数量上限")
		resize       = flag.Float64("resize", 0, "搜索前的缩放系数 (例: 0.5)")
		dumpDir      = flag.String("dump", "", "把带标注的截图保存到目录")
		saveConfig   = flag.Bool("save", false, "保存当前参数为默认配置")
		showDisplays = flag.Bool("displays", false, "列出所有显示器")
		showVersion  = flag.Bool("version", false, "显示版本信息")
		showHelp     = flag.Bool("help", false, "显示帮助信息")
	)

	flag.Parse()

	// 显示版本
	if *showVersion {
		printVersion()
		return
	}

	// 显示帮助
	if *showHelp {
		printHelp()
		return
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("[WARN] 加载配置失败: %v\n", err)
	}

	// 命令行参数优先级高于配置文件
	if *similarity > 0 {
		cfg.MinSimilarity = *similarity
	}
	if *display >= 0 {
		cfg.Display = *display
	}
	if *dumpDir != "" {
		cfg.DumpDir = *dumpDir
	}

	if err := cfg.Apply(); err != nil {
		fmt.Printf("[WARN] 应用配置失败: %v\n", err)
	}

	// 保存配置
	if *saveConfig {
		if err := config.Save(cfg); err != nil {
			fmt.Printf("[WARN] 保存配置失败: %v\n", err)
		} else {
			fmt.Printf("[INFO] 配置已保存到 %s\n", config.GetDefaultManager().GetConfigFile())
		}
	}

	// 列出显示器
	if *showDisplays {
		screen.ShowDisplays()
		return
	}

	// 验证必要参数
	if *specStr == "" {
		fmt.Println("[ERROR] 缺少颜色串，请使用 -spec 参数指定")
		printHelp()
		os.Exit(1)
	}

	// macOS 截屏权限检查
	if runtime.GOOS == "darwin" {
		if ok, instructions := permissions.EnsurePermissions(); !ok {
			fmt.Println("[WARN] 缺少屏幕录制权限")
			fmt.Println(instructions)
		}
	}

	pat, err := colorspec.NewPattern(*specStr)
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}

	scr := screen.NewScreen(cfg.Display)
	region := scr.FullRegion()
	if *regionStr != "" {
		rect, err := parseRegion(*regionStr)
		if err != nil {
			fmt.Printf("[ERROR] 无效的区域参数: %v\n", err)
			os.Exit(1)
		}
		region = scr.Region(rect.X, rect.Y, rect.W, rect.H)
	}

	var opts []screen.FindOption
	if *resize > 0 {
		opts = append(opts, screen.WithResize(*resize))
	}
	if *limit > 0 {
		opts = append(opts, screen.WithLimit(*limit))
	}

	start := time.Now()
	matches, err := runFind(region, pat, *findAll, *timeout, opts)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Printf("[INFO] 未找到匹配 (耗时 %.1fms)\n", float64(elapsed.Microseconds())/1000)
		os.Exit(2)
	}

	for i, m := range matches {
		target := m.Target()
		fmt.Printf("[%d] 区域=(%d,%d %dx%d) 目标点=(%d,%d) 相似度=%.3f\n",
			i+1, m.X, m.Y, m.W, m.H, target.X, target.Y, m.Similarity)
	}
	fmt.Printf("[INFO] 共 %d 个匹配, 耗时 %.1fms\n", len(matches), float64(elapsed.Microseconds())/1000)

	// 落盘带标注的截图
	if cfg.DumpDir != "" {
		img, err := scr.Capture()
		if err != nil {
			fmt.Printf("[WARN] 截屏失败, 无法落盘: %v\n", err)
			return
		}
		path, err := overlay.Dump(img, matches, cfg.DumpDir)
		if err != nil {
			fmt.Printf("[WARN] 落盘失败: %v\n", err)
			return
		}
		fmt.Printf("[INFO] 标注结果已保存到 %s\n", path)
	}
}

// runFind 按参数执行一次查找或轮询等待
func runFind(region *screen.Region, pat *colorspec.Pattern, all bool, timeout time.Duration, opts []screen.FindOption) ([]*geom.Match, error) {
	if all {
		return region.FindAll(pat, opts...)
	}

	if timeout > 0 {
		m, err := region.Wait(pat, append(opts, screen.WithTimeout(timeout))...)
		if err != nil {
			return nil, err
		}
		return []*geom.Match{m}, nil
	}

	m, err := region.Find(pat, opts...)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return []*geom.Match{m}, nil
}

// parseRegion 解析 x,y,w,h 形式的区域参数
func parseRegion(s string) (geom.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Region{}, fmt.Errorf("应为 x,y,w,h 形式: %s", s)
	}

	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return geom.Region{}, fmt.Errorf("无法解析 %q: %w", p, err)
		}
		vals[i] = v
	}

	if vals[2] <= 0 || vals[3] <= 0 {
		return geom.Region{}, fmt.Errorf("宽高必须为正: %s", s)
	}

	return geom.NewRegion(vals[0], vals[1], vals[2], vals[3]), nil
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Printf("Pixseek v%s\n", Version)
	fmt.Printf("Build Time: %s\n", BuildTime)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

// printHelp 打印帮助信息
func printHelp() {
	fmt.Println("Pixseek - 屏幕多点找色工具")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  pixseek [选项]")
	fmt.Println()
	fmt.Println("选项:")
	fmt.Println("  -spec string        颜色串 (主色|容差,偏移x|偏移y|颜色|容差,...)")
	fmt.Println("  -similarity float   最低相似度 (0-1)")
	fmt.Println("  -region string      限定搜索区域 x,y,w,h")
	fmt.Println("  -display int        显示器编号")
	fmt.Println("  -timeout duration   等待目标出现的超时时间 (例: 5s)")
	fmt.Println("  -all                查找所有匹配")
	fmt.Println("  -limit int          查找所有匹配时的数量上限")
	fmt.Println("  -resize float       搜索前的缩放系数")
	fmt.Println("  -dump string        把带标注的截图保存到目录")
	fmt.Println("  -save               保存当前参数为默认配置")
	fmt.Println("  -displays           列出所有显示器")
	fmt.Println("  -version            显示版本信息")
	fmt.Println("  -help               显示帮助信息")
	fmt.Println()
	fmt.Println("示例:")
	fmt.Println("  # 全屏查找首个匹配")
	fmt.Println("  pixseek -spec 'e54d42|101010,5|4|333333,-3|9|ffffff'")
	fmt.Println()
	fmt.Println("  # 在区域内等待目标出现")
	fmt.Println("  pixseek -spec 'e54d42|101010,5|4|333333' -region 0,0,800,600 -timeout 5s")
	fmt.Println()
	fmt.Println("  # 查找所有匹配并落盘标注结果")
	fmt.Println("  pixseek -spec 'e54d42|101010,5|4|333333' -all -dump ./dumps")
	fmt.Println()
	fmt.Printf("配置文件位置: %s\n", config.GetDefaultManager().GetConfigFile())
}
