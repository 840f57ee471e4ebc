package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/ByLCY/hanzicards/app"
	"github.com/ByLCY/hanzicards/config"
	"github.com/ByLCY/hanzicards/layout"
	"github.com/ByLCY/hanzicards/renderer"
	canvasrenderer "github.com/ByLCY/hanzicards/renderer/canvas"
	xlsxrenderer "github.com/ByLCY/hanzicards/renderer/xlsx"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00AFFF"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00FF00"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

type options struct {
	inputPath  string
	outputPath string
	debugPath  string
	dryRun     bool
}

func main() {
	input := flag.String("in", "", "Pleco 导出文件路径（为空时读取标准输入）")
	output := flag.String("out", "out/cards.xlsx", "输出文件路径")
	configPath := flag.String("config", "", "YAML 配置文件路径")
	format := flag.String("format", "", "输出格式 xlsx / pdf（覆盖配置）")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	dryRun := flag.Bool("dry-run", false, "只计算布局，不写出文件")
	showVersion := flag.Bool("version", false, "显示版本")
	flag.Parse()

	if *showVersion {
		fmt.Println("hanzicards", app.BuildVersion())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if *format != "" {
		cfg.Output.Format = *format
		if err := cfg.Validate(); err != nil {
			log.Fatalf("配置无效: %v", err)
		}
	}
	logger := app.NewLogger(cfg.Log)

	opts := options{inputPath: *input, outputPath: *output, debugPath: *debug, dryRun: *dryRun}
	report, err := run(cfg, opts, logger)
	printSummary(os.Stdout, report, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render(fmt.Sprintf("生成卡片失败: %v", err)))
		os.Exit(1)
	}
}

// run 打开输入、选择输出 sink 并执行一次完整流程。失败时删除不完整的输出文件。
func run(cfg *config.Config, opts options, logger *slog.Logger) (app.Report, error) {
	in := io.Reader(os.Stdin)
	if opts.inputPath != "" {
		file, err := os.Open(opts.inputPath)
		if err != nil {
			return app.Report{}, fmt.Errorf("无法打开输入文件 %s: %w", opts.inputPath, err)
		}
		defer file.Close()
		in = file
	}

	if opts.dryRun {
		report, err := app.Run(cfg, in, renderer.NewRecorder(), logger)
		if err != nil {
			return report, err
		}
		return report, writeDebug(report.Layout, opts.debugPath)
	}

	if err := os.MkdirAll(filepath.Dir(opts.outputPath), 0o755); err != nil {
		return app.Report{}, fmt.Errorf("创建输出目录失败: %w", err)
	}
	out, err := os.Create(opts.outputPath)
	if err != nil {
		return app.Report{}, fmt.Errorf("创建输出文件失败: %w", err)
	}
	sink, err := newSink(cfg, out)
	if err != nil {
		out.Close()
		os.Remove(opts.outputPath)
		return app.Report{}, err
	}

	report, err := runSink(cfg, in, sink, logger)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("写入输出文件失败: %w", cerr)
	}
	if err != nil {
		os.Remove(opts.outputPath)
		return report, err
	}
	return report, writeDebug(report.Layout, opts.debugPath)
}

// runSink 执行 app.Run；在 Emit 之前失败时由这里关闭 sink，输出随后会被删除，关闭错误只记日志。
func runSink(cfg *config.Config, in io.Reader, sink renderer.Sink, logger *slog.Logger) (app.Report, error) {
	report, err := app.Run(cfg, in, sink, logger)
	if err != nil && report.Layout == nil {
		if cerr := sink.Close(); cerr != nil && logger != nil {
			logger.Debug("close abandoned sink", slog.String("error", cerr.Error()))
		}
	}
	return report, err
}

// newSink 根据配置的输出格式创建 sink。
func newSink(cfg *config.Config, w io.Writer) (renderer.Sink, error) {
	switch cfg.Output.Format {
	case config.FormatXLSX:
		return xlsxrenderer.New(w, xlsxrenderer.Options{
			Sheet:       cfg.Output.Sheet,
			Paper:       cfg.Output.Paper,
			RowsPerPage: cfg.Grid.RowsPerPage,
		})
	case config.FormatPDF:
		return canvasrenderer.New(w, canvasrenderer.Options{
			FontPath:    cfg.Output.Font,
			Paper:       cfg.Output.Paper,
			RowsPerPage: cfg.Grid.RowsPerPage,
			Title:       "hanzicards",
			Compose:     cfg.Card.Compose(),
		})
	default:
		return nil, fmt.Errorf("不支持的输出格式：%s", cfg.Output.Format)
	}
}

func writeDebug(result *layout.Result, debugPath string) error {
	if debugPath == "" || result == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

func printSummary(w io.Writer, report app.Report, opts options) {
	fmt.Fprintln(w, titleStyle.Render("hanzicards"))
	fmt.Fprintln(w, okStyle.Render(fmt.Sprintf("已放置 %d 张卡片：%d 个 spread，%d 页，%d 行",
		report.Placed, report.Spreads, report.Pages, report.Rows)))
	if opts.dryRun {
		fmt.Fprintln(w, dimStyle.Render("dry-run：未写出文件"))
	} else if report.Layout != nil {
		fmt.Fprintln(w, dimStyle.Render("输出："+opts.outputPath))
	}
	for _, f := range report.Failures {
		fmt.Fprintln(w, failStyle.Render(f.String()))
	}
}
