package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"healthrisk/internal/config"
	"healthrisk/internal/monitor"
	"healthrisk/internal/report"
)

// App 聚合核心依赖并驱动服务生命周期。
type App struct {
	cfg      *config.Config
	logger   *zap.Logger
	monitor  *monitor.Service
	renderer *report.Renderer
}

// New 创建 App 实例。
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: 配置不能为空")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	monitorSvc, err := monitor.NewService(logger)
	if err != nil {
		return nil, fmt.Errorf("初始化监控服务失败: %w", err)
	}

	renderer := report.NewRenderer(report.Options{Footer: cfg.Report.Footer}, logger.Named("report"))

	return &App{
		cfg:      cfg,
		logger:   logger,
		monitor:  monitorSvc,
		renderer: renderer,
	}, nil
}

// Handler 构建 HTTP 路由。
func (a *App) Handler() http.Handler {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}

	return newRouter(routerDeps{
		renderer:     a.renderer,
		monitor:      a.monitor,
		logger:       a.logger.Named("http"),
		maxBodyBytes: a.cfg.Server.MaxBodyBytes,
		metricsPath:  metricsPath,
	})
}

// Run 启动 HTTP 服务，阻塞直到 ctx 结束并完成优雅停机。
func (a *App) Run(ctx context.Context) error {
	gin.SetMode(strings.ToLower(a.cfg.Server.Mode))

	addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.Handler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	a.logger.Info("健康风险评估服务已初始化",
		zap.String("environment", a.cfg.App.Environment),
		zap.String("addr", addr),
		zap.Bool("metrics", a.cfg.Metrics.Enabled),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP 服务异常: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("系统收到退出信号，正在停止")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("关闭 HTTP 服务失败: %w", err)
		}
		return nil
	})

	return g.Wait()
}
