package server

import (
	"embed"
	"io/fs"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"

	"github.com/iWorld-y/prompt_radar/app/display/internal/conf"
	"github.com/iWorld-y/prompt_radar/app/display/internal/service"
)

// ProviderSet 是展示服务的 HTTP Provider 集合
var ProviderSet = wire.NewSet(NewHTTPServer)

//go:embed assets/*
var assets embed.FS

// static assets 目录本身，路径在编译期固定
var static = mustSub(assets, "assets")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

func NewHTTPServer(c *conf.Server, s *service.ProxyService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
	}
	if c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		// 后端分析可能持续一两分钟
		opts = append(opts, http.Timeout(conf.TimeoutOr(c.Http.Timeout, 150*time.Second)))
	}

	srv := http.NewServer(opts...)

	r := srv.Route("/")
	r.POST("/api/analyze", s.Analyze)
	r.POST("/api/generate-prompts", s.GeneratePrompts)
	r.POST("/api/final-prompt", s.FinalPrompt)
	r.GET("/api/strategies", s.Strategies)
	r.GET("/health", s.Health)

	helper := log.NewHelper(logger)
	srv.HandlePrefix("/static/", nethttp.StripPrefix("/static/", nethttp.FileServer(nethttp.FS(static))))
	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		content, err := fs.ReadFile(static, "index.html")
		if err != nil {
			helper.Errorf("read index.html: %v", err)
			nethttp.Error(w, "index not found", nethttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(content); err != nil {
			helper.Warnf("write index.html: %v", err)
		}
	})

	return srv
}
