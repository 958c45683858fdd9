package service

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"

	"github.com/iWorld-y/prompt_radar/app/display/internal/data"
)

// ProviderSet 是服务层的 Provider 集合
var ProviderSet = wire.NewSet(NewProxyService)

const unreachableMessage = "백엔드 서버에 연결할 수 없습니다. 서버가 실행 중인지 확인하세요."

// ProxyService 把前端请求转发给后端 API
type ProxyService struct {
	backend *data.Backend
	log     *log.Helper
}

func NewProxyService(backend *data.Backend, logger log.Logger) *ProxyService {
	return &ProxyService{backend: backend, log: log.NewHelper(logger)}
}

// Analyze POST /api/analyze
func (s *ProxyService) Analyze(ctx http.Context) error {
	return s.forward(ctx, nethttp.MethodPost, "/api/analyze")
}

// GeneratePrompts POST /api/generate-prompts
func (s *ProxyService) GeneratePrompts(ctx http.Context) error {
	return s.forward(ctx, nethttp.MethodPost, "/api/generate-prompts")
}

// FinalPrompt POST /api/final-prompt
func (s *ProxyService) FinalPrompt(ctx http.Context) error {
	return s.forward(ctx, nethttp.MethodPost, "/api/final-prompt")
}

// Strategies GET /api/strategies
func (s *ProxyService) Strategies(ctx http.Context) error {
	return s.forward(ctx, nethttp.MethodGet, "/api/strategies")
}

// Health 前端自身健康，附带后端状态
func (s *ProxyService) Health(ctx http.Context) error {
	backend, err := s.backend.Health(ctx)
	if err != nil {
		s.log.WithContext(ctx).Warnf("backend health: %v", err)
		return ctx.JSON(nethttp.StatusServiceUnavailable, map[string]any{
			"frontend": "healthy",
			"backend":  "unhealthy",
		})
	}
	return ctx.JSON(nethttp.StatusOK, map[string]any{
		"frontend": "healthy",
		"backend":  backend,
	})
}

func (s *ProxyService) forward(ctx http.Context, method, path string) error {
	var body []byte
	if method == nethttp.MethodPost {
		raw, err := io.ReadAll(ctx.Request().Body)
		if err != nil {
			return s.fail(ctx, err)
		}
		if !json.Valid(raw) {
			return ctx.JSON(nethttp.StatusBadRequest, map[string]string{"error": "잘못된 JSON 요청입니다."})
		}
		body = raw
	}

	reply, err := s.backend.Forward(ctx, method, path, body)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Blob(reply.Status, "application/json", reply.Body)
}

func (s *ProxyService) fail(ctx http.Context, err error) error {
	if errors.Is(err, data.ErrUnreachable) {
		return ctx.JSON(nethttp.StatusServiceUnavailable, map[string]string{"error": unreachableMessage})
	}
	s.log.WithContext(ctx).Errorf("proxy: %v", err)
	return ctx.JSON(nethttp.StatusInternalServerError, map[string]string{"error": err.Error()})
}
