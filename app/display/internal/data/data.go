package data

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"

	"github.com/iWorld-y/prompt_radar/app/display/internal/conf"
)

// ProviderSet 是数据层的 Provider 集合
var ProviderSet = wire.NewSet(NewBackend)

var (
	// ErrUnreachable 后端无法连接（拒绝连接、超时等传输层错误）
	ErrUnreachable = errors.New("backend unreachable")
	// ErrInvalidBody 后端返回的不是 JSON
	ErrInvalidBody = errors.New("backend returned invalid json")
)

// Reply 后端原样返回的状态码和 JSON 内容
type Reply struct {
	Status int
	Body   json.RawMessage
}

// Backend 后端 API 的转发客户端
type Backend struct {
	baseURL string
	cc      *http.Client
	log     *log.Helper
}

// NewBackend 创建后端客户端
func NewBackend(c *conf.Backend, logger log.Logger) (*Backend, func(), error) {
	baseURL := strings.TrimRight(c.BaseUrl, "/")
	if baseURL == "" {
		return nil, nil, errors.New("backend base_url is empty")
	}

	cc, err := http.NewClient(
		context.Background(),
		http.WithEndpoint(baseURL),
		http.WithTimeout(conf.TimeoutOr(c.Timeout, 130*time.Second)),
		// 非 2xx 响应也要原样转发
		http.WithErrorDecoder(func(context.Context, *nethttp.Response) error { return nil }),
	)
	if err != nil {
		return nil, nil, err
	}

	helper := log.NewHelper(logger)
	cleanup := func() {
		helper.Info("closing the backend client")
		cc.Close()
	}
	return &Backend{baseURL: baseURL, cc: cc, log: helper}, cleanup, nil
}

// Forward 把请求转发到后端同名路径
func (b *Backend) Forward(ctx context.Context, method, path string, body []byte) (*Reply, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := nethttp.NewRequestWithContext(ctx, method, b.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.cc.Do(req)
	if err != nil {
		b.log.WithContext(ctx).Errorf("backend %s %s: %v", method, path, err)
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: status %d", ErrInvalidBody, resp.StatusCode)
	}
	return &Reply{Status: resp.StatusCode, Body: data}, nil
}

// Health 查询后端健康状态
func (b *Backend) Health(ctx context.Context) (json.RawMessage, error) {
	reply, err := b.Forward(ctx, nethttp.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	return reply.Body, nil
}
