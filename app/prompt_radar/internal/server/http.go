package server

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"

	pb "github.com/iWorld-y/prompt_radar/app/prompt_radar/api/prompt/v1"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/internal/service"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/config"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/metrics"
)

// ProviderSet 服务器 Provider 集合
var ProviderSet = wire.NewSet(NewHTTPServer)

func NewHTTPServer(c *config.Config, s *service.PromptService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
		http.Filter(RequestID, CORS),
		http.ErrorEncoder(encodeError),
		http.Address(c.Server.Addr()),
	}
	if c.Server.Timeout > 0 {
		opts = append(opts, http.Timeout(c.Server.Timeout))
	}

	srv := http.NewServer(opts...)
	pb.RegisterPromptHTTPServer(srv, s)
	srv.Handle("/metrics", metrics.Handler())
	return srv
}

// encodeError 错误统一输出为 {"detail": "..."}
func encodeError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	se := errors.FromError(err)
	body, merr := json.Marshal(map[string]string{"detail": se.Message})
	if merr != nil {
		w.WriteHeader(nethttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(int(se.Code))
	_, _ = w.Write(body)
}
