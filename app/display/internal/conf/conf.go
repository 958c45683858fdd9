package conf

import "time"

type Bootstrap struct {
	Server  *Server  `json:"server"`
	Backend *Backend `json:"backend"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// Backend 后端 API 服务
type Backend struct {
	BaseUrl string `json:"base_url"`
	Timeout string `json:"timeout"`
}

// TimeoutOr 解析超时配置，为空或非法时返回 def
func TimeoutOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
