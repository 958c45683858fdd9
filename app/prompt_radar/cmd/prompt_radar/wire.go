//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final binary.

package main

import (
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/internal/biz"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/internal/data"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/internal/server"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/internal/service"
	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/config"
)

// initApp init kratos application.
func initApp(*config.Config, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		server.ProviderSet,
		data.ProviderSet,
		biz.ProviderSet,
		service.ProviderSet,
		newApp,
	))
}
