//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final binary.

package main

import (
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/iWorld-y/prompt_radar/app/display/internal/conf"
	"github.com/iWorld-y/prompt_radar/app/display/internal/data"
	"github.com/iWorld-y/prompt_radar/app/display/internal/server"
	"github.com/iWorld-y/prompt_radar/app/display/internal/service"
)

// initApp init kratos application.
func initApp(*conf.Server, *conf.Backend, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		server.ProviderSet,
		data.ProviderSet,
		service.ProviderSet,
		newApp,
	))
}
