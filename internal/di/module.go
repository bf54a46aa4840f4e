package di

import (
	"go.uber.org/fx"

	"github.com/avolkov/clientbase/internal/adapter/remoteapi"
	"github.com/avolkov/clientbase/internal/app"
	"github.com/avolkov/clientbase/internal/config"
	"github.com/avolkov/clientbase/internal/logger"
	"github.com/avolkov/clientbase/internal/pkg/auth"
	"github.com/avolkov/clientbase/internal/server/http/handlers"
	"github.com/avolkov/clientbase/internal/server/http/router"
	"github.com/avolkov/clientbase/internal/storage/postgres"
	"github.com/avolkov/clientbase/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		remoteapi.Module,
		usecase.Module,
		fx.Provide(func(client remoteapi.Client) app.CustomerImporter { return client }),
		fx.Provide(func(facade *app.PortalFacade) handlers.PortalFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
