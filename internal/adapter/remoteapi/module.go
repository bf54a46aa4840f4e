package remoteapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/avolkov/clientbase/internal/config"
)

// Module exposes remote portal client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.RemoteAPIAddress, p.Config.RemoteLogin, p.Config.RemotePassword, p.Logger)
}
