package router

import (
	"github.com/dwisetya/blockchain-api/internal/application"
	"github.com/dwisetya/blockchain-api/internal/container"
	pginfra "github.com/dwisetya/blockchain-api/internal/infrastructure/postgres"
	handlers "github.com/dwisetya/blockchain-api/internal/interface/http"
	"github.com/dwisetya/blockchain-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	repo := pginfra.NewUserRepository(container.GetPGPool())

	authSvc := application.NewAuthService(repo, container.GetJWT(), logger)
	userSvc := application.NewUserService(repo, logger)
	ethSvc := application.NewEthereumService(container.GetEthClient(), container.GetWallet(), cfg.EthChainID, logger)
	ethSvc.ConfirmTimeout = cfg.EthConfirmTimeout

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler()))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewEthereumModule(handlers.NewEthereumHandler(ethSvc, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
