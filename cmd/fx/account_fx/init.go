package account_fx

import (
	"go.uber.org/fx"
	"travelstar/internal/services"
	"travelstar/pkg/middleware"
)

var Module = fx.Provide(
	services.NewAccountService, provideSessionResolver)

func provideSessionResolver(accountService services.AccountServiceInterface) middleware.SessionResolver {
	return accountService
}
