package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/GAJULASAINATH/MacroVerse/internal/api/controllers"
	"github.com/GAJULASAINATH/MacroVerse/internal/repositories"
	"github.com/GAJULASAINATH/MacroVerse/internal/services"
)

var Module = fx.Provide(
	provideUserRepo,
	provideAccountService,
	provideAccountController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository) services.AccountServiceInterface {
	return services.NewAccountService(userRepo)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
