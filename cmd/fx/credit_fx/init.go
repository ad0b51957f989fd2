package credit_fx

import (
	"go.uber.org/fx"

	"github.com/GAJULASAINATH/MacroVerse/internal/api/controllers"
	"github.com/GAJULASAINATH/MacroVerse/internal/repositories"
	"github.com/GAJULASAINATH/MacroVerse/internal/services"
)

var Module = fx.Provide(
	provideCreditService,
	provideCreditController)

func provideCreditService(userRepo repositories.UserRepository) services.CreditServiceInterface {
	return services.NewCreditService(userRepo)
}

func provideCreditController(creditService services.CreditServiceInterface) *controllers.CreditController {
	return controllers.NewCreditController(creditService)
}
