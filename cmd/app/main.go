package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/GAJULASAINATH/MacroVerse/cmd/fx/account_fx"
	"github.com/GAJULASAINATH/MacroVerse/cmd/fx/ai_fx"
	"github.com/GAJULASAINATH/MacroVerse/cmd/fx/credit_fx"
	"github.com/GAJULASAINATH/MacroVerse/cmd/fx/db_fx"
	"github.com/GAJULASAINATH/MacroVerse/cmd/fx/nutrition_fx"
	"github.com/GAJULASAINATH/MacroVerse/cmd/fx/report_fx"
	"github.com/GAJULASAINATH/MacroVerse/internal/api/controllers"
	"github.com/GAJULASAINATH/MacroVerse/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		credit_fx.Module,
		nutrition_fx.Module,
		report_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5000"
				}
				log.Printf("Starting HTTP server on port %s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	creditController *controllers.CreditController,
	foodController *controllers.FoodController,
	reportController *controllers.ReportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, creditController, foodController, reportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	creditController *controllers.CreditController,
	foodController *controllers.FoodController,
	reportController *controllers.ReportController) {

	r.GET("/", func(c *gin.Context) {
		c.String(200, "MACROVERSE-BACKEND")
	})

	authGroup := r.Group("/auth/user")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	pricingGroup := r.Group("/pricing")
	pricingGroup.Use(middleware.JWTAuthMiddleware())
	pricingGroup.POST("/addCredits", creditController.AddCredits)

	coreGroup := r.Group("/main-core")
	coreGroup.Use(middleware.JWTAuthMiddleware())
	coreGroup.POST("/analyzeFoodImage", foodController.AnalyzeFoodImage)
	coreGroup.POST("/getMonthlyReport", reportController.GetMonthlyReport)
}
