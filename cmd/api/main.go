package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/almacen-pro/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/almacen-pro/internal/interfaces/http"
	"github.com/tu-usuario/almacen-pro/pkg/config"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Todo el estado vive en memoria y se siembra al arrancar.
	users, err := memory.SeedUsers(cfg.Seed.AdminUser, cfg.Seed.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario demo")
	}
	productRepo := memory.NewProductRepository(memory.SeedProducts())
	purchaseRepo := memory.NewPurchaseRepository(memory.SeedPurchases())
	supplierRepo := memory.NewSupplierRepository(memory.SeedSuppliers())
	userRepo := memory.NewUserRepository(users)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	productUC := usecase.NewProductUseCase(productRepo, supplierRepo)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo, productRepo, supplierRepo, pdfGenerator, log)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, purchaseRepo, supplierRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		PurchaseUC:  purchaseUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("servidor detenido")
}
