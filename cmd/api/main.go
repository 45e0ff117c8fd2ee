// @title           Comercio API
// @version         1.0
// @description     API de comercio: usuarios, clientes, productos y pedidos.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
// @description     Escribir "Bearer" seguido de un espacio y el JWT.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jhoicas/comercio-api/docs"
	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/comercio-api/internal/interfaces/http"
	"github.com/jhoicas/comercio-api/pkg/config"
	"github.com/jhoicas/comercio-api/pkg/jwt"
	"github.com/jhoicas/comercio-api/pkg/logger"
	"github.com/jhoicas/comercio-api/pkg/password"
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
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar storage")
	}
	defer st.Close()

	tokens, err := jwt.NewService(jwt.Config{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
		Issuer: cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("servicio JWT")
	}
	hasher := password.NewHasher(bcrypt.DefaultCost)

	userUC := usecase.NewUserUseCase(st.Repos.Users, hasher)
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		created, err := userUC.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("crear administrador inicial")
		}
		if created {
			log.Info().Str("username", cfg.Admin.Username).Msg("administrador inicial creado")
		}
	}

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		UserUC:    userUC,
		ClientUC:  usecase.NewClientUseCase(st.Repos.Clients),
		ProductUC: usecase.NewProductUseCase(st.Repos.Products),
		OrderUC:   usecase.NewOrderUseCase(st.Tx, st.Repos.Orders, cfg.Orders.StrictProducts),
		AuthUC:    auth.NewAuthUseCase(st.Repos.Users, hasher, tokens),
		Guard:     auth.NewGuard(tokens, st.Repos.Users, log),
		Log:       log,
		Metrics:   httpRouter.NewMetrics(),
		Ping:      st.Ping,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercio API",
	}))

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

	log.Info().Msg("aplicación detenida")
}
