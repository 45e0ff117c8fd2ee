// seed_admin crea el usuario administrador inicial si todavía no existe.
//
// Uso: ADMIN_EMAIL=... ADMIN_PASSWORD=... go run ./cmd/seed_admin
// ADMIN_USERNAME es opcional (por defecto "admin").
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/infrastructure/storage"
	"github.com/jhoicas/comercio-api/pkg/config"
	"github.com/jhoicas/comercio-api/pkg/logger"
	"github.com/jhoicas/comercio-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_EMAIL y ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar storage")
	}
	defer st.Close()

	uc := usecase.NewUserUseCase(st.Repos.Users, password.NewHasher(bcrypt.DefaultCost))
	created, err := uc.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	if !created {
		log.Info().Str("email", cfg.Admin.Email).Msg("el usuario ya existe, nada que hacer")
		return
	}
	log.Info().Str("username", cfg.Admin.Username).Str("email", cfg.Admin.Email).Msg("administrador creado")
}
