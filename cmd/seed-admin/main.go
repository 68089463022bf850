// seed-admin crea (o restablece la contraseña de) el usuario administrador inicial.
//
// Uso: go run ./cmd/seed-admin <username> <password>
// Lee la configuración de DB de las mismas variables de entorno que la API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/acastellanos/almacen-api/internal/domain/entity"
	"github.com/acastellanos/almacen-api/internal/infrastructure/postgres"
	"github.com/acastellanos/almacen-api/pkg/config"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "uso: seed-admin <username> <password>")
		os.Exit(1)
	}
	username, password := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewUserRepository(pool)
	existing, err := repo.GetByUsername(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buscar usuario: %v\n", err)
		os.Exit(1)
	}

	if existing != nil {
		_, err = pool.Exec(ctx,
			`UPDATE users SET password_hash = $2, role = $3 WHERE username = $1`,
			username, string(hash), entity.RoleAdmin,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "actualizar admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("password de %q restablecida; rol admin asegurado\n", username)
		return
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := repo.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin %q creado (id %s)\n", username, user.ID)
}
