// Command issuetoken signs a bearer token for local testing of the API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/pkg/auth"
)

type options struct {
	Secret string `env:"JWT_SECRET" envDefault:"change-me"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	_ = godotenv.Load()
	var opts options
	if err := env.Parse(&opts); err != nil {
		log.Fatal().Err(err).Msg("can't read environment")
	}

	userID := flag.Int("user", 0, "user id")
	role := flag.String("role", string(domain.RoleRegular), "regular, cashier, manager or superuser")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	actor := domain.Actor{UserID: *userID, Role: domain.Role(*role)}
	token, err := auth.NewJWTService(opts.Secret).GenerateJWT(actor, time.Now().Add(*ttl))
	if err != nil {
		log.Fatal().Err(err).Int("user", *userID).Str("role", *role).Msg("can't sign token")
	}
	log.Info().Int("user", *userID).Str("role", *role).Dur("ttl", *ttl).Msg("token issued")
	fmt.Println(token)
}
