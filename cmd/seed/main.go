package main

import (
	"context"
	"fmt"
	"sort"

	"desk/config"
	"desk/di"
	"desk/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	res, err := di.InitializeSeeder().Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	log.Info().Int("seats", res.SeatsCreated).Int("holidays", res.HolidaysCreated).Msg("Seeding finished")

	users := make([]string, 0, len(res.Tokens))
	for user := range res.Tokens {
		users = append(users, user)
	}

	sort.Strings(users)

	for _, user := range users {
		fmt.Printf("%-6s Bearer %s\n", user, res.Tokens[user].AccessToken)
	}
}
