// Command seed writes the built-in course catalog to MongoDB. The server
// prefers a seeded catalog over the built-in one, so editing the collection
// and restarting changes recommendations without a redeploy.
package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careercompass/internal/catalog"
	"careercompass/internal/config"
	"careercompass/internal/logging"
	"careercompass/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(cfg.Logging)
	log := logging.Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)

	// Validate before writing so a bad edit never reaches the collection
	courses, err := catalog.DefaultCourseCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("built-in course catalog is invalid")
	}

	repo := repository.NewCourseRepo(client.Database(cfg.Mongo.Database))
	if err := repo.ReplaceAll(ctx, courses.All()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed courses")
	}

	n, err := repo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count courses")
	}
	log.Info().Int64("courses", n).Str("database", cfg.Mongo.Database).Msg("course catalog seeded")
}
