package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/nmorales-dev/portfolio-backend/api"
	"github.com/nmorales-dev/portfolio-backend/config"
	"github.com/nmorales-dev/portfolio-backend/database"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	props, err := config.New()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if level, err := zerolog.ParseLevel(props.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	client, err := connectMongo(props)
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to MongoDB")
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()
	log.Info().Str("database", props.MongoDatabase).Msg("MongoDB connection established")

	db := database.New(client.Database(props.MongoDatabase))

	if props.SeedOnEmpty {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.Seed(seedCtx, db); err != nil {
			cancel()
			log.Error().Err(err).Msg("Error seeding database")
			os.Exit(1)
		}
		cancel()
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db, props)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// connectMongo establishes and verifies the MongoDB connection.
func connectMongo(props config.Properties) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), props.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(props.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return client, nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
