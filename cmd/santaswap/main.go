package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kringle/santaswap/internal/common/clock"
	"github.com/kringle/santaswap/internal/common/uuid"
	"github.com/kringle/santaswap/internal/draw"
	"github.com/kringle/santaswap/internal/handlers/httpapi"
	"github.com/kringle/santaswap/internal/models"
	assignmentRepo "github.com/kringle/santaswap/internal/repositories/assignment"
	configRepo "github.com/kringle/santaswap/internal/repositories/config"
	participantRepo "github.com/kringle/santaswap/internal/repositories/participant"
	voteRepo "github.com/kringle/santaswap/internal/repositories/vote"
	gameService "github.com/kringle/santaswap/internal/services/game"
	guessService "github.com/kringle/santaswap/internal/services/guess"
	voteService "github.com/kringle/santaswap/internal/services/vote"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := &Config{}
	if err := newCmd(cfg).ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func serve(ctx context.Context, cfg *Config) error {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	defer redisClient.Close()

	// Missing Redis is the one fatal startup condition
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis at %s: %v", cfg.redisAddr, err)
	}

	configs, err := configRepo.NewRedis(&configRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create config repository: %v", err)
	}

	participants, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create participant repository: %v", err)
	}

	assignments, err := assignmentRepo.NewRedis(&assignmentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create assignment repository: %v", err)
	}

	votes, err := voteRepo.NewRedis(&voteRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create vote repository: %v", err)
	}

	clk := &clock.DefaultClock{}
	uuids := uuid.New()
	randomizer := draw.New(&draw.Config{})

	gameSvc, err := gameService.New(&gameService.Config{
		DefaultMode:     models.GameMode(cfg.gameMode),
		ConfigRepo:      configs,
		ParticipantRepo: participants,
		AssignmentRepo:  assignments,
		VoteRepo:        votes,
		Randomizer:      randomizer,
		Clock:           clk,
		UUIDGenerator:   uuids,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	guessSvc, err := guessService.New(&guessService.Config{
		PrizeCutoff:     cfg.prizeCutoff,
		ConfigRepo:      configs,
		ParticipantRepo: participants,
		AssignmentRepo:  assignments,
		Clock:           clk,
	})
	if err != nil {
		log.Fatalf("Failed to create guess service: %v", err)
	}

	voteSvc, err := voteService.New(&voteService.Config{
		ConfigRepo:      configs,
		ParticipantRepo: participants,
		VoteRepo:        votes,
		GuessService:    guessSvc,
		Clock:           clk,
		UUIDGenerator:   uuids,
	})
	if err != nil {
		log.Fatalf("Failed to create vote service: %v", err)
	}

	handler, err := httpapi.New(&httpapi.Config{
		GameService:  gameSvc,
		GuessService: guessSvc,
		VoteService:  voteSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	server := &http.Server{
		Addr:    cfg.listenAddr(),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("santaswap listening on %s", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}

	log.Println("Server has been shut down")
	return nil
}
