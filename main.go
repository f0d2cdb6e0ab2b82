package main

import (
	"context"
	"log"
	"net/http"

	"lexbot/api"
	"lexbot/chatbot"
	"lexbot/common"
	"lexbot/config"
	"lexbot/events"
	"lexbot/retrieval"
	"lexbot/session"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.CohereAPIKey == "" {
		log.Fatal("COHERE_API_KEY not set; create a .env file or export it")
	}

	cache := retrieval.NewFeedCache(cfg.RedisAddr, cfg.RedisPass, cfg.FeedCacheTTL)
	if cache == nil {
		log.Printf("Feed cache not configured; every feed fetch goes to the network")
	}
	defer cache.Close()

	retriever := retrieval.NewRetriever(cache)
	store := session.NewStore()
	generator := chatbot.NewCohereGenerator(cfg.CohereAPIKey, cfg.CohereModel)

	publisher, err := events.NewPublisher(cfg.KafkaBrokers, cfg.ChatEventTopic)
	if err != nil {
		log.Fatalf("Failed to init Kafka publisher: %v", err)
	}
	if publisher == nil {
		log.Printf("Kafka not configured; chat events disabled")
	}
	defer publisher.Close()

	bot := chatbot.New(store, retriever, generator, publisher)

	svc := api.Services{
		Store:    store,
		Chatbot:  bot,
		Feeds:    retriever,
		S3Bucket: cfg.S3Bucket,
		S3Prefix: cfg.S3Prefix,
	}

	if cfg.S3Bucket != "" {
		s3c, err := common.NewS3(context.Background(), common.S3Config{Region: cfg.S3Region})
		if err != nil {
			log.Printf("Warning: failed to init S3 client: %v (transcript export disabled)", err)
		} else {
			svc.S3 = s3c
		}
	} else {
		log.Printf("S3 not configured; transcript export disabled")
	}

	r := api.NewRouter(svc)
	addr := ":" + cfg.Port

	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET    /api/health")
	log.Println("  POST   /api/chat")
	log.Println("  GET    /api/sessions")
	log.Println("  DELETE /api/sessions/:id")
	log.Println("  POST   /api/sessions/:id/export")
	log.Println("  GET    /api/feeds")
	log.Println("  GET    /api/feeds/search")
	log.Println("  GET    /api/feeds/:key")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
