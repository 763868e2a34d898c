package main

import (
	"context"
	"log"

	"github.com/silverhold/codehub-backend/config"
	authrepo "github.com/silverhold/codehub-backend/internal/auth/repository"
	authsvc "github.com/silverhold/codehub-backend/internal/auth/service"
	"github.com/silverhold/codehub-backend/internal/bootstrap"
	catalogrepo "github.com/silverhold/codehub-backend/internal/catalog/repository"
	catalogsvc "github.com/silverhold/codehub-backend/internal/catalog/service"
	chatrepo "github.com/silverhold/codehub-backend/internal/chat/repository"
	chatsvc "github.com/silverhold/codehub-backend/internal/chat/service"
	"github.com/silverhold/codehub-backend/internal/retention"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("failed to open redis: %v", err)
	}
	defer rdb.Close()

	catalog := catalogsvc.NewCatalogService(catalogrepo.NewProjectRepository(rdb))
	chat := chatsvc.NewChatService(chatrepo.NewMessageRepository(rdb), cfg.Chat.ReplyDelay, authsvc.ChatReplySender())
	auth := authsvc.NewAuthService(authrepo.NewSessionRepository(rdb))

	// Restore persisted state; each loader degrades to defaults on failure.
	catalog.Load(ctx)
	chat.Load(ctx)
	auth.Load(ctx)

	scheduler := retention.NewScheduler(chat, cfg.Retention.MaxMessages)
	scheduler.Start()
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "codehub-backend",
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Redis:          rdb,
		Catalog:        catalog,
		Chat:           chat,
		Auth:           auth,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
