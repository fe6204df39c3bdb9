package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	config "github.com/anjiri1684/trivia_api/configs"
	"github.com/anjiri1684/trivia_api/database"
	"github.com/anjiri1684/trivia_api/jobs"
	"github.com/anjiri1684/trivia_api/routes"
	"github.com/anjiri1684/trivia_api/services"
	feed "github.com/anjiri1684/trivia_api/websocket"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	log.Println("✅ Database connected successfully")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	log.Println("✅ Database migration successful")

	if cfg.SeedCategories {
		if err := database.SeedCategories(db); err != nil {
			log.Fatalf("🔥 Failed to seed categories: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := feed.NewHub()
	go hub.Run(ctx)

	questionService := services.NewQuestionService(db, hub)
	quizService := services.NewQuizService(db, nil)

	c := cron.New()
	if err := jobs.Schedule(c, cfg.StatsSchedule, questionService); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	c.Start()
	defer c.Stop()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := routes.NewApp(routes.Deps{
		Questions:      questionService,
		Quiz:           quizService,
		Hub:            hub,
		AdminJWTSecret: cfg.AdminJWTSecret,
		PrintRoutes:    true,
	})

	if cfg.AdminJWTSecret == "" {
		log.Println("ADMIN_JWT_SECRET not set, write endpoints are open")
	}

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("✅ Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
