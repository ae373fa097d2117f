package main

import (
	"log"
	"os"
	"time"

	"tableside/config"
	httpapi "tableside/internal/api/http"
	"tableside/internal/service"
	"tableside/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	sessions := storage.NewRedisSessionStore(rdb, 12*time.Hour)

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter("orders"); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("KAFKA_BROKER not set, order events disabled")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	gate := service.NewAccessGate()
	accounts := service.NewAccountService(repo, sessions)
	catalog := service.NewCatalogService(repo)
	orders := service.NewOrderService(repo, gate, publisher, &service.DefaultQRGenerator{BaseURL: baseURL})

	handler := httpapi.NewHandler(accounts, catalog, orders, gate)
	router := httpapi.NewRouter(handler, sessions)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	httpapi.StartServer(addr, router)
}
