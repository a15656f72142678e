package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"tableside/config"
	"tableside/internal/ai"
	httpapi "tableside/internal/api/http"
	"tableside/internal/service"
	"tableside/internal/storage"
)

const eventsTopic = "pos-events"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(eventsTopic)
	defer writer.Close()

	state := storage.NewStateStore(db)
	if err := state.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	occupancy := storage.NewOccupancyCache(rdb, 24*time.Hour)
	menuCache := storage.NewMenuCache(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(writer)

	qr := service.DefaultQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost")}
	menuSvc := service.NewMenuService(state)
	inventorySvc := service.NewInventoryService(state)
	orderSvc := service.NewOrderService(state, qr)
	composerSvc := service.NewComposerService(state, inventorySvc, orderSvc, occupancy, publisher)
	paymentSvc := service.NewPaymentService(orderSvc, occupancy)

	model := ai.NewClient(
		config.Getenv("AI_ENDPOINT", "http://localhost:9090/v1/complete"),
		config.Getenv("AI_API_KEY", ""),
		&http.Client{Timeout: 30 * time.Second},
	)

	reader := config.NewKafkaReader(eventsTopic, "tableside-menu-cache")
	defer reader.Close()
	consumer := service.NewConsumer(reader, state, menuCache)
	go consumer.Start(context.Background())

	handler := &httpapi.Handler{
		Menu:        menuSvc,
		Inventory:   inventorySvc,
		Orders:      orderSvc,
		Composer:    composerSvc,
		Payments:    paymentSvc,
		Occupancy:   occupancy,
		Publisher:   publisher,
		Generator:   model,
		Extractor:   model,
		MenuCSVPath: config.Getenv("MENU_CSV_PATH", "./data/menu.csv"),
	}

	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), httpapi.NewRouter(handler))
}
