package main

import (
	"context"
	"log"
	"time"

	"swaad-sutra/config"
	httpapi "swaad-sutra/internal/api/http"
	"swaad-sutra/internal/notifier"
	"swaad-sutra/internal/service"
	"swaad-sutra/internal/storage"
)

const statusTopic = "order-status"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(statusTopic)
	defer kafkaWriter.Close()

	store := storage.NewPostgresStore(db)
	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	orders := service.NewOrderService(store, cache, publisher, service.SlipQRGenerator{})

	reader := config.NewKafkaReader(statusTopic, "order-notifier")
	defer reader.Close()

	consumer := notifier.NewConsumer(reader, cache, notifier.NewWhatsAppDeepLink())
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(orders)
	httpapi.StartServer(":8080", httpapi.NewRouter(handler))
}
