package service

import (
	"context"
	"encoding/json"
	"log"

	"tableside/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer reacts to menu_imported events by re-reading the menu and warming
// the cached copy other views serve from.
type Consumer struct {
	Reader *kafka.Reader
	Menu   MenuRepository
	Cache  MenuCacheWriter
}

func NewConsumer(reader *kafka.Reader, menu MenuRepository, cache MenuCacheWriter) *Consumer {
	return &Consumer{Reader: reader, Menu: menu, Cache: cache}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting menu import consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Menu import consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == domain.EventMenuImported {
			c.ProcessMenuImported(ctx, msg)
		}
	}
}

func (c *Consumer) ProcessMenuImported(ctx context.Context, msg domain.KafkaMessage) {
	if msg.Type != domain.EventMenuImported || msg.UserID == "" {
		return
	}
	log.Printf("Processing menu import: user=%s dishes=%d repaired=%v",
		msg.UserID, msg.DishCount, msg.Repaired)

	dishes, _, err := c.Menu.GetDishes(msg.UserID)
	if err != nil {
		log.Printf("Error reloading menu for %s: %v", msg.UserID, err)
		return
	}

	payload, err := json.Marshal(dishes)
	if err != nil {
		log.Printf("Error encoding menu for %s: %v", msg.UserID, err)
		return
	}
	if err := c.Cache.SetMenu(ctx, msg.UserID, payload); err != nil {
		log.Printf("Error warming menu cache for %s: %v", msg.UserID, err)
		return
	}

	log.Printf("Menu cache refreshed for user %s", msg.UserID)
}
