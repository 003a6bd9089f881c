package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"travel_crm/config"
	"travel_crm/internal/global"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.ChatPages,
		global.MongoDB_ColNames.ChatConversations,
		global.MongoDB_ColNames.ChatMessages,
		global.MongoDB_ColNames.ChatWebhookLogs,
		global.MongoDB_ColNames.Bookings,
		global.MongoDB_ColNames.Itineraries,
		global.MongoDB_ColNames.Invoices,
		global.MongoDB_ColNames.InvoiceItems,
		global.MongoDB_ColNames.Contacts,
		global.MongoDB_ColNames.TravelPackages,
		global.MongoDB_ColNames.Hotels,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
