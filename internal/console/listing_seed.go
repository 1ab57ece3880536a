package console

import (
	"log/slog"

	"github.com/realtydesk/estate-notify/internal/config"
	"github.com/realtydesk/estate-notify/internal/entity"
	"github.com/realtydesk/estate-notify/internal/storage"
)

type ListingSeedCommand struct {
}

func NewListingSeedCommand() *ListingSeedCommand {
	cmd := ListingSeedCommand{}
	return &cmd
}

func (cmd *ListingSeedCommand) Name() string {
	return "listing:seed"
}

func (cmd *ListingSeedCommand) Description() string {
	return "inserts sample listings into the database"
}

func (cmd *ListingSeedCommand) Run() error {
	slog.Info("seeding sample listings")

	conf := config.GetConfig()
	manager := storage.NewManager(conf.DbConnectionString)
	if err := manager.Connect(); err != nil {
		return err
	}

	samples := []entity.Listing{
		{Address: "24 Cedar Grove", District: "Riverside", Rooms: 3, Price: 3_000_000},
		{Address: "7 Quarry Lane", District: "Old Town", Rooms: 2, Price: 2_400_000},
		{Address: "132 Harbour View", District: "Riverside", Rooms: 4, Price: 5_100_000},
	}

	for _, sample := range samples {
		listing := sample
		if result := manager.DB().Where(&entity.Listing{Address: sample.Address}).
			FirstOrCreate(&listing); result.Error != nil {
			return result.Error
		}
		slog.Debug("seeded listing", "address", listing.Address, "listing_id", listing.ID)
	}

	slog.Info("sample listings seeded", "listings_count", len(samples))

	return nil
}
