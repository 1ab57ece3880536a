package console

import (
	"errors"
	"log/slog"

	"github.com/realtydesk/estate-notify/internal/config"
	"github.com/realtydesk/estate-notify/internal/dispatch"
	"github.com/realtydesk/estate-notify/internal/entity"
	"github.com/realtydesk/estate-notify/internal/storage"
	"gorm.io/gorm"
)

type ListingFinishCommand struct {
}

func NewListingFinishCommand() *ListingFinishCommand {
	cmd := ListingFinishCommand{}
	return &cmd
}

func (cmd *ListingFinishCommand) Name() string {
	return "listing:finish"
}

func (cmd *ListingFinishCommand) Description() string {
	return "marks stored unfinished listings finished and notifies observers"
}

func (cmd *ListingFinishCommand) Run() error {
	slog.Info("finishing stored listings")

	conf := config.GetConfig()
	manager := storage.NewManager(conf.DbConnectionString)
	if err := manager.Connect(); err != nil {
		return err
	}

	var listings []entity.Listing
	if result := manager.DB().Where("finished = ?", false).Find(&listings); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Info("No unfinished listings found, exiting")
			return nil
		}
		return result.Error
	}
	if len(listings) == 0 {
		slog.Info("No unfinished listings found, exiting")
		return nil
	}

	slog.Info("Found unfinished listings", "listings_count", len(listings))

	dispatcher := dispatch.NewConsole(nil)
	for i := range listings {
		listing := &listings[i]

		customer := entity.NewCustomerObserver(dispatcher)
		listing.Register(entity.NewIntermediaryObserver(dispatcher))
		listing.Register(customer)

		listing.SetFinished(true)

		if result := manager.DB().Save(listing); result.Error != nil {
			return result.Error
		}
		if receipt := customer.Receipt(listing); receipt != nil {
			if result := manager.DB().Create(receipt); result.Error != nil {
				return result.Error
			}
			slog.Debug("purchase recorded",
				"listing_id", listing.ID,
				"amount", receipt.Amount,
				"withdrawals", receipt.Withdrawals)
		}
	}

	slog.Info("all listings finished", "listings_count", len(listings))

	return nil
}
