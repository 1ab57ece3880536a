package console

import (
	"errors"
	"log/slog"

	"github.com/realtydesk/estate-notify/internal/config"
	"github.com/realtydesk/estate-notify/internal/copywriter"
	"github.com/realtydesk/estate-notify/internal/dispatch"
	"github.com/realtydesk/estate-notify/internal/entity"
	"github.com/realtydesk/estate-notify/internal/storage"
	"gorm.io/gorm"
)

type ListingAnnounceCommand struct {
}

func NewListingAnnounceCommand() *ListingAnnounceCommand {
	cmd := ListingAnnounceCommand{}
	return &cmd
}

func (cmd *ListingAnnounceCommand) Name() string {
	return "listing:announce"
}

func (cmd *ListingAnnounceCommand) Description() string {
	return "drafts announcement copy for finished listings with ChatGPT"
}

func (cmd *ListingAnnounceCommand) Run() error {
	slog.Info("drafting announcements for finished listings")
	conf := config.GetConfig()

	manager := storage.NewManager(conf.DbConnectionString)
	if err := manager.Connect(); err != nil {
		return err
	}

	var listings []entity.Listing
	if result := manager.DB().Where(&entity.Listing{Finished: true}).
		Where("notification_sent = ?", false).Find(&listings); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Info("No finished listings awaiting announcement, exiting")
			return nil
		}
		return result.Error
	}
	if len(listings) == 0 {
		slog.Info("No finished listings awaiting announcement, exiting")
		return nil
	}

	slog.Info("Found finished listings", "listings_count", len(listings))

	writer := copywriter.NewCopywriter(conf.OpenAIApiKey, conf.OpenAILanguageModel)
	dispatcher := dispatch.NewConsole(nil)
	for i := range listings {
		listing := &listings[i]

		announcement, err := writer.NewAnnouncementCompletion(listing.FormatBrief())
		if err != nil {
			return err
		}
		if err = dispatcher.Send([]string{*announcement}); err != nil {
			return err
		}

		listing.NotificationSent = true
		if result := manager.DB().Save(listing); result.Error != nil {
			return result.Error
		}
		slog.Debug("announcement drafted", "listing_id", listing.ID)
	}

	slog.Info("all announcements drafted", "listings_count", len(listings))

	return nil
}
