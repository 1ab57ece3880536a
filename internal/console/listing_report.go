package console

import (
	"errors"
	"log/slog"

	"github.com/realtydesk/estate-notify/internal/config"
	"github.com/realtydesk/estate-notify/internal/dispatch"
	"github.com/realtydesk/estate-notify/internal/report"
	"github.com/realtydesk/estate-notify/internal/storage"
	"gorm.io/gorm"
)

type ListingReportCommand struct {
}

func NewListingReportCommand() *ListingReportCommand {
	cmd := ListingReportCommand{}
	return &cmd
}

func (cmd *ListingReportCommand) Name() string {
	return "listing:report"
}

func (cmd *ListingReportCommand) Description() string {
	return "prints a portfolio report of stored listings"
}

func (cmd *ListingReportCommand) Run() error {
	slog.Info("Requesting portfolio")
	conf := config.GetConfig()

	manager := storage.NewManager(conf.DbConnectionString)
	if err := manager.Connect(); err != nil {
		return err
	}
	portfolio := report.NewPortfolio()
	if result := manager.DB().Find(&portfolio.Listings); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Info("No listings found, exiting")
			return nil
		}
		return result.Error
	}

	slog.Info("Found listings", "listings_count", len(portfolio.Listings))

	dispatcher := dispatch.NewConsole(nil)
	return dispatcher.Send(portfolio.Format())
}
