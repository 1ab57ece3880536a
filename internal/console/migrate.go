package console

import (
	"log/slog"

	"github.com/realtydesk/estate-notify/internal/config"
	"github.com/realtydesk/estate-notify/internal/entity"
	"github.com/realtydesk/estate-notify/internal/storage"
)

type MigrateCommand struct {
}

func NewMigrateCommand() *MigrateCommand {
	cmd := MigrateCommand{}
	return &cmd
}

func (cmd *MigrateCommand) Name() string {
	return "migrate"
}

func (cmd *MigrateCommand) Description() string {
	return "migrates GORM database scheme"
}

func (cmd *MigrateCommand) Run() error {
	slog.Info("migrating GORM database scheme")

	conf := config.GetConfig()
	manager := storage.NewManager(conf.DbConnectionString)
	if err := manager.Connect(); err != nil {
		return err
	}
	if err := manager.DB().AutoMigrate(&entity.Listing{}, &entity.Purchase{}); err != nil {
		return err
	}

	slog.Info("successfully migrated GORM database scheme")

	return nil
}
