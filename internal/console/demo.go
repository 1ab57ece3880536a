package console

import (
	"log/slog"

	"github.com/realtydesk/estate-notify/internal/dispatch"
	"github.com/realtydesk/estate-notify/internal/entity"
)

type DemoCommand struct {
	dispatcher entity.MessageDispatcher
}

func NewDemoCommand() *DemoCommand {
	cmd := DemoCommand{dispatcher: dispatch.NewConsole(nil)}
	return &cmd
}

func (cmd *DemoCommand) Name() string {
	return "demo"
}

func (cmd *DemoCommand) Description() string {
	return "runs the listing notification scenario in memory, without a database"
}

// Run builds a listing with an intermediary and a customer registered, then
// marks the construction finished once. The observers produce the whole
// observable output.
func (cmd *DemoCommand) Run() error {
	slog.Info("running the listing notification scenario")

	listing := entity.Listing{
		Address:  "24 Cedar Grove",
		District: "Riverside",
		Rooms:    3,
		Price:    3_000_000,
	}

	listing.Register(entity.NewIntermediaryObserver(cmd.dispatcher))
	listing.Register(entity.NewCustomerObserver(cmd.dispatcher))

	listing.SetFinished(true)

	slog.Info("scenario finished")

	return nil
}
