package entity

import (
	"log/slog"
)

// Intermediary publishes the listing and rings prospective buyers once the
// construction is finished.
type Intermediary struct {
	dispatcher MessageDispatcher
}

func NewIntermediaryObserver(dispatcher MessageDispatcher) *Intermediary {
	return &Intermediary{
		dispatcher: dispatcher,
	}
}

func (i *Intermediary) Update(listing *Listing, finished bool) {
	if finished {
		slog.Info("listing finished event fired", "listing_address", listing.Address)
		notification := []string{listing.FormatPublished(), listing.FormatBuyersCall()}
		if err := i.dispatcher.Send(notification); err != nil {
			slog.Error("listing finished event error", "error", err)
		}
	}
}
