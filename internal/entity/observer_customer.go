package entity

import (
	"fmt"
	"log/slog"
)

const (
	withdrawAmount           = 1_000_000
	defaultPurchaseThreshold = 3_000_000
	maxWithdrawAttempts      = 100
)

// Customer saves up for the listing in fixed withdrawals and buys it as soon
// as the balance covers the price.
type Customer struct {
	dispatcher  MessageDispatcher
	balance     int64
	withdrawals int
	purchased   bool
}

func NewCustomerObserver(dispatcher MessageDispatcher) *Customer {
	return &Customer{
		dispatcher: dispatcher,
	}
}

func (c *Customer) Update(listing *Listing, finished bool) {
	if finished {
		slog.Info("listing finished event fired", "listing_address", listing.Address)
		c.purchase(listing)
	}
}

// purchase withdraws in fixed steps until the balance covers the price. The
// loop is capped so an adversarial price cannot grow it without bound.
func (c *Customer) purchase(listing *Listing) {
	if c.purchased {
		return
	}

	threshold := listing.Price
	if threshold <= 0 {
		threshold = defaultPurchaseThreshold
	}

	for attempt := 0; attempt < maxWithdrawAttempts; attempt++ {
		c.balance += withdrawAmount
		c.withdrawals++
		c.send(fmt.Sprintf("Customer: withdrew %d, balance is %d", withdrawAmount, c.balance))

		if c.balance >= threshold {
			c.purchased = true
			c.send(fmt.Sprintf("Customer: purchased %q for %d after %d withdrawals",
				listing.Address, threshold, c.withdrawals))
			return
		}
	}

	slog.Error("customer gave up on the listing",
		"listing_address", listing.Address,
		"withdrawals", c.withdrawals,
		"balance", c.balance)
}

func (c *Customer) send(message string) {
	if err := c.dispatcher.Send([]string{message}); err != nil {
		slog.Error("customer purchase event error", "error", err)
	}
}

func (c *Customer) Balance() int64 {
	return c.balance
}

func (c *Customer) Withdrawals() int {
	return c.withdrawals
}

func (c *Customer) Purchased() bool {
	return c.purchased
}

// Receipt returns a purchase record for storage, or nil if nothing was
// bought.
func (c *Customer) Receipt(listing *Listing) *Purchase {
	if !c.purchased {
		return nil
	}
	return &Purchase{
		ListingID:   listing.ID,
		Amount:      c.balance,
		Withdrawals: c.withdrawals,
	}
}
