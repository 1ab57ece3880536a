package entity

import (
	"strings"
	"testing"
)

func TestCustomer_PurchasesAfterThreeWithdrawals(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	customer := NewCustomerObserver(dispatcher)
	listing := &Listing{Address: "24 Cedar Grove", Price: 3_000_000}

	customer.Update(listing, true)

	if !customer.Purchased() {
		t.Fatal("Update() did not purchase the listing")
	}
	if customer.Withdrawals() != 3 {
		t.Errorf("Withdrawals() = %d, want 3", customer.Withdrawals())
	}
	if customer.Balance() != 3_000_000 {
		t.Errorf("Balance() = %d, want 3000000", customer.Balance())
	}

	want := []string{
		"Customer: withdrew 1000000, balance is 1000000",
		"Customer: withdrew 1000000, balance is 2000000",
		"Customer: withdrew 1000000, balance is 3000000",
		`Customer: purchased "24 Cedar Grove" for 3000000 after 3 withdrawals`,
	}
	if len(dispatcher.lines) != len(want) {
		t.Fatalf("Update() produced %d lines, want %d", len(dispatcher.lines), len(want))
	}
	for i := range want {
		if dispatcher.lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, dispatcher.lines[i], want[i])
		}
	}
}

func TestCustomer_IgnoresUnfinishedListing(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	customer := NewCustomerObserver(dispatcher)
	listing := &Listing{Address: "24 Cedar Grove", Price: 3_000_000}

	customer.Update(listing, false)

	if customer.Withdrawals() != 0 {
		t.Errorf("Withdrawals() = %d, want 0", customer.Withdrawals())
	}
	if len(dispatcher.lines) != 0 {
		t.Errorf("Update() produced output %q, want none", dispatcher.lines)
	}
}

func TestCustomer_DefaultThresholdWhenPriceUnset(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	customer := NewCustomerObserver(dispatcher)
	listing := &Listing{Address: "7 Quarry Lane"}

	customer.Update(listing, true)

	if !customer.Purchased() {
		t.Fatal("Update() did not purchase the listing")
	}
	if customer.Withdrawals() != 3 {
		t.Errorf("Withdrawals() = %d, want 3", customer.Withdrawals())
	}
}

func TestCustomer_GivesUpAtWithdrawalCap(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	customer := NewCustomerObserver(dispatcher)
	listing := &Listing{
		Address: "132 Harbour View",
		Price:   (maxWithdrawAttempts + 5) * withdrawAmount,
	}

	customer.Update(listing, true)

	if customer.Purchased() {
		t.Error("Update() purchased a listing the cap should have prevented")
	}
	if customer.Withdrawals() != maxWithdrawAttempts {
		t.Errorf("Withdrawals() = %d, want %d", customer.Withdrawals(), maxWithdrawAttempts)
	}
	for _, line := range dispatcher.lines {
		if strings.Contains(line, "purchased") {
			t.Errorf("unexpected purchase line %q", line)
		}
	}
}

func TestCustomer_DoesNotBuyTwice(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	customer := NewCustomerObserver(dispatcher)
	listing := &Listing{Address: "24 Cedar Grove", Price: 3_000_000}

	customer.Update(listing, true)
	linesAfterPurchase := len(dispatcher.lines)

	// A second broadcast must not restart the withdrawal loop.
	customer.Update(listing, true)

	if customer.Withdrawals() != 3 {
		t.Errorf("Withdrawals() = %d, want 3", customer.Withdrawals())
	}
	if len(dispatcher.lines) != linesAfterPurchase {
		t.Errorf("second Update() produced %d extra lines",
			len(dispatcher.lines)-linesAfterPurchase)
	}
}

func TestCustomer_Receipt(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	listing := &Listing{Address: "24 Cedar Grove", Price: 3_000_000}
	listing.ID = 42

	customer := NewCustomerObserver(dispatcher)
	if receipt := customer.Receipt(listing); receipt != nil {
		t.Errorf("Receipt() before purchase = %+v, want nil", receipt)
	}

	customer.Update(listing, true)

	receipt := customer.Receipt(listing)
	if receipt == nil {
		t.Fatal("Receipt() after purchase = nil")
	}
	if receipt.ListingID != 42 {
		t.Errorf("ListingID = %d, want 42", receipt.ListingID)
	}
	if receipt.Amount != 3_000_000 {
		t.Errorf("Amount = %d, want 3000000", receipt.Amount)
	}
	if receipt.Withdrawals != 3 {
		t.Errorf("Withdrawals = %d, want 3", receipt.Withdrawals)
	}
}
