package entity

import (
	"fmt"

	"gorm.io/gorm"
)

type Listing struct {
	gorm.Model
	Address          string `json:"address" gorm:"size:1024;not null"`
	District         string `json:"district" gorm:"size:100"`
	Rooms            int    `json:"rooms" gorm:"default:0;not null"`
	Price            int64  `json:"price" gorm:"default:0;not null"`
	Finished         bool   `json:"finished" gorm:"default:false;not null"`
	NotificationSent bool   `json:"-" gorm:"default:false"`

	observers []Observer
}

var _ subject = (*Listing)(nil)

// Register appends the observer to the notification sequence unless the same
// reference is already registered; duplicate registration is a silent no-op.
func (l *Listing) Register(observer Observer) {
	for _, o := range l.observers {
		if o == observer {
			return
		}
	}
	l.observers = append(l.observers, observer)
}

// Unregister removes the observer by reference identity. Unknown observer is
// a no-op.
func (l *Listing) Unregister(observer Observer) {
	for i, o := range l.observers {
		if o == observer {
			l.observers = append(l.observers[:i], l.observers[i+1:]...)
			return
		}
	}
}

// SetFinished stores the flag and broadcasts to the registered observers.
// The broadcast fires on every write, even when the value did not change.
func (l *Listing) SetFinished(finished bool) {
	l.Finished = finished
	l.notifyAll()
}

// notifyAll invokes every registered observer in registration order. Observer
// failures are not isolated here.
func (l *Listing) notifyAll() {
	for _, observer := range l.observers {
		observer.Update(l, l.Finished)
	}
}

func (l *Listing) FormatPublished() string {
	return fmt.Sprintf("Intermediary: publishing the updated listing %q (%s, %d rooms)",
		l.Address, l.District, l.Rooms)
}

func (l *Listing) FormatBuyersCall() string {
	return fmt.Sprintf("Intermediary: calling prospective buyers about %q", l.Address)
}

// FormatBrief is a plain-text description of the listing, used as the prompt
// payload for announcement copy.
func (l *Listing) FormatBrief() string {
	return fmt.Sprintf("address: %s\ndistrict: %s\nrooms: %d\nprice: %d",
		l.Address, l.District, l.Rooms, l.Price)
}
