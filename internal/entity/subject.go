package entity

// Observer reacts to a sale state broadcast by a listing. Update is invoked
// synchronously with the listing and its current finished flag; the caller
// consumes no result, side effects are the observer's own business.
type Observer interface {
	Update(listing *Listing, finished bool)
}

// MessageDispatcher delivers human-readable notification lines.
type MessageDispatcher interface {
	Send(messages []string) error
}

type subject interface {
	Register(observer Observer)
	Unregister(observer Observer)
	notifyAll()
}
