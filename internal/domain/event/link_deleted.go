package event

// LinkDeleted is raised when an owner removes one of their links.
type LinkDeleted struct {
	Base
	ShortCode string
	LinkID    string
	OwnerID   string
}

// NewLinkDeleted creates a new LinkDeleted event.
func NewLinkDeleted(shortCode, linkID, ownerID string) LinkDeleted {
	return LinkDeleted{
		Base:      NewBase(shortCode),
		ShortCode: shortCode,
		LinkID:    linkID,
		OwnerID:   ownerID,
	}
}

// EventName returns the event name.
func (e LinkDeleted) EventName() string {
	return "link.deleted"
}
