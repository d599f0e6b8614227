package event

// LinkClicked is raised when a short code is resolved for redirection.
// It carries the request context the analytics recorder enriches.
type LinkClicked struct {
	Base
	ShortCode string
	LinkID    string
	OwnerID   string
	Platform  string
	UserAgent string
	IPAddress string
	Referer   string
}

// NewLinkClicked creates a new LinkClicked event.
func NewLinkClicked(shortCode, linkID, ownerID, platform, userAgent, ipAddress, referer string) LinkClicked {
	return LinkClicked{
		Base:      NewBase(shortCode),
		ShortCode: shortCode,
		LinkID:    linkID,
		OwnerID:   ownerID,
		Platform:  platform,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		Referer:   referer,
	}
}

// EventName returns the event name.
func (e LinkClicked) EventName() string {
	return "link.clicked"
}
