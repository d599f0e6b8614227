package domain

import (
	"time"
)

// Platform identifies the channel a tracking link is tagged with.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformSite      Platform = "site"
)

// CampaignPlatforms is the fixed fan-out set: one owner-submitted URL
// always produces exactly one link per platform listed here.
var CampaignPlatforms = []Platform{
	PlatformInstagram,
	PlatformYouTube,
	PlatformTikTok,
	PlatformSite,
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformYouTube, PlatformTikTok, PlatformSite:
		return true
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}

// TrackingLink is one platform variant of a campaign URL.
//
// ShortCode is globally unique and backs public resolution; ID is the
// owner-facing identifier used for listing and management. Both are
// immutable once created. ClickCount only ever increases, and only the
// redirect resolver increments it.
type TrackingLink struct {
	ID          string
	ShortCode   string
	OriginalURL string
	Platform    Platform
	OwnerID     string
	ClickCount  int64
	CreatedAt   time.Time
	LastClickAt *time.Time
}

// LinkID derives the owner-facing link identifier from a short code and
// platform. The short code alone already identifies the row; the platform
// suffix keeps the id readable in listings.
func LinkID(shortCode string, platform Platform) string {
	return shortCode + "-" + string(platform)
}

// NewTrackingLink constructs an unclicked link for a campaign.
func NewTrackingLink(shortCode, originalURL, ownerID string, platform Platform) *TrackingLink {
	return &TrackingLink{
		ID:          LinkID(shortCode, platform),
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		Platform:    platform,
		OwnerID:     ownerID,
		ClickCount:  0,
		CreatedAt:   time.Now().UTC(),
	}
}

// Resolvable reports whether the link can serve a redirect. A record with
// an empty destination is treated the same as a missing one.
func (l *TrackingLink) Resolvable() bool {
	return l != nil && l.OriginalURL != ""
}
