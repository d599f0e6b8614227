package domain_test

import (
	"testing"

	"linktrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingLink_SetsAllFields(t *testing.T) {
	link := domain.NewTrackingLink("abc123XY", "https://example.com/sale", "owner-1", domain.PlatformInstagram)

	assert.Equal(t, "abc123XY-instagram", link.ID)
	assert.Equal(t, "abc123XY", link.ShortCode)
	assert.Equal(t, "https://example.com/sale", link.OriginalURL)
	assert.Equal(t, domain.PlatformInstagram, link.Platform)
	assert.Equal(t, "owner-1", link.OwnerID)
	assert.Equal(t, int64(0), link.ClickCount)
	assert.False(t, link.CreatedAt.IsZero())
	assert.Nil(t, link.LastClickAt)
}

func TestLinkID_CombinesCodeAndPlatform(t *testing.T) {
	assert.Equal(t, "Xy12ab34-youtube", domain.LinkID("Xy12ab34", domain.PlatformYouTube))
	assert.Equal(t, "Xy12ab34-site", domain.LinkID("Xy12ab34", domain.PlatformSite))
}

func TestCampaignPlatforms_FixedFanOut(t *testing.T) {
	require.Len(t, domain.CampaignPlatforms, 4)
	assert.Equal(t, []domain.Platform{
		domain.PlatformInstagram,
		domain.PlatformYouTube,
		domain.PlatformTikTok,
		domain.PlatformSite,
	}, domain.CampaignPlatforms)

	for _, p := range domain.CampaignPlatforms {
		assert.True(t, p.Valid(), "platform %s should be valid", p)
	}
}

func TestPlatform_Valid_RejectsUnknown(t *testing.T) {
	assert.False(t, domain.Platform("facebook").Valid())
	assert.False(t, domain.Platform("").Valid())
	assert.False(t, domain.Platform("Instagram").Valid())
}

func TestTrackingLink_Resolvable(t *testing.T) {
	link := domain.NewTrackingLink("abc123XY", "https://example.com", "owner-1", domain.PlatformTikTok)
	assert.True(t, link.Resolvable())

	link.OriginalURL = ""
	assert.False(t, link.Resolvable())

	var nilLink *domain.TrackingLink
	assert.False(t, nilLink.Resolvable())
}
