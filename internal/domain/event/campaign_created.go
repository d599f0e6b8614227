package event

// CampaignCreated is raised after a campaign's 4 platform links are
// committed in one batch.
type CampaignCreated struct {
	Base
	OwnerID     string
	OriginalURL string
	ShortCodes  []string
}

// NewCampaignCreated creates a new CampaignCreated event. The aggregate id
// is the owner, since a campaign is not separately persisted.
func NewCampaignCreated(ownerID, originalURL string, shortCodes []string) CampaignCreated {
	return CampaignCreated{
		Base:        NewBase(ownerID),
		OwnerID:     ownerID,
		OriginalURL: originalURL,
		ShortCodes:  shortCodes,
	}
}

// EventName returns the event name.
func (e CampaignCreated) EventName() string {
	return "campaign.created"
}
