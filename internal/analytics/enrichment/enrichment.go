// Package enrichment classifies raw click context (user agent, referer)
// into the coarse dimensions the stats endpoints aggregate by.
package enrichment

import (
	"net/url"
	"strings"

	ua "github.com/mileusna/useragent"
)

// Device type values.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

// Traffic source values.
const (
	SourceDirect   = "direct"
	SourceSearch   = "search"
	SourceSocial   = "social"
	SourceReferral = "referral"
)

var searchEngines = []string{
	"google.",
	"bing.com",
	"yahoo.com",
	"duckduckgo.com",
	"yandex.",
	"baidu.com",
}

var socialNetworks = []string{
	"instagram.com",
	"youtube.com",
	"youtu.be",
	"tiktok.com",
	"facebook.com",
	"twitter.com",
	"x.com",
	"t.me",
	"vk.com",
	"linkedin.com",
	"threads.net",
}

// DetectDevice returns the device class for a User-Agent string. Bots are
// classified separately so they can be filtered out of owner-facing stats.
func DetectDevice(uaString string) string {
	if uaString == "" {
		return DeviceUnknown
	}

	parsed := ua.Parse(uaString)
	switch {
	case parsed.Bot:
		return DeviceBot
	case parsed.Tablet:
		return DeviceTablet
	case parsed.Mobile:
		return DeviceMobile
	case parsed.Desktop:
		return DeviceDesktop
	}
	return DeviceUnknown
}

// ClassifySource buckets a referer URL into a traffic source. An empty or
// unparseable referer counts as a direct visit.
func ClassifySource(referer string) string {
	if referer == "" {
		return SourceDirect
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Hostname() == "" {
		return SourceDirect
	}

	hostname := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")

	for _, domain := range searchEngines {
		if strings.Contains(hostname, domain) {
			return SourceSearch
		}
	}
	for _, domain := range socialNetworks {
		if hostname == domain || strings.HasSuffix(hostname, "."+domain) {
			return SourceSocial
		}
	}

	return SourceReferral
}
