package models

// Platform names accepted for style profiles.
const (
	PlatformTwitter   = "twitter"
	PlatformYouTube   = "youtube"
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformDiscord   = "discord"
	PlatformTwitch    = "twitch"
	PlatformReddit    = "reddit"
	PlatformTikTok    = "tiktok"
	PlatformBluesky   = "bluesky"
)

// SupportedPlatforms lists every platform a profile can be built for.
var SupportedPlatforms = []string{
	PlatformTwitter,
	PlatformYouTube,
	PlatformInstagram,
	PlatformFacebook,
	PlatformDiscord,
	PlatformTwitch,
	PlatformReddit,
	PlatformTikTok,
	PlatformBluesky,
}

// IsSupportedPlatform reports whether name is one of SupportedPlatforms.
func IsSupportedPlatform(name string) bool {
	for _, p := range SupportedPlatforms {
		if p == name {
			return true
		}
	}
	return false
}
