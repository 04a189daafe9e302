package portfolio

import "strings"

const (
	PlatformLinkedIn = "linkedin"
	PlatformGitHub   = "github"
)

var platformPrefixes = map[string]string{
	PlatformLinkedIn: "https://www.linkedin.com/in/",
	PlatformGitHub:   "https://github.com/",
}

// NormalizeProfileURL converts a bare handle into a canonical profile URL
// for a known platform. Values that are already absolute URLs pass through
// unchanged, so the function is idempotent. Empty input yields empty output.
func NormalizeProfileURL(platform, value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	prefix, ok := platformPrefixes[platform]
	if !ok {
		return value
	}
	return prefix + strings.TrimPrefix(value, "@")
}

// NormalizeSocialLinks applies NormalizeProfileURL to the social fields of a
// profile in place.
func NormalizeSocialLinks(p *Profile) {
	p.PersonalInfo.LinkedIn = NormalizeProfileURL(PlatformLinkedIn, p.PersonalInfo.LinkedIn)
	p.PersonalInfo.GitHub = NormalizeProfileURL(PlatformGitHub, p.PersonalInfo.GitHub)
}
