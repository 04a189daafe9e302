package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProfileURL_BareHandle(t *testing.T) {
	assert.Equal(t, "https://github.com/octocat", NormalizeProfileURL(PlatformGitHub, "octocat"))
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", NormalizeProfileURL(PlatformLinkedIn, "jane-doe"))
	assert.Equal(t, "https://github.com/octocat", NormalizeProfileURL(PlatformGitHub, "@octocat"))
}

func TestNormalizeProfileURL_Idempotent(t *testing.T) {
	full := "https://github.com/octocat"
	once := NormalizeProfileURL(PlatformGitHub, full)
	assert.Equal(t, full, once)
	assert.Equal(t, once, NormalizeProfileURL(PlatformGitHub, once))

	insecure := "http://github.com/octocat"
	assert.Equal(t, insecure, NormalizeProfileURL(PlatformGitHub, insecure))
}

func TestNormalizeProfileURL_EmptyAndUnknownPlatform(t *testing.T) {
	assert.Equal(t, "", NormalizeProfileURL(PlatformGitHub, ""))
	// Unknown platforms pass the value through untouched.
	assert.Equal(t, "someone", NormalizeProfileURL("mastodon", "someone"))
}

func TestNormalizeSocialLinks(t *testing.T) {
	p := &Profile{
		PersonalInfo: PersonalInfo{
			LinkedIn: "jane-doe",
			GitHub:   "https://github.com/jane",
		},
	}
	NormalizeSocialLinks(p)
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", p.PersonalInfo.LinkedIn)
	assert.Equal(t, "https://github.com/jane", p.PersonalInfo.GitHub)
}
