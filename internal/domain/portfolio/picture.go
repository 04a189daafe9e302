package portfolio

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// EncodePictureDataURL packs raw image bytes into an inline data URL so a
// record stays self-contained without a media provider.
func EncodePictureDataURL(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}

// DecodePictureDataURL reverses EncodePictureDataURL. It returns false when
// the value is not an inline data URL (e.g. an already-hosted image URL).
func DecodePictureDataURL(value string) (contentType string, data []byte, ok bool) {
	if !strings.HasPrefix(value, "data:") {
		return "", nil, false
	}
	rest := strings.TrimPrefix(value, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return "", nil, false
	}
	contentType = strings.TrimSuffix(meta, ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	return contentType, data, true
}

// PlaceholderAvatarURL returns a generated avatar keyed by the subject's
// initial, used when no photo was supplied.
func PlaceholderAvatarURL(name string) string {
	initial := "P"
	trimmed := strings.TrimSpace(name)
	if trimmed != "" {
		initial = strings.ToUpper(string([]rune(trimmed)[0]))
	}
	return "https://ui-avatars.com/api/?size=256&name=" + url.QueryEscape(initial)
}
