// Package dto maps persisted entities to the shapes consumed by HTML
// templates (render DTOs) and by the JSON API (wire DTOs), and decodes
// inbound form payloads.
package dto

import "fmt"

// DefaultImageURL is shown for users without a profile image. Unlike the
// other placeholders it is a real image, not bracketed text.
const DefaultImageURL = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSvP6ebHtO8_ghJf0RYy-8l_kmSEDdl-fPvknMoPrl8&s"

// kinds for placeholder text
const (
	kindUser        = "user"
	kindPublication = "Publication"
)

// metaDefault builds the placeholder shown on HTML pages for an absent
// optional field. It is never applied on the JSON surface, where absent
// fields stay null.
func metaDefault(element, kind string) string {
	return fmt.Sprintf("[No entry for %s on this %s]", element, kind)
}

// orDefault returns the stored value when present, else the placeholder for
// the given field/kind pair.
func orDefault(stored *string, element, kind string) string {
	if stored != nil {
		return *stored
	}
	return metaDefault(element, kind)
}

func orImageDefault(stored *string) string {
	if stored != nil {
		return *stored
	}
	return DefaultImageURL
}
