package guardian

import "time"

// searchEnvelope is the provider's top-level response wrapper.
type searchEnvelope struct {
	Response searchResponse `json:"response"`
}

type searchResponse struct {
	Status      string       `json:"status"`
	Message     string       `json:"message,omitempty"`
	Total       int          `json:"total"`
	Pages       int          `json:"pages"`
	CurrentPage int          `json:"currentPage"`
	Results     []RawArticle `json:"results"`
}

// RawArticle is a provider article payload as returned by the search API.
type RawArticle struct {
	ID                 string     `json:"id"`
	WebTitle           string     `json:"webTitle"`
	SectionName        string     `json:"sectionName"`
	WebPublicationDate time.Time  `json:"webPublicationDate"`
	WebURL             string     `json:"webUrl"`
	Fields             *RawFields `json:"fields,omitempty"`
}

// RawFields holds the optional show-fields payload. The provider omits it
// for some content types.
type RawFields struct {
	Headline  string `json:"headline,omitempty"`
	BodyText  string `json:"bodyText,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Headline returns the display headline, falling back to the web title when
// the provider omits the fields block.
func (a *RawArticle) Headline() string {
	if a.Fields != nil && a.Fields.Headline != "" {
		return a.Fields.Headline
	}
	return a.WebTitle
}

// BodyText returns the article body, or empty when the source omits it.
func (a *RawArticle) BodyText() string {
	if a.Fields == nil {
		return ""
	}
	return a.Fields.BodyText
}

// Thumbnail returns the thumbnail URL, or empty when the source omits it.
func (a *RawArticle) Thumbnail() string {
	if a.Fields == nil {
		return ""
	}
	return a.Fields.Thumbnail
}
