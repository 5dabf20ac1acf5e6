package model

import "strings"

// Article represents one piece of content submitted for analysis.
// Field aliases (Content for Text, SiteName for Source) exist for
// compatibility with news-aggregator payloads.
type Article struct {
	Text     string `json:"text,omitempty"`
	Content  string `json:"content,omitempty"`  // alias for Text
	Title    string `json:"title,omitempty"`
	Source   string `json:"source,omitempty"`
	SiteName string `json:"siteName,omitempty"` // alias for Source
	URL      string `json:"url,omitempty"`
	Date     string `json:"date,omitempty"`
	Author   string `json:"author,omitempty"`
	Language string `json:"language,omitempty"`
}

// Body returns the article text, falling back to the Content alias.
func (a Article) Body() string {
	if a.Text != "" {
		return a.Text
	}
	return a.Content
}

// SourceName returns the source, falling back to the SiteName alias.
func (a Article) SourceName() string {
	if a.Source != "" {
		return a.Source
	}
	return a.SiteName
}

// Combined returns the title-prefixed text used for context-sensitive
// stages. Without a title it is the body unchanged.
func (a Article) Combined() string {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		return a.Body()
	}
	return title + ". " + a.Body()
}
