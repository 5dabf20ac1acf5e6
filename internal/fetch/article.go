package fetch

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/pvoronin/newsgauge/internal/model"
)

// ExtractArticle pulls the title, body text and site name out of a fetched
// page. The body is the concatenation of paragraph text outside of chrome
// elements (nav, header, footer, aside).
func ExtractArticle(htmlContent, pageURL string) (model.Article, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return model.Article{}, fmt.Errorf("parse html: %w", err)
	}

	article := model.Article{
		Title:  pageTitle(doc),
		Text:   paragraphText(doc),
		Source: siteName(doc, pageURL),
	}
	if strings.TrimSpace(article.Text) == "" {
		return model.Article{}, fmt.Errorf("no article text found")
	}
	return article, nil
}

// pageTitle prefers og:title over the <title> element since the latter
// usually carries the site name as a suffix.
func pageTitle(doc *html.Node) string {
	if t := metaProperty(doc, "og:title"); t != "" {
		return t
	}
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			title = strings.TrimSpace(textContent(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

func siteName(doc *html.Node, pageURL string) string {
	if s := metaProperty(doc, "og:site_name"); s != "" {
		return s
	}
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}

func metaProperty(doc *html.Node, property string) string {
	var value string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if value != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "meta" {
			var prop, content string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "property", "name":
					prop = attr.Val
				case "content":
					content = attr.Val
				}
			}
			if prop == property {
				value = strings.TrimSpace(content)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return value
}

// paragraphText collects the text of <p> elements, skipping page chrome
// and non-content containers.
func paragraphText(doc *html.Node) string {
	var paragraphs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "nav", "header", "footer", "aside", "form":
				return
			case "p":
				if text := strings.Join(strings.Fields(textContent(n)), " "); text != "" {
					paragraphs = append(paragraphs, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(paragraphs, "\n\n")
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
