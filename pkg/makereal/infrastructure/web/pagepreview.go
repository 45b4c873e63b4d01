package web

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mvdan/xurls"

	"kgeyst.com/makereal/pkg/common"
)

const maxPreviewTextLength = 1000

// Preview a plain-text summary of a generated page, for places where the page can't be rendered (the console).
type Preview struct {
	Title string
	// Text the visible text of headings, paragraphs, buttons etc.
	Text string
	// Links external URLs the page refers to: scripts, stylesheets, fonts, images.
	Links []string
}

type PagePreview struct{}

func NewPagePreview() *PagePreview {
	return &PagePreview{}
}

func (p *PagePreview) Preview(html string) (*Preview, error) {
	reader, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(reader.Find("title").First().Text())
	found := reader.Find("h1, h2, h3, p, button, label, li").Map(func(i int, selection *goquery.Selection) string {
		return strings.Join(strings.Fields(selection.Text()), " ")
	})
	var texts []string
	for _, text := range found {
		if text != "" {
			texts = append(texts, text)
		}
	}
	plain := strings.Join(texts, " | ")
	plain = common.CutAtRuneBoundary(plain, maxPreviewTextLength)
	return &Preview{
		Title: title,
		Text:  plain,
		Links: findUniqueURLs(html),
	}, nil
}

func findUniqueURLs(html string) []string {
	var result []string
	seen := make(map[string]struct{})
	for _, url := range xurls.Strict.FindAllString(html, -1) {
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		result = append(result, url)
	}
	return result
}
