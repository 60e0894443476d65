// Package markdown renders airline descriptions and cleans free text
// submitted by the public.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	ToHTML(markdown string) (string, error)
	ToHTMLSanitized(markdown string) (string, error)
	// RenderSections converts every non-empty section, keyed as given.
	RenderSections(sections map[string]string) (map[string]string, error)
	// StripHTML removes all markup and returns plain text in which < and >
	// are still entity-escaped.
	StripHTML(s string) string
}

type serviceImpl struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)

	ugc := bluemonday.UGCPolicy()
	ugc.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	ugc.RequireNoFollowOnLinks(true)

	return &serviceImpl{
		md:     md,
		ugc:    ugc,
		strict: bluemonday.StrictPolicy(),
	}
}

func (s *serviceImpl) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (s *serviceImpl) ToHTMLSanitized(markdown string) (string, error) {
	out, err := s.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return s.ugc.Sanitize(out), nil
}

func (s *serviceImpl) RenderSections(sections map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(sections))
	for key, text := range sections {
		if strings.TrimSpace(text) == "" {
			continue
		}
		rendered, err := s.ToHTMLSanitized(text)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", key, err)
		}
		out[key] = rendered
	}
	return out, nil
}

// angleEscaper re-escapes the only characters that could form markup again
// once the text is decoded.
var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// StripHTML drops tags and decodes the entities the strict policy leaves
// behind, except that angle brackets stay escaped as &lt; and &gt;.
func (s *serviceImpl) StripHTML(in string) string {
	return angleEscaper.Replace(html.UnescapeString(s.strict.Sanitize(in)))
}
