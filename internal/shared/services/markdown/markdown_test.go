package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ToHTMLSanitized(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("**Doha** hub <script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Doha</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestService_RenderSections(t *testing.T) {
	svc := NewService()

	out, err := svc.RenderSections(map[string]string{
		"overview": "Flies to *160* destinations",
		"fleet":    "   ",
	})
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Contains(t, out["overview"], "<em>160</em>")
}

func TestService_StripHTML(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "need help with refund", svc.StripHTML("need <b>help</b> with refund"))
	assert.Equal(t, "fish & chips", svc.StripHTML("fish & chips"))
	assert.Equal(t, "", svc.StripHTML("<img src=x onerror=alert(1)>"))
	assert.Equal(t, `it's "urgent"`, svc.StripHTML(`it's "urgent"`))
}

func TestService_StripHTML_KeepsEscapedBracketsEscaped(t *testing.T) {
	svc := NewService()

	got := svc.StripHTML("&lt;script&gt;alert(1)&lt;/script&gt; thanks")
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt; thanks", got)
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, ">")

	assert.Equal(t, "&lt;&lt;", svc.StripHTML(svc.StripHTML("&lt;&lt;")))
}
