package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/alphaslider/internal/config"
)

type HelpProps struct {
	Keys  config.KeyMappings
	Width int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	helpRendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getHelpRenderer returns a cached renderer for the given width.
// The style is fixed so rendering never queries the terminal background.
func getHelpRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := helpRendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	helpRendererCache.Store(width, renderer)
	return renderer, nil
}

// HelpMarkdown builds the help text for the given key mappings.
func HelpMarkdown(km config.KeyMappings) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	rows := []struct{ key, action string }{
		{km.ScrollUp + " / " + km.ScrollDown, "scroll the list"},
		{km.PageUp + " / " + km.PageDown, "scroll a page"},
		{km.PrevSection + " / " + km.NextSection, "previous / next section"},
		{km.FirstSection + " / " + km.LastSection, "first / last section"},
		{km.ShowHelp, "toggle this help"},
		{km.Quit, "quit"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", r.key, r.action)
	}
	b.WriteString("\n# Mouse\n\n")
	b.WriteString("Press on the letter row and drag sideways to jump between sections. ")
	b.WriteString("The wheel scrolls the list and the slider follows.\n")
	return b.String()
}

// RenderHelp renders the help overlay body as markdown, falling back to the
// raw text if glamour fails.
func RenderHelp(props HelpProps) string {
	md := HelpMarkdown(props.Keys)
	body := md
	if renderer, err := getHelpRenderer(max(props.Width, 20)); err == nil {
		if rendered, err := renderer.Render(md); err == nil {
			body = strings.Trim(rendered, "\n")
		}
	}
	return HelpBoxStyle.Render(body)
}
