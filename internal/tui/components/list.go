package components

import (
	"strings"

	"github.com/thenoetrevino/alphaslider/internal/directory"
)

// RenderDirectory renders every section of the directory, one line per
// directory line, so line offsets match directory.OffsetOf.
//
//	A
//	  Ada Lovelace
//	    ada@analytical.engine
//
//	B
//	  no contacts
func RenderDirectory(d *directory.Directory) string {
	lines := make([]string, 0, d.TotalLines())

	for _, section := range d.Sections() {
		lines = append(lines, HeaderStyle.Render(section.Title))

		if len(section.Contacts) == 0 {
			lines = append(lines, "  "+PlaceholderStyle.Render("no contacts"))
		}
		for _, contact := range section.Contacts {
			lines = append(lines, "  "+EntryStyle.Render(contact.Name))
			if d.EntryLines() > 1 {
				lines = append(lines, "    "+DetailStyle.Render(contact.Detail))
			}
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
