// Package directory groups contacts into labelled sections and maps between
// section indexes and vertical line offsets, so a scrolled list and the
// slider can agree on "which section is showing".
package directory

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thenoetrevino/alphaslider/internal/models"
)

// OtherKey collects contacts whose name does not start with a letter.
const OtherKey = "#"

const (
	headerLines      = 1 // section title
	placeholderLines = 1 // "no contacts" line of an empty section
	separatorLines   = 1 // blank line after every section
)

// Directory is an immutable sectioned view of a contact list.
type Directory struct {
	sections   []models.Section
	offsets    []int
	total      int
	entryLines int
}

// Build groups contacts by the uppercase initial of their name.
//
// With a nil alphabet the sections are the initials present, in order,
// with OtherKey last. With an alphabet there is exactly one section per
// label, in alphabet order, empty ones included. Labels match initials
// case-insensitively and a repeated label only collects contacts at its
// first occurrence. Contacts matching no label go to the OtherKey section,
// which is appended when the alphabet has none.
//
// entryLines is the height of one contact, 1 or 2.
func Build(contacts []*models.Contact, alphabet []string, entryLines int) *Directory {
	entryLines = max(1, min(entryLines, 2))

	byKey := make(map[string][]*models.Contact)
	var keys []string
	for _, c := range contacts {
		key := SectionKey(c.Name)
		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], c)
	}

	d := &Directory{entryLines: entryLines}
	if alphabet == nil {
		for _, title := range derivedTitles(keys) {
			d.sections = append(d.sections, models.Section{Title: title, Contacts: byKey[title]})
		}
	} else {
		d.sections = fixedSections(alphabet, byKey)
	}
	d.layout()
	return d
}

// derivedTitles sorts the present keys, letters first, OtherKey last.
func derivedTitles(keys []string) []string {
	titles := append([]string(nil), keys...)
	sort.SliceStable(titles, func(i, j int) bool {
		if titles[i] == OtherKey || titles[j] == OtherKey {
			return titles[j] == OtherKey && titles[i] != OtherKey
		}
		return titles[i] < titles[j]
	})
	return titles
}

// labelKey is the section key a label collects.
func labelKey(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// fixedSections lays out one section per alphabet label and folds
// unclaimed contacts into OtherKey.
func fixedSections(alphabet []string, byKey map[string][]*models.Contact) []models.Section {
	sections := make([]models.Section, len(alphabet))
	claimed := make(map[string]bool, len(alphabet))
	other := -1
	for i, label := range alphabet {
		sections[i].Title = label
		key := labelKey(label)
		if claimed[key] {
			continue
		}
		claimed[key] = true
		if key == OtherKey {
			other = i
			continue
		}
		sections[i].Contacts = byKey[key]
	}

	var orphans []*models.Contact
	for key, group := range byKey {
		if key == OtherKey || !claimed[key] {
			orphans = append(orphans, group...)
		}
	}
	if len(orphans) == 0 {
		return sections
	}

	sort.SliceStable(orphans, func(i, j int) bool {
		return strings.ToLower(orphans[i].Name) < strings.ToLower(orphans[j].Name)
	})
	if other < 0 {
		sections = append(sections, models.Section{Title: OtherKey})
		other = len(sections) - 1
	}
	sections[other].Contacts = orphans
	return sections
}

func (d *Directory) layout() {
	d.offsets = make([]int, len(d.sections))
	line := 0
	for i := range d.sections {
		d.offsets[i] = line
		line += d.SectionHeight(i)
	}
	d.total = line
}

// SectionKey returns the section a name belongs to: its uppercase first
// letter, or OtherKey.
func SectionKey(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return OtherKey
	}
	return string(unicode.ToUpper(r))
}

// Labels returns the section titles, in order, for use as slider labels.
func (d *Directory) Labels() []string {
	labels := make([]string, len(d.sections))
	for i, s := range d.sections {
		labels[i] = s.Title
	}
	return labels
}

// Sections returns the sections in display order.
func (d *Directory) Sections() []models.Section {
	return d.sections
}

// Len returns the number of sections.
func (d *Directory) Len() int {
	return len(d.sections)
}

// EntryLines returns the height of one contact.
func (d *Directory) EntryLines() int {
	return d.entryLines
}

// SectionHeight returns the number of lines section i occupies,
// separator included.
func (d *Directory) SectionHeight(i int) int {
	if i < 0 || i >= len(d.sections) {
		return 0
	}
	body := placeholderLines
	if n := len(d.sections[i].Contacts); n > 0 {
		body = n * d.entryLines
	}
	return headerLines + body + separatorLines
}

// TotalLines returns the height of the whole list.
func (d *Directory) TotalLines() int {
	return d.total
}

// OffsetOf returns the first line of section i, clamping i into range.
func (d *Directory) OffsetOf(i int) int {
	if len(d.offsets) == 0 {
		return 0
	}
	i = max(0, min(i, len(d.offsets)-1))
	return d.offsets[i]
}

// SectionAt returns the section showing at line offset: the last section
// starting at or above it. Offsets above the list resolve to 0.
func (d *Directory) SectionAt(offset int) int {
	if len(d.offsets) == 0 {
		return 0
	}
	next := sort.SearchInts(d.offsets, offset+1)
	return max(next-1, 0)
}
