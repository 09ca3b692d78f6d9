package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/alphaslider/internal/models"
)

func contacts(names ...string) []*models.Contact {
	out := make([]*models.Contact, len(names))
	for i, name := range names {
		out[i] = &models.Contact{ID: i + 1, Name: name}
	}
	return out
}

func TestSectionKey(t *testing.T) {
	tests := map[string]string{
		"alice":      "A",
		"  bob":      "B",
		"Émile":      "É",
		"411 Info":   OtherKey,
		"":           OtherKey,
		"💩 Company": OtherKey,
	}
	for name, want := range tests {
		assert.Equal(t, want, SectionKey(name), "SectionKey(%q)", name)
	}
}

func TestBuild_DerivedSections(t *testing.T) {
	d := Build(contacts("Ada", "alan", "411", "Bob", "zed"), nil, 1)

	assert.Equal(t, []string{"A", "B", "Z", OtherKey}, d.Labels())
	require.Equal(t, 4, d.Len())
	assert.Len(t, d.Sections()[0].Contacts, 2)
	assert.Equal(t, "411", d.Sections()[3].Contacts[0].Name)
}

func TestBuild_FixedAlphabet(t *testing.T) {
	d := Build(contacts("Ada", "Cy", "42 Street", "Émile"), []string{"A", "B", "C"}, 2)

	assert.Equal(t, []string{"A", "B", "C", OtherKey}, d.Labels())
	assert.Empty(t, d.Sections()[1].Contacts, "B has no contacts but keeps its section")

	other := d.Sections()[3].Contacts
	require.Len(t, other, 2)
	assert.Equal(t, "42 Street", other[0].Name)
	assert.Equal(t, "Émile", other[1].Name)
}

func TestBuild_FixedAlphabetWithoutOrphans(t *testing.T) {
	d := Build(contacts("Ada"), []string{"A", "B"}, 1)
	assert.Equal(t, []string{"A", "B"}, d.Labels())
}

func TestBuild_AlphabetMatchesCaseInsensitively(t *testing.T) {
	d := Build(contacts("alice", "Bob"), []string{"a", "b"}, 1)

	assert.Equal(t, []string{"a", "b"}, d.Labels(), "labels keep their configured case")
	require.Equal(t, 2, d.Len())
	require.Len(t, d.Sections()[0].Contacts, 1)
	assert.Equal(t, "alice", d.Sections()[0].Contacts[0].Name)
	require.Len(t, d.Sections()[1].Contacts, 1)
	assert.Equal(t, "Bob", d.Sections()[1].Contacts[0].Name)
}

func TestBuild_RepeatedLabelListsContactsOnce(t *testing.T) {
	d := Build(contacts("Ada", "Bob"), []string{"A", "a", "B"}, 1)

	assert.Equal(t, []string{"A", "a", "B"}, d.Labels())
	assert.Len(t, d.Sections()[0].Contacts, 1)
	assert.Empty(t, d.Sections()[1].Contacts, "only the first A collects contacts")
	assert.Len(t, d.Sections()[2].Contacts, 1)
	// header + entry + separator, then header + placeholder + separator
	assert.Equal(t, 3+3+3, d.TotalLines())
}

func TestBuild_AlphabetWithOtherKey(t *testing.T) {
	d := Build(contacts("411", "Ada", "zed"), []string{"#", "A"}, 1)

	assert.Equal(t, []string{"#", "A"}, d.Labels())
	other := d.Sections()[0].Contacts
	require.Len(t, other, 2)
	assert.Equal(t, "411", other[0].Name)
	assert.Equal(t, "zed", other[1].Name)
}

func TestGeometry(t *testing.T) {
	// A: 2 contacts, B: empty, C: 1 contact, two lines per contact
	d := Build(contacts("Ada", "Alan", "Cy"), []string{"A", "B", "C"}, 2)

	// header + body + separator
	assert.Equal(t, 1+4+1, d.SectionHeight(0))
	assert.Equal(t, 1+1+1, d.SectionHeight(1))
	assert.Equal(t, 1+2+1, d.SectionHeight(2))
	assert.Equal(t, 0, d.SectionHeight(7))
	assert.Equal(t, 13, d.TotalLines())

	assert.Equal(t, 0, d.OffsetOf(0))
	assert.Equal(t, 6, d.OffsetOf(1))
	assert.Equal(t, 9, d.OffsetOf(2))
	assert.Equal(t, 9, d.OffsetOf(99), "clamped to last section")
	assert.Equal(t, 0, d.OffsetOf(-1), "clamped to first section")

	tests := []struct {
		offset int
		want   int
	}{
		{-4, 0},
		{0, 0},
		{5, 0},
		{6, 1},
		{8, 1},
		{9, 2},
		{100, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.SectionAt(tt.offset), "SectionAt(%d)", tt.offset)
	}

	// Every section's offset maps back to itself
	for i := 0; i < d.Len(); i++ {
		assert.Equal(t, i, d.SectionAt(d.OffsetOf(i)))
	}
}

func TestEmptyDirectory(t *testing.T) {
	d := Build(nil, nil, 2)

	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Labels())
	assert.Equal(t, 0, d.TotalLines())
	assert.Equal(t, 0, d.OffsetOf(3))
	assert.Equal(t, 0, d.SectionAt(3))
}

func TestEntryLinesClamped(t *testing.T) {
	assert.Equal(t, 1, Build(nil, nil, 0).EntryLines())
	assert.Equal(t, 2, Build(nil, nil, 5).EntryLines())
}
