package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookcatalog/pkg/catalog"
)

func record(year, publisher string) catalog.RawRecord {
	return catalog.RawRecord{
		Title:     catalog.Some("Dune"),
		Author:    catalog.Some("Frank Herbert"),
		Genre:     catalog.Some("Science Fiction"),
		Year:      catalog.Text(year),
		Publisher: catalog.Text(publisher),
	}
}

func TestValidate_Accepts(t *testing.T) {
	t.Parallel()

	res := catalog.Validate(record("1965", "https://chilton.example.com"))
	got, ok := res.Valid()
	require.True(t, ok)
	assert.Equal(t, catalog.ValidatedRecord{
		Title:     "Dune",
		Author:    "Frank Herbert",
		Genre:     "Science Fiction",
		Year:      1965,
		Publisher: "https://chilton.example.com",
	}, got)

	t.Run("parses padded year and keeps publisher text as written", func(t *testing.T) {
		got, ok := catalog.Validate(record(" +2001\n", "  http://example.com/p ")).Valid()
		require.True(t, ok)
		assert.Equal(t, 2001, got.Year)
		assert.Equal(t, "  http://example.com/p ", got.Publisher)
	})

	t.Run("absent title author genre become empty", func(t *testing.T) {
		got, ok := catalog.Validate(catalog.RawRecord{
			Year:      catalog.Some("2020"),
			Publisher: catalog.Some("https://example.com"),
		}).Valid()
		require.True(t, ok)
		assert.Empty(t, got.Title)
		assert.Empty(t, got.Author)
		assert.Empty(t, got.Genre)
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		assert.True(t, catalog.Validate(record("2020", "HTTPS://EXAMPLE.COM")).IsValid())
	})
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		year      string
		publisher string
		reason    catalog.Reason
	}{
		{"zero year", "0", "https://example.com", catalog.ReasonInvalidYear},
		{"negative year", "-1", "https://example.com", catalog.ReasonInvalidYear},
		{"absent year", "", "https://example.com", catalog.ReasonInvalidYear},
		{"word year", "MCMXC", "https://example.com", catalog.ReasonInvalidYear},
		{"decimal year", "1999.5", "https://example.com", catalog.ReasonInvalidYear},
		{"overflow year", "99999999999", "https://example.com", catalog.ReasonInvalidYear},
		{"year and publisher both bad", "abc", "not-a-url", catalog.ReasonInvalidYear},
		{"relative publisher", "1999", "not-a-url", catalog.ReasonInvalidPublisher},
		{"absent publisher", "1999", "", catalog.ReasonInvalidPublisher},
		{"ftp publisher", "1999", "ftp://example.com", catalog.ReasonInvalidPublisher},
		{"mailto publisher", "1999", "mailto:pub@example.com", catalog.ReasonInvalidPublisher},
		{"hostless publisher", "1999", "https://", catalog.ReasonInvalidPublisher},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := catalog.Validate(record(tt.year, tt.publisher))
			assert.False(t, res.IsValid())
			rej, ok := res.Rejection()
			require.True(t, ok)
			assert.Equal(t, tt.reason, rej.Reason)
			require.NotNil(t, rej.Title)
			assert.Equal(t, "Dune", *rej.Title)
		})
	}
}

func TestValidate_TitlePassthrough(t *testing.T) {
	t.Parallel()

	t.Run("verbatim title", func(t *testing.T) {
		raw := record("0", "")
		raw.Title = catalog.Some("  Spaced <Title> ")
		rej, ok := catalog.Validate(raw).Rejection()
		require.True(t, ok)
		require.NotNil(t, rej.Title)
		assert.Equal(t, "  Spaced <Title> ", *rej.Title)
	})

	t.Run("absent title", func(t *testing.T) {
		raw := record("0", "")
		raw.Title = catalog.None()
		rej, ok := catalog.Validate(raw).Rejection()
		require.True(t, ok)
		assert.Nil(t, rej.Title)
	})
}

func TestValidate_ExactlyOneOutcome(t *testing.T) {
	t.Parallel()

	years := []string{"", "0", "-3", "x", "1", "2024", "2147483648"}
	publishers := []string{"", "x", "ftp://a.b", "http://a.b", "https://a.b/c"}

	for _, y := range years {
		for _, p := range publishers {
			res := catalog.Validate(record(y, p))
			_, valid := res.Valid()
			_, rejected := res.Rejection()
			assert.True(t, valid != rejected, "year=%q publisher=%q", y, p)
			assert.Equal(t, res, catalog.Validate(record(y, p)), "deterministic for year=%q publisher=%q", y, p)
		}
	}
}
