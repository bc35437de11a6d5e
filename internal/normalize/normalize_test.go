package normalize

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lepinkainen/marvelgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    int64
		wantErr bool
	}{
		{name: "comic", uri: "http://gateway.marvel.com/v1/public/comics/4372", want: 4372},
		{name: "trailing slash", uri: "http://gateway.marvel.com/v1/public/series/466/", want: 466},
		{name: "not numeric", uri: "http://gateway.marvel.com/v1/public/comics", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IDFromURI(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnexpectedShape))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveID_OverridesExplicitID(t *testing.T) {
	obj := Object{"id": json.Number("999999"), "resourceURI": "http://gateway.marvel.com/v1/public/comics/4372"}

	require.NoError(t, DeriveID(obj))
	assert.Equal(t, int64(4372), obj["id"])
}

func TestDeriveID_MissingResourceURI(t *testing.T) {
	err := DeriveID(Object{"id": json.Number("1")})
	assert.ErrorIs(t, err, ErrMissingResourceURI)
}

func TestDropBadModified(t *testing.T) {
	tests := []struct {
		name     string
		modified any
		keep     bool
	}{
		{name: "valid", modified: "2019-09-13T12:44:15-0400", keep: true},
		{name: "sentinel", modified: "-0001-11-30T00:00:00-0500"},
		{name: "empty", modified: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := Object{"modified": tt.modified}
			DropBadModified(obj)
			_, ok := obj["modified"]
			assert.Equal(t, tt.keep, ok)
		})
	}
}

func TestImageURL(t *testing.T) {
	got, err := ImageURL(Object{"path": "http://i.annihil.us/u/prod/marvel/i/mg/6/c0/5149db8019dc9", "extension": "jpg"})
	require.NoError(t, err)
	assert.Equal(t, "http://i.annihil.us/u/prod/marvel/i/mg/6/c0/5149db8019dc9.jpg", got)

	got, err = ImageURL(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ImageURL("http://example.com/a.png")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a.png", got)

	_, err = ImageURL(json.Number("3"))
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestUnwrapItems(t *testing.T) {
	item := Object{"resourceURI": "http://gateway.marvel.com/v1/public/comics/1", "name": "One"}

	wrapped, err := UnwrapItems(Object{"available": json.Number("1"), "items": []any{item}, "returned": json.Number("1")})
	require.NoError(t, err)
	assert.Equal(t, []any{item}, wrapped)

	bare, err := UnwrapItems([]any{item})
	require.NoError(t, err)
	assert.Equal(t, []any{item}, bare)

	empty, err := UnwrapItems(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = UnwrapItems(Object{"available": json.Number("0")})
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestCollapse_Dates(t *testing.T) {
	raw := []any{
		Object{"type": "onsaleDate", "date": "2000-09-10T00:00:00-0400"},
		Object{"type": "focDate", "date": "-0001-11-30T00:00:00-0500"},
	}

	got, err := DatesCollapse.Flatten(raw)
	require.NoError(t, err)
	assert.Equal(t, Object{"onsaleDate": "2000-09-10T00:00:00-0400"}, got)
}

func TestCollapse_PricesDropZero(t *testing.T) {
	raw := []any{
		Object{"type": "printPrice", "price": json.Number("2.25")},
		Object{"type": "digitalPurchasePrice", "price": json.Number("0")},
	}

	got, err := PricesCollapse.Flatten(raw)
	require.NoError(t, err)
	assert.Equal(t, Object{"printPrice": json.Number("2.25")}, got)
}

func TestCollapse_LastEntryWins(t *testing.T) {
	raw := []any{
		Object{"type": "detail", "url": "http://a"},
		Object{"type": "detail", "url": "http://b"},
	}

	got, err := URLsCollapse.Flatten(raw)
	require.NoError(t, err)
	assert.Equal(t, Object{"detail": "http://b"}, got)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{in: json.Number("785110283"), want: "785110283"},
		{in: "0-7851-1028-3", want: "0-7851-1028-3"},
		{in: float64(12), want: "12"},
		{in: nil, want: nil},
	}
	for _, tt := range tests {
		got, err := Stringify(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := Stringify(true)
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestComic(t *testing.T) {
	raw := testutil.Object(t, "comic")

	got, err := Comic(raw)
	require.NoError(t, err)

	assert.Equal(t, int64(4372), got["id"])
	assert.Equal(t, "785110283", got["isbn"])
	assert.Equal(t, "1", got["issueNumber"])
	assert.Equal(t, "http://i.annihil.us/u/prod/marvel/i/mg/6/c0/5149db8019dc9.jpg", got["thumbnail"])
	assert.Equal(t, []any{"http://i.annihil.us/u/prod/marvel/i/mg/6/c0/5149db8019dc9.jpg"}, got["images"])

	dates := got["dates"].(Object)
	assert.NotContains(t, dates, "focDate")
	assert.Equal(t, "2000-09-10T00:00:00-0400", dates["onsaleDate"])

	prices := got["prices"].(Object)
	assert.Equal(t, json.Number("2.25"), prices["printPrice"])

	series := got["series"].(Object)
	assert.Equal(t, int64(466), series["id"])

	creators := got["creators"].([]any)
	require.Len(t, creators, 2)
	assert.Equal(t, int64(24), creators[0].(Object)["id"])
	assert.Equal(t, "writer", creators[0].(Object)["role"])

	urls := got["urls"].(Object)
	assert.Equal(t, "http://marvel.com/digitalcomics/view.htm?iid=26110", urls["reader"])

	// Input is left untouched.
	assert.Equal(t, json.Number("999999"), raw["id"])
	_, stillArray := raw["dates"].([]any)
	assert.True(t, stillArray)
}

func TestComic_StringISBN(t *testing.T) {
	raw := testutil.Object(t, "comic")
	raw["isbn"] = "0-7851-1028-3"

	got, err := Comic(raw)
	require.NoError(t, err)
	assert.Equal(t, "0-7851-1028-3", got["isbn"])
}

func TestCharacter_SentinelModified(t *testing.T) {
	got, err := Character(testutil.Object(t, "character"))
	require.NoError(t, err)

	assert.NotContains(t, got, "modified")
	assert.Equal(t, int64(1009389), got["id"])
	assert.Len(t, got["events"], 1)
}

func TestStory_NullThumbnail(t *testing.T) {
	got, err := Story(testutil.Object(t, "story"))
	require.NoError(t, err)

	assert.Nil(t, got["thumbnail"])
	assert.Empty(t, got["characters"])
	assert.Equal(t, int64(40962), got["originalIssue"].(Object)["id"])
}

func TestSeries_NullNext(t *testing.T) {
	got, err := Series(testutil.Object(t, "series"))
	require.NoError(t, err)

	assert.Nil(t, got["next"])
	assert.Equal(t, int64(465), got["previous"].(Object)["id"])
}

func TestNormalize_Idempotent(t *testing.T) {
	cases := map[string]func(Object) (Object, error){
		"comic":     Comic,
		"series":    Series,
		"character": Character,
		"creator":   Creator,
		"event":     Event,
		"story":     Story,
	}

	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			once, err := fn(testutil.Object(t, name))
			require.NoError(t, err)
			twice, err := fn(once)
			require.NoError(t, err)

			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("second pass changed the object (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestNormalize_MissingResourceURI(t *testing.T) {
	raw := testutil.Object(t, "event")
	delete(raw, "resourceURI")

	_, err := Event(raw)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "event", fieldErr.Kind)
	assert.ErrorIs(t, err, ErrMissingResourceURI)
}

func TestNormalize_BadCollection(t *testing.T) {
	raw := testutil.Object(t, "creator")
	raw["comics"] = json.Number("4")

	_, err := Creator(raw)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "comics", fieldErr.Field)
}
