package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-extract/backend/internal/fetch"
)

// stubFetcher returns a fixed body or error and records the links asked for.
type stubFetcher struct {
	body  []byte
	err   error
	links []string
}

func (f *stubFetcher) Get(ctx context.Context, link string) ([]byte, error) {
	f.links = append(f.links, link)
	return f.body, f.err
}

const recipePage = `<!doctype html>
<html><head>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"WebSite","name":"Cooking"}</script>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@graph": [
    {"@type": "WebPage", "name": "Scrambled eggs page"},
    {
      "@type": ["Recipe"],
      "name": "Scrambled Eggs",
      "prepTime": "PT5M",
      "totalTime": "PT1H10M",
      "image": [{"@type": "ImageObject", "url": "https://example.com/eggs.jpg"}],
      "recipeIngredient": ["2 eggs", "1 tbsp butter", "salt to taste", 4],
      "recipeInstructions": [
        {"@type": "HowToStep", "text": "Whisk the eggs &amp; salt."},
        {"@type": "HowToStep"}
      ]
    }
  ]
}
</script>
</head><body></body></html>`

func TestExtractFromHTML(t *testing.T) {
	got, err := ExtractFromHTML(context.Background(), []byte(recipePage), false)
	require.NoError(t, err)

	require.NotNil(t, got.Name)
	assert.Equal(t, "Scrambled Eggs", *got.Name)
	require.NotNil(t, got.PrepTimeMinutes)
	assert.Equal(t, 5, *got.PrepTimeMinutes)
	require.NotNil(t, got.TotalTimeMinutes)
	assert.Equal(t, 70, *got.TotalTimeMinutes)
	require.NotNil(t, got.Image)
	assert.Equal(t, "https://example.com/eggs.jpg", *got.Image)
	require.NotNil(t, got.Instructions)
	assert.Equal(t, "1. Whisk the eggs & salt.\n2. ---\n", *got.Instructions)

	require.Len(t, got.Ingredients, 3)
	assert.Equal(t, 2.0, *got.Ingredients[0].Amount)
	assert.Nil(t, got.Ingredients[0].Unit)
	assert.Equal(t, "eggs", got.Ingredients[0].Name)
	assert.Equal(t, "tbsp", *got.Ingredients[1].Unit)
	assert.Equal(t, "butter", got.Ingredients[1].Name)
	assert.Nil(t, got.Ingredients[2].Amount)
	assert.Equal(t, "salt to taste", got.Ingredients[2].Name)
}

func TestExtractFromHTMLPartialFields(t *testing.T) {
	page := `<script type="application/ld+json">[{"@type":"Recipe","name":42,"prepTime":"P1W","image":7,"recipeIngredient":[]}]</script>`

	got, err := ExtractFromHTML(context.Background(), []byte(page), false)
	require.NoError(t, err)
	assert.Nil(t, got.Name)
	assert.Nil(t, got.PrepTimeMinutes)
	assert.Nil(t, got.TotalTimeMinutes)
	assert.Nil(t, got.Image)
	assert.Nil(t, got.Instructions)
	assert.NotNil(t, got.Ingredients)
	assert.Empty(t, got.Ingredients)
}

func TestExtractFromHTMLBadFormat(t *testing.T) {
	for name, page := range map[string]string{
		"empty":        "",
		"whitespace":   "  \n\t ",
		"no json-ld":   "<html><head><title>Eggs</title></head><body>2 eggs</body></html>",
		"wrong type":   `<script type="application/ld+json">[{"@type":"Article","recipeIngredient":[]}]</script>`,
		"invalid json": `<script type="application/ld+json">{"recipeIngredient": [</script>`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractFromHTML(context.Background(), []byte(page), false)
			assert.ErrorIs(t, err, ErrBadFormat)
		})
	}
}

func TestExtract(t *testing.T) {
	f := &stubFetcher{body: []byte(recipePage)}
	e := NewRecipeExtractor(f, false)

	got, err := e.Extract(context.Background(), "https://example.com/eggs")
	require.NoError(t, err)
	assert.Equal(t, "Scrambled Eggs", *got.Name)

	_, err = e.Extract(context.Background(), "https://example.com/eggs")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/eggs", "https://example.com/eggs"}, f.links, "every call fetches again")
}

func TestExtractErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"transport", fmt.Errorf("%w: connection refused", fetch.ErrUnavailable), ErrLinkUnavailable},
		{"unknown fetch failure", errors.New("boom"), ErrLinkUnavailable},
		{"unreadable body", fmt.Errorf("%w: unexpected EOF", fetch.ErrUnreadableBody), ErrBadFormat},
		{"too large", fmt.Errorf("%w: more than 1 bytes", fetch.ErrTooLarge), ErrBadFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewRecipeExtractor(&stubFetcher{err: tt.err}, false)
			_, err := e.Extract(context.Background(), "https://example.com")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExtractNoLinkedData(t *testing.T) {
	e := NewRecipeExtractor(&stubFetcher{body: []byte("<html><body>no data</body></html>")}, false)
	_, err := e.Extract(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestExtractOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/eggs":
			_, _ = w.Write([]byte(recipePage))
		case "/slow":
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(recipePage))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	e := NewRecipeExtractor(fetch.NewClient(50*time.Millisecond, 0, ""), false)

	got, err := e.Extract(context.Background(), srv.URL+"/eggs")
	require.NoError(t, err)
	assert.Len(t, got.Ingredients, 3)

	_, err = e.Extract(context.Background(), srv.URL+"/missing")
	assert.ErrorIs(t, err, ErrLinkUnavailable)

	_, err = e.Extract(context.Background(), srv.URL+"/slow")
	assert.ErrorIs(t, err, ErrLinkUnavailable)
}
