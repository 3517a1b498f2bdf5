package jsonld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(scripts ...string) []byte {
	doc := "<!doctype html><html><head><title>Dinner</title>"
	for _, s := range scripts {
		doc += s
	}
	return []byte(doc + "</head><body><p>hello</p></body></html>")
}

func ldScript(body string) string {
	return `<script type="application/ld+json">` + body + `</script>`
}

func TestLocateGraphArray(t *testing.T) {
	doc := page(ldScript(`{
		"@context": "https://schema.org",
		"@graph": [
			{"@type": "WebSite", "name": "Site"},
			{"@type": ["Recipe"], "name": "Eggs", "recipeIngredient": ["2 eggs"]}
		]
	}`))

	obj, err := Locate(doc)
	require.NoError(t, err)
	require.NotNil(t, obj.Name())
	assert.Equal(t, "Eggs", *obj.Name())
	assert.Equal(t, []string{"2 eggs"}, obj.IngredientLines())
}

func TestLocateTopLevelArray(t *testing.T) {
	doc := page(ldScript(`[
		{"@type": "Organization"},
		{"@type": "Recipe", "name": "Soup", "recipeIngredient": []}
	]`))

	obj, err := Locate(doc)
	require.NoError(t, err)
	assert.Equal(t, "Soup", *obj.Name())
}

func TestLocateSkipsUnrelatedScripts(t *testing.T) {
	doc := page(
		`<script>var recipeIngredient = 1;</script>`,
		ldScript(`{"@type": "BreadcrumbList"}`),
		`<script type="application/json">{"recipeIngredient": []}</script>`,
		ldScript(`[{"@type": "Recipe", "name": "Chosen", "recipeIngredient": ["1 cup rice"]}]`),
		ldScript(`[{"@type": "Recipe", "name": "Later", "recipeIngredient": []}]`),
	)

	obj, err := Locate(doc)
	require.NoError(t, err)
	assert.Equal(t, "Chosen", *obj.Name())
}

func TestLocateBadFormat(t *testing.T) {
	tests := map[string][]byte{
		"no script":            page(),
		"no ingredient key":    page(ldScript(`[{"@type": "Recipe", "name": "x"}]`)),
		"invalid json":         page(ldScript(`[{"@type": "Recipe", "recipeIngredient": [}`)),
		"object without graph": page(ldScript(`{"@type": "Recipe", "recipeIngredient": ["1 egg"]}`)),
		"graph not an array":   page(ldScript(`{"@graph": {"@type": "Recipe", "recipeIngredient": []}}`)),
		"scalar":               page(ldScript(`"recipeIngredient"`)),
		"no recipe node":       page(ldScript(`[{"@type": "HowTo", "recipeIngredient": []}, "Recipe"]`)),
		"type is an object":    page(ldScript(`[{"@type": {"name": "Recipe"}, "recipeIngredient": []}]`)),
		"empty document":       nil,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Locate(doc)
			assert.ErrorIs(t, err, ErrBadFormat)
		})
	}
}

func TestLocateRepair(t *testing.T) {
	doc := page(ldScript(`[{"@type": "Recipe", "name": "Trailing", "recipeIngredient": ["2 eggs",],}]`))

	_, err := Locate(doc)
	assert.ErrorIs(t, err, ErrBadFormat)

	obj, err := Locate(doc, WithRepair(true))
	require.NoError(t, err)
	assert.Equal(t, "Trailing", *obj.Name())
	assert.Equal(t, []string{"2 eggs"}, obj.IngredientLines())
}
