package jsonld

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Name returns the recipe name, or nil when it is missing or not a string.
func (o Object) Name() *string {
	s, ok := decodeString(o["name"])
	if !ok {
		return nil
	}
	return &s
}

// PrepTime returns prepTime in whole minutes.
func (o Object) PrepTime() *int {
	return o.minutes("prepTime")
}

// TotalTime returns totalTime in whole minutes.
func (o Object) TotalTime() *int {
	return o.minutes("totalTime")
}

func (o Object) minutes(key string) *int {
	s, ok := decodeString(o[key])
	if !ok {
		return nil
	}
	m, ok := ParseDurationMinutes(s)
	if !ok {
		return nil
	}
	return &m
}

// Image returns the absolute image URL, accepting a URL string, an object
// with "url", or a list whose first element is one of those.
func (o Object) Image() *string {
	raw, ok := o["image"]
	if !ok {
		return nil
	}
	var ref imageRef
	if err := json.Unmarshal(raw, &ref); err != nil || !ref.ok {
		return nil
	}
	u, err := url.Parse(ref.url)
	if err != nil || !u.IsAbs() || (u.Host == "" && u.Opaque == "") {
		return nil
	}
	s := u.String()
	return &s
}

// Instructions renders recipeInstructions as numbered lines, "<n>. <text>\n".
// Steps without a text render as "<n>. ---".
func (o Object) Instructions() *string {
	raw, ok := o["recipeInstructions"]
	if !ok || firstByte(raw) != '[' {
		return nil
	}
	var steps []json.RawMessage
	if err := json.Unmarshal(raw, &steps); err != nil {
		return nil
	}

	var b strings.Builder
	for i, step := range steps {
		text, ok := stepText(step)
		if !ok {
			text = "---"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, text)
	}
	s := b.String()
	return &s
}

func stepText(step json.RawMessage) (string, bool) {
	if firstByte(step) != '{' {
		return "", false
	}
	var obj Object
	if err := json.Unmarshal(step, &obj); err != nil {
		return "", false
	}
	text, ok := decodeString(obj["text"])
	if !ok {
		return "", false
	}
	return html.UnescapeString(text), true
}

// IngredientLines returns the string entries of recipeIngredient. Other
// entries are skipped; a missing member yields an empty list.
func (o Object) IngredientLines() []string {
	lines := []string{}
	raw, ok := o[ingredientKey]
	if !ok || firstByte(raw) != '[' {
		return lines
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return lines
	}
	for _, item := range items {
		if s, ok := decodeString(item); ok {
			lines = append(lines, s)
		}
	}
	return lines
}
