// Package jsonld finds the schema.org Recipe embedded in an HTML page as
// JSON-LD and projects its fields.
package jsonld

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"golang.org/x/net/html"
)

// ErrBadFormat is returned when a page holds no recognizable recipe data.
var ErrBadFormat = errors.New("no recipe structured data")

const (
	scriptType    = "application/ld+json"
	ingredientKey = "recipeIngredient"
	graphKey      = "@graph"
	typeKey       = "@type"
	recipeType    = "Recipe"
)

type locateOptions struct {
	repair bool
}

// LocateOption configures Locate.
type LocateOption func(*locateOptions)

// WithRepair makes Locate retry invalid JSON-LD through jsonrepair before
// giving up on it.
func WithRepair(enabled bool) LocateOption {
	return func(o *locateOptions) {
		o.repair = enabled
	}
}

// Locate returns the Recipe object embedded in doc.
//
// The first application/ld+json script mentioning recipeIngredient is used.
// Its value must be an array, or an object whose @graph is an array, holding
// an element typed Recipe.
func Locate(doc []byte, opts ...LocateOption) (Object, error) {
	var o locateOptions
	for _, opt := range opts {
		opt(&o)
	}

	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", ErrBadFormat, err)
	}

	text, ok := findRecipeScript(root)
	if !ok {
		return nil, fmt.Errorf("%w: no %s script with %s", ErrBadFormat, scriptType, ingredientKey)
	}

	top, err := decodeScript(text, o.repair)
	if err != nil {
		return nil, err
	}
	return findRecipe(top)
}

func findRecipeScript(root *html.Node) (string, bool) {
	var found string
	var ok bool
	var dfs func(*html.Node)
	dfs = func(n *html.Node) {
		if ok {
			return
		}
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "script") && isLinkedData(n) {
			if text := nodeText(n); strings.Contains(text, ingredientKey) {
				found, ok = text, true
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(root)
	return found, ok
}

func isLinkedData(n *html.Node) bool {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, "type") {
			return strings.EqualFold(strings.TrimSpace(attr.Val), scriptType)
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func decodeScript(text string, repair bool) (node, error) {
	var top node
	err := json.Unmarshal([]byte(text), &top)
	if err == nil {
		return top, nil
	}
	if !repair {
		return node{}, fmt.Errorf("%w: invalid json: %v", ErrBadFormat, err)
	}

	repaired, repairErr := jsonrepair.JSONRepair(text)
	if repairErr != nil {
		return node{}, fmt.Errorf("%w: invalid json: %v (repair: %v)", ErrBadFormat, err, repairErr)
	}
	if err := json.Unmarshal([]byte(repaired), &top); err != nil {
		return node{}, fmt.Errorf("%w: invalid json after repair: %v", ErrBadFormat, err)
	}
	return top, nil
}

func findRecipe(top node) (Object, error) {
	if top.shape == shapeObject {
		graph, ok := top.object[graphKey]
		if !ok {
			return nil, fmt.Errorf("%w: object without %s", ErrBadFormat, graphKey)
		}
		if err := json.Unmarshal(graph, &top); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadFormat, graphKey, err)
		}
	}
	if top.shape != shapeArray {
		return nil, fmt.Errorf("%w: expected an array of nodes", ErrBadFormat)
	}

	for _, raw := range top.array {
		var item node
		if err := json.Unmarshal(raw, &item); err != nil || item.shape != shapeObject {
			continue
		}
		if item.object.types().has(recipeType) {
			return item.object, nil
		}
	}
	return nil, fmt.Errorf("%w: no %s node", ErrBadFormat, recipeType)
}

func (o Object) types() typeTag {
	var t typeTag
	raw, ok := o[typeKey]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil
	}
	return t
}
