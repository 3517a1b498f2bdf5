package jsonld

import (
	"bytes"
	"encoding/json"
)

// Object is a decoded JSON-LD node. Members stay raw until a field extractor
// asks for them, so one badly shaped member never spoils the others.
type Object map[string]json.RawMessage

type shape int

const (
	shapeOther shape = iota
	shapeObject
	shapeArray
)

// node is a JSON value that is either an object, an array or anything else.
type node struct {
	shape  shape
	object Object
	array  []json.RawMessage
}

func (n *node) UnmarshalJSON(b []byte) error {
	*n = node{}
	switch firstByte(b) {
	case '{':
		var obj Object
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		n.shape, n.object = shapeObject, obj
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(b, &arr); err != nil {
			return err
		}
		n.shape, n.array = shapeArray, arr
	}
	return nil
}

// typeTag is the "@type" member: a single name or a list of names.
type typeTag []string

func (t *typeTag) UnmarshalJSON(b []byte) error {
	*t = nil
	switch firstByte(b) {
	case '"':
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		*t = typeTag{name}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		for _, item := range items {
			if name, ok := decodeString(item); ok {
				*t = append(*t, name)
			}
		}
	}
	return nil
}

func (t typeTag) has(name string) bool {
	for _, n := range t {
		if n == name {
			return true
		}
	}
	return false
}

// imageRef covers the three shapes schema.org images come in: a URL string,
// an ImageObject with a "url", or a list whose first entry is either.
type imageRef struct {
	url string
	ok  bool
}

func (r *imageRef) UnmarshalJSON(b []byte) error {
	*r = imageRef{}
	switch firstByte(b) {
	case '"':
		r.url, r.ok = decodeString(b)
	case '{':
		r.url, r.ok = urlMember(b)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		switch firstByte(items[0]) {
		case '"':
			r.url, r.ok = decodeString(items[0])
		case '{':
			r.url, r.ok = urlMember(items[0])
		}
	}
	return nil
}

func urlMember(b []byte) (string, bool) {
	var obj Object
	if err := json.Unmarshal(b, &obj); err != nil {
		return "", false
	}
	return decodeString(obj["url"])
}

// decodeString decodes b only when it holds a JSON string.
func decodeString(b json.RawMessage) (string, bool) {
	if firstByte(b) != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", false
	}
	return s, true
}

func firstByte(b []byte) byte {
	b = bytes.TrimLeft(b, " \t\r\n")
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
