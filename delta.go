package textdiff

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// deltaUnescaper undoes percent-encoding for characters that are legible
// and unambiguous in delta and patch text. Keeping them raw makes the
// output human-readable without risking the tab and newline separators.
var deltaUnescaper = strings.NewReplacer(
	"%21", "!", "%7E", "~", "%27", "'",
	"%28", "(", "%29", ")", "%3B", ";",
	"%2F", "/", "%3F", "?", "%3A", ":",
	"%40", "@", "%26", "&", "%3D", "=",
	"%2B", "+", "%24", "$", "%2C", ",",
	"%23", "#", "%2A", "*",
)

// encodeURI percent-encodes text for delta and patch bodies, leaving
// spaces and the legible punctuation set raw.
func encodeURI(text string) string {
	return deltaUnescaper.Replace(strings.ReplaceAll(url.QueryEscape(text), "+", " "))
}

// decodeURI reverses encodeURI. Literal '+' must survive, so it is
// re-escaped before the query unescape turns plus signs into spaces.
func decodeURI(text string) (string, error) {
	return url.QueryUnescape(strings.ReplaceAll(text, "+", "%2b"))
}

// ToDelta encodes the diff as a compact delta that, together with the
// source text, reproduces the destination text. Operations are
// tab-separated: "=N" keeps N runes, "-N" drops N runes, "+TEXT" inserts
// the percent-encoded TEXT.
func (edits EditList) ToDelta() string {
	var sb strings.Builder
	for i, edit := range edits {
		if i > 0 {
			sb.WriteString("\t")
		}
		switch edit.Op {
		case Insert:
			sb.WriteString("+")
			sb.WriteString(encodeURI(edit.Text))
		case Delete:
			sb.WriteString("-")
			sb.WriteString(strconv.Itoa(len([]rune(edit.Text))))
		case Equal:
			sb.WriteString("=")
			sb.WriteString(strconv.Itoa(len([]rune(edit.Text))))
		}
	}
	return sb.String()
}

// FromDelta decodes a delta against the source text it was made from,
// returning the full diff. The delta must consume the source text exactly.
func FromDelta(text1, delta string) (EditList, error) {
	var edits EditList
	runes := []rune(text1)
	pointer := 0

	for _, token := range strings.Split(delta, "\t") {
		if len(token) == 0 {
			// A trailing tab produces a blank token.
			continue
		}
		param := token[1:]
		switch op := token[0]; op {
		case '+':
			text, err := decodeURI(param)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid insertion %q: %v", ErrBadDelta, param, err)
			}
			edits = append(edits, Edit{Insert, text})
		case '-', '=':
			n, err := strconv.Atoi(param)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid count %q: %v", ErrBadDelta, param, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: negative count %d", ErrBadDelta, n)
			}
			if pointer+n > len(runes) {
				return nil, fmt.Errorf("%w: count %d exceeds source length %d", ErrBadDelta, n, len(runes))
			}
			text := string(runes[pointer : pointer+n])
			pointer += n
			if op == '=' {
				edits = append(edits, Edit{Equal, text})
			} else {
				edits = append(edits, Edit{Delete, text})
			}
		default:
			return nil, fmt.Errorf("%w: unknown operation %q", ErrBadDelta, string(op))
		}
	}
	if pointer != len(runes) {
		return nil, fmt.Errorf("%w: delta consumed %d of %d source runes", ErrBadDelta, pointer, len(runes))
	}
	return edits, nil
}
