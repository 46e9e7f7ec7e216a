package algebra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// ToMap converts f to a tree of native Go values suitable for encoding.
// A container becomes
//
//	{"kind": "round", "children": [...]}
//
// and a variable becomes {"variable": "A"}. ToMap(nil) is nil.
func ToMap(f Form) any {
	root, ok := f.(*Container)
	if !ok || root == nil {
		return leafMap(f)
	}

	// Containers are finished in post-order, once every child is converted.
	type node struct {
		c    *Container
		done []any
	}

	open := func(c *Container) *node {
		return &node{c: c, done: make([]any, 0, len(c.children))}
	}

	stack := []*node{open(root)}

	for {
		top := stack[len(stack)-1]

		if i := len(top.done); i < len(top.c.children) {
			if c, ok := top.c.children[i].(*Container); ok && c != nil {
				stack = append(stack, open(c))
			} else {
				top.done = append(top.done, leafMap(top.c.children[i]))
			}

			continue
		}

		m := map[string]any{
			"kind":     top.c.kind.String(),
			"children": top.done,
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return m
		}

		parent := stack[len(stack)-1]
		parent.done = append(parent.done, m)
	}
}

func leafMap(f Form) any {
	if v, ok := f.(*Variable); ok && v != nil {
		return map[string]any{"variable": string(v.name)}
	}

	return nil
}

// MarshalJSON implements json.Marshaler using the [ToMap] encoding.
func (c *Container) MarshalJSON() ([]byte, error) { return json.Marshal(ToMap(c)) }

// MarshalJSON implements json.Marshaler using the [ToMap] encoding.
func (v *Variable) MarshalJSON() ([]byte, error) { return json.Marshal(ToMap(v)) }

// MarshalYAML implements yaml.InterfaceMarshaler using the [ToMap] encoding.
func (c *Container) MarshalYAML() (any, error) { return ToMap(c), nil }

// MarshalYAML implements yaml.InterfaceMarshaler using the [ToMap] encoding.
func (v *Variable) MarshalYAML() (any, error) { return ToMap(v), nil }

// FormatJSON writes f as JSON to w, indented by indent spaces per level when
// indent is positive.
func FormatJSON(w io.Writer, f Form, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(ToMap(f), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(ToMap(f))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes f as YAML to w. A positive indent selects block style
// with that indentation; otherwise flow style is used.
func FormatYAML(ctx context.Context, w io.Writer, f Form, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, ToMap(f), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
