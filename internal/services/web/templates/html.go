package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// markup accumulates escaped HTML for hand-written components.
type markup struct {
	strings.Builder
}

func (m *markup) raw(parts ...string) *markup {
	for _, part := range parts {
		m.WriteString(part)
	}
	return m
}

func (m *markup) text(value string) *markup {
	m.WriteString(templ.EscapeString(value))
	return m
}

func (m *markup) attr(name, value string) *markup {
	m.WriteString(" ")
	m.WriteString(name)
	m.WriteString(`="`)
	m.WriteString(templ.EscapeString(value))
	m.WriteString(`"`)
	return m
}

func (m *markup) intAttr(name string, value int) *markup {
	return m.attr(name, strconv.Itoa(value))
}

func (m *markup) flush(w io.Writer) error {
	_, err := io.WriteString(w, m.String())
	m.Reset()
	return err
}

func (m *markup) render(ctx context.Context, w io.Writer, c templ.Component) error {
	if err := m.flush(w); err != nil {
		return err
	}
	if c == nil {
		return nil
	}
	return c.Render(ctx, w)
}

// Text renders escaped text.
func Text(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}

// Join renders components in order.
func Join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func renderChildren(ctx context.Context, w io.Writer) error {
	return templ.GetChildren(ctx).Render(templ.ClearChildren(ctx), w)
}
