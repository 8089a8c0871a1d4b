package window

import "github.com/kmacinski/natter/internal/ui"

// Base provides common functionality for windows
type Base struct {
	name    string
	kind    Kind
	focused bool
	styles  ui.Styles
}

// NewBase creates a new base window
func NewBase(name string, kind Kind, styles ui.Styles) Base {
	return Base{
		name:   name,
		kind:   kind,
		styles: styles,
	}
}

// Name returns the window name
func (b *Base) Name() string {
	return b.name
}

// Kind returns the window kind
func (b *Base) Kind() Kind {
	return b.kind
}

// Focused returns whether the window is focused
func (b *Base) Focused() bool {
	return b.focused
}

// SetFocus sets the focus state
func (b *Base) SetFocus(focused bool) {
	b.focused = focused
}

// Styles returns the window styles
func (b *Base) Styles() ui.Styles {
	return b.styles
}

// SetStyles replaces the window styles
func (b *Base) SetStyles(styles ui.Styles) {
	b.styles = styles
}
