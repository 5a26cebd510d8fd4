package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// StyleOptions configures how text should be displayed
type StyleOptions struct {
	Bold            bool
	Italic          bool
	Underline       bool
	TextColor       tcell.Color
	BackgroundColor tcell.Color
}

// DefaultStyleOptions returns standard styling
func DefaultStyleOptions() StyleOptions {
	return StyleOptions{
		TextColor:       tcell.ColorWhite,
		BackgroundColor: tcell.ColorDefault,
	}
}

// StyleBuilder facilitates chaining style operations
type StyleBuilder struct {
	options StyleOptions
}

// NewStyleBuilder creates a new style builder with default options
func NewStyleBuilder() *StyleBuilder {
	return &StyleBuilder{
		options: DefaultStyleOptions(),
	}
}

// WithBold sets the bold attribute
func (b *StyleBuilder) WithBold() *StyleBuilder {
	b.options.Bold = true
	return b
}

// WithItalic sets the italic attribute
func (b *StyleBuilder) WithItalic() *StyleBuilder {
	b.options.Italic = true
	return b
}

// WithUnderline sets the underline attribute
func (b *StyleBuilder) WithUnderline() *StyleBuilder {
	b.options.Underline = true
	return b
}

// WithTextColor sets the text color
func (b *StyleBuilder) WithTextColor(color tcell.Color) *StyleBuilder {
	b.options.TextColor = color
	return b
}

// WithBackgroundColor sets the background color
func (b *StyleBuilder) WithBackgroundColor(color tcell.Color) *StyleBuilder {
	b.options.BackgroundColor = color
	return b
}

// Build creates the final StyleOptions object
func (b *StyleBuilder) Build() StyleOptions {
	return b.options
}

// ApplyStyle applies styling to text using tview's color tags
func ApplyStyle(text string, style StyleOptions) string {
	result := "["

	if style.TextColor != tcell.ColorDefault {
		result += fmt.Sprintf("#%06x", style.TextColor.Hex())
	}
	if style.BackgroundColor != tcell.ColorDefault {
		result += ":" + fmt.Sprintf("#%06x", style.BackgroundColor.Hex())
	}
	if style.Bold {
		result += ":b"
	}
	if style.Italic {
		result += ":i"
	}
	if style.Underline {
		result += ":u"
	}

	return result + "]" + text + "[-]"
}

// CreateInfoText creates styled informational text
func CreateInfoText(label, value string, valueColor tcell.Color) string {
	labelStyle := NewStyleBuilder().
		WithBold().
		WithTextColor(tcell.ColorWhite).
		Build()

	valueStyle := NewStyleBuilder().
		WithTextColor(valueColor).
		Build()

	return ApplyStyle(label, labelStyle) + ": " + ApplyStyle(value, valueStyle)
}
