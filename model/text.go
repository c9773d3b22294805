package model

// Alignment is a paragraph's horizontal alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Anchor is a text frame's vertical anchoring within its shape.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorMiddle
	AnchorBottom
)

// TextRun is a span of characters with uniform formatting. A zero Size
// or empty Font means the format's default is inherited.
type TextRun struct {
	Text      string
	Size      Length // font size; use Points(n)
	Bold      bool
	Italic    bool
	Underline bool
	Color     *Color // nil inherits the theme color
	Font      string // typeface name; "" inherits the theme font
}

// SetSize sets the font size and returns the run for chaining.
func (r *TextRun) SetSize(s Length) *TextRun {
	r.Size = s
	return r
}

// SetBold sets the bold flag and returns the run for chaining.
func (r *TextRun) SetBold(b bool) *TextRun {
	r.Bold = b
	return r
}

// SetItalic sets the italic flag and returns the run for chaining.
func (r *TextRun) SetItalic(i bool) *TextRun {
	r.Italic = i
	return r
}

// SetUnderline sets the underline flag and returns the run for chaining.
func (r *TextRun) SetUnderline(u bool) *TextRun {
	r.Underline = u
	return r
}

// SetColor sets the run color and returns the run for chaining.
func (r *TextRun) SetColor(c Color) *TextRun {
	r.Color = &c
	return r
}

// SetFont sets the typeface name and returns the run for chaining.
func (r *TextRun) SetFont(name string) *TextRun {
	r.Font = name
	return r
}

// Paragraph is an ordered sequence of runs plus paragraph-level
// formatting. A paragraph with no runs is valid and renders as an empty
// line.
type Paragraph struct {
	Runs      []*TextRun
	Alignment Alignment
	// Level is the indent level, 0 through 8.
	Level int
	// Bullet marks the paragraph as a bulleted list item. BulletChar
	// overrides the bullet character; empty means the default "•".
	Bullet     bool
	BulletChar string
}

// AddRun appends a run with the given text and default formatting and
// returns it for configuration.
func (p *Paragraph) AddRun(text string) *TextRun {
	r := &TextRun{Text: text}
	p.Runs = append(p.Runs, r)
	return r
}

// SetAlignment sets the horizontal alignment and returns the paragraph
// for chaining.
func (p *Paragraph) SetAlignment(a Alignment) *Paragraph {
	p.Alignment = a
	return p
}

// SetLevel sets the indent level, clamped to [0, 8], and returns the
// paragraph for chaining.
func (p *Paragraph) SetLevel(level int) *Paragraph {
	if level < 0 {
		level = 0
	}
	if level > 8 {
		level = 8
	}
	p.Level = level
	return p
}

// SetBullet marks the paragraph as a bulleted item and returns the
// paragraph for chaining.
func (p *Paragraph) SetBullet(b bool) *Paragraph {
	p.Bullet = b
	return p
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

// TextFrame is the text content of a shape: an ordered sequence of
// paragraphs. A frame is owned by exactly one shape.
type TextFrame struct {
	Paragraphs []*Paragraph
	Anchor     Anchor
	// WordWrap wraps text at the shape boundary. Frames created through
	// the model default to wrapping.
	WordWrap bool
}

// NewTextFrame returns an empty frame with default body properties.
func NewTextFrame() *TextFrame {
	return &TextFrame{WordWrap: true}
}

// AddParagraph appends an empty paragraph and returns it.
func (tf *TextFrame) AddParagraph() *Paragraph {
	p := &Paragraph{}
	tf.Paragraphs = append(tf.Paragraphs, p)
	return p
}

// SetText replaces the frame's content with a single paragraph holding a
// single run of the given text, and returns that run for configuration.
func (tf *TextFrame) SetText(text string) *TextRun {
	p := &Paragraph{}
	tf.Paragraphs = []*Paragraph{p}
	return p.AddRun(text)
}

// Text returns the frame's text with paragraphs joined by newlines.
func (tf *TextFrame) Text() string {
	var s string
	for i, p := range tf.Paragraphs {
		if i > 0 {
			s += "\n"
		}
		s += p.Text()
	}
	return s
}
