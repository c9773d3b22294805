package pptx

import (
	"errors"
	"fmt"

	"github.com/slidekit/slidekit/model"
)

// ErrEncoding is returned when text contains characters XML 1.0 cannot
// carry, such as control characters below U+0020 other than tab,
// newline and carriage return. Reserved characters like '<' and '&' are
// escaped, not rejected.
var ErrEncoding = errors.New("pptx: text not representable in XML")

const defaultBulletChar = "•"

var alignmentVal = map[model.Alignment]string{
	model.AlignLeft:    "", // "l" is the default and is omitted
	model.AlignCenter:  "ctr",
	model.AlignRight:   "r",
	model.AlignJustify: "just",
}

var anchorVal = map[model.Anchor]string{
	model.AnchorTop:    "", // "t" is the default and is omitted
	model.AnchorMiddle: "ctr",
	model.AnchorBottom: "b",
}

// buildTxBody renders a text frame. A nil frame still yields a body with
// one empty paragraph, which PresentationML requires on every p:sp.
func buildTxBody(tf *model.TextFrame) (*txBodyMarkup, error) {
	body := &txBodyMarkup{}
	if tf == nil {
		body.BodyPr.Wrap = "square"
		body.P = []pMarkup{{}}
		return body, nil
	}

	if tf.WordWrap {
		body.BodyPr.Wrap = "square"
	} else {
		body.BodyPr.Wrap = "none"
	}
	body.BodyPr.Anchor = anchorVal[tf.Anchor]

	for _, para := range tf.Paragraphs {
		p, err := buildParagraph(para)
		if err != nil {
			return nil, err
		}
		body.P = append(body.P, p)
	}
	if len(body.P) == 0 {
		body.P = []pMarkup{{}}
	}
	return body, nil
}

func buildParagraph(para *model.Paragraph) (pMarkup, error) {
	p := pMarkup{}

	pr := &pPrMarkup{
		Lvl:  para.Level,
		Algn: alignmentVal[para.Alignment],
	}
	if para.Bullet {
		ch := para.BulletChar
		if ch == "" {
			ch = defaultBulletChar
		}
		pr.BuChar = &buCharMarkup{Char: ch}
	} else if para.Level > 0 {
		// Indented paragraphs inherit bullets from the master unless
		// suppressed explicitly.
		pr.BuNone = &struct{}{}
	}
	if pr.Lvl != 0 || pr.Algn != "" || pr.BuChar != nil || pr.BuNone != nil {
		p.PPr = pr
	}

	for _, run := range para.Runs {
		r, err := buildRun(run)
		if err != nil {
			return pMarkup{}, err
		}
		p.R = append(p.R, r)
	}
	return p, nil
}

func buildRun(run *model.TextRun) (rMarkup, error) {
	if err := checkText(run.Text); err != nil {
		return rMarkup{}, err
	}

	pr := &rPrMarkup{Lang: "en-US", Sz: run.Size.Centipoints()}
	if run.Bold {
		pr.B = 1
	}
	if run.Italic {
		pr.I = 1
	}
	if run.Underline {
		pr.U = "sng"
	}
	if run.Color != nil {
		pr.SolidFill = &solidFillMarkup{SrgbClr: srgbClrMarkup{Val: run.Color.Hex()}}
	}
	if run.Font != "" {
		pr.Latin = &latinMarkup{Typeface: run.Font}
	}
	return rMarkup{RPr: pr, T: run.Text}, nil
}

// checkText rejects characters that have no representation in XML 1.0.
// Escapable characters pass; the encoder escapes them on output.
func checkText(s string) error {
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
		case r < 0x20:
			return fmt.Errorf("%w: control character U+%04X", ErrEncoding, r)
		case r == 0xFFFE || r == 0xFFFF:
			return fmt.Errorf("%w: noncharacter U+%04X", ErrEncoding, r)
		}
	}
	return nil
}
