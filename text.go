package hud

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps an Ebitengine text/v2 face source at a logical size. Faces are
// built per draw at the canvas scale, so text stays sharp at any resolution.
type Font struct {
	source *text.GoTextFaceSource
	// Size is the font size in logical pixels.
	Size float64
}

// LoadFont parses TrueType or OpenType data.
func LoadFont(data []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("hud: failed to parse font data: %w", err)
	}
	return &Font{source: source, Size: size}, nil
}

// defaultSource is parsed once (no sync.Once, the package is single-threaded).
var defaultSource *text.GoTextFaceSource

// DefaultFont returns the Go Regular face at the given logical size.
func DefaultFont(size float64) (*Font, error) {
	if defaultSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("hud: failed to parse default font: %w", err)
		}
		defaultSource = src
	}
	return &Font{source: defaultSource, Size: size}, nil
}

func (f *Font) face(scale float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: f.Size * scale}
}

// LineHeight returns the logical distance between baselines.
func (f *Font) LineHeight() float64 {
	m := f.face(1).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Measure returns the logical width and height of s.
func (f *Font) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face(1), f.LineHeight())
}

// --- TextState ---

// TextState is the trait of labels, text boxes and text areas.
type TextState struct {
	Font  *Font
	Color Color
	Align TextAlign

	// Text box and text area decoration, in logical pixels.
	Padding     float64
	BorderColor Color
	BorderWidth float64
	SingleLine  bool

	// MaxLines > 0 makes the text scrollable, showing at most MaxLines lines.
	// Font, Size, SingleLine and MaxLines may be changed directly; the layout
	// and scroll offset follow on the next query.
	MaxLines int

	content string
	first   int
	wrap    float64
	lines   []string
	dirty   bool
	laid    layoutKey
}

// layoutKey is what the cached lines were laid out with.
type layoutKey struct {
	font   *Font
	size   float64
	single bool
	wrap   float64
}

func (t *TextState) key() layoutKey {
	k := layoutKey{font: t.Font, single: t.SingleLine, wrap: t.wrap}
	if t.Font != nil {
		k.size = t.Font.Size
	}
	return k
}

func newTextState(content string, font *Font) *TextState {
	return &TextState{Font: font, Color: ColorWhite, content: content, dirty: true}
}

// Content returns the full text.
func (t *TextState) Content() string {
	return t.content
}

// SetContent replaces the text and re-clamps the scroll offset.
func (t *TextState) SetContent(s string) {
	t.content = s
	t.dirty = true
	t.clampFirst()
}

// AppendLine adds a line at the end. A text area scrolled to the bottom
// keeps following new lines.
func (t *TextState) AppendLine(s string) {
	atBottom := t.first >= t.maxFirst()
	if t.content == "" {
		t.content = s
	} else {
		t.content += "\n" + s
	}
	t.dirty = true
	if atBottom {
		t.ScrollToBottom()
	}
}

func (t *TextState) setWrapWidth(w float64) {
	if w < 0 {
		w = 0
	}
	if w != t.wrap {
		t.wrap = w
		t.dirty = true
		t.clampFirst()
	}
}

// Lines returns the laid-out lines: the content split on newlines and, when
// a font and a wrap width are known, word-wrapped.
func (t *TextState) Lines() []string {
	k := t.key()
	if !t.dirty && k == t.laid {
		return t.lines
	}
	t.dirty = false
	t.laid = k
	t.lines = t.lines[:0]
	if t.SingleLine {
		t.lines = append(t.lines, strings.ReplaceAll(t.content, "\n", " "))
		return t.lines
	}
	for _, para := range strings.Split(t.content, "\n") {
		if t.Font == nil || t.wrap <= 0 {
			t.lines = append(t.lines, para)
			continue
		}
		t.lines = t.wrapParagraph(para, t.lines)
	}
	return t.lines
}

// wrapParagraph greedily fills lines up to the wrap width. A single word
// wider than the wrap width gets a line of its own.
func (t *TextState) wrapParagraph(para string, out []string) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return append(out, "")
	}
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if cw, _ := t.Font.Measure(candidate); cw <= t.wrap {
			line = candidate
			continue
		}
		out = append(out, line)
		line = w
	}
	return append(out, line)
}

// LineCount returns the number of laid-out lines.
func (t *TextState) LineCount() int {
	return len(t.Lines())
}

// FirstLine returns the index of the first visible line.
func (t *TextState) FirstLine() int {
	t.clampFirst()
	return t.first
}

func (t *TextState) maxFirst() int {
	if t.MaxLines <= 0 {
		return 0
	}
	m := t.LineCount() - t.MaxLines
	if m < 0 {
		return 0
	}
	return m
}

func (t *TextState) clampFirst() {
	if t.first > t.maxFirst() {
		t.first = t.maxFirst()
	}
	if t.first < 0 {
		t.first = 0
	}
}

// ScrollBy moves the first visible line by delta, clamped to
// [0, lineCount-MaxLines]. Reports whether the offset changed.
func (t *TextState) ScrollBy(delta int) bool {
	before := t.first
	t.first += delta
	t.clampFirst()
	return t.first != before
}

// ScrollToBottom shows the last MaxLines lines.
func (t *TextState) ScrollToBottom() {
	t.first = t.maxFirst()
}

// VisibleLines returns the lines currently in view.
func (t *TextState) VisibleLines() []string {
	lines := t.Lines()
	if t.MaxLines <= 0 {
		return lines
	}
	t.clampFirst()
	end := t.first + t.MaxLines
	if end > len(lines) {
		end = len(lines)
	}
	return lines[t.first:end]
}

// measure returns the logical size of the content without padding.
func (t *TextState) measure() (float64, float64) {
	if t.Font == nil {
		return 0, 0
	}
	if t.MaxLines > 0 {
		return t.wrap, float64(t.MaxLines) * t.Font.LineHeight()
	}
	return t.Font.Measure(strings.Join(t.Lines(), "\n"))
}

// ellipsize trims s until it fits in width logical pixels.
func (t *TextState) ellipsize(s string, width float64) string {
	if t.Font == nil || width <= 0 {
		return s
	}
	if w, _ := t.Font.Measure(s); w <= width {
		return s
	}
	const ellipsis = "…"
	for len(s) > 0 {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
		if w, _ := t.Font.Measure(s + ellipsis); w <= width {
			return s + ellipsis
		}
	}
	return ""
}

// --- Node helpers ---

// SetText replaces a text node's content and recomputes derived bounds.
func (n *Node) SetText(s string) {
	if n.Text == nil {
		logger.Warn("hud: SetText on node without text", "node", n.Name, "kind", n.Kind)
		return
	}
	n.Text.SetContent(s)
	n.refresh()
}

// TextContent returns a text node's content, or "" when the node has none.
func (n *Node) TextContent() string {
	if n.Text == nil {
		return ""
	}
	return n.Text.content
}
