package faceoverlay

import (
	"fmt"
	"github.com/swdee/go-faceoverlay/result"
	"math"
)

// Options are the optional settings of an Overlay
type Options struct {
	// Glyphs enables drawing each named slot's glyph beside its name
	Glyphs bool
	// Phase supplies the scan line position, defaults to StaticPhase(0)
	Phase PhaseSource
	// Invalidate is called whenever the overlay needs the host to redraw
	Invalidate func()
}

// Overlay renders identity cards over face detections.  It does no locking,
// the host must serialise calls to SetResult, Clear and Render.
type Overlay struct {
	viewWidth  int
	viewHeight int
	// base is the theme given at construction, restored by Clear
	base  Theme
	theme Theme
	// identities is the positional slot table
	identities IdentityTable
	glyphs     bool
	phase      PhaseSource
	invalidate func()
	// res is the stored detection result, nil when empty
	res         *result.DetectionResult
	scaleFactor float64
	// origin is where the scaled source image's top left corner sits in the
	// view, non zero for letterboxed frames
	origin Point
}

// NewOverlay returns an empty overlay for a view of the given size
func NewOverlay(viewWidth, viewHeight int, theme Theme,
	identities IdentityTable, opts Options) *Overlay {

	phase := opts.Phase
	if phase == nil {
		phase = StaticPhase(0)
	}

	return &Overlay{
		viewWidth:   viewWidth,
		viewHeight:  viewHeight,
		base:        theme.Clone(),
		theme:       theme.Clone(),
		identities:  identities,
		glyphs:      opts.Glyphs,
		phase:       phase,
		invalidate:  opts.Invalidate,
		scaleFactor: 1,
	}
}

// SetOrigin places the scaled source image's top left corner at p in the
// view.  Letterboxed frames pass their padding so boxes land on the centred
// image.
func (o *Overlay) SetOrigin(p Point) {
	o.origin = p
	o.redraw()
}

// Origin returns the view position of the source image's top left corner
func (o *Overlay) Origin() Point {
	return o.origin
}

// ViewSize returns the view dimensions
func (o *Overlay) ViewSize() (int, int) {
	return o.viewWidth, o.viewHeight
}

// SetResult stores the detections for the current frame and recomputes the
// scale factor from the source image size.  Non positive dimensions leave the
// overlay untouched and return ErrInvalidDimensions.  A nil result empties
// the overlay.
func (o *Overlay) SetResult(res *result.DetectionResult, srcWidth, srcHeight int) error {

	scale, err := FitScale(o.viewWidth, o.viewHeight, srcWidth, srcHeight)

	if err != nil {
		return fmt.Errorf("view %dx%d, source %dx%d: %w",
			o.viewWidth, o.viewHeight, srcWidth, srcHeight, err)
	}

	o.res = res
	o.scaleFactor = scale
	o.redraw()

	return nil
}

// Clear drops the stored result and restores the construction theme
func (o *Overlay) Clear() {
	o.res = nil
	o.theme = o.base.Clone()
	o.redraw()
}

// Populated reports whether a result is stored
func (o *Overlay) Populated() bool {
	return o.res != nil
}

// Result returns the stored result, nil when empty
func (o *Overlay) Result() *result.DetectionResult {
	return o.res
}

// ScaleFactor returns the source to display scale computed by the last
// successful SetResult
func (o *Overlay) ScaleFactor() float64 {
	return o.scaleFactor
}

// Theme returns the theme in use
func (o *Overlay) Theme() Theme {
	return o.theme
}

func (o *Overlay) redraw() {
	if o.invalidate != nil {
		o.invalidate()
	}
}

// Render draws every stored detection onto the canvas in detection order
func (o *Overlay) Render(c Canvas) {

	if o.res == nil {
		return
	}

	phase := o.phase.Phase()

	for index, det := range o.res.Detections {
		o.renderDetection(c, index, det, phase)
	}
}

// renderDetection draws the frame, scan line, obscuring fill, identity card
// and score readout of one detection
func (o *Overlay) renderDetection(c Canvas, index int, det result.Detection, phase float64) {

	t := o.theme

	box := Rect{
		Left:   float64(det.Box.Left),
		Top:    float64(det.Box.Top),
		Right:  float64(det.Box.Right),
		Bottom: float64(det.Box.Bottom),
	}.Scale(o.scaleFactor).Offset(o.origin)

	drawFrame(c, t, box)

	scanY := box.Top + box.Height()*phase
	c.Line(Pt(box.Left, scanY), Pt(box.Right, scanY), t.ScanLine)

	profile, named := o.identities.Resolve(index)

	// unidentified faces are redacted underneath their annotations
	if !named {
		c.BlurRect(box, t.Obscure)
	}

	if profile.Avatar != nil {
		o.drawCard(c, t, box, index, profile, named)
	}

	drawScore(c, t, box, det.Score())
}

// drawFrame draws the outer and inner dashed frames and the corner accents
func drawFrame(c Canvas, t Theme, box Rect) {

	// degenerate boxes still get a visible frame
	outer, _ := box.Inflate(t.OuterOffset)

	c.StrokeRect(outer, t.OuterFrame)

	// the inner frame is omitted when the box is too small to hold it
	if inner, ok := box.Inflate(-t.InnerInset); ok {
		c.StrokeRect(inner, t.InnerFrame)
	}

	accent := t.OuterFrame
	accent.Dash = nil
	accent.Glow = 0

	for _, seg := range CornerAccents(outer, t.CornerLength) {
		c.Line(seg.From, seg.To, accent)
	}
}

// CornerAccents returns the eight strokes forming an L shape at each corner
// of r, each arm being length long
func CornerAccents(r Rect, length float64) []Segment {
	return []Segment{
		// top left
		{From: Pt(r.Left, r.Top), To: Pt(r.Left+length, r.Top)},
		{From: Pt(r.Left, r.Top), To: Pt(r.Left, r.Top+length)},
		// top right
		{From: Pt(r.Right-length, r.Top), To: Pt(r.Right, r.Top)},
		{From: Pt(r.Right, r.Top), To: Pt(r.Right, r.Top+length)},
		// bottom left
		{From: Pt(r.Left, r.Bottom), To: Pt(r.Left+length, r.Bottom)},
		{From: Pt(r.Left, r.Bottom-length), To: Pt(r.Left, r.Bottom)},
		// bottom right
		{From: Pt(r.Right-length, r.Bottom), To: Pt(r.Right, r.Bottom)},
		{From: Pt(r.Right, r.Bottom-length), To: Pt(r.Right, r.Bottom)},
	}
}

// CardLayout is the placement of an identity card relative to its box
type CardLayout struct {
	// Background is the translucent panel behind the card
	Background Rect
	// Avatar is the top left corner of the avatar image
	Avatar Point
	// Glyph is the top left corner of the glyph, only valid if HasGlyph
	Glyph    Point
	HasGlyph bool
	// Lines are the baseline origins of the name, status and ID lines
	Lines [3]Point
	// Below reports the card was moved under the box for lack of room above
	Below bool
}

// LayoutCard places a card for an avatar of avatarW x avatarH next to box.
// The card sits above the box unless that would put it off the top of the
// canvas, in which case it goes below.  textWidth is the widest text line,
// nameWidth the width of the name and glyphW the glyph width, zero when no
// glyph is drawn.
func LayoutCard(t Theme, box Rect, avatarW, avatarH, nameWidth, textWidth, glyphW float64) CardLayout {

	l := CardLayout{}

	x := box.Left + t.CardMargin
	y := box.Top - avatarH - t.CardMargin

	if y < 0 {
		y = box.Bottom + t.CardMargin
		l.Below = true
	}

	l.Avatar = Pt(x, y)

	textX := x + avatarW + t.CardMargin
	right := textX + textWidth

	for i := range l.Lines {
		l.Lines[i] = Pt(textX, y+t.LineSpacing*float64(i+1))
	}

	if glyphW > 0 {
		l.HasGlyph = true
		l.Glyph = Pt(textX+nameWidth+t.CardMargin, y)
		right = math.Max(right, l.Glyph.X+glyphW)
	}

	height := math.Max(avatarH, t.LineSpacing*float64(len(l.Lines))+t.CardMargin)

	l.Background = Rect{
		Left:   x,
		Top:    y,
		Right:  right + t.CardMargin,
		Bottom: y + height,
	}

	return l
}

// drawCard draws the identity card of a detection
func (o *Overlay) drawCard(c Canvas, t Theme, box Rect, index int,
	profile Profile, named bool) {

	ab := profile.Avatar.Bounds()
	idText := fmt.Sprintf("ID: %d", index)

	nameW := c.MeasureText(profile.Name, t.NameFont)
	textW := math.Max(nameW, math.Max(
		c.MeasureText(profile.Status, t.StatusFont),
		c.MeasureText(idText, t.StatusFont)))

	glyphW := 0.0
	if o.glyphs && named && profile.Glyph != nil {
		glyphW = float64(profile.Glyph.Bounds().Dx())
	}

	l := LayoutCard(t, box, float64(ab.Dx()), float64(ab.Dy()), nameW, textW, glyphW)

	c.FillRect(l.Background, t.CardBackground)
	c.DrawImage(profile.Avatar, l.Avatar)

	if l.HasGlyph {
		c.DrawImage(profile.Glyph, l.Glyph)
	}

	c.Text(profile.Name, l.Lines[0], t.NameFont)
	c.Text(profile.Status, l.Lines[1], t.StatusFont)
	c.Text(idText, l.Lines[2], t.StatusFont)
}

// ScoreText formats a confidence score as a match percentage with one
// decimal place
func ScoreText(score float32) string {
	return fmt.Sprintf("MATCH: %.1f%%", float64(score)*100)
}

// drawScore draws the confidence readout right aligned to the box's top
// right corner
func drawScore(c Canvas, t Theme, box Rect, score float32) {

	text := ScoreText(score)
	w := c.MeasureText(text, t.StatusFont)

	bg := Rect{
		Left:   box.Right - w - 2*t.ScorePadding,
		Top:    box.Top - t.ScoreHeight,
		Right:  box.Right,
		Bottom: box.Top,
	}

	c.FillRect(bg, t.CardBackground)
	c.Text(text, Pt(bg.Left+t.ScorePadding, bg.Bottom-t.ScorePadding), t.StatusFont)
}
