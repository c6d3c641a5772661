package ui

import (
	"image"
	"image/color"
	"unicode/utf8"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"palinview/cmd/palinview/internal/theme"
	"palinview/internal/config"
	"palinview/internal/examples"
	"palinview/internal/logging"
	"palinview/internal/metrics"
	"palinview/internal/presenter"
	"palinview/internal/session"
)

// Visualizer is the palindrome widget: an input field, the spinning
// letters and the verdict caption over a verdict-colored background.
type Visualizer struct {
	theme   *theme.Theme
	cfg     *config.Config
	session *session.Session
	picker  *examples.Picker
	metrics *metrics.PalinviewMetrics
	log     *logging.Logger

	editor     widget.Editor
	exampleBtn widget.Clickable

	spin      *presenter.Spin
	particles *presenter.Particles
}

// NewVisualizer wires the widget to its session.
func NewVisualizer(t *theme.Theme, cfg *config.Config, s *session.Session, p *examples.Picker, m *metrics.PalinviewMetrics, log *logging.Logger) *Visualizer {
	return &Visualizer{
		theme:     t,
		cfg:       cfg,
		session:   s,
		picker:    p,
		metrics:   m,
		log:       log.WithComponent("ui"),
		editor:    widget.Editor{SingleLine: true},
		spin:      presenter.NewSpin(cfg.SpinDuration()),
		particles: presenter.NewParticles(cfg.Animation.Particles, nil),
	}
}

// SetConfig applies a reloaded configuration.
func (v *Visualizer) SetConfig(cfg *config.Config) {
	v.cfg = cfg
	v.spin.Period = cfg.SpinDuration()
	v.particles.Count = cfg.Animation.Particles
	if cfg.Theme.Mode != v.theme.Mode {
		v.theme.SetMode(cfg.Theme.Mode)
	}
	v.log.Info("config applied", "theme", cfg.Theme.Mode, "animation", cfg.Animation.Enabled)
}

// Layout handles input events and draws one frame.
func (v *Visualizer) Layout(gtx layout.Context) layout.Dimensions {
	v.update(gtx)

	snap := v.session.Snapshot()
	pres := presenter.View(snap)
	v.spin.Sync(snap.Epoch, snap.Active, gtx.Now)
	v.particles.Sync(pres.Celebrate && v.cfg.Animation.Enabled, gtx.Now)

	rp := v.theme.Palette.Role(pres.Role)
	v.drawBackground(gtx, rp)
	v.drawParticles(gtx, rp)

	dims := layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(v.layoutField),
			layout.Rigid(layout.Spacer{Height: unit.Dp(64)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !pres.Visible() {
					return layout.Dimensions{}
				}
				return v.layoutLetters(gtx, pres, rp)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(64)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !pres.Visible() {
					return layout.Dimensions{}
				}
				return v.layoutCaption(gtx, pres, rp)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(32)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				btn := material.Button(v.theme.Theme, &v.exampleBtn, "Give me an example")
				btn.CornerRadius = v.theme.Config.CornerRadius
				return btn.Layout(gtx)
			}),
		)
	})

	if v.needsFrames(gtx, pres) {
		gtx.Execute(op.InvalidateCmd{})
	}
	return dims
}

// update drains editor and button events into the session.
func (v *Visualizer) update(gtx layout.Context) {
	for {
		ev, ok := v.editor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.ChangeEvent); ok {
			v.session.Apply(v.editor.Text())
		}
	}

	if v.exampleBtn.Clicked(gtx) {
		snap := v.session.LoadExample(v.picker)
		v.metrics.RecordExample()
		v.editor.SetText(snap.Raw)
		n := utf8.RuneCountInString(snap.Raw)
		v.editor.SetCaret(n, n)
	}
}

func (v *Visualizer) needsFrames(gtx layout.Context, pres presenter.Presentation) bool {
	if !v.cfg.Animation.Enabled {
		return false
	}
	if v.spin.Animating(gtx.Now) {
		return true
	}
	return pres.Visible() && (pres.Pulse || pres.Bounce) || v.particles.Active()
}

func (v *Visualizer) drawBackground(gtx layout.Context, rp theme.RolePalette) {
	size := gtx.Constraints.Max
	half := image.Pt(size.X, size.Y/2)

	// Two stacked gradients give a three-stop diagonal.
	stops := [][2]color.NRGBA{
		{rp.Background[0], rp.Background[1]},
		{rp.Background[1], rp.Background[2]},
	}
	for i, s := range stops {
		r := image.Rectangle{Min: image.Pt(0, i*half.Y), Max: image.Pt(size.X, (i+1)*half.Y)}
		if i == 1 {
			r.Max.Y = size.Y
		}
		stack := clip.Rect(r).Push(gtx.Ops)
		paint.LinearGradientOp{
			Stop1:  f32.Pt(float32(r.Min.X), float32(r.Min.Y)),
			Color1: s[0],
			Stop2:  f32.Pt(float32(r.Max.X), float32(r.Max.Y)),
			Color2: s[1],
		}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		stack.Pop()
	}
}

func (v *Visualizer) drawParticles(gtx layout.Context, rp theme.RolePalette) {
	if !v.particles.Active() {
		return
	}
	size := gtx.Constraints.Max
	d := gtx.Dp(v.theme.Config.ParticleSize)
	for i, pt := range v.particles.Items() {
		alpha := v.particles.Alpha(i, gtx.Now)
		if alpha <= 0 {
			continue
		}
		c := rp.Particle
		c.A = uint8(float32(c.A) * alpha)

		x := int(pt.X * float32(size.X))
		y := int(pt.Y * float32(size.Y))
		ellipse := clip.Ellipse{Min: image.Pt(x, y), Max: image.Pt(x+d, y+d)}
		paint.FillShape(gtx.Ops, c, ellipse.Op(gtx.Ops))
	}
}

func (v *Visualizer) layoutField(gtx layout.Context) layout.Dimensions {
	width := gtx.Dp(v.theme.Config.FieldWidth)
	if width > gtx.Constraints.Max.X {
		width = gtx.Constraints.Max.X
	}
	gtx.Constraints.Min.X = width
	gtx.Constraints.Max.X = width

	borderColor := v.theme.Palette.FieldBorder
	if gtx.Focused(&v.editor) {
		borderColor = v.theme.Palette.FieldFocus
	}

	border := widget.Border{
		Color:        borderColor,
		CornerRadius: v.theme.Config.CornerRadius,
		Width:        unit.Dp(2),
	}
	return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				rr := gtx.Dp(v.theme.Config.CornerRadius)
				shape := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, rr)
				paint.FillShape(gtx.Ops, v.theme.Palette.Field, shape.Op(gtx.Ops))
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{
					Top: unit.Dp(12), Bottom: unit.Dp(12),
					Left: v.theme.Config.Padding, Right: v.theme.Config.Padding,
				}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					ed := material.Editor(v.theme.Theme, &v.editor, "Type anything...")
					ed.TextSize = v.theme.Config.FontInput
					ed.Color = v.theme.Palette.Text
					ed.HintColor = v.theme.Palette.TextMuted
					ed.Editor.Alignment = text.Middle
					return ed.Layout(gtx)
				})
			}),
		)
	})
}

// layoutLetters draws the display token one glyph at a time. The row
// rotates about its center while each glyph counter-rotates about its own,
// so letters stay upright as the word spins.
func (v *Visualizer) layoutLetters(gtx layout.Context, pres presenter.Presentation, rp theme.RolePalette) layout.Dimensions {
	angle := v.spin.Angle(gtx.Now)

	c := rp.Letter
	if pres.Pulse {
		c.A = uint8(float32(c.A) * presenter.Pulse(gtx.Now, v.cfg.PulsePeriod()))
	}

	gtx.Constraints.Min = image.Point{}
	children := make([]layout.FlexChild, 0, len(pres.Letters))
	for _, lp := range pres.Letters {
		letter := string(lp.Letter)
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return rotated(gtx, -angle, func(gtx layout.Context) layout.Dimensions {
				l := material.Label(v.theme.Theme, v.theme.Config.FontLetter, letter)
				l.Color = c
				l.Font.Typeface = "Go Mono"
				l.Font.Weight = font.Bold
				return l.Layout(gtx)
			})
		}))
	}

	return rotated(gtx, angle, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func (v *Visualizer) layoutCaption(gtx layout.Context, pres presenter.Presentation, rp theme.RolePalette) layout.Dimensions {
	c := rp.Caption
	if pres.Pulse {
		c.A = uint8(float32(c.A) * presenter.Pulse(gtx.Now, v.cfg.PulsePeriod()))
	}

	if pres.Bounce {
		lift := presenter.Bounce(gtx.Now, v.cfg.BouncePeriod()) * float32(gtx.Dp(v.theme.Config.BounceHeight))
		defer op.Offset(image.Pt(0, -int(lift))).Push(gtx.Ops).Pop()
	}

	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.Label(v.theme.Theme, v.theme.Config.FontIcon, pres.Glyph)
			l.Color = c
			l.Font.Weight = font.Bold
			return l.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.Label(v.theme.Theme, v.theme.Config.FontCaption, pres.Caption)
			l.Color = c
			l.Alignment = text.Middle
			if pres.Role == presenter.RoleCelebrate {
				l.Font.Weight = font.SemiBold
			}
			return l.Layout(gtx)
		}),
	)
}

// rotated lays out w and rotates it by angle radians about its center.
func rotated(gtx layout.Context, angle float32, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()

	if angle != 0 {
		origin := f32.Pt(float32(dims.Size.X)/2, float32(dims.Size.Y)/2)
		defer op.Affine(f32.Affine2D{}.Rotate(origin, angle)).Push(gtx.Ops).Pop()
	}
	call.Add(gtx.Ops)
	return dims
}
