package hud

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fadeTo starts a highlight tween toward target over seconds. A
// non-positive duration snaps immediately.
func (c *Clickable) fadeTo(target, seconds float64) {
	c.target = target
	if seconds <= 0 || c.highlight == target {
		c.highlight = target
		c.fade = nil
		return
	}
	c.fade = gween.New(float32(c.highlight), float32(target), float32(seconds), ease.OutQuad)
}

// stepFade advances the highlight tween by dt seconds and reports whether it
// has finished.
func (c *Clickable) stepFade(dt float64) bool {
	if c.fade == nil {
		return true
	}
	v, done := c.fade.Update(float32(dt))
	c.highlight = float64(v)
	if done {
		c.highlight = c.target
		c.fade = nil
	}
	return done
}

// fade starts a highlight tween on n and tracks it until it finishes.
func (m *WidgetManager) fade(n *Node, target float64) {
	n.Click.fadeTo(target, m.canvas.settings.HighlightFadeSeconds)
	if n.Click.fade == nil {
		return
	}
	for _, id := range m.fading {
		if id == n.ID {
			return
		}
	}
	m.fading = append(m.fading, n.ID)
}

// animate advances running highlight tweens. There is no global animation
// manager; the canvas calls this once per frame.
func (m *WidgetManager) animate(dt float64) {
	if len(m.fading) == 0 || dt <= 0 {
		return
	}
	live := m.fading[:0]
	for _, id := range m.fading {
		n := m.canvas.tree.Get(id)
		if n == nil || n.Click == nil {
			continue
		}
		if !n.Click.stepFade(dt) {
			live = append(live, id)
		}
	}
	m.fading = live
}
