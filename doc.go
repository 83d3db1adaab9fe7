// Package hud is a retained-mode, resolution-independent overlay UI for
// [Ebitengine] games.
//
// Widgets are laid out on a fixed 1920×1080 logical canvas and scaled to
// the window by a single factor, physical height over 1080, so a layout
// looks the same on any display. A [Canvas] owns one widget tree, the
// cursor and a [WidgetManager] that turns polled mouse input into hover,
// click, scroll and drag interactions.
//
// # Quick start
//
//	loop := hud.NewLoop(game)
//	host := hud.NewEbitenHost(loop)
//	canvas := hud.NewCanvas(hud.CanvasConfig{Host: host, Input: host, Assets: os.DirFS(".")})
//
//	panel := canvas.NewWidget("panel", 100, 100, 400, 300)
//	panel.Add(canvas.NewRectButton("ok", "OK", font, 20, 240, 120, 40, func(hud.ClickContext) {
//		canvas.Deactivate()
//	}))
//	canvas.Add(panel)
//	canvas.Start(loop)
//
//	hud.Run(loop, hud.RunConfig{Title: "Game", Width: 1280, Height: 720})
//
// # Tree
//
// Every element is a [Node] allocated by a Canvas constructor and addressed
// by [NodeID] handles. Behaviour comes from optional traits: [WidgetState]
// makes a node a draggable, scalable container, [Clickable] and
// [Scrollable] make it a control, [TextState] gives it text. Only widgets
// may be added to the canvas; any node may be added to a widget.
//
// Positions and sizes are logical and relative to the parent. Physical
// bounds are recomputed top-down by [Node.UpdateBounds] whenever placement,
// scale or resolution change.
//
// # Interaction
//
// A canvas ignores input until [Canvas.Interact] activates it, and returns
// control to the game on [Canvas.Deactivate] or the cancel key. While
// active, a click is delivered to the topmost control under the cursor when
// the button is released over the control it was pressed on. Holding the
// button on a draggable widget for the long-press delay starts a drag; the
// wheel rescales a widget while it is dragged.
//
// Every interaction is also published as an [Event] to [Canvas.OnEvent]
// handlers and to an optional [EventStore] (see package ecs).
//
// # Textures
//
// [Textures] loads every image under a directory once per canvas id and
// resolves names at draw time. A missing texture is logged once and the
// node is skipped.
//
// [Ebitengine]: https://ebitengine.org
package hud
