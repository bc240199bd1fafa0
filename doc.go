// Package maple is a retained-mode 2D dashboard widget framework for
// [Ebitengine].
//
// Maple provides the drawable tree, pointer event routing, draggable
// widgets, and data-to-pixel graph plotting that an interactive dashboard
// needs: line/scatter graphs with auto-scaling and viewport clipping,
// draggable sliders, and clickable buttons, all composed from a small set of
// positioned drawables.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and frame
// loop for you:
//
//	disp := maple.NewDispatcher()
//	root := maple.NewPanel(maple.Pt(0, 0), maple.Sz(640, 480), "white")
//
//	graph := maple.NewGraph("demo", maple.Pt(20, 20), maple.Sz(600, 400),
//		maple.Margins{Left: 30, Bottom: 30, Right: 20, Top: 50})
//	graph.AddDataset(maple.NewDataset(samples, maple.ColorNone, "black"))
//	root.Add(graph, "graph", -1)
//
//	if err := maple.Run(root, disp, maple.RunConfig{
//		Title: "My Dashboard", Width: 640, Height: 480,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself, feed pointer events to
// [Dispatcher.Dispatch], and draw the tree through [NewImageSurface].
//
// # Drawable tree
//
// Every widget carries a [Node]: a position relative to its parent plus a
// parent back-reference. [Panel] owns an ordered, named stack of children
// drawn bottom-to-top; absolute positions resolve by summing the parent
// chain. [Graph], the main composite, maps dataset coordinates onto its plot
// sub-panel and clips polylines against it.
//
// # Events
//
// A [Dispatcher] owns the subscription table for one scene. Widgets
// subscribe tagged reducer handlers per event kind; each dispatched event is
// offered to nodes in reverse registration order and consumed by the first
// node whose subscription list changes. [Draggable] layers the
// press-move-release drag lifecycle on top; [Slider] and [Button] emit
// semantic values to observer callbacks.
//
// Maple is single-threaded and frame-driven: input dispatch and drawing both
// happen on the frame loop, and nothing in the core blocks or locks.
//
// [Ebitengine]: https://ebitengine.org
package maple
