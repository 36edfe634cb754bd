// Package elastic is a rubber-band slider for [Ebitengine] and other
// pointer-driven hosts.
//
// Dragging a slider past either end of its track clamps the value but keeps
// reporting how far the pointer went as a signed stretch, which the renderer
// turns into a short horizontal stretch of the track that springs back on
// release.
//
// # Quick start
//
// The simplest way to get started is [Run] with a [Panel]:
//
//	volume := 40
//	panel := elastic.NewPanel(elastic.RunConfig{Title: "Mixer", Width: 480, Height: 200})
//	panel.AddSlider(elastic.SliderOptions{
//		Label:    "volume",
//		Suffix:   "%",
//		Value:    func() int { return volume },
//		OnChange: func(v int) { volume = v },
//		Bounds:   elastic.Rect{X: 24, Y: 24, Width: 432, Height: elastic.SliderHeight(true)},
//	})
//	elastic.Run(panel)
//
// The slider is controlled: it never stores the value. It reads it through
// Value for drawing and proposes new ones through OnChange, on press and on
// every move of a drag.
//
// # Layers
//
// [ComputeUpdate] is the pure mapping from a pointer X coordinate, a track
// rectangle and a [Range] to a clamped value and a stretch.
//
// [Engine] wraps it in a drag session. On press it captures the pointer on a
// [Dispatcher] and subscribes to global move, up and cancel events, so drags
// keep working after the pointer leaves the track. Every exit path (release,
// cancel, a replacing press under [SessionReplace], [Engine.Close]) drops the
// capture and all three subscriptions.
//
// [Dispatcher] polls Ebitengine mouse and touch input once per frame, or
// accepts events from any other host through Down, Move, Up and Cancel. It
// also queues synthetic input for tests and scripted demos.
//
// [Present] turns a value and a stretch into fill percent, scale and scale
// origin. A [Settler] animates the displayed stretch and fill back to rest,
// either with an ease-out tween (via [gween]) or a spring (via [harmonica]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
package elastic
