// Package tiltcard is an animated "tilt card" for [Ebitengine]: a card that
// rotates in 3-D toward the pointer, reacts to hover and press, and carries a
// handful of looping decorations.
//
// # Quick start
//
// The simplest way to show a card is [Run], which creates a window and game
// loop:
//
//	card := tiltcard.NewCard(tiltcard.DefaultConfig())
//	if err := tiltcard.Run(card, tiltcard.RunConfig{}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, create a [Game] with [NewGame] and hand it to
// ebiten.RunGame, or drive a [Card] directly from your own loop: call the
// pointer handlers as events arrive, [Card.Update] once per frame with the
// real elapsed time, and read [Card.Style].
//
// # Tilt pipeline
//
// A pointer move is turned into an offset from the card's center
// ([PointerOffset]), each axis of the offset goes through an [AxisMapper]
// (clamped linear map to degrees) and the result becomes the target of a
// [Spring]. The springs are read every frame; they never snap.
//
// # Pull-based styling
//
// [Card.Style] samples everything the renderer needs in one place: spring
// values, state-driven [Transition]s chosen by [Targets], and the decorative
// [Loop]s, which are pure functions of time since mount.
//
// # Lifecycle
//
// [Card.Mount] starts a fresh lifecycle and the entrance animation.
// [Card.Unmount] cancels everything; later handler calls and updates are
// ignored.
//
// [Ebitengine]: https://ebitengine.org
package tiltcard
