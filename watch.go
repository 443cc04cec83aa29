package sumtree

import (
	"context"

	"github.com/guiguan/caster"
)

// Version is a notification published to a Watcher's subscribers whenever
// an edit produces a new tree handle. It carries just enough to let a
// subscriber decide whether to re-read: the new tree handle itself and its
// summary (so a subscriber interested only in, say, total byte count need
// not hold the tree).
type Version[I Item[S], S Summary[S]] struct {
	Tree    Tree[I, S]
	Summary S
}

// Watcher broadcasts tree versions to any number of subscribers. It has no
// effect on the tree itself — Push/PushTree/Splice remain ordinary,
// allocation-free-of-side-effects functions; a Watcher is an opt-in
// bolt-on for embedders that want to fan out "a new version exists"
// notifications (e.g. a collaborative text buffer waking up idle readers)
// without the core tree knowing subscribers exist at all.
//
// github.com/guiguan/caster's broadcast-to-many-subscribers model fits a
// persistent structure that produces a new immutable version on every edit.
type Watcher[I Item[S], S Summary[S]] struct {
	c *caster.Caster
}

// NewWatcher creates a Watcher with no published versions yet.
func NewWatcher[I Item[S], S Summary[S]]() *Watcher[I, S] {
	return &Watcher[I, S]{c: caster.New(nil)}
}

// Publish broadcasts t as the latest version to every current subscriber.
// It does not block on slow subscribers: caster drops a value for a
// subscriber that has not drained its previous one rather than stalling
// the publisher.
func (w *Watcher[I, S]) Publish(ctx context.Context, t Tree[I, S]) {
	if err := w.c.Pub(ctx, Version[I, S]{Tree: t, Summary: t.Summary()}); err != nil {
		tracer().Debugf("watcher: publish dropped: %v", err)
	}
}

// Subscribe returns a channel receiving every Version published after the
// call, plus an unsubscribe function the caller must invoke when done.
func (w *Watcher[I, S]) Subscribe() (<-chan interface{}, func()) {
	return w.c.Sub()
}

// Close releases the watcher's resources. No further Publish/Subscribe
// calls are valid afterwards.
func (w *Watcher[I, S]) Close() {
	w.c.Close()
}
