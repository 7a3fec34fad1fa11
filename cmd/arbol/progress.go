package main

import (
	"io"
	"sync"

	"github.com/gosuri/uiprogress"
)

// progress is a single bar showing the name of the current item. The total
// is fixed before rendering starts.
type progress struct {
	p   *uiprogress.Progress
	bar *uiprogress.Bar

	// current is read by the rendering goroutine
	mu      sync.Mutex
	current string
}

func newProgress(w io.Writer, total int) *progress {
	pr := &progress{p: uiprogress.New()}
	pr.p.SetOut(w)

	pr.bar = pr.p.AddBar(total)
	pr.bar.AppendCompleted()
	pr.bar.PrependElapsed()
	pr.bar.AppendFunc(func(b *uiprogress.Bar) string {
		return pr.name()
	})

	pr.p.Start()
	return pr
}

// Incr is usable as a storage.Preloader callback. The total of the
// callback is ignored, the bar keeps the one given to newProgress.
func (pr *progress) Incr(current, total int, name string) {
	pr.mu.Lock()
	pr.current = name
	pr.mu.Unlock()

	pr.bar.Incr()
}

func (pr *progress) name() string {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.current
}

func (pr *progress) Stop() {
	pr.p.Stop()
}
