package companion

import (
	"slices"
	"sync"
)

// Overlay is the set of affordances the companion app currently displays.
type Overlay struct {
	mu      sync.Mutex
	visible map[string]struct{}
}

func NewOverlay() *Overlay {
	return &Overlay{visible: make(map[string]struct{})}
}

func (o *Overlay) Show(name string) {
	if name == "" {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible[name] = struct{}{}
}

func (o *Overlay) Hide(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.visible, name)
}

func (o *Overlay) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	clear(o.visible)
}

func (o *Overlay) IsVisible(name string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.visible[name]
	return ok
}

// Visible lists the shown affordances in name order.
func (o *Overlay) Visible() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	names := make([]string, 0, len(o.visible))
	for name := range o.visible {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
