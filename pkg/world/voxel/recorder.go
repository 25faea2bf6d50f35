package voxel

import "sync"

// Write is a single recorded SetVoxel call.
type Write struct {
	Pos      Pos
	Material Material
}

// Recorder wraps a World and remembers every write and read that passes
// through it. It is used to count placed voxels and to audit which
// positions a generator touched.
type Recorder struct {
	World

	mu     sync.Mutex
	writes []Write
	reads  map[Pos]struct{}
}

// NewRecorder wraps w.
func NewRecorder(w World) *Recorder {
	return &Recorder{World: w, reads: make(map[Pos]struct{})}
}

// Material records p as read and delegates to the wrapped world.
func (r *Recorder) Material(p Pos) (Material, error) {
	r.mu.Lock()
	r.reads[p] = struct{}{}
	r.mu.Unlock()
	return r.World.Material(p)
}

// SetVoxel records the write and delegates to the wrapped world.
func (r *Recorder) SetVoxel(p Pos, m Material) error {
	if err := r.World.SetVoxel(p, m); err != nil {
		return err
	}
	r.mu.Lock()
	r.writes = append(r.writes, Write{Pos: p, Material: m})
	r.mu.Unlock()
	return nil
}

// Writes returns a copy of the recorded writes in call order.
func (r *Recorder) Writes() []Write {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Write, len(r.writes))
	copy(out, r.writes)
	return out
}

// WasRead reports whether p was read through the recorder.
func (r *Recorder) WasRead(p Pos) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.reads[p]
	return ok
}

// Reset forgets all recorded reads and writes.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = nil
	r.reads = make(map[Pos]struct{})
}
