package gen

// ChunkRNG is a small deterministic generator seeded per chunk, so that
// decorating a chunk does not depend on the order chunks are visited in.
type ChunkRNG struct {
	state uint64
}

// NewChunkRNG mixes the world seed, chunk coordinates and a per-feature salt.
func NewChunkRNG(seed int64, chunkX, chunkZ int, salt int64) *ChunkRNG {
	s := uint64(seed)
	s ^= uint64(int64(chunkX)*341873128712 + int64(chunkZ)*132897987541)
	s ^= uint64(salt) * 0x9E3779B97F4A7C15
	r := &ChunkRNG{state: s}
	r.next() // discard the first output, it correlates with the inputs
	return r
}

func (r *ChunkRNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407 // LCG
	x := r.state
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	return x
}

// NextN returns a value in [0, n). n must be positive.
func (r *ChunkRNG) NextN(n int) int {
	return int(r.next() % uint64(n))
}

// Int64 returns a non-negative 63-bit value.
func (r *ChunkRNG) Int64() int64 {
	return int64(r.next() >> 1)
}
