package gen

// Noise is seeded 2D simplex noise with values in [-1, 1].
type Noise struct {
	perm [512]uint8
}

// grad2 are the eight gradient directions of the 2D lattice.
var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

const (
	skew2   = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
)

// NewNoise builds the permutation table for seed. salt separates noise
// fields drawn from the same world seed.
func NewNoise(seed, salt int64) *Noise {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	rng := NewChunkRNG(seed, 0, 0, salt)
	for i := 255; i > 0; i-- {
		j := rng.NextN(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	n := &Noise{}
	for i := range n.perm {
		n.perm[i] = p[i&255]
	}
	return n
}

// At samples the noise field at (x, y).
func (n *Noise) At(x, y float64) float64 {
	s := (x + y) * skew2
	i := floor(x + s)
	j := floor(y + s)

	t := float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Lower or upper triangle of the skewed cell.
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ii, jj := i&255, j&255
	g0 := grad2[n.perm[ii+int(n.perm[jj])]&7]
	g1 := grad2[n.perm[ii+i1+int(n.perm[jj+j1])]&7]
	g2 := grad2[n.perm[ii+1+int(n.perm[jj+1])]&7]

	return 70 * (corner(g0, x0, y0) + corner(g1, x1, y1) + corner(g2, x2, y2))
}

// Octaves sums octaves of the field, each at twice the frequency of the
// last, and normalises the result back into [-1, 1].
func (n *Noise) Octaves(x, y float64, octaves int, persistence float64) float64 {
	var total, maxVal float64
	amplitude, frequency := 1.0, 1.0
	for range octaves {
		total += n.At(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}

func corner(g [2]float64, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * (g[0]*x + g[1]*y)
}

func floor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
