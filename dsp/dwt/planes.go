package dwt

import "fmt"

// Planes is a dense [batch, channel, height, width] array stored row-major.
type Planes struct {
	Batch    int
	Channels int
	Height   int
	Width    int
	Data     []float64
}

// NewPlanes allocates a zeroed array of the given shape.
func NewPlanes(batch, channels, height, width int) *Planes {
	return &Planes{
		Batch:    batch,
		Channels: channels,
		Height:   height,
		Width:    width,
		Data:     make([]float64, batch*channels*height*width),
	}
}

// Count returns the number of planes, Batch*Channels.
func (p *Planes) Count() int {
	return p.Batch * p.Channels
}

// Plane returns the i-th height×width plane, batch-major.
func (p *Planes) Plane(i int) []float64 {
	size := p.Height * p.Width
	return p.Data[i*size : (i+1)*size : (i+1)*size]
}

// At returns the sample at (b, c, y, x).
func (p *Planes) At(b, c, y, x int) float64 {
	return p.Data[p.offset(b, c, y, x)]
}

// Set stores v at (b, c, y, x).
func (p *Planes) Set(b, c, y, x int, v float64) {
	p.Data[p.offset(b, c, y, x)] = v
}

func (p *Planes) offset(b, c, y, x int) int {
	return ((b*p.Channels+c)*p.Height+y)*p.Width + x
}

// Clone returns a deep copy.
func (p *Planes) Clone() *Planes {
	q := *p
	q.Data = append([]float64(nil), p.Data...)
	return &q
}

// Validate checks that the shape is positive and matches len(Data).
func (p *Planes) Validate() error {
	if p == nil {
		return ErrEmptyInput
	}
	if p.Batch <= 0 || p.Channels <= 0 || p.Height <= 0 || p.Width <= 0 {
		return fmt.Errorf("%w: shape [%d %d %d %d]", ErrEmptyInput, p.Batch, p.Channels, p.Height, p.Width)
	}
	if len(p.Data) != p.Batch*p.Channels*p.Height*p.Width {
		return fmt.Errorf("%w: %d values for shape [%d %d %d %d]", ErrShape, len(p.Data), p.Batch, p.Channels, p.Height, p.Width)
	}
	return nil
}

func (p *Planes) sameShape(q *Planes) bool {
	return p.Batch == q.Batch && p.Channels == q.Channels && p.Height == q.Height && p.Width == q.Width
}
