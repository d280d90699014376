package dwt

// PadSpec is the number of samples added before and after a band.
type PadSpec struct {
	Left  int
	Right int
}

// Total returns Left + Right.
func (p PadSpec) Total() int {
	return p.Left + p.Right
}

// PadFor returns the padding that makes a stride-2 correlation of a
// dataLen-sample band with a filtLen-tap filter produce
// floor((dataLen+filtLen-1)/2) outputs. The total pad is 2*filtLen-3, split
// evenly; odd inputs get one extra sample on the right so the padded length
// is even.
func PadFor(dataLen, filtLen int) PadSpec {
	base := (2*filtLen - 3) / 2
	p := PadSpec{Left: base, Right: base}
	if dataLen%2 != 0 {
		p.Right++
	}
	return p
}

// cropBase is the symmetric crop removed after each synthesis step.
func cropBase(filtLen int) int {
	return (2*filtLen - 3) / 2
}

// BandLen returns the length of both bands produced by one analysis level.
func BandLen(dataLen, filtLen int) int {
	return (dataLen + filtLen - 1) / 2
}
