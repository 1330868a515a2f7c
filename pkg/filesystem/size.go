package filesystem

import "github.com/dustin/go-humanize"

// DigitalSize is a byte count with a human-scaled rendering.
type DigitalSize struct {
	bytes uint64
}

func NewDigitalSize(bytes uint64) DigitalSize {
	return DigitalSize{bytes: bytes}
}

func (s DigitalSize) Bytes() uint64 {
	return s.bytes
}

// String renders the byte count with an IEC unit scale, e.g. "4.0 KiB".
func (s DigitalSize) String() string {
	return humanize.IBytes(s.bytes)
}
