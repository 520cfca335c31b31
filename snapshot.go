package paint

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"
)

// Snapshot errors.
var (
	// ErrEmptySnapshot is returned when decoding the zero Snapshot.
	ErrEmptySnapshot = errors.New("paint: empty snapshot")

	// ErrMalformedSnapshot is returned when bytes are not a PNG image.
	ErrMalformedSnapshot = errors.New("paint: malformed snapshot")
)

// dataURLPrefix is the header of a PNG data URL.
const dataURLPrefix = "data:image/png;base64,"

// Snapshot is an immutable, self-contained PNG encoding of a full canvas at
// one point in time.
//
// Snapshots are values: they are never mutated after creation. Constructors
// copy their input and Bytes returns a copy, so a Snapshot can be shared
// freely between the history, the canvas and a compositor.
//
// The zero Snapshot holds no image; IsZero reports it.
type Snapshot struct {
	data   []byte
	width  int
	height int
}

// NewSnapshot wraps PNG-encoded bytes. The header is validated and the
// dimensions recorded; pixel data is decoded lazily by Decode.
func NewSnapshot(data []byte) (Snapshot, error) {
	if len(data) == 0 {
		return Snapshot{}, ErrEmptySnapshot
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Snapshot{}, fmt.Errorf("%w: zero-sized image", ErrMalformedSnapshot)
	}
	return Snapshot{
		data:   bytes.Clone(data),
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

// Encode captures img as a Snapshot.
func Encode(img image.Image) (Snapshot, error) {
	b := img.Bounds()
	if b.Empty() {
		return Snapshot{}, fmt.Errorf("%w: zero-sized image", ErrMalformedSnapshot)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Snapshot{}, fmt.Errorf("encode snapshot: %w", err)
	}
	return Snapshot{
		data:   buf.Bytes(),
		width:  b.Dx(),
		height: b.Dy(),
	}, nil
}

// ParseDataURL decodes a "data:image/png;base64,..." string. A bare base64
// payload without the header is accepted as well.
func ParseDataURL(u string) (Snapshot, error) {
	payload := u
	if head, rest, ok := strings.Cut(u, ","); ok {
		if !strings.HasPrefix(head, "data:") {
			return Snapshot{}, fmt.Errorf("%w: not a data URL", ErrMalformedSnapshot)
		}
		payload = rest
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	return NewSnapshot(data)
}

// IsZero reports whether s holds no image.
func (s Snapshot) IsZero() bool {
	return len(s.data) == 0
}

// Width returns the image width in pixels.
func (s Snapshot) Width() int {
	return s.width
}

// Height returns the image height in pixels.
func (s Snapshot) Height() int {
	return s.height
}

// Bounds returns the image rectangle anchored at the origin.
func (s Snapshot) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Len returns the size of the encoding in bytes.
func (s Snapshot) Len() int {
	return len(s.data)
}

// Bytes returns a copy of the PNG encoding.
func (s Snapshot) Bytes() []byte {
	return bytes.Clone(s.data)
}

// WriteTo writes the PNG encoding to w. It implements io.WriterTo.
func (s Snapshot) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.data)
	return int64(n), err
}

// Decode decodes the snapshot into an image.
func (s Snapshot) Decode() (image.Image, error) {
	if s.IsZero() {
		return nil, ErrEmptySnapshot
	}
	img, err := png.Decode(bytes.NewReader(s.data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	return img, nil
}

// Equal reports whether s and other hold the same encoding.
func (s Snapshot) Equal(other Snapshot) bool {
	return bytes.Equal(s.data, other.data)
}

// DataURL returns the snapshot as a "data:image/png;base64,..." string.
func (s Snapshot) DataURL() string {
	return dataURLPrefix + base64.StdEncoding.EncodeToString(s.data)
}

// String returns a short description for logs.
func (s Snapshot) String() string {
	if s.IsZero() {
		return "Snapshot(empty)"
	}
	return fmt.Sprintf("Snapshot(%dx%d, %d bytes)", s.width, s.height, len(s.data))
}
