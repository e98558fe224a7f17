package explorer

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/marben/julia_explorer/control"
)

// Batch is one client message. All events are applied before the frame
// sent in reply is rendered.
type Batch struct {
	Events []control.Event `json:"events"`
}

// EncodeFrame encodes img as PNG for the wire.
func EncodeFrame(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png.Encode: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeFrame decodes a PNG frame received from the wire.
func DecodeFrame(b []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("png.Decode: %w", err)
	}
	return img, nil
}
