package icon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Sizes are the resolutions packed into the ICO, smallest first.
var Sizes = []int{16, 24, 32, 48, 64, 128, 256}

// Scale resamples src to a size x size image.
func Scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width      uint8
	Height     uint8
	Colors     uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	BytesInRes uint32
	Offset     uint32
}

// EncodeICO writes images as a PNG-compressed ICO. Images must be square
// and at most 256 pixels wide.
func EncodeICO(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return fmt.Errorf("ico: no images")
	}

	payloads := make([][]byte, len(images))
	entries := make([]iconDirEntry, len(images))
	offset := uint32(6 + 16*len(images))
	for i, img := range images {
		b := img.Bounds()
		if b.Dx() != b.Dy() || b.Dx() < 1 || b.Dx() > 256 {
			return fmt.Errorf("ico: image %d is %dx%d, want square up to 256", i, b.Dx(), b.Dy())
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("ico: encoding image %d: %w", i, err)
		}
		payloads[i] = buf.Bytes()
		entries[i] = iconDirEntry{
			Width:      uint8(b.Dx() % 256), // 0 means 256
			Height:     uint8(b.Dy() % 256),
			Planes:     1,
			BitCount:   32,
			BytesInRes: uint32(buf.Len()),
			Offset:     offset,
		}
		offset += uint32(buf.Len())
	}

	if err := binary.Write(w, binary.LittleEndian, iconDir{Type: 1, Count: uint16(len(images))}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, entries); err != nil {
		return err
	}
	for _, p := range payloads {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}
