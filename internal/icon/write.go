package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Files lists what Write produced.
type Files struct {
	ICO string
	PNG string
}

// Write renders the icon and stores it at icoPath, plus a full-size PNG with
// the same base name next to it. Parent directories are created.
func Write(icoPath string) (Files, error) {
	master := Render()
	images := make([]image.Image, 0, len(Sizes))
	for _, s := range Sizes {
		if s == Size {
			images = append(images, master)
			continue
		}
		images = append(images, Scale(master, s))
	}

	var ico bytes.Buffer
	if err := EncodeICO(&ico, images); err != nil {
		return Files{}, err
	}
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, master); err != nil {
		return Files{}, fmt.Errorf("encoding png: %w", err)
	}

	files := Files{
		ICO: icoPath,
		PNG: strings.TrimSuffix(icoPath, filepath.Ext(icoPath)) + ".png",
	}
	if err := os.MkdirAll(filepath.Dir(icoPath), 0o755); err != nil {
		return Files{}, fmt.Errorf("creating icon directory: %w", err)
	}
	// PNG first: the ICO is the presence marker and must only appear complete.
	if err := os.WriteFile(files.PNG, pngBuf.Bytes(), 0o644); err != nil {
		return Files{}, fmt.Errorf("writing %s: %w", files.PNG, err)
	}
	if err := os.WriteFile(files.ICO, ico.Bytes(), 0o644); err != nil {
		return Files{}, fmt.Errorf("writing %s: %w", files.ICO, err)
	}
	return files, nil
}
