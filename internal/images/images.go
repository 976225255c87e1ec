// Package images imports product pictures: the upload is decoded, scaled to a
// thumbnail and stored as PNG under the images directory.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/gophpos/internal/filex"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

// DefaultWidth is the thumbnail width in pixels. Height keeps the aspect ratio.
const DefaultWidth uint = 300

var ErrUnsupportedImage = errors.New("unsupported image format")

// newID is a seam for uuid generation in file names.
var newID = func() string { return uuid.NewString() }

// Store saves product images to a local directory.
type Store struct {
	dir   string
	width uint
}

// NewStore returns a Store writing into dir. A zero width uses DefaultWidth.
func NewStore(dir string, width uint) *Store {
	if width == 0 {
		width = DefaultWidth
	}
	return &Store{dir: dir, width: width}
}

// FileName builds the stored file name for a product image. Anything other
// than letters, digits, '-' and '_' becomes '_', so the name never leaves
// the images directory.
func FileName(productName, id string) string {
	safe := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, strings.TrimSpace(productName))
	return safe + "-" + id + ".png"
}

// Import decodes a PNG or JPEG from r, resizes it and writes it as PNG.
// It returns the path of the stored file.
func (s *Store) Import(productName string, r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return "", ErrUnsupportedImage
		}
		return "", fmt.Errorf("decode image: %w", err)
	}

	if uint(img.Bounds().Dx()) > s.width {
		img = resize.Resize(s.width, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	return filex.WriteFile(s.dir, FileName(productName, newID()), buf.Bytes())
}
