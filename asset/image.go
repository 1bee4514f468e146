package asset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/der-antikeks/globe/math"
)

var ErrUnsupportedImage = errors.New("asset: unsupported image")

// DecodeImage decodes png, jpeg, gif, bmp, tiff or webp data.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	im, format, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	if b := im.Bounds(); b.Empty() {
		return nil, "", fmt.Errorf("%w: empty %s image", ErrUnsupportedImage, format)
	}

	return im, format, nil
}

// LoadImage reads an image file and converts it to RGBA with its origin at 0,0.
// With powerOfTwo set, sides that are not a power of two are scaled up
// to the next one.
func LoadImage(path string, powerOfTwo bool) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	im, _, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rgba := ToRGBA(im)
	if powerOfTwo {
		rgba = ResizePowerOfTwo(rgba)
	}

	return rgba, nil
}

// ToRGBA converts im to an RGBA image with bounds starting at 0,0.
func ToRGBA(im image.Image) *image.RGBA {
	b := im.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), im, b.Min, draw.Src)

	return dst
}

// ResizePowerOfTwo returns im unchanged if both sides are powers of two,
// otherwise a resampled copy sized to the next higher powers of two.
func ResizePowerOfTwo(im *image.RGBA) *image.RGBA {
	w, h := im.Bounds().Dx(), im.Bounds().Dy()
	if math.IsPowerOfTwo(w) && math.IsPowerOfTwo(h) {
		return im
	}

	dst := image.NewRGBA(image.Rect(0, 0, math.NextHighestPowerOfTwo(w), math.NextHighestPowerOfTwo(h)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), im, im.Bounds(), draw.Src, nil)

	return dst
}

// Checkerboard returns a size x size image of cells x cells alternating squares.
func Checkerboard(size, cells int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}

	light := color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	dark := color.RGBA{0x40, 0x60, 0x90, 0xff}

	im := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		cy := y * cells / size
		for x := 0; x < size; x++ {
			cx := x * cells / size

			if (cx+cy)%2 == 0 {
				im.SetRGBA(x, y, light)
			} else {
				im.SetRGBA(x, y, dark)
			}
		}
	}

	return im
}

// PendingImage is an image being loaded in the background.
type PendingImage struct {
	path string
	done chan result

	img *image.RGBA
	err error
	ok  bool
}

type result struct {
	img *image.RGBA
	err error
}

// LoadImageAsync starts loading path on a new goroutine.
func LoadImageAsync(path string, powerOfTwo bool) *PendingImage {
	p := &PendingImage{
		path: path,
		done: make(chan result, 1),
	}

	go func() {
		img, err := LoadImage(path, powerOfTwo)
		p.done <- result{img, err}
	}()

	return p
}

func (p *PendingImage) Path() string { return p.path }

// Poll returns the loaded image or error without blocking. ready is false
// while the image is still loading.
func (p *PendingImage) Poll() (img *image.RGBA, ready bool, err error) {
	if p.ok {
		return p.img, true, p.err
	}

	select {
	case r := <-p.done:
		p.img, p.err, p.ok = r.img, r.err, true
		return p.img, true, p.err
	default:
		return nil, false, nil
	}
}

// Wait blocks until the image is loaded.
func (p *PendingImage) Wait() (*image.RGBA, error) {
	if !p.ok {
		r := <-p.done
		p.img, p.err, p.ok = r.img, r.err, true
	}

	return p.img, p.err
}
