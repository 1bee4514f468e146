package engine

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/der-antikeks/globe/math"
)

type Texture struct {
	buffer        uint32
	width, height int
	mipmapped     bool
}

// NewTexture uploads an RGBA image. Power of two images repeat and are
// mipmapped, others are clamped to the edge and filtered linearly.
// Row 0 of the image ends up at t = 0.
func NewTexture(img *image.RGBA) (*Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	t := &Texture{
		width:     w,
		height:    h,
		mipmapped: math.IsPowerOfTwo(w) && math.IsPowerOfTwo(h),
	}

	gl.GenTextures(1, &t.buffer)
	gl.BindTexture(gl.TEXTURE_2D, t.buffer)

	wrap, minFilter := int32(gl.CLAMP_TO_EDGE), int32(gl.LINEAR)
	if t.mipmapped {
		wrap, minFilter = gl.REPEAT, gl.LINEAR_MIPMAP_LINEAR
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)

	// rows are tightly packed unless the image is a sub image
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(w), int32(h),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	if t.mipmapped {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := checkGLError("upload texture"); err != nil {
		t.Dispose()
		return nil, err
	}

	Logger().Debug("texture uploaded", "width", w, "height", h, "mipmapped", t.mipmapped)

	return t, nil
}

func (t *Texture) Width() int      { return t.width }
func (t *Texture) Height() int     { return t.height }
func (t *Texture) Mipmapped() bool { return t.mipmapped }

// Bind binds the texture to texture unit slot.
func (t *Texture) Bind(slot int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, t.buffer)
}

func (t *Texture) Unbind() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (t *Texture) Dispose() {
	if t.buffer != 0 {
		gl.DeleteTextures(1, &t.buffer)
		t.buffer = 0
	}
}
