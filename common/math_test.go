package common

import (
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	assert.InDelta(t, 0, Lerp(0, 10, 0), 1e-6)
	assert.InDelta(t, 5, Lerp(0, 10, 0.5), 1e-6)
	assert.InDelta(t, 10, Lerp(0, 10, 1), 1e-6)

	v := LerpVec3(Vec3{0, 0, 0}, Vec3{2, 4, 6}, 0.5)
	assert.Equal(t, Vec3{1, 2, 3}, v)
}

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	BuildModelMatrix(m[:], Vec3{1, 2, 3}, Vec3{0.3, 0.2, 0.1}, Vec3{2, 2, 2})

	Mul4(out[:], id[:], m[:])
	for i := range m {
		assert.InDelta(t, m[i], out[i], 1e-6)
	}
}

func TestInvert4RoundTrip(t *testing.T) {
	var m, inv, out [16]float32
	BuildModelMatrix(m[:], Vec3{1, -2, 3}, Vec3{0.5, 1.1, -0.3}, Vec3{1.5, 0.5, 2})

	require.True(t, Invert4(inv[:], m[:]))
	Mul4(out[:], m[:], inv[:])

	var id [16]float32
	Identity(id[:])
	for i := range id {
		assert.InDelta(t, id[i], out[i], 1e-4)
	}
}

func TestInvert4Singular(t *testing.T) {
	var zero, out [16]float32
	out[0] = 42
	assert.False(t, Invert4(out[:], zero[:]))
	assert.Equal(t, float32(42), out[0])
}

func TestLookAtMapsTargetOntoNegativeZ(t *testing.T) {
	var view [16]float32
	LookAt(view[:], Vec3{0, 0, 10}, Vec3{0, 0, 0}, Vec3{0, 1, 0})

	p := TransformPoint(view[:], Vec3{0, 0, 0})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, -10, p[2], 1e-5)
}

func TestScreenRayThroughCentre(t *testing.T) {
	var view, proj, vp, inv [16]float32
	LookAt(view[:], Vec3{0, 0, 10}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	Perspective(proj[:], math32.Pi/3, 1, 0.1, 100)
	Mul4(vp[:], proj[:], view[:])
	require.True(t, Invert4(inv[:], vp[:]))

	ray, ok := ScreenRay(400, 300, 800, 600, inv[:])
	require.True(t, ok)
	assert.InDelta(t, 0, ray.Direction[0], 1e-4)
	assert.InDelta(t, 0, ray.Direction[1], 1e-4)
	assert.InDelta(t, -1, ray.Direction[2], 1e-4)

	dist, hit := ray.IntersectAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	assert.True(t, hit)
	assert.InDelta(t, 10-0.1-1, dist, 0.05)

	_, hit = ray.IntersectAABB(Vec3{3, 3, -1}, Vec3{4, 4, 1})
	assert.False(t, hit)

	_, ok = ScreenRay(0, 0, 0, 600, inv[:])
	assert.False(t, ok)
}

func TestRayBehindOriginMisses(t *testing.T) {
	r := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 0, 1}}
	_, hit := r.IntersectAABB(Vec3{-1, -1, -5}, Vec3{1, 1, -3})
	assert.False(t, hit)
}

func TestRayIntersectAABBDistance(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		want   float32
		wantOK bool
	}{
		{name: "in front", ray: Ray{Origin: Vec3{0, 0, 10}, Direction: Vec3{0, 0, -1}}, want: 9, wantOK: true},
		{name: "diagonal", ray: Ray{Origin: Vec3{-5, 0, 0}, Direction: Vec3{1, 0, 0}}, want: 4, wantOK: true},
		{name: "origin inside", ray: Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 1, 0}}, want: 0, wantOK: true},
		{name: "parallel outside", ray: Ray{Origin: Vec3{0, 5, 10}, Direction: Vec3{0, 0, -1}}, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-5)
			}
		})
	}
}

func TestTransformAABBTranslatesAndScales(t *testing.T) {
	var m [16]float32
	BuildModelMatrix(m[:], Vec3{10, 2, 0}, Vec3{}, Vec3{2, 2, 2})
	minB, maxB := TransformAABB(m[:], Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	assert.Equal(t, Vec3{8, 0, -2}, minB)
	assert.Equal(t, Vec3{12, 4, 2}, maxB)
}

func TestFrustumIntersectsAABB(t *testing.T) {
	var view, proj, vp [16]float32
	LookAt(view[:], Vec3{0, 0, 10}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	Perspective(proj[:], math32.Pi/3, 1, 0.1, 100)
	Mul4(vp[:], proj[:], view[:])
	f := ExtractFrustum(vp[:])

	assert.True(t, f.IntersectsAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1}))
	assert.True(t, f.ContainsPoint(Vec3{0, 0, 0}))
	assert.False(t, f.IntersectsAABB(Vec3{-1, -1, 20}, Vec3{1, 1, 22}))
	assert.False(t, f.IntersectsAABB(Vec3{200, -1, -1}, Vec3{202, 1, 1}))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]float32
		wantErr bool
	}{
		{in: "#FFFFFF", want: [4]float32{1, 1, 1, 1}},
		{in: "000000", want: [4]float32{0, 0, 0, 1}},
		{in: "#FF000080", want: [4]float32{1, 0, 0, 128.0 / 255}},
		{in: "#FFF", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-6)
			}
		})
	}
	assert.Panics(t, func() { MustHexColor("nope") })
}

func TestClampAndCoalesce(t *testing.T) {
	assert.Equal(t, 100, Clamp(105, 0, 100))
	assert.Equal(t, float32(0), Clamp(float32(-1), 0, 1))
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
}

func TestTextureFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 2, 6, 5))
	img.Set(2, 2, color.NRGBA{R: 255, A: 255})

	staged := TextureFromImage(img)
	assert.Equal(t, uint32(4), staged.Width)
	assert.Equal(t, uint32(3), staged.Height)
	require.Len(t, staged.Pixels, 4*3*4)
	assert.Equal(t, byte(255), staged.Pixels[0])
}

func TestAppendFloatsLittleEndian(t *testing.T) {
	buf := AppendFloats([]byte{0xff}, 1, -2)
	require.Len(t, buf, 9)
	assert.Equal(t, []byte{0xff, 0x00, 0x00, 0x80, 0x3f}, buf[:5])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0xc0}, buf[5:])
}
