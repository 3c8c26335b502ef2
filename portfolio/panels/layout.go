package panels

import (
	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/chewxy/math32"
)

const (
	// arcRadius is the distance of each experience card from the panel centre.
	arcRadius float32 = 4
	// gridSpacing is the distance between neighbouring project cards.
	gridSpacing float32 = 3.5
	// podiumSpacing is the distance between neighbouring achievement podiums.
	podiumSpacing float32 = 2
	// cubeHalf is the distance of each skill face from the cube centre.
	cubeHalf float32 = 1.5
)

var faceLayout = [6]struct {
	position common.Vec3
	rotation common.Vec3
}{
	{common.Vec3{0, 0, cubeHalf}, common.Vec3{0, 0, 0}},
	{common.Vec3{0, 0, -cubeHalf}, common.Vec3{0, math32.Pi, 0}},
	{common.Vec3{cubeHalf, 0, 0}, common.Vec3{0, math32.Pi / 2, 0}},
	{common.Vec3{-cubeHalf, 0, 0}, common.Vec3{0, -math32.Pi / 2, 0}},
	{common.Vec3{0, cubeHalf, 0}, common.Vec3{-math32.Pi / 2, 0, 0}},
	{common.Vec3{0, -cubeHalf, 0}, common.Vec3{math32.Pi / 2, 0, 0}},
}

// FaceLayout returns where skill face i sits on the cube: front, back, right, left, top, bottom.
//
// Parameters:
//   - i: the face index in [0, 6)
//
// Returns:
//   - common.Vec3: the face centre relative to the cube
//   - common.Vec3: the face rotation in radians
//   - bool: false when i is out of range
func FaceLayout(i int) (common.Vec3, common.Vec3, bool) {
	if i < 0 || i >= len(faceLayout) {
		return common.Vec3{}, common.Vec3{}, false
	}
	return faceLayout[i].position, faceLayout[i].rotation, true
}

// ArcLayout places experience card i on a shallow arc in front of the panel centre. The middle
// card sits straight ahead and its neighbours are a quarter turn apart, each turned to face the
// centre.
//
// Parameters:
//   - i: the card index
//
// Returns:
//   - common.Vec3: the card position relative to the panel
//   - float32: the card rotation about Y
func ArcLayout(i int) (common.Vec3, float32) {
	angle := float32(i-1) * math32.Pi / 4
	return common.Vec3{math32.Sin(angle) * arcRadius, 0, math32.Cos(angle) * arcRadius}, -angle
}

// GridLayout places project card i on a two-column grid centred on the panel.
//
// Parameters:
//   - i: the card index
//
// Returns:
//   - common.Vec3: the card position relative to the panel
func GridLayout(i int) common.Vec3 {
	row, col := i/2, i%2
	return common.Vec3{(float32(col) - 0.5) * gridSpacing, 0, (float32(row) - 0.5) * gridSpacing}
}

// PodiumLayout places achievement podium i in a row. The middle podium stands taller.
//
// Parameters:
//   - i: the podium index
//
// Returns:
//   - float32: the podium x offset
//   - float32: the pillar height
func PodiumLayout(i int) (float32, float32) {
	height := float32(1)
	if i == 1 {
		height += 0.5
	}
	return float32(i-1) * podiumSpacing, height
}
