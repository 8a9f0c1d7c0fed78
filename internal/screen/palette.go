package screen

// paletteLevels are the 6 intensity steps xterm's 6x6x6 color cube (indices
// 16-231) uses per channel.
var paletteLevels = [6]int{0, 95, 135, 175, 215, 255}

// nearestLevel returns the cube index (0-5) whose paletteLevels value is
// closest to v.
func nearestLevel(v uint8) int {
	best, bestDist := 0, 256
	for i, lvl := range paletteLevels {
		d := int(v) - lvl
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// grayIndex returns the nearest grayscale-ramp index (232-255) and its
// reconstructed brightness, for comparison against the color cube.
func grayIndex(v uint8) (idx uint8, level uint8) {
	if v < 8 {
		return 232, 8
	}
	if v > 248 {
		return 255, 238
	}
	step := (int(v) - 8) / 10
	return uint8(232 + step), uint8(8 + step*10)
}

// rgbToPaletteIndex maps an RGB triple to the closest xterm 256-color
// palette index, choosing between the 6x6x6 color cube and the 24-step
// grayscale ramp by Euclidean distance.
func rgbToPaletteIndex(c RGB) uint8 {
	r, g, b := nearestLevel(c.R), nearestLevel(c.G), nearestLevel(c.B)
	cubeIdx := uint8(16 + 36*r + 6*g + b)
	cubeR, cubeG, cubeB := paletteLevels[r], paletteLevels[g], paletteLevels[b]
	cubeDist := sqDist(int(c.R), int(c.G), int(c.B), cubeR, cubeG, cubeB)

	grayIdx, grayLevel := grayIndex(avg(c.R, c.G, c.B))
	grayDist := sqDist(int(c.R), int(c.G), int(c.B), int(grayLevel), int(grayLevel), int(grayLevel))

	if grayDist < cubeDist {
		return grayIdx
	}
	return cubeIdx
}

func avg(r, g, b uint8) uint8 {
	return uint8((int(r) + int(g) + int(b)) / 3)
}

func sqDist(r1, g1, b1, r2, g2, b2 int) int {
	dr, dg, db := r1-r2, g1-g2, b1-b2
	return dr*dr + dg*dg + db*db
}
