package canvas

// PhysicalIndex maps a logical cell to its position on a serpentine strip:
// even rows run left to right, odd rows right to left.
func PhysicalIndex(x, y, width int) int {
	if y%2 == 0 {
		return y*width + x
	}
	return y*width + (width - 1 - x)
}

// LogicalCoord inverts PhysicalIndex.
func LogicalCoord(i, width int) (x, y int) {
	y = i / width
	x = i % width
	if y%2 != 0 {
		x = width - 1 - x
	}
	return x, y
}
