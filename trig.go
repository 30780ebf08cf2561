package ringmap

// sinTable holds sines of angles 0°, 9°, 18°, ..., 351°,
// where sinTable[x] = sin(x * 9°).
var sinTable = [Sectors]float64{
	0.00000000, 0.15643447, 0.30901699, 0.45399050, 0.58778525,
	0.70710677, 0.80901699, 0.89100651, 0.95105652, 0.98768834,
	1.00000000, 0.98768834, 0.95105652, 0.89100651, 0.80901699,
	0.70710677, 0.58778525, 0.45399050, 0.30901699, 0.15643447,
	0.00000000, -0.15643445, -0.30901702, -0.45399053, -0.58778528,
	-0.70710683, -0.80901702, -0.89100657, -0.95105658, -0.98768837,
	-1.00000000, -0.98768837, -0.95105658, -0.89100657, -0.80901702,
	-0.70710683, -0.58778528, -0.45399053, -0.30901702, -0.15643445,
}

// cosTable holds cosines of angles 0°, 9°, 18°, ..., 351°,
// where cosTable[x] = cos(x * 9°).
var cosTable = [Sectors]float64{
	1.00000000, 0.98768834, 0.95105652, 0.89100651, 0.80901699,
	0.70710677, 0.58778525, 0.45399050, 0.30901699, 0.15643447,
	0.00000000, -0.15643447, -0.30901699, -0.45399050, -0.58778525,
	-0.70710677, -0.80901699, -0.89100651, -0.95105652, -0.98768834,
	-1.00000000, -0.98768834, -0.95105652, -0.89100651, -0.80901699,
	-0.70710677, -0.58778525, -0.45399050, -0.30901699, -0.15643447,
	0.00000000, 0.15643447, 0.30901699, 0.45399050, 0.58778525,
	0.70710677, 0.80901699, 0.89100651, 0.95105652, 0.98768834,
}

// SinCos returns the tabulated sine and cosine of the angle theta * 9°.
// The values come from a fixed table and are identical on every platform.
// If theta is not in range [0, Sectors), SinCos returns ok == false.
func SinCos(theta int) (sin, cos float64, ok bool) {
	if theta < 0 || theta >= Sectors {
		return 0, 0, false
	}
	return sinTable[theta], cosTable[theta], true
}
