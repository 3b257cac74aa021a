package astro

// Star represents a cataloged star with position, brightness and color.
type Star struct {
	Name   string   `yaml:"name"` // Common name (e.g., "Sirius", "Vega")
	RAdeg  float64  `yaml:"ra"`   // Right Ascension in degrees (J2000)
	DecDeg float64  `yaml:"dec"`  // Declination in degrees (J2000)
	Mag    float64  `yaml:"mag"`  // Apparent visual magnitude (lower = brighter)
	BV     *float64 `yaml:"bv"`   // B−V color index, nil when unknown
}

// ColorIndex returns the star's B−V index, or 0 (white) when unknown.
func (s Star) ColorIndex() float64 {
	if s.BV == nil {
		return 0
	}
	return *s.BV
}

// StarCatalog holds a collection of stars for rendering.
type StarCatalog struct {
	Stars []Star
}

// Len returns the number of stars in the catalog.
func (c StarCatalog) Len() int {
	return len(c.Stars)
}

// DefaultStarCatalog returns the built-in catalog of ~190 named bright stars.
// Coordinates are J2000 epoch.
// Data sourced from Yale Bright Star Catalog and IAU star names.
func DefaultStarCatalog() StarCatalog {
	stars := make([]Star, len(defaultStars))
	copy(stars, defaultStars)
	return StarCatalog{Stars: stars}
}

func bv(v float64) *float64 {
	return &v
}

// defaultStars contains bright stars visible from various latitudes.
// Ordered roughly by magnitude (brightest first).
var defaultStars = []Star{
	// Magnitude < 0 (exceptionally bright)
	{"Sirius", 101.287, -16.716, -1.46, bv(0.00)},
	{"Canopus", 95.988, -52.696, -0.74, bv(0.15)},
	{"Arcturus", 213.915, 19.182, -0.05, bv(1.23)},
	{"Vega", 279.235, 38.784, 0.03, bv(0.00)},
	{"Capella", 79.172, 45.998, 0.08, bv(0.80)},
	{"Rigel", 78.634, -8.202, 0.13, bv(-0.03)},
	{"Procyon", 114.826, 5.225, 0.34, bv(0.42)},
	{"Achernar", 24.429, -57.237, 0.46, bv(-0.16)},
	{"Betelgeuse", 88.793, 7.407, 0.50, bv(1.85)},
	{"Hadar", 210.956, -60.373, 0.61, bv(-0.23)},

	// Magnitude 0.5-1.0
	{"Altair", 297.696, 8.868, 0.76, bv(0.22)},
	{"Acrux", 186.650, -63.099, 0.76, bv(-0.24)},
	{"Aldebaran", 68.980, 16.509, 0.85, bv(1.54)},
	{"Antares", 247.352, -26.432, 0.96, bv(1.83)},
	{"Spica", 201.298, -11.161, 0.97, bv(-0.23)},
	{"Pollux", 116.329, 28.026, 1.14, bv(1.00)},

	// Magnitude 1.0-1.5
	{"Fomalhaut", 344.413, -29.622, 1.16, bv(0.09)},
	{"Deneb", 310.358, 45.280, 1.25, bv(0.09)},
	{"Mimosa", 191.930, -59.689, 1.25, bv(-0.23)},
	{"Regulus", 152.093, 11.967, 1.35, bv(-0.11)},
	{"Adhara", 104.656, -28.972, 1.50, bv(-0.21)},
	{"Castor", 113.650, 31.889, 1.58, bv(0.03)},

	// Magnitude 1.5-2.0
	{"Gacrux", 187.791, -57.113, 1.63, bv(1.60)},
	{"Shaula", 263.402, -37.104, 1.63, bv(-0.22)},
	{"Bellatrix", 81.283, 6.350, 1.64, bv(-0.22)},
	{"Elnath", 81.573, 28.608, 1.65, bv(-0.13)},
	{"Miaplacidus", 138.300, -69.717, 1.68, bv(0.07)},
	{"Alnilam", 84.053, -1.202, 1.69, bv(-0.18)},
	{"Alnair", 332.058, -46.961, 1.74, bv(-0.13)},
	{"Alnitak", 85.190, -1.943, 1.77, bv(-0.21)},
	{"Alioth", 193.507, 55.960, 1.77, bv(-0.02)},
	{"Dubhe", 165.932, 61.751, 1.79, bv(1.07)},
	{"Mirfak", 51.081, 49.861, 1.79, bv(0.48)},
	{"Wezen", 107.098, -26.393, 1.84, bv(0.68)},
	{"Sargas", 264.330, -42.998, 1.87, bv(0.40)},
	{"Kaus Australis", 276.043, -34.384, 1.85, bv(-0.03)},
	{"Avior", 125.629, -59.509, 1.86, bv(1.28)},
	{"Alkaid", 206.885, 49.313, 1.86, bv(-0.19)},
	{"Menkalinan", 89.882, 44.948, 1.90, bv(0.03)},
	{"Atria", 252.166, -69.028, 1.92, bv(1.44)},
	{"Alhena", 99.428, 16.399, 1.93, bv(0.00)},
	{"Peacock", 306.412, -56.735, 1.94, bv(-0.20)},
	{"Alsephina", 131.176, -54.709, 1.96, bv(0.04)},
	{"Mirzam", 95.675, -17.956, 1.98, bv(-0.24)},
	{"Polaris", 37.954, 89.264, 2.02, bv(0.60)},
	{"Alphard", 141.897, -8.659, 2.00, bv(1.44)},

	// Magnitude 2.0-2.5
	{"Hamal", 31.793, 23.463, 2.00, bv(1.15)},
	{"Algieba", 146.463, 19.842, 2.08, bv(1.13)},
	{"Diphda", 10.897, -17.987, 2.02, bv(1.02)},
	{"Nunki", 283.816, -26.297, 2.02, bv(-0.13)},
	{"Mizar", 200.981, 54.925, 2.04, bv(0.06)},
	{"Alpheratz", 2.097, 29.091, 2.06, bv(-0.11)},
	{"Saiph", 86.939, -9.670, 2.09, bv(-0.18)},
	{"Mirach", 17.433, 35.621, 2.05, bv(1.58)},
	{"Kochab", 222.676, 74.156, 2.08, bv(1.47)},
	{"Rasalhague", 263.734, 12.560, 2.08, bv(0.16)},
	{"Algol", 47.042, 40.957, 2.12, bv(-0.05)},
	{"Denebola", 177.265, 14.572, 2.13, bv(0.09)},
	{"Muhlifain", 190.379, -48.960, 2.17, bv(-0.01)},
	{"Naos", 120.896, -40.003, 2.25, bv(-0.27)},
	{"Aspidiske", 139.273, -59.275, 2.25, bv(0.18)},
	{"Suhail", 136.999, -43.433, 2.21, bv(1.66)},
	{"Alphecca", 233.672, 26.715, 2.23, bv(-0.02)},
	{"Mintaka", 83.002, -0.299, 2.23, bv(-0.22)},
	{"Sadr", 305.557, 40.257, 2.23, bv(0.67)},
	{"Eltanin", 269.152, 51.489, 2.23, bv(1.52)},
	{"Schedar", 10.127, 56.537, 2.23, bv(1.17)},
	{"Caph", 2.295, 59.150, 2.27, bv(0.38)},
	{"Dschubba", 240.083, -22.622, 2.32, bv(-0.12)},
	{"Larawag", 254.655, -34.293, 2.29, bv(1.15)},
	{"Merak", 165.460, 56.382, 2.37, bv(-0.02)},
	{"Izar", 221.247, 27.074, 2.37, bv(0.97)},

	// Magnitude 2.5-3.0
	{"Enif", 326.046, 9.875, 2.39, bv(1.52)},
	{"Ankaa", 6.571, -42.306, 2.38, bv(1.09)},
	{"Phecda", 178.458, 53.695, 2.44, bv(0.04)},
	{"Sabik", 257.595, -15.725, 2.43, bv(0.06)},
	{"Scheat", 345.944, 28.083, 2.42, bv(1.67)},
	{"Alderamin", 319.645, 62.586, 2.51, bv(0.22)},
	{"Aludra", 111.024, -29.303, 2.45, bv(-0.08)},
	{"Markeb", 140.528, -55.011, 2.47, bv(-0.14)},
	{"Girtab", 265.622, -39.030, 2.41, bv(-0.17)},
	{"Navi", 14.177, 60.717, 2.47, bv(-0.15)},
	{"Markab", 346.190, 15.205, 2.49, bv(-0.04)},
	{"Aljanah", 311.553, 33.970, 2.48, bv(1.03)},
	{"Acrab", 241.359, -19.805, 2.62, bv(-0.07)},

	// Magnitude 3.0-3.5
	{"Aldhanab", 319.966, -16.127, 3.00, bv(0.45)},
	{"Gienah", 183.952, -17.542, 2.59, bv(-0.11)},
	{"Zubeneschamali", 229.252, -9.383, 2.61, bv(-0.11)},
	{"Unukalhai", 236.067, 6.426, 2.65, bv(1.17)},
	{"Sheratan", 28.660, 20.808, 2.64, bv(0.13)},
	{"Phact", 84.912, -34.074, 2.64, bv(-0.12)},
	{"Menkent", 211.671, -36.370, 2.06, bv(1.01)},
	{"Zosma", 168.527, 20.524, 2.56, bv(0.12)},
	{"Arneb", 83.183, -17.822, 2.58, bv(0.21)},
	{"Gomeisa", 111.788, 8.289, 2.90, bv(-0.10)},
	{"Thuban", 211.097, 64.376, 3.65, bv(-0.05)},
	{"Rastaban", 262.608, 52.301, 2.79, bv(0.98)},
	{"Cor Caroli", 194.007, 38.318, 2.81, bv(-0.12)},
	{"Vindemiatrix", 195.544, 10.959, 2.83, bv(0.94)},
	{"Algorab", 187.466, -16.515, 2.95, bv(-0.05)},
	{"Zubenelgenubi", 222.720, -16.042, 2.75, bv(0.15)},
	{"Porrima", 190.415, -1.449, 2.74, bv(0.36)},

	// Magnitude 3.5-4.0 (subtle stars)
	{"Albireo", 292.680, 27.960, 3.18, bv(1.13)},
	{"Sadalmelik", 331.446, -0.320, 2.96, bv(0.98)},
	{"Sadalsuud", 322.890, -5.571, 2.91, bv(0.83)},
	{"Yed Prior", 243.586, -3.694, 2.75, bv(1.58)},
	{"Alcyone", 56.871, 24.105, 2.87, bv(-0.09)},
	{"Tarazed", 296.565, 10.613, 2.72, bv(1.52)},
	{"Alshain", 298.828, 6.407, 3.71, bv(0.86)},
	{"Nihal", 82.061, -20.759, 2.84, bv(0.81)},
	{"Wazn", 90.399, -35.768, 3.85, bv(1.16)},
	{"Muscida", 127.566, 60.718, 3.35, bv(0.85)},
	{"Talitha", 134.802, 48.042, 3.14, bv(0.19)},
	{"Tania Australis", 155.582, 41.499, 3.05, bv(1.60)},
	{"Alula Australis", 169.545, 31.529, 3.78, bv(0.59)},
	{"Megrez", 183.857, 57.033, 3.31, bv(0.08)},
	{"Alcor", 201.306, 54.988, 3.99, bv(0.17)},
	{"Syrma", 214.004, -6.001, 4.08, bv(0.52)},
	{"Khambalia", 218.877, -13.371, 4.66, bv(0.11)},
	{"Kraz", 188.597, -23.397, 2.65, bv(0.89)},
	{"Alkes", 164.944, -18.299, 4.08, bv(1.08)},
	{"Minkar", 182.531, -22.620, 3.02, bv(1.33)},
	{"Sceptrum", 62.966, -8.898, 4.45, bv(1.38)},
	{"Cursa", 76.963, -5.086, 2.79, bv(0.16)},
	{"Hassaleh", 75.492, 33.166, 2.69, bv(1.53)},
	{"Hoedus I", 75.620, 41.234, 3.04, bv(-0.18)},
	{"Hoedus II", 75.248, 41.076, 3.17, bv(-0.15)},
	{"Saclateni", 79.402, 40.010, 3.69, bv(1.46)},

	// Magnitude 4.0-4.5 (dim background stars)
	{"Furud", 95.078, -30.063, 3.96, bv(-0.19)},
	{"Muliphein", 105.940, -15.633, 4.11, bv(-0.09)},
	{"Tejat", 95.740, 22.513, 2.88, bv(1.64)},
	{"Mebsuta", 100.983, 25.131, 3.06, bv(1.38)},
	{"Propus", 93.719, 22.506, 3.28, bv(1.60)},
	{"Wasat", 110.031, 21.982, 3.53, bv(0.34)},
	{"Kappa Gem", 116.112, 24.398, 3.57, bv(0.93)},
	{"Asellus Australis", 131.171, 18.154, 3.94, bv(1.08)},
	{"Asellus Borealis", 130.821, 21.469, 4.66, bv(0.02)},
	{"Acubens", 134.622, 11.858, 4.25, bv(0.14)},
	{"Alterf", 139.711, 22.968, 4.31, bv(1.55)},
	{"Rasalas", 146.463, 26.007, 3.88, bv(1.22)},
	{"Adhafera", 154.173, 23.417, 3.43, bv(0.31)},
	{"Subra", 148.191, 9.893, 3.52, bv(0.52)},
	{"Chertan", 168.560, 15.430, 3.33, bv(0.00)},
	{"Zavijava", 177.674, 1.765, 3.61, bv(0.55)},

	// Magnitude 4.5-5.0 (very dim, adds density)
	{"Tyl", 288.439, 67.661, 4.01, bv(1.18)},
	{"Edasich", 231.232, 58.966, 3.29, bv(1.16)},
	{"Giausar", 175.942, 69.331, 3.85, bv(1.62)},
	{"Grumium", 268.382, 56.873, 3.75, bv(1.18)},
	{"Alsafi", 282.520, 52.301, 4.67, bv(0.79)},
	{"Alrakis", 245.998, 61.514, 4.67, bv(0.26)},
	{"Dziban", 270.162, 72.149, 4.54, bv(0.48)},
	{"Pherkad", 230.182, 71.834, 3.00, bv(0.05)},
	{"Yildun", 263.054, 86.586, 4.36, bv(0.03)},
	{"Epsilon Dra", 297.043, 70.268, 3.83, bv(0.89)},
	{"Chi Dra", 274.966, 72.733, 3.57, bv(0.49)},
	{"Gianfar", 284.073, 75.388, 4.13, bv(0.40)},
	{"Aldhibah", 256.343, 65.715, 3.17, bv(-0.12)},
	{"Nodus Secundus", 246.998, 61.514, 3.07, bv(-0.12)},
	{"Tania Borealis", 154.274, 42.914, 3.45, bv(0.03)},
	{"Alula Borealis", 169.620, 33.094, 3.49, bv(1.40)},
	{"Chara", 188.436, 41.357, 4.26, bv(0.59)},
	{"Asterion", 194.289, 38.318, 4.25, bv(0.59)},
	{"Diadem", 197.497, 17.529, 4.32, bv(0.46)},
	{"Zaniah", 184.976, -0.667, 3.89, bv(0.02)},
	{"Auva", 192.855, 3.397, 3.38, bv(1.58)},
	{"Heze", 203.673, -0.596, 3.37, bv(0.11)},
}
