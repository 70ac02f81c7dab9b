// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lshcache

import "math"

// theoreticalPercentFound returns 1 - (1 - s^r)^b: the probability that two
// documents with true Jaccard similarity s share at least one band
// collision, for a cache configured with bands b and rowsPerBand r.
func theoreticalPercentFound(s float64, bands, rowsPerBand int) float64 {
	return 1 - math.Pow(1-math.Pow(s, float64(rowsPerBand)), float64(bands))
}
