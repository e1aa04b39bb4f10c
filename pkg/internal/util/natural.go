// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"regexp"
	"strconv"
	"strings"
)

var chunkRegexp = regexp.MustCompile(`(\d+|\D+)`)

// NaturalLess reports whether name a sorts before name b. Runs of digits are
// compared by value and everything else case-insensitively, so "Table 2"
// comes before "table 10". Names equal under those rules fall back to a
// byte-wise comparison, which keeps the ordering strict.
func NaturalLess(a, b string) bool {
	chunksA := chunkRegexp.FindAllString(a, -1)
	chunksB := chunkRegexp.FindAllString(b, -1)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		numA, errA := strconv.Atoi(chunksA[i])
		numB, errB := strconv.Atoi(chunksB[i])

		// If both chunks are numeric, compare them as integers.
		if errA == nil && errB == nil {
			if numA != numB {
				return numA < numB
			}

			continue
		}

		foldA, foldB := strings.ToLower(chunksA[i]), strings.ToLower(chunksB[i])
		if foldA != foldB {
			return foldA < foldB
		}
	}

	if len(chunksA) != len(chunksB) {
		return len(chunksA) < len(chunksB)
	}

	return a < b
}
