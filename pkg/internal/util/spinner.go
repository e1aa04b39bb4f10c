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
	"time"

	"github.com/briandowns/spinner"
)

// Spinner character set shown while slow work is running.
const spinnerCharSet = 31

var working = spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond)

// StartSpinner starts the ~working~ spinner with the given suffix.
func StartSpinner(suffix string) {
	working.Suffix = " " + suffix
	working.Start()
}

// PauseSpinner stops the ~working~ spinner. It can be started again.
func PauseSpinner() {
	working.Stop()
}
