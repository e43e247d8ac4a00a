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
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// SPIN is the character set of the progress spinner.
const SPIN = 14

// StartSpinner starts a spinner on stderr with the given suffix and returns
// a function which stops it. The spinner is not shown when trace logging is
// enabled so that it doesn't garble the logs.
func StartSpinner(suffix string) (stop func()) {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = suffix
	s.Start()

	return s.Stop
}
