// Copyright 2026 The sfcgate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfcgate/sfcgate/pkg/private/util"
)

func TestParseDuration(t *testing.T) {
	tests := map[string]struct {
		input     string
		want      time.Duration
		assertErr assert.ErrorAssertionFunc
	}{
		"go format":    {input: "250ms", want: 250 * time.Millisecond, assertErr: assert.NoError},
		"days":         {input: "2d", want: 48 * time.Hour, assertErr: assert.NoError},
		"bare seconds": {input: "5", want: 5 * time.Second, assertErr: assert.NoError},
		"empty":        {input: "", assertErr: assert.Error},
		"garbage":      {input: "soon", assertErr: assert.Error},
		"garbage days": {input: "xd", assertErr: assert.Error},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := util.ParseDuration(tc.input)
			tc.assertErr(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDurWrapRoundTrip(t *testing.T) {
	for _, d := range []time.Duration{0, 250 * time.Millisecond, 5 * time.Second, 72 * time.Hour} {
		w := util.DurWrap{Duration: d}
		text, err := w.MarshalText()
		require.NoError(t, err)
		var back util.DurWrap
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, d, back.Duration)
	}
}
