// seehuhn.de/go/stringart - thread patterns from raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package stringart

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/stringart/testcases"
)

func TestLoggerDefault(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSessionLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	sc := testcases.All["boundary"][2]
	p := testParams()
	p.LineBudget = 3
	s := NewSession()
	if err := s.Reset(sc.Image, sc.Pins, p); err != nil {
		t.Fatal(err)
	}
	runToEnd(t, s, 10)

	out := buf.String()
	for _, want := range []string{
		"level=INFO msg=\"session reset\"",
		"level=WARN",
		"dropped=8",
		"level=DEBUG msg=chord",
		"reason=\"line budget reached\"",
		"session=" + s.ID().String(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	buf.Reset()
	if err := s.Reset(sc.Image, sc.Pins, p); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("output after SetLogger(nil): %s", buf.String())
	}
}
