// This file is part of ezsnes9x.
//
// ezsnes9x is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ezsnes9x is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ezsnes9x.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"strings"
	"testing"

	"github.com/adriaanm/ezsnes9x/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(100)

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "")

	l.log("test", "this is a test")
	s.Reset()
	l.write(s)
	test.Equate(t, s.String(), "test: this is a test\n")
}

func TestLoggerRepeats(t *testing.T) {
	l := newLogger(100)

	l.log("test", "this is a test")
	l.log("test", "this is a test")
	l.log("test", "this is a test")

	// repeated entries are compressed into a single line
	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "test: this is a test (repeat x3)\n")
}

func TestLoggerTail(t *testing.T) {
	l := newLogger(100)

	l.log("test", "this is a test (1)")
	l.log("test", "this is a test (2)")
	l.log("test", "this is a test (3)")

	s := &strings.Builder{}
	l.tail(s, 2)
	test.Equate(t, s.String(), "test: this is a test (2)\ntest: this is a test (3)\n")
}

func TestLoggerWriteRecent(t *testing.T) {
	l := newLogger(100)

	l.log("test", "this is a test (1)")

	s := &strings.Builder{}
	l.writeRecent(s)
	test.Equate(t, s.String(), "test: this is a test (1)\n")

	// recent entries are consumed by the writeRecent call
	s.Reset()
	l.writeRecent(s)
	test.Equate(t, s.String(), "")

	l.log("test", "this is a test (2)")
	s.Reset()
	l.writeRecent(s)
	test.Equate(t, s.String(), "test: this is a test (2)\n")
}

func TestLoggerMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "this is a test (1)")
	l.log("test", "this is a test (2)")
	l.log("test", "this is a test (3)")

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "test: this is a test (2)\ntest: this is a test (3)\n")
}
