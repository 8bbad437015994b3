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

// Package curated is a helper package for the error type. A curated error is
// created with the Errorf() function. The pattern string of a curated error
// can later be tested for with the Is(), IsAny() and Has() functions, which
// makes deep error chains practical to deal with at the point where they are
// finally handled.
//
// Packages that return curated errors should define their patterns as
// constants alongside the code that creates them. For example:
//
//	const NoKeyframe = "rewind: no keyframe in delta chain"
//
//	...
//
//	return curated.Errorf(NoKeyframe)
package curated
