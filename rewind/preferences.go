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

package rewind

import (
	"github.com/adriaanm/ezsnes9x/logger"
	"github.com/adriaanm/ezsnes9x/paths"
	"github.com/adriaanm/ezsnes9x/prefs"
)

// Preferences exposes the ring tunables through the prefs system.
type Preferences struct {
	r   *Rewind
	dsk *prefs.Disk

	// whether snapshots are being captured at all
	Enabled prefs.Bool

	Capacity         prefs.Int
	CaptureInterval  prefs.Int
	KeyframeInterval prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences(r *Rewind) (*Preferences, error) {
	p := &Preferences{r: r}

	p.Enabled.Set(true)
	p.Capacity.Set(DefaultConfig.Capacity)
	p.CaptureInterval.Set(DefaultConfig.CaptureInterval)
	p.KeyframeInterval.Set(DefaultConfig.KeyframeInterval)

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rewind.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.capacity", &p.Capacity)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.captureInterval", &p.CaptureInterval)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.keyframeInterval", &p.KeyframeInterval)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	p.Capacity.SetHookPost(p.apply)
	p.CaptureInterval.SetHookPost(p.apply)
	p.KeyframeInterval.SetHookPost(p.apply)

	// apply whatever was loaded from disk. an invalid combination is logged
	// and the defaults kept
	p.apply(nil)

	return p, nil
}

// apply the current preference values to the ring. changing the ring
// geometry discards the snapshot history.
func (p *Preferences) apply(_ prefs.Value) error {
	cfg := Config{
		Capacity:         p.Capacity.Get().(int),
		CaptureInterval:  p.CaptureInterval.Get().(int),
		KeyframeInterval: p.KeyframeInterval.Get().(int),
	}

	if err := p.r.setConfig(cfg); err != nil {
		logger.Logf("rewind", "%v", err)
	}

	return nil
}

// Load preferences from disk and apply to the ring.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
