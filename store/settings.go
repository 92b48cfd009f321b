package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/session"
)

// SettingsKey is the key the durations are stored under.
const SettingsKey = "pomodoroSettingsV1"

const (
	fieldDurations = "durationsMinutes"
	fieldCycles    = "cyclesBeforeLongBreak"
)

type settingsDoc struct {
	DurationsMinutes      map[session.Mode]int `json:"durationsMinutes"`
	CyclesBeforeLongBreak int                  `json:"cyclesBeforeLongBreak"`
}

// SaveSettings writes d to kv. Invalid durations are never written.
func SaveSettings(kv KV, d *config.Durations) error {
	if err := d.Validate(); err != nil {
		return ErrSaveSettings.Wrap(err)
	}

	doc := settingsDoc{
		DurationsMinutes:      make(map[session.Mode]int, len(session.Modes)),
		CyclesBeforeLongBreak: d.CyclesBeforeLongBreak,
	}

	for _, mode := range session.Modes {
		doc.DurationsMinutes[mode] = d.Minutes[mode]
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return ErrSaveSettings.Wrap(err)
	}

	if err := kv.Put(SettingsKey, b); err != nil {
		return ErrSaveSettings.Wrap(err)
	}

	return nil
}

// LoadSettings reads stored settings into d. A missing entry is not an
// error. An entry that cannot be decoded, or that is not shaped like a
// settings document, results in ErrLoadSettings and d is not modified.
//
// Unlike Durations.SetDurations, fields are accepted one by one: each value
// that is a valid whole number is applied and the others keep their current
// value. The names of the rejected fields are returned.
func LoadSettings(kv KV, d *config.Durations) ([]string, error) {
	raw, err := kv.Get(SettingsKey)
	if err != nil {
		return nil, ErrLoadSettings.Wrap(err)
	}

	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc map[string]any

	if err := dec.Decode(&doc); err != nil {
		return nil, ErrLoadSettings.Wrap(err)
	}

	if doc == nil {
		return nil, ErrLoadSettings.Wrap(errNotAnObject)
	}

	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, ErrLoadSettings.Wrap(errTrailingData)
	}

	var durations map[string]any

	if v, ok := doc[fieldDurations]; ok && v != nil {
		durations, ok = v.(map[string]any)
		if !ok {
			return nil, ErrLoadSettings.Wrap(
				fmt.Errorf("%s: %w", fieldDurations, errNotAnObject),
			)
		}
	}

	var rejected []string

	for _, mode := range session.Modes {
		n, ok := wholeNumber(durations[string(mode)])
		if !ok || !d.SetMinutes(mode, n) {
			rejected = append(rejected, fieldDurations+"."+string(mode))
		}
	}

	n, ok := wholeNumber(doc[fieldCycles])
	if !ok || !d.SetCycles(n) {
		rejected = append(rejected, fieldCycles)
	}

	return rejected, nil
}

// wholeNumber extracts a whole number from a decoded JSON value. Numeric
// strings are accepted as well as numbers.
func wholeNumber(v any) (int, bool) {
	switch val := v.(type) {
	case json.Number:
		return config.ParseWhole(val.String())
	case string:
		return config.ParseWhole(val)
	}

	return 0, false
}
