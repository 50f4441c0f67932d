// Package state serializes window layouts. A snapshot is a plain-data
// mirror of a subtree that round-trips through YAML: window kinds, cell
// sizes, normal fractions, persisted parameters and, for leaves, the
// shown buffer's name and markers. Restore rebuilds an equivalent tree
// from a record by replaying splits against a live anchor window.
package state

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mullion/mullion/internal/layout"
)

// WindowState mirrors one window. Children is empty for leaves.
type WindowState struct {
	Kind   string  `yaml:"kind"`
	Cols   int     `yaml:"cols"`
	Lines  int     `yaml:"lines"`
	Normal float64 `yaml:"normal"`

	Buffer    string   `yaml:"buffer,omitempty"`
	Start     int      `yaml:"start,omitempty"`
	Point     int      `yaml:"point,omitempty"`
	PrevShown []string `yaml:"prev-shown,omitempty,flow"`
	NextShown []string `yaml:"next-shown,omitempty,flow"`

	Dedicated string            `yaml:"dedicated,omitempty"`
	Fixed     string            `yaml:"fixed,omitempty"`
	Side      string            `yaml:"side,omitempty"`
	Slot      int               `yaml:"slot,omitempty"`
	NoOther   bool              `yaml:"no-other,omitempty"`
	NoDelete  bool              `yaml:"no-delete,omitempty"`
	Params    map[string]string `yaml:"params,omitempty"`

	Children []WindowState `yaml:"children,omitempty"`
}

// Snapshot is a complete captured subtree plus the cell geometry it was
// captured under, so restore can scale into a differently sized anchor.
type Snapshot struct {
	Frame string      `yaml:"frame,omitempty"`
	Cols  int         `yaml:"cols"`
	Lines int         `yaml:"lines"`
	Root  WindowState `yaml:"root"`
}

// Encode writes the snapshot as YAML.
func (s *Snapshot) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("state: encode snapshot: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML snapshot.
func Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("state: decode snapshot: %w", err)
	}
	if err := s.Root.validate(); err != nil {
		return nil, fmt.Errorf("state: decode snapshot: %w", err)
	}
	return &s, nil
}

func (ws *WindowState) validate() error {
	switch ws.Kind {
	case "leaf":
		if len(ws.Children) != 0 {
			return fmt.Errorf("leaf window with %d children", len(ws.Children))
		}
	case "hsplit", "vsplit":
		if len(ws.Children) < 2 {
			return fmt.Errorf("%s window with %d children", ws.Kind, len(ws.Children))
		}
		for i := range ws.Children {
			if err := ws.Children[i].validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown window kind %q", ws.Kind)
	}
	return nil
}

func dedicationName(d layout.Dedication) string {
	switch d {
	case layout.DedicatedSoft:
		return "soft"
	case layout.DedicatedStrong:
		return "strong"
	}
	return ""
}

func parseDedication(s string) layout.Dedication {
	switch s {
	case "soft":
		return layout.DedicatedSoft
	case "strong":
		return layout.DedicatedStrong
	}
	return layout.DedicatedNone
}

func fixedName(f layout.Fixed) string {
	switch f {
	case layout.FixedWidth:
		return "width"
	case layout.FixedHeight:
		return "height"
	case layout.FixedBoth:
		return "both"
	}
	return ""
}

func parseFixed(s string) layout.Fixed {
	switch s {
	case "width":
		return layout.FixedWidth
	case "height":
		return layout.FixedHeight
	case "both":
		return layout.FixedBoth
	}
	return layout.FixedNone
}

func parseSide(s string) layout.Side {
	switch s {
	case "left":
		return layout.SideLeft
	case "top":
		return layout.SideTop
	case "right":
		return layout.SideRight
	case "bottom":
		return layout.SideBottom
	}
	return layout.SideNone
}
