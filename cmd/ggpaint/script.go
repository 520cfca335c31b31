package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggpaint/session"
)

// Script is a recorded editing session.
type Script struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
	Steps      []Step `yaml:"steps"`
}

// Step is one event. Exactly one field is expected to be set.
type Step struct {
	Tool  string    `yaml:"tool,omitempty"`
	Color string    `yaml:"color,omitempty"`
	Width int       `yaml:"width,omitempty"`
	Down  []float64 `yaml:"down,omitempty"`
	Move  []float64 `yaml:"move,omitempty"`
	Up    []float64 `yaml:"up,omitempty"`
	Clear bool      `yaml:"clear,omitempty"`
	Undo  bool      `yaml:"undo,omitempty"`
	Redo  bool      `yaml:"redo,omitempty"`
	Save  string    `yaml:"save,omitempty"`
	Load  string    `yaml:"load,omitempty"`
}

var errBadPoint = errors.New("point must be [x, y]")

// loadScript reads a script file; "-" reads stdin.
func loadScript(path string) (*Script, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return parseScript(r)
}

func parseScript(r io.Reader) (*Script, error) {
	sc := &Script{Width: 800, Height: 600, Background: "#ffffff"}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, st := range sc.Steps {
		for _, p := range [][]float64{st.Down, st.Move, st.Up} {
			if p != nil && len(p) != 2 {
				return nil, fmt.Errorf("step %d: %w", i+1, errBadPoint)
			}
		}
	}
	return sc, nil
}

// play feeds the steps to s. Failed steps are reported and skipped; the
// number of failures is returned.
func play(ctx context.Context, s *session.Session, palette *session.Palette, steps []Step, report func(i int, err error)) int {
	failed := 0
	for i, st := range steps {
		if err := apply(ctx, s, palette, st); err != nil {
			failed++
			report(i+1, err)
		}
	}
	return failed
}

func apply(ctx context.Context, s *session.Session, palette *session.Palette, st Step) error {
	switch {
	case st.Tool != "":
		palette.SetTool(st.Tool)
	case st.Color != "":
		palette.SetColor(st.Color)
	case st.Width != 0:
		palette.SetLineWidth(st.Width)
	case st.Down != nil:
		return s.PointerDown(st.Down[0], st.Down[1])
	case st.Move != nil:
		return s.PointerMove(st.Move[0], st.Move[1])
	case st.Up != nil:
		return s.PointerUp(ctx, st.Up[0], st.Up[1])
	case st.Clear:
		return s.Clear()
	case st.Undo:
		_, err := s.Undo()
		return err
	case st.Redo:
		_, err := s.Redo()
		return err
	case st.Save != "":
		return s.Save(ctx, st.Save)
	case st.Load != "":
		return s.Load(ctx, st.Load)
	}
	return nil
}
