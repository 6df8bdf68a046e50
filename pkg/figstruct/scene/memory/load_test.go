package memory

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

const sampleYAML = `
id: 7
title: results
size: [8, 6]
dpi: 50
axes:
  - title: loss
    xlim: [0, 10]
    ylim: [0, 1]
    xaxis: {label: epoch, ticks: [0, 5, 10], ticklabels: ["0", "5", "10"]}
    yaxis: {label: value, scale: log, base: 2, grid: true}
    legend: true
    lines:
      - {x: [0, 1], y: [1, 0.5], label: train, color: red, marker: o}
      - {x: [0, 1], y: [0.9, 0.6], linestyle: "--"}
    segments:
      - segments: [[[0, 0], [1, 1]]]
        colors: ["#00ff00"]
    scatter:
      - {x: [1, 2], y: [3, 4], sizes: [4, 9], colors: [C1]}
    images:
      - gray: [[0, 1], [1, 0]]
  - zlim: [-1, 1]
    zaxis: {label: depth}
    xaxis: {epoch: "2020-01-01T00:00:00Z", period: M}
    lines:
      - {x: [0, 1], y: [0, 1], z: [0, 1]}
    scatter:
      - {x: [1], y: [2], z: [3]}
`

func TestLoad(t *testing.T) {
	fig, err := Load(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if fig.Number() != 7 || fig.SupTitle() != "results" || fig.DPI() != 50 {
		t.Errorf("figure = %d %q %v", fig.Number(), fig.SupTitle(), fig.DPI())
	}
	if w, h := fig.Size(); w != 8 || h != 6 {
		t.Errorf("size = %v x %v", w, h)
	}
	if len(fig.Axes()) != 2 {
		t.Fatalf("expected 2 axes, got %d", len(fig.Axes()))
	}

	ax := fig.Axes()[0].(*Axes)
	if ax.Title().Text() != "loss" || !ax.HasLegend() {
		t.Errorf("axes title %q legend %v", ax.Title().Text(), ax.HasLegend())
	}
	if got := ax.XAxis().MajorLocator(); got.Kind != scene.LocatorFixed || len(got.Ticks) != 3 {
		t.Errorf("x locator = %+v", got)
	}
	if got := ax.XAxis().MajorFormatter(); got.Kind != scene.FormatterFixed {
		t.Errorf("x formatter = %+v", got)
	}
	if ax.YAxis().Scale() != "log" || ax.YAxis().LogBase() != 2 || !ax.YAxis().GridOn() {
		t.Errorf("y axis = %q base %v grid %v", ax.YAxis().Scale(), ax.YAxis().LogBase(), ax.YAxis().GridOn())
	}

	lines := ax.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Label() != "train" || lines[0].Color() != scene.RGB(1, 0, 0) || lines[0].Marker() != "o" {
		t.Errorf("first line = %q %v %q", lines[0].Label(), lines[0].Color(), lines[0].Marker())
	}
	if lines[1].Label() != "_line1" || lines[1].LineStyle() != "--" {
		t.Errorf("second line = %q %q", lines[1].Label(), lines[1].LineStyle())
	}

	colls := ax.Collections()
	if len(colls) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(colls))
	}
	if _, ok := colls[0].(scene.LineCollection); !ok {
		t.Errorf("first collection is %T", colls[0])
	}
	pc, ok := colls[1].(scene.PathCollection)
	if !ok {
		t.Fatalf("second collection is %T", colls[1])
	}
	if got := pc.Sizes(); len(got) != 2 || got[1] != 9 {
		t.Errorf("sizes = %v", got)
	}
	if rows, cols := ax.Images()[0].Size(); rows != 2 || cols != 2 {
		t.Errorf("image size = %dx%d", rows, cols)
	}

	ax3, ok := fig.Axes()[1].(*Axes3D)
	if !ok {
		t.Fatalf("second axes is %T", fig.Axes()[1])
	}
	if ax3.ZLim() != [2]float64{-1, 1} || ax3.ZAxis().Label().Text() != "depth" {
		t.Errorf("z = %v %q", ax3.ZLim(), ax3.ZAxis().Label().Text())
	}
	pconv, ok := ax3.XAxis().Converter().(scene.PeriodConverter)
	if !ok || pconv.Freq() != "M" {
		t.Fatalf("x converter = %#v", ax3.XAxis().Converter())
	}
	if !pconv.Epoch().Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("epoch = %v", pconv.Epoch())
	}
	if _, ok := ax3.Lines()[0].(scene.Line3D); !ok {
		t.Errorf("3D line is %T", ax3.Lines()[0])
	}
	if _, ok := ax3.Collections()[0].(scene.Path3DCollection); !ok {
		t.Errorf("3D scatter is %T", ax3.Collections()[0])
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figure.yaml")
	if err := os.WriteFile(path, []byte("id: 3\naxes: [{}]\n"), 0644); err != nil {
		t.Fatalf("failed to write figure: %v", err)
	}
	fig, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if fig.Number() != 3 || len(fig.Axes()) != 1 {
		t.Errorf("figure %d with %d axes", fig.Number(), len(fig.Axes()))
	}
	if fig.Axes()[0].Bounds() != DefaultBounds {
		t.Errorf("bounds = %v", fig.Axes()[0].Bounds())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		shape bool
	}{
		{"unknown field", "id: 1\ncolour: red\n", false},
		{"ragged line", "axes: [{lines: [{x: [0, 1], y: [0]}]}]\n", true},
		{"ragged image", "axes: [{images: [{gray: [[0, 1], [0]]}]}]\n", true},
		{"empty image", "axes: [{images: [{}]}]\n", true},
		{"bad color", "axes: [{lines: [{x: [0], y: [0], color: notacolor}]}]\n", false},
		{"bad epoch", "axes: [{xaxis: {epoch: yesterday}}]\n", false},
	}
	for _, tt := range tests {
		_, err := Load(strings.NewReader(tt.input))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if tt.shape && !errors.Is(err, parser.ErrInvalidShape) {
			t.Errorf("%s: error %v is not ErrInvalidShape", tt.name, err)
		}
	}
}

func TestDateConverterEpoch(t *testing.T) {
	if got := (DateConverter{}).Epoch(); !got.Equal(parser.DefaultEpoch) {
		t.Errorf("unset epoch = %v, want %v", got, parser.DefaultEpoch)
	}
	start := time.Date(0, time.December, 31, 0, 0, 0, 0, time.UTC)
	if got := (DateConverter{Start: start}).Epoch(); !got.Equal(start) {
		t.Errorf("epoch = %v, want %v", got, start)
	}
}
