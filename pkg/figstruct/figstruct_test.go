package figstruct

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"seehuhn.de/go/geom/vec"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/output"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene/memory"
)

func lineFigure(num int) *memory.Figure {
	fig := memory.NewFigure(num)
	ax := fig.AddAxes()
	l := memory.NewLine([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}})
	l.LabelStr = "a"
	l.Col = scene.RGB(1, 0, 0)
	ax.AddLine(l)
	return fig
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Schema != SchemaFlat {
		t.Errorf("Schema = %q, want flat", opts.Schema)
	}
	if !opts.ShouldAllowPartial() {
		t.Error("partial exports should be allowed by default")
	}
	strict := false
	opts.AllowPartial = &strict
	if opts.ShouldAllowPartial() {
		t.Error("AllowPartial override ignored")
	}
	if got := (Options{}).RasterMode(); got != "auto" {
		t.Errorf("RasterMode() = %q, want auto", got)
	}
}

func TestExportFlat(t *testing.T) {
	res, err := Export(lineFigure(1), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, res.Flat)
	assert.Nil(t, res.Plotly)
	assert.Equal(t, "#ff0000", res.Flat.Axes[0].Lines[0].Color)
	assert.Same(t, res.Flat, res.Record())
}

func TestExportFreshRecords(t *testing.T) {
	fig := lineFigure(1)
	first, err := Export(fig, DefaultOptions())
	require.NoError(t, err)
	second, err := Export(fig, DefaultOptions())
	require.NoError(t, err)
	assert.NotSame(t, first.Flat, second.Flat)
	assert.Equal(t, first.Flat, second.Flat)
}

func TestExportPlotly(t *testing.T) {
	res, err := Export(lineFigure(1), Options{Schema: SchemaPlotly})
	require.NoError(t, err)
	require.NotNil(t, res.Plotly)
	assert.Len(t, res.Plotly.Data, 1)
	assert.NoError(t, res.Skipped)
}

func TestExportPartial(t *testing.T) {
	fig := lineFigure(1)
	bad := fig.AddAxes()
	bad.Y.ScaleName = "logit"

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	res, err := Export(fig, Options{Schema: SchemaPlotly, Logger: &log})
	require.NoError(t, err)
	assert.ErrorIs(t, res.Skipped, ErrUnsupportedScale)
	assert.Contains(t, buf.String(), "partial export")

	var xerr *ExtractionError
	require.True(t, errors.As(res.Skipped, &xerr))
	assert.Equal(t, 1, xerr.AxesIndex)

	strict := false
	_, err = Export(fig, Options{Schema: SchemaPlotly, AllowPartial: &strict})
	assert.ErrorIs(t, err, ErrUnsupportedScale)
}

func TestExportUnknownSchema(t *testing.T) {
	_, err := Export(lineFigure(1), Options{Schema: "svg"})
	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestSendUpdate(t *testing.T) {
	var buf bytes.Buffer
	c := NewCanvas(lineFigure(4), output.WriterSender{W: &buf}, DefaultOptions())
	require.NoError(t, c.SendUpdate(context.Background()))

	line := buf.String()
	require.True(t, strings.HasPrefix(line, "deepforge-cmd PLOT "), line)
	require.True(t, strings.HasSuffix(line, "\n"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(line), "deepforge-cmd PLOT ")), &rec))
	assert.Equal(t, float64(4), rec["id"])
}

func TestSendUpdateFailureWritesNothing(t *testing.T) {
	fig := lineFigure(1)
	fig.Axes()[0].(*memory.Axes).AddImage(memory.NewImage(make([]float64, 3), 2, 2))

	var buf bytes.Buffer
	c := NewCanvas(fig, output.WriterSender{W: &buf}, DefaultOptions())
	err := c.SendUpdate(context.Background())
	assert.ErrorIs(t, err, ErrInvalidShape)
	assert.Zero(t, buf.Len())
}

func TestRegistryShow(t *testing.T) {
	var buf bytes.Buffer
	sender := output.WriterSender{W: &buf}
	broken := lineFigure(1)
	broken.Axes()[0].(*memory.Axes).AddImage(memory.NewImage(nil, 2))

	reg := NewRegistry()
	reg.Add(NewCanvas(lineFigure(3), sender, DefaultOptions()))
	reg.Add(NewCanvas(broken, sender, DefaultOptions()))
	reg.Add(NewCanvas(lineFigure(2), sender, DefaultOptions()))
	assert.Equal(t, []int{1, 2, 3}, reg.Numbers())

	err := reg.Show(context.Background())
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"id":2`)
	assert.Contains(t, lines[1], `"id":3`)

	reg.Remove(1)
	_, ok := reg.Get(1)
	assert.False(t, ok)
}
