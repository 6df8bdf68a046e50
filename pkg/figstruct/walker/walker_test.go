package walker_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene/memory"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/walker"
)

func sampleFigure() *memory.Figure {
	fig := memory.NewFigure(1)
	ax := fig.AddAxes()
	ax.AddLine(memory.NewLine([]vec.Vec2{{X: 0, Y: 0}}))
	ax.AddCollection(memory.NewLineCollection(nil, nil, nil))
	ax.AddCollection(memory.NewScatter(nil, nil, nil))
	ax.AddImage(memory.NewImage(make([]float64, 4), 2, 2))

	ax3 := fig.AddAxes3D()
	ax3.AddLine3D(memory.NewLine3D([]float64{1}, []float64{2}, []float64{3}))
	ax3.AddCollection(memory.NewScatter3D([]float64{1}, []float64{2}, []float64{3}, nil, nil))
	return fig
}

func recorder(events *[]string) walker.Handlers {
	add := func(format string, args ...any) { *events = append(*events, fmt.Sprintf(format, args...)) }
	return walker.Handlers{
		OpenFigure:  func(scene.Figure) error { add("open figure"); return nil },
		CloseFigure: func(scene.Figure) error { add("close figure"); return nil },
		OpenAxes:    func(ax *walker.AxesContext) error { add("open axes %d 3d=%v", ax.Index, ax.Is3D()); return nil },
		CloseAxes:   func(ax *walker.AxesContext) error { add("close axes %d", ax.Index); return nil },
		Label: func(_ *walker.AxesContext, kind walker.LabelKind, _ scene.Text) error {
			add("label %s", kind)
			return nil
		},
		Line: func(_ *walker.AxesContext, l walker.LineItem) error {
			add("line %d 3d=%v", l.Index, l.Kind == walker.Line3D)
			return nil
		},
		LineCollection: func(_ *walker.AxesContext, c walker.CollectionItem) error {
			add("%s", c.Kind)
			return nil
		},
		PointCollection: func(_ *walker.AxesContext, c walker.CollectionItem) error {
			add("%s", c.Kind)
			return nil
		},
		Image: func(_ *walker.AxesContext, i int, _ scene.Image) error { add("image %d", i); return nil },
	}
}

func TestWalkOrder(t *testing.T) {
	var events []string
	require.NoError(t, walker.Walk(sampleFigure(), recorder(&events)))

	want := []string{
		"open figure",
		"open axes 0 3d=false",
		"label title", "label xlabel", "label ylabel",
		"line 0 3d=false",
		"line batch",
		"point batch",
		"image 0",
		"close axes 0",
		"open axes 1 3d=true",
		"label title", "label xlabel", "label ylabel", "label zlabel",
		"line 0 3d=true",
		"3D point batch",
		"close axes 1",
		"close figure",
	}
	assert.Equal(t, want, events)
}

func TestClassify(t *testing.T) {
	c := walker.Classify(sampleFigure())
	require.Len(t, c.Axes, 2)
	assert.Equal(t, walker.Axes2D, c.Axes[0].Kind)
	assert.Nil(t, c.Axes[0].Z)
	assert.Equal(t, walker.Axes3D, c.Axes[1].Kind)
	assert.NotNil(t, c.Axes[1].Z)
	assert.NotNil(t, c.Axes[1].Lines[0].Data3D)
	assert.NotNil(t, c.Axes[1].Collections[0].Points3D)
	assert.NotNil(t, c.Axes[1].Collections[0].Points)
	assert.NotNil(t, c.Axes[0].Collections[0].Lines)
}

func TestWalkNilHooks(t *testing.T) {
	assert.NoError(t, walker.Walk(sampleFigure(), walker.Handlers{}))
}

func TestWalkSkipAndAbort(t *testing.T) {
	var events []string
	h := recorder(&events)
	h.OpenAxes = func(ax *walker.AxesContext) error {
		if ax.Index == 0 {
			return fmt.Errorf("bad scale: %w", walker.SkipAxes)
		}
		events = append(events, "open axes 1")
		return nil
	}
	require.NoError(t, walker.Walk(sampleFigure(), h))
	assert.Equal(t, "open axes 1", events[1])
	assert.NotContains(t, events, "close axes 0")

	boom := errors.New("boom")
	h.Image = func(*walker.AxesContext, int, scene.Image) error { return boom }
	h.OpenAxes = nil
	events = nil
	assert.ErrorIs(t, walker.Walk(sampleFigure(), h), boom)
	assert.NotContains(t, events, "close figure")
}

func TestOverrideDelegates(t *testing.T) {
	var events []string
	base := recorder(&events)
	h := walker.Override(base, walker.Overrides{
		Line: func(next walker.LineHook, ax *walker.AxesContext, l walker.LineItem) error {
			if l.Kind == walker.Line3D {
				events = append(events, "line3d override")
				return nil
			}
			return next(ax, l)
		},
		CloseFigure: func(next walker.FigureHook, fig scene.Figure) error {
			events = append(events, "before close")
			return next(fig)
		},
	})
	require.NoError(t, walker.Walk(sampleFigure(), h))
	assert.Contains(t, events, "line 0 3d=false")
	assert.Contains(t, events, "line3d override")
	assert.NotContains(t, events, "line 0 3d=true")
	assert.Equal(t, []string{"before close", "close figure"}, events[len(events)-2:])
}

func TestOverrideNilBase(t *testing.T) {
	called := false
	h := walker.Override(walker.Handlers{}, walker.Overrides{
		Image: func(next walker.ImageHook, ax *walker.AxesContext, i int, img scene.Image) error {
			called = true
			return next(ax, i, img)
		},
	})
	require.NoError(t, walker.Walk(sampleFigure(), h))
	assert.True(t, called)
}
