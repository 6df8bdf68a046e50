package parser

import (
	"fmt"

	"github.com/rs/zerolog"
	"seehuhn.de/go/geom/vec"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// Space names the coordinate system a primitive is expressed in.
type Space string

const (
	SpaceData    Space = "data"
	SpaceAxes    Space = "axes"
	SpaceFigure  Space = "figure"
	SpaceDisplay Space = "display"
)

// AxesRefs holds the reference transforms of an axes context.
type AxesRefs struct {
	Data   scene.Transform
	Axes   scene.Transform
	Figure scene.Transform
}

// RefsOf collects the reference transforms of ax within fig.
func RefsOf(ax scene.Axes, fig scene.Figure) *AxesRefs {
	return &AxesRefs{
		Data:   ax.TransData(),
		Axes:   ax.TransAxes(),
		Figure: fig.TransFigure(),
	}
}

// Resolution is the result of resolving a transform.
type Resolution struct {
	Space Space
	// Data is the input data re-expressed in Space, nil if no data was given.
	Data []vec.Vec2
	// Transform is the remainder mapping the input into Space.
	Transform scene.Transform
}

// Parser converts scene primitives into records. Its warnings go to Log.
type Parser struct {
	Log zerolog.Logger
}

// New returns a parser logging to log.
func New(log zerolog.Logger) *Parser {
	return &Parser{Log: log}
}

// ResolveTransform resolves t without logging.
func ResolveTransform(t scene.Transform, refs *AxesRefs, data []vec.Vec2, force scene.Transform) (Resolution, error) {
	return New(zerolog.Nop()).Resolve(t, refs, data, force)
}

// Resolve determines the space t is linked to. With force set, data is
// first re-expressed relative to force, which then replaces t. The
// candidates data, axes and figure are tried in that order and the first
// whose transform is a trailing branch of t wins; otherwise the space is
// display and t is kept unreduced.
func (p *Parser) Resolve(t scene.Transform, refs *AxesRefs, data []vec.Vec2, force scene.Transform) (Resolution, error) {
	if scene.IsBlended(t) {
		p.Log.Warn().Err(ErrUnsupportedTransform).Msg("zoom behavior may not work as expected")
	}

	if force != nil {
		if data != nil {
			rest, err := scene.Sub(t, force)
			if err != nil {
				return Resolution{}, fmt.Errorf("force transform: %w", err)
			}
			data = rest.Apply(data)
		}
		t = force
	}

	res := Resolution{Space: SpaceDisplay, Transform: t}
	if refs != nil {
		candidates := []struct {
			space Space
			base  scene.Transform
		}{
			{SpaceData, refs.Data},
			{SpaceAxes, refs.Axes},
			{SpaceFigure, refs.Figure},
		}
		for _, c := range candidates {
			if c.base == nil || !scene.ContainsBranch(t, c.base) {
				continue
			}
			rest, err := scene.Sub(t, c.base)
			if err != nil {
				return Resolution{}, fmt.Errorf("reduce %s transform: %w", c.space, err)
			}
			res.Space, res.Transform = c.space, rest
			break
		}
	}

	if data != nil {
		res.Data = res.Transform.Apply(data)
	}
	return res, nil
}
