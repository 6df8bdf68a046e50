package figstruct

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/output"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// Canvas publishes the state of one figure to the viewer.
type Canvas struct {
	Figure  scene.Figure
	Options Options
	Command output.Command
	Sender  output.Sender
	Pretty  bool
}

// NewCanvas returns a canvas sending plot commands through sender.
func NewCanvas(fig scene.Figure, sender output.Sender, opts Options) *Canvas {
	return &Canvas{
		Figure:  fig,
		Options: opts,
		Command: output.DefaultCommand,
		Sender:  sender,
	}
}

// State exports the figure and serializes the record.
func (c *Canvas) State() ([]byte, error) {
	res, err := Export(c.Figure, c.Options)
	if err != nil {
		return nil, err
	}
	data, err := output.ToJSON(res.Record(), c.Pretty)
	if err != nil {
		return nil, fmt.Errorf("serialize figure %d: %w", c.Figure.Number(), err)
	}
	return data, nil
}

// SendUpdate sends the current state as one command line. The state is
// fully serialized first, so a failed export sends nothing.
func (c *Canvas) SendUpdate(ctx context.Context) error {
	data, err := c.State()
	if err != nil {
		return err
	}
	return c.Sender.Send(ctx, c.Command.Line(data))
}

// Registry holds the canvases of the open figures by figure number.
type Registry struct {
	canvases map[int]*Canvas
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{canvases: map[int]*Canvas{}}
}

// Add registers c under its figure number, replacing any previous canvas.
func (r *Registry) Add(c *Canvas) {
	r.canvases[c.Figure.Number()] = c
}

// Get returns the canvas of figure num.
func (r *Registry) Get(num int) (*Canvas, bool) {
	c, ok := r.canvases[num]
	return c, ok
}

// Remove unregisters figure num.
func (r *Registry) Remove(num int) {
	delete(r.canvases, num)
}

// Numbers returns the registered figure numbers in increasing order.
func (r *Registry) Numbers() []int {
	nums := make([]int, 0, len(r.canvases))
	for n := range r.canvases {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Show sends an update for every registered figure in number order. A
// failing figure does not stop the others; all errors are returned.
func (r *Registry) Show(ctx context.Context) error {
	var errs error
	for _, n := range r.Numbers() {
		errs = multierr.Append(errs, r.canvases[n].SendUpdate(ctx))
	}
	return errs
}
