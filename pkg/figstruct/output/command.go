package output

import (
	"bytes"
	"context"
	"io"
)

// Command is the prefix and name that introduce a payload on the viewer
// channel, as in "deepforge-cmd PLOT <json>".
type Command struct {
	Prefix string
	Name   string
}

// DefaultCommand is the plot update command understood by the viewer.
var DefaultCommand = Command{Prefix: "deepforge-cmd", Name: "PLOT"}

// Line returns the command line carrying payload, without a newline.
func (c Command) Line(payload []byte) []byte {
	var b bytes.Buffer
	b.Grow(len(c.Prefix) + len(c.Name) + len(payload) + 2)
	b.WriteString(c.Prefix)
	b.WriteByte(' ')
	b.WriteString(c.Name)
	b.WriteByte(' ')
	b.Write(payload)
	return b.Bytes()
}

// Sender delivers complete command lines to the viewer.
type Sender interface {
	Send(ctx context.Context, line []byte) error
}

// WriterSender writes each line followed by a newline to W.
type WriterSender struct {
	W io.Writer
}

// Send implements Sender.
func (s WriterSender) Send(_ context.Context, line []byte) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	_, err := s.W.Write(buf)
	return err
}
