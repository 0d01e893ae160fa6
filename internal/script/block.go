package script

import (
	"bytes"
	"strconv"
)

// Field is one key=value line. Keys are literal tokens of the consumer and
// are written as is.
type Field struct {
	Key   string
	Value string
}

// SubBlock is a numbered [N.k] section. Its first line is always
// effect.name=<Name>.
type SubBlock struct {
	Name   string
	Fields []Field
}

func (s *SubBlock) add(key, value string) {
	s.Fields = append(s.Fields, Field{Key: key, Value: value})
}

// ObjectBlock is one top-level [N] object of the output.
type ObjectBlock struct {
	Index      int
	FrameStart int
	FrameEnd   int
	Layer      int
	Blocks     []SubBlock
}

// Render appends the text form of objects to buf. Every object is followed
// by one blank line.
func Render(buf *bytes.Buffer, objects []ObjectBlock) {
	for _, o := range objects {
		o.render(buf)
	}
}

func (o ObjectBlock) render(buf *bytes.Buffer) {
	idx := strconv.Itoa(o.Index)

	buf.WriteString("[" + idx + "]\n")
	buf.WriteString("frame=" + strconv.Itoa(o.FrameStart) + "," + strconv.Itoa(o.FrameEnd) + "\n")
	buf.WriteString("layer=" + strconv.Itoa(o.Layer) + "\n")

	for k, b := range o.Blocks {
		buf.WriteString("[" + idx + "." + strconv.Itoa(k) + "]\n")
		buf.WriteString("effect.name=" + b.Name + "\n")
		for _, f := range b.Fields {
			buf.WriteString(f.Key + "=" + f.Value + "\n")
		}
	}

	buf.WriteString("\n")
}
