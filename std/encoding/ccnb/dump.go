package ccnb

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
)

// Node is a serializable view of a block tree, named through a dictionary.
type Node struct {
	Kind     string `json:"kind" yaml:"kind"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Code     uint64 `json:"code,omitempty" yaml:"code,omitempty"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Bytes    []byte `json:"bytes,omitempty" yaml:"-"`
	Hex      string `json:"-" yaml:"hex,omitempty"`
	Attrs    []Node `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

var cborEncMode cbor.EncMode

func init() {
	var err error
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("ccnb: CBOR encoder initialization failed: " + err.Error())
	}
}

// NewNode converts a block tree. Dictionary codes are named through dict;
// unregistered codes keep an empty name.
func NewNode(b Block, dict *Dictionary) Node {
	n := Node{Kind: b.Type().String()}
	switch t := b.(type) {
	case *Blob:
		n.Bytes = t.Val
		n.Hex = hex.EncodeToString(t.Val)
	case *Text:
		n.Text = t.Val
	case *Tag:
		n.Name = t.Name
		n.Attrs = newNodes(t.Attrs, dict)
		n.Children = newNodes(t.Children, dict)
	case *DTag:
		n.Code = uint64(t.Code)
		n.Name, _ = dict.TagName(t.Code)
		n.Attrs = newNodes(t.Attrs, dict)
		n.Children = newNodes(t.Children, dict)
	case *Attr:
		n.Name = t.Name
		n.Text = textVal(t.Value)
	case *DAttr:
		n.Code = uint64(t.Code)
		n.Name, _ = dict.TagName(t.Code)
		n.Text = textVal(t.Value)
	case *Ext:
		n.Code = t.Subtype
	}
	return n
}

func newNodes(blocks []Block, dict *Dictionary) []Node {
	if len(blocks) == 0 {
		return nil
	}
	ret := make([]Node, len(blocks))
	for i, b := range blocks {
		ret[i] = NewNode(b, dict)
	}
	return ret
}

// Dump writes an indented text rendering of a block tree.
func Dump(w io.Writer, b Block, dict *Dictionary) error {
	sb := strings.Builder{}
	dumpNode(&sb, NewNode(b, dict), 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func dumpNode(sb *strings.Builder, n Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind)
	switch n.Kind {
	case "BLOB":
		fmt.Fprintf(sb, " [%d] %s", len(n.Bytes), n.Hex)
	case "UDATA":
		sb.WriteString(" " + strconv.Quote(n.Text))
	case "TAG":
		sb.WriteString(" " + n.Name)
	case "DTAG":
		fmt.Fprintf(sb, " %s(%d)", n.Name, n.Code)
	case "ATTR":
		fmt.Fprintf(sb, " %s=%s", n.Name, strconv.Quote(n.Text))
	case "DATTR":
		fmt.Fprintf(sb, " %s(%d)=%s", n.Name, n.Code, strconv.Quote(n.Text))
	case "EXT":
		fmt.Fprintf(sb, " %d", n.Code)
	}
	sb.WriteRune('\n')
	for _, a := range n.Attrs {
		dumpNode(sb, a, depth+1)
	}
	for _, c := range n.Children {
		dumpNode(sb, c, depth+1)
	}
}

// DumpYAML renders a block tree as YAML.
func DumpYAML(b Block, dict *Dictionary) ([]byte, error) {
	return yaml.Marshal(NewNode(b, dict))
}

// DumpCBOR renders a block tree as deterministic CBOR.
func DumpCBOR(b Block, dict *Dictionary) ([]byte, error) {
	return cborEncMode.Marshal(NewNode(b, dict))
}

// UndumpCBOR reads back a tree written by DumpCBOR.
func UndumpCBOR(data []byte) (Node, error) {
	n := Node{}
	err := cbor.Unmarshal(data, &n)
	return n, err
}
