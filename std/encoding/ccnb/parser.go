package ccnb

import (
	"bytes"
	"math"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/log"
)

// Parser builds block trees from ccnb bytes.
//
// Inside a Data block, a Content DTag is returned right after its header and
// the Data block returns as soon as Content is its last child, leaving the
// content body and both closers in the view. Parse hands that state to the
// caller, who finishes with ReadContent and ReadCloser. ParseFull does both.
//
// Nesting is bounded by MaxDepth. Parser does not limit the input size;
// spec_ndnb.Spec applies its packet size limit before parsing.
type Parser struct {
	// Dict selects the Content and Data codes. Nil means NDNB.
	Dict *Dictionary
	// Logger receives a trace record per parsed block. May be nil.
	Logger *log.Logger
	// MaxDepth is the deepest nesting accepted. Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth bounds the nesting of parsed blocks.
const DefaultMaxDepth = 256

func (p *Parser) String() string {
	return "ccnb-parser"
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return p.MaxDepth
}

func (p *Parser) dict() *Dictionary {
	if p.Dict == nil {
		return NDNB
	}
	return p.Dict
}

// Parse reads one block from the view.
// If the block is a Data whose last child is Content, the content body and
// the Data closer are left unread.
func (p *Parser) Parse(r *enc.WireView) (Block, error) {
	b, _, err := p.parse(r, false, 0)
	return b, err
}

// ParseFull reads one complete block, including the content body of a
// top-level Data.
func (p *Parser) ParseFull(r *enc.WireView) (Block, error) {
	b, pending, err := p.parse(r, false, 0)
	if err != nil {
		return nil, err
	}
	if pending {
		if err = p.finishData(r, b.(*DTag)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ReadContent reads the body of a Content DTag returned by Parse, up to and
// including its closer.
func (p *Parser) ReadContent(r *enc.WireView, content *DTag) error {
	attrs, children, _, err := p.parseBody(r, false, 1)
	if err != nil {
		return err
	}
	content.Attrs = attrs
	content.Children = children
	return nil
}

// ReadCloser consumes one closer byte.
func (p *Parser) ReadCloser(r *enc.WireView) error {
	b, err := r.ReadByte()
	if err != nil {
		return ErrUnexpectedEnd
	}
	if b != Closer {
		return enc.ErrFormat{Msg: "expected closer"}
	}
	return nil
}

func (p *Parser) finishData(r *enc.WireView, data *DTag) error {
	content := data.Children[len(data.Children)-1].(*DTag)
	if err := p.ReadContent(r, content); err != nil {
		return err
	}
	return p.ReadCloser(r)
}

// parse reads one block. pending reports a Data or Content block whose
// body was left in the view.
func (p *Parser) parse(r *enc.WireView, inData bool, depth int) (blk Block, pending bool, err error) {
	if depth > p.maxDepth() {
		return nil, false, ErrTooDeep
	}
	typ, val, err := ReadHeader(r)
	if err != nil {
		return nil, false, err
	}
	if p.Logger.HasTrace() {
		p.Logger.Trace(p, "Block header", "type", typ, "value", val, "depth", depth, "pos", r.Pos())
	}

	switch typ {
	case TypeBlob:
		buf, err := readBytes(r, val)
		if err != nil {
			return nil, false, err
		}
		return &Blob{Val: bytes.Clone(buf)}, false, nil

	case TypeUData:
		buf, err := readBytes(r, val)
		if err != nil {
			return nil, false, err
		}
		return &Text{Val: string(buf)}, false, nil

	case TypeTag:
		name, err := readName(r, val)
		if err != nil {
			return nil, false, err
		}
		tag := &Tag{Name: name}
		tag.Attrs, tag.Children, _, err = p.parseBody(r, false, depth+1)
		if err != nil {
			return nil, false, err
		}
		return tag, false, nil

	case TypeDTag:
		if val > math.MaxUint32 {
			return nil, false, ErrHeaderOverflow
		}
		dict := p.dict()
		tag := &DTag{Code: uint32(val)}
		if inData && tag.Code == dict.Code(DtagContent) {
			return tag, true, nil
		}
		isData := tag.Code == dict.Code(DtagData)
		tag.Attrs, tag.Children, pending, err = p.parseBody(r, isData, depth+1)
		if err != nil {
			return nil, false, err
		}
		return tag, pending, nil

	case TypeAttr:
		name, err := readName(r, val)
		if err != nil {
			return nil, false, err
		}
		value, err := p.parseAttrValue(r, depth)
		if err != nil {
			return nil, false, err
		}
		return &Attr{Name: name, Value: value}, false, nil

	case TypeDAttr:
		if val > math.MaxUint32 {
			return nil, false, ErrHeaderOverflow
		}
		value, err := p.parseAttrValue(r, depth)
		if err != nil {
			return nil, false, err
		}
		return &DAttr{Code: uint32(val), Value: value}, false, nil

	case TypeExt:
		return &Ext{Subtype: val}, false, nil

	default:
		return nil, false, ErrUnknownBlockTag{Tag: typ}
	}
}

// parseBody reads attributes, then children up to and including the closer.
// For a Data body it stops once the last child is a pending Content.
func (p *Parser) parseBody(r *enc.WireView, isData bool, depth int) (attrs, children []Block, pending bool, err error) {
	inAttrs := true
	for {
		b, err := r.PeekByte()
		if err != nil {
			return nil, nil, false, ErrUnexpectedEnd
		}
		if b == Closer {
			r.ReadByte()
			return attrs, children, false, nil
		}

		child, childPending, err := p.parse(r, isData, depth)
		if err != nil {
			return nil, nil, false, err
		}

		if inAttrs {
			switch child.(type) {
			case *Attr, *DAttr:
				attrs = append(attrs, child)
				continue
			}
			inAttrs = false
		}
		children = append(children, child)

		if childPending {
			if isData && child.(*DTag).Code == p.dict().Code(DtagContent) {
				// the caller reads the content body
				return attrs, children, true, nil
			}
			// a nested Data is finished here so the parent can go on
			if err = p.finishData(r, child.(*DTag)); err != nil {
				return nil, nil, false, err
			}
		}
	}
}

func (p *Parser) parseAttrValue(r *enc.WireView, depth int) (*Text, error) {
	value, _, err := p.parse(r, false, depth+1)
	if err != nil {
		return nil, err
	}
	text, ok := value.(*Text)
	if !ok {
		return nil, ErrAttributeMustBeText{Got: value.Type()}
	}
	return text, nil
}

func readBytes(r *enc.WireView, n uint64) ([]byte, error) {
	if n > uint64(r.Remaining()) {
		return nil, ErrUnexpectedEnd
	}
	return r.ReadBuf(int(n))
}

// readName reads a Tag or Attr name, stored as length minus one.
func readName(r *enc.WireView, val uint64) (string, error) {
	if val >= uint64(r.Remaining()) {
		return "", ErrUnexpectedEnd
	}
	buf, err := r.ReadBuf(int(val + 1))
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
