package spec_ndnb

import (
	"fmt"
	"time"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/encoding/ccnb"
	"github.com/named-data/ndnb/std/log"
	"github.com/named-data/ndnb/std/ndn"
	"github.com/named-data/ndnb/std/types/optional"
)

func _() {
	var _ ndn.Spec = &Spec{}
}

// Spec encodes and decodes Interest and Data in the ccnb format.
// A Spec is immutable after construction and safe for concurrent use.
type Spec struct {
	dict    *ccnb.Dictionary
	maxSize int
	logger  *log.Logger
}

type Option func(*Spec)

// WithDictionary selects the dictionary. The default is ccnb.NDNB.
func WithDictionary(dict *ccnb.Dictionary) Option {
	return func(s *Spec) {
		s.dict = dict
	}
}

// WithMaxPacketSize sets the size limit of encoded and decoded packets.
// The default is ndn.MaxPacketSize.
func WithMaxPacketSize(size int) Option {
	return func(s *Spec) {
		s.maxSize = size
	}
}

// WithLogger sets the logger receiving trace records of decoding.
func WithLogger(logger *log.Logger) Option {
	return func(s *Spec) {
		s.logger = logger
	}
}

func NewSpec(opts ...Option) *Spec {
	s := &Spec{
		dict:    ccnb.NDNB,
		maxSize: ndn.MaxPacketSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Spec) String() string {
	return "spec-ndnb"
}

func (s *Spec) Dictionary() *ccnb.Dictionary {
	return s.dict
}

func (s *Spec) MaxPacketSize() int {
	return s.maxSize
}

func (s *Spec) encoder() *ccnb.Encoder {
	return ccnb.NewEncoder(s.dict)
}

func (s *Spec) checkSize(size int) error {
	if s.maxSize > 0 && size > s.maxSize {
		return ErrPacketTooLarge{Size: size, Max: s.maxSize}
	}
	return nil
}

// ParseBlock parses one complete block tree that spans the whole wire.
func (s *Spec) ParseBlock(wire enc.Wire) (ccnb.Block, error) {
	if err := s.checkSize(int(wire.Length())); err != nil {
		return nil, err
	}
	r := enc.NewWireView(wire)
	p := ccnb.Parser{Dict: s.dict, Logger: s.logger}
	b, err := p.ParseFull(&r)
	if err != nil {
		return nil, err
	}
	if !r.IsEOF() {
		return nil, ErrTrailingBytes
	}
	return b, nil
}

// parse parses a packet whose root must be want.
func (s *Spec) parse(wire enc.Wire, want ccnb.Dtag) (ccnb.Block, error) {
	b, err := s.ParseBlock(wire)
	if err != nil {
		return nil, err
	}
	if !s.dict.Is(b, want) {
		return nil, ndn.ErrWrongType
	}
	return b, nil
}

// skip records an element the decoder does not use.
func (s *Spec) skip(parent string, b ccnb.Block) {
	if s.logger.HasTrace() {
		s.logger.Trace(s, "Skipping unknown element", "parent", parent, "type", b.Type())
	}
}

func (s *Spec) EncodeName(name enc.Name) enc.Buffer {
	e := s.encoder()
	e.Name(name)
	return e.Bytes()
}

func (s *Spec) DecodeName(wire enc.Wire) (enc.Name, error) {
	b, err := s.parse(wire, ccnb.DtagName)
	if err != nil {
		return nil, err
	}
	name := enc.Name{}
	if err = ccnb.AssembleName(b, s.dict, &name); err != nil {
		return nil, err
	}
	return name, nil
}

func uintField(b ccnb.Block, field string, max uint64) (uint64, error) {
	inner, err := ccnb.SingleChild(b, field)
	if err != nil {
		return 0, err
	}
	v, err := ccnb.ExtractUint(inner)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	if v > max {
		return 0, ndn.ErrInvalidValue{Item: field, Value: v}
	}
	return v, nil
}

// optUintField is uintField for optional packet fields.
func optUintField(b ccnb.Block, field string, max uint64) (optional.Optional[uint64], error) {
	v, err := uintField(b, field, max)
	if err != nil {
		return optional.None[uint64](), err
	}
	return optional.Some(v), nil
}

func bytesField(b ccnb.Block, field string) ([]byte, error) {
	inner, err := ccnb.SingleChild(b, field)
	if err != nil {
		return nil, err
	}
	v, err := ccnb.ExtractBytes(inner)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return v, nil
}

func textField(b ccnb.Block, field string) (string, error) {
	inner, err := ccnb.SingleChild(b, field)
	if err != nil {
		return "", err
	}
	v, err := ccnb.ExtractText(inner)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", field, err)
	}
	return v, nil
}

func timestampField(b ccnb.Block, field string) (time.Duration, error) {
	inner, err := ccnb.SingleChild(b, field)
	if err != nil {
		return 0, err
	}
	v, err := ccnb.ExtractTimestamp(inner)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	return v, nil
}
