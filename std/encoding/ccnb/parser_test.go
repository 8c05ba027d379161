package ccnb_test

import (
	"bytes"
	"testing"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/encoding/ccnb"
	tu "github.com/named-data/ndnb/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

const interestHex = "01d2 f200 059a 8e32 00 05a2 8e32 00 0382 95a000 00 00"

func parse(t *testing.T, buf []byte) ccnb.Block {
	r := enc.NewWireView(enc.Wire{buf})
	p := ccnb.Parser{}
	b, err := p.ParseFull(&r)
	require.NoError(t, err)
	require.True(t, r.IsEOF())
	return b
}

// dataPacket returns a Data with name /a and content "hello".
func dataPacket() enc.Buffer {
	e := ccnb.NewEncoder(ccnb.NDNB)
	e.Open(ccnb.DtagData)
	e.Open(ccnb.DtagSignature)
	e.TaggedBlob(ccnb.DtagSignatureBits, make([]byte, 16))
	e.Close()
	e.Name(enc.Name{enc.NewStringComponent("a")})
	e.Open(ccnb.DtagContent)
	e.Blob([]byte("hello"))
	e.Close()
	e.Close()
	return e.Bytes()
}

func TestParseInterest(t *testing.T) {
	tu.SetT(t)

	buf := tu.Hex(interestHex)
	require.Equal(t, 21, len(buf))

	b := parse(t, buf)
	require.Equal(t, &ccnb.DTag{
		Code: 26,
		Children: []ccnb.Block{
			&ccnb.DTag{Code: 14},
			&ccnb.DTag{Code: 83, Children: []ccnb.Block{&ccnb.Text{Val: "2"}}},
			&ccnb.DTag{Code: 84, Children: []ccnb.Block{&ccnb.Text{Val: "2"}}},
			&ccnb.DTag{Code: 48, Children: []ccnb.Block{&ccnb.Blob{Val: []byte{0xa0, 0x00}}}},
		},
	}, b)

	out := tu.NoErr(ccnb.Encode(b))
	require.Equal(t, buf, []byte(out))
}

func TestParseTruncated(t *testing.T) {
	tu.SetT(t)

	for _, buf := range [][]byte{tu.Hex(interestHex), dataPacket()} {
		for i := 0; i < len(buf); i++ {
			r := enc.NewWireView(enc.Wire{buf[:i]})
			p := ccnb.Parser{}
			_, err := p.ParseFull(&r)
			require.Error(t, err, "prefix of length %d", i)
		}
	}
}

func TestParseTagAttrs(t *testing.T) {
	tu.SetT(t)

	e := ccnb.Encoder{}
	require.NoError(t, e.Tag("foo"))
	require.NoError(t, e.Attr("id", "1"))
	e.DAttr(5, "x")
	e.UData("hi")
	e.Ext(3)
	e.Close()

	b := parse(t, e.Bytes())
	require.Equal(t, &ccnb.Tag{
		Name: "foo",
		Attrs: []ccnb.Block{
			&ccnb.Attr{Name: "id", Value: &ccnb.Text{Val: "1"}},
			&ccnb.DAttr{Code: 5, Value: &ccnb.Text{Val: "x"}},
		},
		Children: []ccnb.Block{
			&ccnb.Text{Val: "hi"},
			&ccnb.Ext{Subtype: 3},
		},
	}, b)
	require.Equal(t, []byte(e.Bytes()), []byte(tu.NoErr(ccnb.Encode(b))))
}

func TestParseErrors(t *testing.T) {
	tu.SetT(t)

	p := ccnb.Parser{}

	// attribute "id" followed by an empty blob
	r := enc.NewWireView(enc.Wire{[]byte{0x8b, 'i', 'd', 0x85}})
	_, err := p.Parse(&r)
	require.Equal(t, ccnb.ErrAttributeMustBeText{Got: ccnb.TypeBlob}, err)

	r = enc.NewWireView(enc.Wire{[]byte{0x87}})
	_, err = p.Parse(&r)
	require.Equal(t, ccnb.ErrUnknownBlockTag{Tag: 7}, err)

	// blob longer than the input
	r = enc.NewWireView(enc.Wire{[]byte{0x01, 0x85, 0x00}})
	_, err = p.Parse(&r)
	require.Equal(t, ccnb.ErrUnexpectedEnd, err)

	// tag name longer than the input
	r = enc.NewWireView(enc.Wire{ccnb.AppendHeader(nil, ccnb.TypeTag, 1<<40)})
	_, err = p.Parse(&r)
	require.Equal(t, ccnb.ErrUnexpectedEnd, err)

	r = enc.NewWireView(enc.Wire{ccnb.AppendHeader(nil, ccnb.TypeDTag, 1<<33)})
	_, err = p.Parse(&r)
	require.Equal(t, ccnb.ErrHeaderOverflow, err)
}

func TestParseBlobOwnership(t *testing.T) {
	tu.SetT(t)

	buf := []byte{0x95, 0x01, 0x02}
	b := parse(t, buf)
	buf[1] = 0xff
	require.Equal(t, &ccnb.Blob{Val: []byte{0x01, 0x02}}, b)
}

func TestParseDataContent(t *testing.T) {
	tu.SetT(t)

	buf := dataPacket()
	r := enc.NewWireView(enc.Wire{buf})
	p := ccnb.Parser{Dict: ccnb.NDNB}

	b, err := p.Parse(&r)
	require.NoError(t, err)
	data := b.(*ccnb.DTag)
	require.Equal(t, uint32(64), data.Code)
	require.Equal(t, 3, len(data.Children))
	content := data.Children[2].(*ccnb.DTag)
	require.Equal(t, &ccnb.DTag{Code: 19}, content)

	// content blob, content closer and data closer are left
	require.Equal(t, 8, r.Remaining())
	require.NoError(t, p.ReadContent(&r, content))
	require.Equal(t, []ccnb.Block{&ccnb.Blob{Val: []byte("hello")}}, content.Children)
	require.NoError(t, p.ReadCloser(&r))
	require.True(t, r.IsEOF())

	full := parse(t, buf)
	require.Equal(t, b, full)
	require.Equal(t, []byte(buf), []byte(tu.NoErr(ccnb.Encode(full))))
}

func TestParseNestedData(t *testing.T) {
	tu.SetT(t)

	// a Data as a child is read completely before its siblings
	buf := []byte{}
	buf = append(buf, ccnb.AppendHeader(nil, ccnb.TypeDTag, 17702112)...)
	buf = append(buf, dataPacket()...)
	buf = append(buf, 0x85)
	buf = append(buf, ccnb.Closer)
	b := parse(t, buf)
	children := ccnb.Children(b)
	require.Equal(t, 2, len(children))
	data := children[0].(*ccnb.DTag)
	require.Equal(t, []ccnb.Block{&ccnb.Blob{Val: []byte("hello")}}, ccnb.Children(data.Children[2]))
	require.Equal(t, &ccnb.Blob{Val: []byte{}}, children[1])
}

func TestParseContentOutsideData(t *testing.T) {
	tu.SetT(t)

	e := ccnb.Encoder{}
	e.TaggedBlob(ccnb.DtagContent, []byte("x"))
	b := parse(t, e.Bytes())
	require.Equal(t, &ccnb.DTag{Code: 19, Children: []ccnb.Block{&ccnb.Blob{Val: []byte("x")}}}, b)
}

func TestParseLegacyDictionary(t *testing.T) {
	tu.SetT(t)

	buf := dataPacket()
	r := enc.NewWireView(enc.Wire{buf})
	p := ccnb.Parser{Dict: ccnb.CCNB}
	b := tu.NoErr(p.ParseFull(&r))
	require.True(t, r.IsEOF())
	require.True(t, ccnb.CCNB.Is(b, ccnb.DtagData))

	var out bytes.Buffer
	require.NoError(t, ccnb.Dump(&out, b, ccnb.CCNB))
	require.Contains(t, out.String(), "DTAG ContentObject(64)")
}

func TestTextUTF8PassThrough(t *testing.T) {
	tu.SetT(t)

	b := parse(t, []byte{0x96, 0xff, 0xfe})
	text := b.(*ccnb.Text)
	require.Equal(t, "\xff\xfe", text.Val)
	require.False(t, text.ValidUTF8())
	require.True(t, (&ccnb.Text{Val: "ndn"}).ValidUTF8())
}

func TestParseDepthLimit(t *testing.T) {
	tu.SetT(t)

	// 300 nested empty Names
	buf := append(bytes.Repeat([]byte{0xf2}, 300), bytes.Repeat([]byte{0x00}, 300)...)

	r := enc.NewWireView(enc.Wire{buf})
	p := ccnb.Parser{}
	_, err := p.ParseFull(&r)
	require.Equal(t, ccnb.ErrTooDeep, err)

	r = enc.NewWireView(enc.Wire{buf})
	p = ccnb.Parser{MaxDepth: 300}
	b := tu.NoErr(p.ParseFull(&r))
	require.True(t, r.IsEOF())
	for i := 0; i < 299; i++ {
		require.Equal(t, 1, len(ccnb.Children(b)))
		b = ccnb.Children(b)[0]
	}
	require.Equal(t, 0, len(ccnb.Children(b)))
}
