package ccnb

import (
	"fmt"
	"strings"
)

// Dtag is a dictionary tag as used by the packet codec, independent of the
// numbering of a particular dictionary.
type Dtag int

const (
	DtagAny Dtag = iota
	DtagName
	DtagComponent
	DtagCertificate
	DtagContent
	DtagSignedInfo
	DtagInterest
	DtagKey
	DtagKeyLocator
	DtagKeyName
	DtagSignature
	DtagTimestamp
	DtagType
	DtagNonce
	DtagScope
	DtagExclude
	DtagAnswerOriginKind
	DtagInterestLifetime
	DtagWitness
	DtagSignatureBits
	DtagDigestAlgorithm
	DtagFreshnessSeconds
	DtagFinalBlockID
	DtagPublisherPublicKeyDigest
	DtagData
	DtagMinSuffixComponents
	DtagMaxSuffixComponents
	DtagChildSelector
	dtagCount
)

var dtagCodes = [dtagCount]uint32{
	DtagAny:                      13,
	DtagName:                     14,
	DtagComponent:                15,
	DtagCertificate:              16,
	DtagContent:                  19,
	DtagSignedInfo:               20,
	DtagInterest:                 26,
	DtagKey:                      27,
	DtagKeyLocator:               28,
	DtagKeyName:                  29,
	DtagSignature:                37,
	DtagTimestamp:                39,
	DtagType:                     40,
	DtagNonce:                    41,
	DtagScope:                    42,
	DtagExclude:                  43,
	DtagAnswerOriginKind:         47,
	DtagInterestLifetime:         48,
	DtagWitness:                  53,
	DtagSignatureBits:            54,
	DtagDigestAlgorithm:          55,
	DtagFreshnessSeconds:         58,
	DtagFinalBlockID:             59,
	DtagPublisherPublicKeyDigest: 60,
	DtagData:                     64,
	DtagMinSuffixComponents:      83,
	DtagMaxSuffixComponents:      84,
	DtagChildSelector:            85,
}

const codeProtocolDataUnit = 17702112

// registry is the ccnx dtag registry, shared by both dictionaries.
var registry = map[uint32]string{
	13: "Any", 14: "Name", 15: "Component", 16: "Certificate",
	17: "Collection", 18: "CompleteName", 19: "Content", 20: "SignedInfo",
	21: "ContentDigest", 22: "ContentHash", 24: "Count", 25: "Header",
	26: "Interest", 27: "Key", 28: "KeyLocator", 29: "KeyName",
	30: "Length", 31: "Link", 32: "LinkAuthenticator", 33: "NameComponentCount",
	36: "RootDigest", 37: "Signature", 38: "Start", 39: "Timestamp",
	40: "Type", 41: "Nonce", 42: "Scope", 43: "Exclude",
	44: "Bloom", 45: "BloomSeed", 47: "AnswerOriginKind", 48: "InterestLifetime",
	53: "Witness", 54: "SignatureBits", 55: "DigestAlgorithm", 56: "BlockSize",
	58: "FreshnessSeconds", 59: "FinalBlockID", 60: "PublisherPublicKeyDigest",
	61: "PublisherCertificateDigest", 62: "PublisherIssuerKeyDigest",
	63: "PublisherIssuerCertificateDigest", 65: "WrappedKey",
	66: "WrappingKeyIdentifier", 67: "WrapAlgorithm", 68: "KeyAlgorithm",
	69: "Label", 70: "EncryptedKey", 71: "EncryptedNonceKey", 72: "WrappingKeyName",
	73: "Action", 74: "FaceID", 75: "IPProto", 76: "Host",
	77: "Port", 78: "MulticastInterface", 79: "ForwardingFlags", 80: "FaceInstance",
	81: "ForwardingEntry", 82: "MulticastTTL", 83: "MinSuffixComponents",
	84: "MaxSuffixComponents", 85: "ChildSelector", 86: "RepositoryInfo",
	87: "Version", 88: "RepositoryVersion", 89: "GlobalPrefix", 90: "LocalName",
	91: "Policy", 92: "Namespace", 93: "GlobalPrefixName", 94: "PolicyVersion",
	95: "KeyValueSet", 96: "KeyValuePair", 97: "IntegerValue", 98: "DecimalValue",
	99: "StringValue", 100: "BinaryValue", 101: "NameValue", 102: "Entry",
	103: "ACL", 104: "ParameterizedName", 105: "Prefix", 106: "Suffix",
	107: "Root", 108: "ProfileName", 109: "Parameters", 110: "InfoString",
	112: "StatusResponse", 113: "StatusCode", 114: "StatusText", 115: "SyncNode",
	116: "SyncNodeKind", 117: "SyncNodeElement", 118: "SyncVersion",
	119: "SyncNodeElements", 120: "SyncContentHash", 121: "SyncLeafCount",
	122: "SyncTreeDepth", 123: "SyncByteCount", 124: "SyncConfigSlice",
	125: "SyncConfigSliceList", 126: "SyncConfigSliceOp", 127: "SyncNodeDeltas",
	256: "SequenceNumber",
}

// Dictionary maps dictionary codes to tag names.
// Dictionaries are immutable and safe for concurrent use.
type Dictionary struct {
	name   string
	names  map[uint32]string
	codes  map[string]uint32
	byCode map[uint32]Dtag
}

var (
	// NDNB is the current dictionary. Code 64 is named Data.
	NDNB = newDictionary("ndnb", map[uint32]string{
		64:                   "Data",
		codeProtocolDataUnit: "NDNProtocolDataUnit",
	})
	// CCNB is the legacy dictionary. Code 64 is named ContentObject.
	CCNB = newDictionary("ccnb", map[uint32]string{
		64:                   "ContentObject",
		codeProtocolDataUnit: "CCNProtocolDataUnit",
	})
)

func newDictionary(name string, extra map[uint32]string) *Dictionary {
	d := &Dictionary{
		name:   name,
		names:  make(map[uint32]string, len(registry)+len(extra)),
		codes:  make(map[string]uint32, len(registry)+len(extra)),
		byCode: make(map[uint32]Dtag, dtagCount),
	}
	for code, n := range registry {
		d.names[code] = n
		d.codes[n] = code
	}
	for code, n := range extra {
		d.names[code] = n
		d.codes[n] = code
	}
	for t, code := range dtagCodes {
		d.byCode[code] = Dtag(t)
	}
	return d
}

// DictionaryByName returns the dictionary called "ndnb" or "ccnb".
func DictionaryByName(name string) (*Dictionary, error) {
	switch strings.ToLower(name) {
	case "", "ndnb":
		return NDNB, nil
	case "ccnb":
		return CCNB, nil
	}
	return nil, fmt.Errorf("unknown dictionary: %s", name)
}

func (d *Dictionary) String() string {
	return d.name
}

// Code returns the code of a dtag in this dictionary.
func (d *Dictionary) Code(t Dtag) uint32 {
	return dtagCodes[t]
}

// Lookup returns the dtag registered for a code.
func (d *Dictionary) Lookup(code uint32) (Dtag, bool) {
	t, ok := d.byCode[code]
	return t, ok
}

// TagName returns the name registered for a code.
func (d *Dictionary) TagName(code uint32) (string, bool) {
	n, ok := d.names[code]
	return n, ok
}

// CodeOf returns the code registered for a tag name.
func (d *Dictionary) CodeOf(name string) (uint32, bool) {
	c, ok := d.codes[name]
	return c, ok
}

// Name returns the name of a dtag in this dictionary.
func (d *Dictionary) Name(t Dtag) string {
	return d.names[dtagCodes[t]]
}

// Resolve returns the dtag of a DTag block, or of a Tag block whose name
// is registered in this dictionary.
func (d *Dictionary) Resolve(b Block) (Dtag, bool) {
	switch t := b.(type) {
	case *DTag:
		return d.Lookup(t.Code)
	case *Tag:
		if code, ok := d.codes[t.Name]; ok {
			return d.Lookup(code)
		}
	}
	return 0, false
}

// Is reports whether b is the composite block of dtag t.
func (d *Dictionary) Is(b Block, t Dtag) bool {
	r, ok := d.Resolve(b)
	return ok && r == t
}

func (t Dtag) String() string {
	if t < 0 || t >= dtagCount {
		return fmt.Sprintf("Dtag(%d)", int(t))
	}
	return NDNB.Name(t)
}
