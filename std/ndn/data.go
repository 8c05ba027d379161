package ndn

import (
	"fmt"
	"time"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/types/optional"
)

// Data is a signed content packet.
type Data struct {
	Name        enc.Name
	Content     []byte
	ContentType ContentType
	// Freshness is carried in whole seconds.
	Freshness    optional.Optional[time.Duration]
	FinalBlockID optional.Optional[enc.Component]
	// Timestamp is carried with 1/4096 s precision. The zero value is
	// encoded as the Unix epoch.
	Timestamp time.Time
	Signature Signature
}

// Signature holds the signature and the signing metadata of a Data.
// Computing and checking the signature bits is left to the caller.
type Signature struct {
	// DigestAlgorithm is an OID. Empty means DefaultDigestAlgorithm.
	DigestAlgorithm    string
	Witness            []byte
	Bits               []byte
	PublisherKeyDigest []byte
	KeyLocator         KeyLocator
}

// Algorithm returns the digest algorithm, with the default filled in.
func (s Signature) Algorithm() string {
	if s.DigestAlgorithm == "" {
		return DefaultDigestAlgorithm
	}
	return s.DigestAlgorithm
}

// KeyLocator points at the key that verifies a signature.
// Only the field selected by Kind is meaningful.
type KeyLocator struct {
	Kind        KeyLocatorKind
	Key         []byte
	Certificate []byte
	KeyName     enc.Name
}

func (k KeyLocator) String() string {
	switch k.Kind {
	case KeyLocatorKey:
		return fmt.Sprintf("Key(%d bytes)", len(k.Key))
	case KeyLocatorCertificate:
		return fmt.Sprintf("Certificate(%d bytes)", len(k.Certificate))
	case KeyLocatorKeyName:
		return "KeyName(" + k.KeyName.String() + ")"
	default:
		return "None"
	}
}

func (d *Data) String() string {
	ret := fmt.Sprintf("Data(%s, type=%s, content=%d bytes", d.Name, d.ContentType, len(d.Content))
	if v, ok := d.Freshness.Get(); ok {
		ret += fmt.Sprintf(", freshness=%s", v)
	}
	if v, ok := d.FinalBlockID.Get(); ok {
		ret += ", final=" + v.String()
	}
	if d.Signature.KeyLocator.Kind != KeyLocatorNone {
		ret += ", locator=" + d.Signature.KeyLocator.String()
	}
	return ret + ")"
}
