package ndn

import (
	"strings"
)

// MaxPacketSize is the default maximum size of an encoded packet.
const MaxPacketSize = 8800

// DefaultDigestAlgorithm is the OID of SHA-256, assumed when a Signature
// carries no DigestAlgorithm.
const DefaultDigestAlgorithm = "2.16.840.1.101.3.4.2.1"

// SignatureBitsMinLength is the minimum encoded length of SignatureBits.
// Shorter values are padded with zeros.
const SignatureBitsMinLength = 16

// ContentType represents the type of Data content.
type ContentType int

const (
	ContentTypeData ContentType = iota
	ContentTypeEncrypted
	ContentTypeGone
	ContentTypeKey
	ContentTypeLink
	ContentTypeNack
)

func (t ContentType) String() string {
	switch t {
	case ContentTypeData:
		return "Data"
	case ContentTypeEncrypted:
		return "Encrypted"
	case ContentTypeGone:
		return "Gone"
	case ContentTypeKey:
		return "Key"
	case ContentTypeLink:
		return "Link"
	case ContentTypeNack:
		return "Nack"
	default:
		return "Unknown"
	}
}

// ParseContentType is the inverse of ContentType.String, case-insensitive.
func ParseContentType(s string) (ContentType, error) {
	for t := ContentTypeData; t <= ContentTypeNack; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, ErrInvalidValue{Item: "ContentType", Value: s}
}

// ChildSelector selects which matching Data is preferred.
type ChildSelector uint64

const (
	ChildLeft  ChildSelector = 0
	ChildRight ChildSelector = 1
)

func (c ChildSelector) String() string {
	switch c {
	case ChildLeft:
		return "Left"
	case ChildRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// AnswerOriginKind is a bit set of acceptable answer origins.
type AnswerOriginKind uint64

const (
	AOKCache   AnswerOriginKind = 1
	AOKNew     AnswerOriginKind = 2
	AOKDefault AnswerOriginKind = AOKCache | AOKNew
	AOKStale   AnswerOriginKind = 4
	AOKExpire  AnswerOriginKind = 16
)

func (a AnswerOriginKind) String() string {
	if a == 0 {
		return "None"
	}
	parts := []string{}
	for _, f := range []struct {
		bit  AnswerOriginKind
		name string
	}{{AOKCache, "Cache"}, {AOKNew, "New"}, {AOKStale, "Stale"}, {AOKExpire, "Expire"}} {
		if a&f.bit != 0 {
			parts = append(parts, f.name)
			a &^= f.bit
		}
	}
	if a != 0 {
		parts = append(parts, "Unknown")
	}
	return strings.Join(parts, "|")
}

// Scope limits how far an Interest propagates.
type Scope uint64

const (
	ScopeLocal     Scope = 0
	ScopeLocalHost Scope = 1
	ScopeNextHost  Scope = 2
)

func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "Local"
	case ScopeLocalHost:
		return "LocalHost"
	case ScopeNextHost:
		return "NextHost"
	default:
		return "Unknown"
	}
}

// KeyLocatorKind tells which field of a KeyLocator is set.
type KeyLocatorKind int

const (
	KeyLocatorNone KeyLocatorKind = iota
	KeyLocatorKey
	KeyLocatorCertificate
	KeyLocatorKeyName
)

func (k KeyLocatorKind) String() string {
	switch k {
	case KeyLocatorNone:
		return "None"
	case KeyLocatorKey:
		return "Key"
	case KeyLocatorCertificate:
		return "Certificate"
	case KeyLocatorKeyName:
		return "KeyName"
	default:
		return "Unknown"
	}
}
