package ndn

import (
	"fmt"
	"strings"
	"time"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/types/optional"
)

// Interest is a request for named content.
// Unset optional fields are left out of the encoding.
type Interest struct {
	Name enc.Name
	// MinSuffixComponents and MaxSuffixComponents bound the number of
	// components a matching Data name has after Name, counting the implicit
	// digest component.
	MinSuffixComponents optional.Optional[uint32]
	MaxSuffixComponents optional.Optional[uint32]
	// Exclude filters the component right after Name.
	Exclude          Exclude
	ChildSelector    optional.Optional[ChildSelector]
	AnswerOriginKind optional.Optional[AnswerOriginKind]
	Scope            optional.Optional[Scope]
	// Lifetime is left out of the encoding when unset or negative.
	Lifetime optional.Optional[time.Duration]
	Nonce    []byte
}

// MatchesName reports whether a Data with the given name satisfies the
// Interest's name, suffix and exclude selectors.
func (i *Interest) MatchesName(name enc.Name) bool {
	if !i.Name.IsPrefix(name) {
		return false
	}

	suffix := uint32(len(name)-len(i.Name)) + 1
	if min, ok := i.MinSuffixComponents.Get(); ok && suffix < min {
		return false
	}
	if max, ok := i.MaxSuffixComponents.Get(); ok && suffix > max {
		return false
	}

	if len(name) > len(i.Name) && i.Exclude.IsExcluded(name[len(i.Name)]) {
		return false
	}
	return true
}

func (i *Interest) String() string {
	sb := strings.Builder{}
	sb.WriteString("Interest(")
	sb.WriteString(i.Name.String())
	if v, ok := i.MinSuffixComponents.Get(); ok {
		fmt.Fprintf(&sb, ", min=%d", v)
	}
	if v, ok := i.MaxSuffixComponents.Get(); ok {
		fmt.Fprintf(&sb, ", max=%d", v)
	}
	if !i.Exclude.IsEmpty() {
		fmt.Fprintf(&sb, ", exclude=%s", i.Exclude)
	}
	if v, ok := i.ChildSelector.Get(); ok {
		fmt.Fprintf(&sb, ", child=%s", v)
	}
	if v, ok := i.AnswerOriginKind.Get(); ok {
		fmt.Fprintf(&sb, ", aok=%s", v)
	}
	if v, ok := i.Scope.Get(); ok {
		fmt.Fprintf(&sb, ", scope=%s", v)
	}
	if v, ok := i.Lifetime.Get(); ok && v >= 0 {
		fmt.Fprintf(&sb, ", lifetime=%s", v)
	}
	if len(i.Nonce) > 0 {
		fmt.Fprintf(&sb, ", nonce=%x", i.Nonce)
	}
	sb.WriteRune(')')
	return sb.String()
}
