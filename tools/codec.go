package tools

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/encoding/ccnb"
	"github.com/named-data/ndnb/std/ndn"
	"github.com/named-data/ndnb/std/types/optional"
	"github.com/named-data/ndnb/std/utils/toolutils"
	"github.com/spf13/cobra"
)

func (t *Tool) CmdName() *cobra.Command {
	cmd := &cobra.Command{
		GroupID: "codec",
		Use:     "name",
		Short:   "Convert names between URI and ccnb",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "encode URI",
		Short:   "Encode a name URI",
		Args:    cobra.ExactArgs(1),
		Example: `  ndnb name encode /ndn/test`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := enc.NameFromStr(args[0])
			if err != nil {
				return err
			}
			printHex(cmd, t.spec.EncodeName(name))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "decode [HEX]",
		Short:   "Decode a ccnb name to its URI",
		Args:    cobra.MaximumNArgs(1),
		Example: `  ndnb name decode f2faa57465737400 00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := readHex(cmd, args)
			if err != nil {
				return err
			}
			name, err := t.spec.DecodeName(enc.Wire{buf})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	})

	return cmd
}

type interestFlags struct {
	minSuffix uint32
	maxSuffix uint32
	child     uint64
	aok       uint64
	scope     uint64
	lifetime  time.Duration
	nonce     string
	exclude   string
}

func (t *Tool) CmdInterest() *cobra.Command {
	f := interestFlags{}

	cmd := &cobra.Command{
		GroupID: "codec",
		Use:     "interest",
		Short:   "Build Interest packets",
	}

	encode := &cobra.Command{
		Use:   "encode NAME",
		Short: "Encode an Interest",
		Long: `Encode an Interest and print it as hex.
Selectors are only written when their flag is given.`,
		Args:    cobra.ExactArgs(1),
		Example: `  ndnb interest encode / --min-suffix 2 --max-suffix 2 --lifetime 10s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			interest, err := f.interest(cmd, args[0])
			if err != nil {
				return err
			}
			wire, err := t.spec.EncodeInterest(interest)
			if err != nil {
				return err
			}
			t.logger.Debug(t, "Encoded Interest", "interest", interest, "size", len(wire))
			printHex(cmd, wire)
			return nil
		},
	}

	flags := encode.Flags()
	flags.Uint32Var(&f.minSuffix, "min-suffix", 0, "MinSuffixComponents")
	flags.Uint32Var(&f.maxSuffix, "max-suffix", 0, "MaxSuffixComponents")
	flags.Uint64Var(&f.child, "child", 0, "ChildSelector: 0 (left) or 1 (right)")
	flags.Uint64Var(&f.aok, "aok", 0, "AnswerOriginKind bits")
	flags.Uint64Var(&f.scope, "scope", 0, "Scope")
	flags.DurationVar(&f.lifetime, "lifetime", 0, "InterestLifetime")
	flags.StringVar(&f.nonce, "nonce", "", "Nonce, in hex")
	flags.StringVar(&f.exclude, "exclude", "", `Exclude filter, like "*,b" or "a,c,*"`)

	cmd.AddCommand(encode)
	return cmd
}

func (f *interestFlags) interest(cmd *cobra.Command, uri string) (*ndn.Interest, error) {
	name, err := enc.NameFromStr(uri)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	interest := &ndn.Interest{Name: name}
	if flags.Changed("min-suffix") {
		interest.MinSuffixComponents.Set(f.minSuffix)
	}
	if flags.Changed("max-suffix") {
		interest.MaxSuffixComponents.Set(f.maxSuffix)
	}
	if flags.Changed("child") {
		interest.ChildSelector.Set(ndn.ChildSelector(f.child))
	}
	if flags.Changed("aok") {
		interest.AnswerOriginKind.Set(ndn.AnswerOriginKind(f.aok))
	}
	if flags.Changed("scope") {
		interest.Scope.Set(ndn.Scope(f.scope))
	}
	if flags.Changed("lifetime") {
		interest.Lifetime.Set(f.lifetime)
	}
	if f.nonce != "" {
		if interest.Nonce, err = hex.DecodeString(f.nonce); err != nil {
			return nil, fmt.Errorf("invalid nonce: %w", err)
		}
	}
	if f.exclude != "" {
		if interest.Exclude, err = ParseExclude(f.exclude); err != nil {
			return nil, err
		}
	}
	return interest, nil
}

// ParseExclude parses a comma-separated filter of component URIs, where
// "*" marks a range from the previous component (or from the beginning).
func ParseExclude(s string) (ndn.Exclude, error) {
	entries := []ndn.ExcludeEntry{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "*" {
			if len(entries) == 0 {
				entries = append(entries, ndn.ExcludeEntry{Comp: enc.Component{Val: []byte{}}, Any: true})
			} else {
				entries[len(entries)-1].Any = true
			}
			continue
		}
		c, err := enc.ComponentFromStr(part)
		if err != nil {
			return ndn.Exclude{}, err
		}
		entries = append(entries, ndn.ExcludeEntry{Comp: c})
	}
	return ndn.NewExclude(entries...)
}

type dataFlags struct {
	content    string
	contentHex string
	typ        string
	freshness  time.Duration
	finalBlock string
	keyName    string
	timestamp  string
	signature  string
}

func (t *Tool) CmdData() *cobra.Command {
	f := dataFlags{}

	cmd := &cobra.Command{
		GroupID: "codec",
		Use:     "data",
		Short:   "Build Data packets",
	}

	encode := &cobra.Command{
		Use:   "encode NAME",
		Short: "Encode a Data",
		Long: `Encode a Data and print it as hex.
The signature bits are taken as given and are not computed.`,
		Args:    cobra.ExactArgs(1),
		Example: `  ndnb data encode /ndn/test --content hello --freshness 10s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := f.data(cmd, args[0])
			if err != nil {
				return err
			}
			wire, err := t.spec.EncodeData(data)
			if err != nil {
				return err
			}
			t.logger.Debug(t, "Encoded Data", "data", data, "size", len(wire))
			printHex(cmd, wire)
			return nil
		},
	}

	flags := encode.Flags()
	flags.StringVar(&f.content, "content", "", "content, as text")
	flags.StringVar(&f.contentHex, "content-hex", "", "content, in hex")
	flags.StringVar(&f.typ, "type", ndn.ContentTypeData.String(), "content type")
	flags.DurationVar(&f.freshness, "freshness", 0, "FreshnessSeconds, rounded down to seconds")
	flags.StringVar(&f.finalBlock, "final-block", "", "FinalBlockID component")
	flags.StringVar(&f.keyName, "key-name", "", "KeyLocator key name")
	flags.StringVar(&f.timestamp, "timestamp", "", "RFC 3339 timestamp, now if not given")
	flags.StringVar(&f.signature, "signature", "", "SignatureBits, in hex")
	encode.MarkFlagsMutuallyExclusive("content", "content-hex")

	cmd.AddCommand(encode)
	return cmd
}

func (f *dataFlags) data(cmd *cobra.Command, uri string) (data *ndn.Data, err error) {
	data = &ndn.Data{Timestamp: time.Now()}
	if data.Name, err = enc.NameFromStr(uri); err != nil {
		return nil, err
	}

	if f.contentHex != "" {
		if data.Content, err = hex.DecodeString(f.contentHex); err != nil {
			return nil, fmt.Errorf("invalid content: %w", err)
		}
	} else {
		data.Content = []byte(f.content)
	}
	if data.ContentType, err = ndn.ParseContentType(f.typ); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("freshness") {
		data.Freshness.Set(f.freshness)
	}
	if f.finalBlock != "" {
		c, err := enc.ComponentFromStr(f.finalBlock)
		if err != nil {
			return nil, err
		}
		data.FinalBlockID = optional.Some(c)
	}
	if f.keyName != "" {
		data.Signature.KeyLocator.Kind = ndn.KeyLocatorKeyName
		if data.Signature.KeyLocator.KeyName, err = enc.NameFromStr(f.keyName); err != nil {
			return nil, err
		}
	}
	if f.timestamp != "" {
		if data.Timestamp, err = time.Parse(time.RFC3339Nano, f.timestamp); err != nil {
			return nil, err
		}
	}
	if f.signature != "" {
		if data.Signature.Bits, err = hex.DecodeString(f.signature); err != nil {
			return nil, fmt.Errorf("invalid signature: %w", err)
		}
	}
	return data, nil
}

func (t *Tool) CmdDecode() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		GroupID: "codec",
		Use:     "decode [HEX]",
		Short:   "Dump a ccnb block tree",
		Long: `Dump the block tree of a ccnb packet read as hex from the argument
or standard input. Interests and Data are also decoded and summarized.`,
		Args:    cobra.MaximumNArgs(1),
		Example: `  ndnb decode 01d2f200059a8e3200 05a28e3200 038295a00000 00 --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := readHex(cmd, args)
			if err != nil {
				return err
			}
			return t.decode(cmd, buf, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "tree format: text, yaml or cbor")
	return cmd
}

func (t *Tool) decode(cmd *cobra.Command, buf []byte, format string) error {
	wire := enc.Wire{buf}
	blk, err := t.spec.ParseBlock(wire)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dict := t.spec.Dictionary()
	switch format {
	case "text":
		if err = ccnb.Dump(out, blk, dict); err != nil {
			return err
		}
	case "yaml":
		y, err := ccnb.DumpYAML(blk, dict)
		if err != nil {
			return err
		}
		if _, err = out.Write(y); err != nil {
			return err
		}
	case "cbor":
		c, err := ccnb.DumpCBOR(blk, dict)
		if err != nil {
			return err
		}
		diag, err := cbor.Diagnose(c)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(out, diag); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	p := toolutils.StatusPrinter{Out: out, Padding: 12}
	switch {
	case dict.Is(blk, ccnb.DtagInterest):
		interest, err := t.spec.DecodeInterest(wire)
		if err != nil {
			return err
		}
		printInterest(p, interest)
	case dict.Is(blk, ccnb.DtagData):
		data, err := t.spec.DecodeData(wire)
		if err != nil {
			return err
		}
		printData(p, data)
	}
	return nil
}

func printInterest(p toolutils.StatusPrinter, interest *ndn.Interest) {
	fmt.Fprintln(p.Out)
	p.Print("packet", "Interest")
	p.Print("name", interest.Name)
	p.Print("min-suffix", interest.MinSuffixComponents)
	p.Print("max-suffix", interest.MaxSuffixComponents)
	if !interest.Exclude.IsEmpty() {
		p.Print("exclude", interest.Exclude)
	}
	p.Print("child", interest.ChildSelector)
	p.Print("aok", interest.AnswerOriginKind)
	p.Print("scope", interest.Scope)
	p.Print("lifetime", interest.Lifetime)
	if len(interest.Nonce) > 0 {
		p.Print("nonce", hex.EncodeToString(interest.Nonce))
	}
}

func printData(p toolutils.StatusPrinter, data *ndn.Data) {
	fmt.Fprintln(p.Out)
	p.Print("packet", "Data")
	p.Print("name", data.Name)
	p.Print("type", data.ContentType)
	p.Print("content", fmt.Sprintf("%d bytes", len(data.Content)))
	p.Print("freshness", data.Freshness)
	p.Print("final-block", data.FinalBlockID)
	p.Print("timestamp", data.Timestamp.UTC().Format(time.RFC3339Nano))
	p.Print("algorithm", data.Signature.Algorithm())
	p.Print("key-locator", data.Signature.KeyLocator)
}
