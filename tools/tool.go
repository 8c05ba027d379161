package tools

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/log"
	spec "github.com/named-data/ndnb/std/ndn/spec_ndnb"
	"github.com/spf13/cobra"
)

// Tool holds the state shared by the ndnb commands.
type Tool struct {
	configFile string
	dict       string
	logLevel   string
	backend    string
	storePath  string

	config *Config
	logger *log.Logger
	spec   *spec.Spec
}

func New() *Tool {
	return &Tool{}
}

func (t *Tool) String() string {
	return "ndnb"
}

// Register adds the persistent flags and the commands of the tool to root.
func (t *Tool) Register(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVarP(&t.configFile, "config", "c", "", "YAML configuration file")
	flags.StringVar(&t.dict, "dict", "", "dictionary: ndnb or ccnb")
	flags.StringVar(&t.logLevel, "log-level", "", "logging level")
	flags.StringVar(&t.backend, "store", "", "store backend: memory, badger or sqlite")
	flags.StringVar(&t.storePath, "store-path", "", "store database path")
	root.PersistentPreRunE = t.setup

	root.AddGroup(&cobra.Group{ID: "codec", Title: "Codec"})
	root.AddCommand(t.CmdName())
	root.AddCommand(t.CmdInterest())
	root.AddCommand(t.CmdData())
	root.AddCommand(t.CmdDecode())

	root.AddGroup(&cobra.Group{ID: "store", Title: "Packet Store"})
	root.AddCommand(t.CmdStore())
}

// setup loads the configuration and applies the flag overrides.
func (t *Tool) setup(cmd *cobra.Command, _ []string) (err error) {
	if t.configFile != "" {
		if t.config, err = LoadConfig(t.configFile); err != nil {
			return err
		}
	} else {
		t.config = DefaultConfig()
	}

	if t.dict != "" {
		t.config.Codec.Dictionary = t.dict
	}
	if t.logLevel != "" {
		t.config.Log.Level = t.logLevel
	}
	if t.backend != "" {
		t.config.Store.Backend = t.backend
	}
	if t.storePath != "" {
		t.config.Store.Path = t.storePath
	}
	if err = t.config.Validate(); err != nil {
		return err
	}

	if t.logger, err = t.config.Logger(cmd.ErrOrStderr()); err != nil {
		return err
	}
	log.SetDefault(t.logger)

	t.spec, err = t.config.Spec(t.logger)
	if err == nil {
		t.logger.Debug(t, "Configured codec", "dict", t.config.Codec.Dictionary,
			"max_packet_size", t.config.Codec.MaxPacketSize)
	}
	return err
}

// Config returns the configuration in effect. It is nil before a command runs.
func (t *Tool) Config() *Config {
	return t.config
}

// readHex decodes the hex argument, or standard input if there is none.
// Whitespace is ignored.
func readHex(cmd *cobra.Command, args []string) ([]byte, error) {
	var s string
	if len(args) > 0 && args[0] != "-" {
		s = args[0]
	} else {
		buf, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
		if err != nil {
			return nil, err
		}
		s = string(buf)
	}

	s = strings.Join(strings.Fields(s), "")
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return buf, nil
}

func printHex(cmd *cobra.Command, buf enc.Buffer) {
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
}
