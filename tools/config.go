package tools

import (
	"fmt"
	"io"
	"strings"

	"github.com/named-data/ndnb/std/encoding/ccnb"
	"github.com/named-data/ndnb/std/log"
	"github.com/named-data/ndnb/std/ndn"
	spec "github.com/named-data/ndnb/std/ndn/spec_ndnb"
	"github.com/named-data/ndnb/std/object/storage"
	"github.com/named-data/ndnb/std/utils"
	"github.com/named-data/ndnb/std/utils/toolutils"
)

// Config is the configuration of the ndnb tool.
type Config struct {
	Codec struct {
		// Dictionary name: ndnb or ccnb
		Dictionary string `json:"dictionary"`
		// Size limit of encoded and decoded packets, 0 for none
		MaxPacketSize int `json:"max_packet_size"`
	} `json:"codec"`

	Log struct {
		// Logging level
		Level string `json:"level"`
		// Output format: text or json
		Format string `json:"format"`
	} `json:"log"`

	Store struct {
		// Backend: memory, badger or sqlite
		Backend string `json:"backend"`
		// Database path of persistent backends
		Path string `json:"path"`
	} `json:"store"`
}

func DefaultConfig() *Config {
	c := &Config{}
	c.Codec.Dictionary = ccnb.NDNB.String()
	c.Codec.MaxPacketSize = ndn.MaxPacketSize
	c.Log.Level = log.LevelInfo.String()
	c.Log.Format = "text"
	c.Store.Backend = "memory"
	c.Store.Path = "./ndnb-store"
	return c
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(file string) (*Config, error) {
	c := DefaultConfig()
	if err := toolutils.ReadYaml(c, file); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := ccnb.DictionaryByName(c.Codec.Dictionary); err != nil {
		return err
	}
	if c.Codec.MaxPacketSize < 0 {
		return fmt.Errorf("invalid max_packet_size: %d", c.Codec.MaxPacketSize)
	}
	if _, err := log.ParseLevel(strings.ToUpper(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: %s", err, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	switch strings.ToLower(c.Store.Backend) {
	case "memory", "badger", "sqlite":
	default:
		return storage.ErrUnknownBackend{Backend: c.Store.Backend}
	}
	return nil
}

// Logger creates the logger described by the configuration.
func (c *Config) Logger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToUpper(c.Log.Level))
	if err != nil {
		return nil, err
	}
	newLogger := utils.If(c.Log.Format == "json", log.NewJson, log.NewText)
	logger := newLogger(w)
	logger.SetLevel(level)
	return logger, nil
}

// Spec creates the packet codec described by the configuration.
func (c *Config) Spec(logger *log.Logger) (*spec.Spec, error) {
	dict, err := ccnb.DictionaryByName(c.Codec.Dictionary)
	if err != nil {
		return nil, err
	}
	return spec.NewSpec(
		spec.WithDictionary(dict),
		spec.WithMaxPacketSize(c.Codec.MaxPacketSize),
		spec.WithLogger(logger),
	), nil
}

// OpenStore opens the configured packet store.
func (c *Config) OpenStore() (ndn.Store, error) {
	return storage.Open(c.Store.Backend, c.Store.Path)
}
