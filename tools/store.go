package tools

import (
	"encoding/hex"
	"fmt"

	enc "github.com/named-data/ndnb/std/encoding"
	"github.com/named-data/ndnb/std/ndn"
	"github.com/spf13/cobra"
)

type storeFlags struct {
	prefix bool
	first  string
	last   string
}

func (t *Tool) CmdStore() *cobra.Command {
	f := storeFlags{}

	cmd := &cobra.Command{
		GroupID: "store",
		Use:     "store",
		Short:   "Manage the packet store",
		Long: `Manage the packet store selected by the configuration.
The memory backend does not outlive the command.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "put [HEX]",
		Short:   "Insert a Data packet under its name",
		Args:    cobra.MaximumNArgs(1),
		Example: `  ndnb data encode /a --content x | ndnb store put --store sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wire, err := readHex(cmd, args)
			if err != nil {
				return err
			}
			data, err := t.spec.DecodeData(enc.Wire{wire})
			if err != nil {
				return err
			}
			return t.withStore(func(store ndn.Store) error {
				if err := store.Put(data.Name, wire); err != nil {
					return err
				}
				t.logger.Info(t, "Stored Data", "name", data.Name, "size", len(wire))
				return nil
			})
		},
	})

	get := &cobra.Command{
		Use:   "get NAME",
		Short: "Print a stored Data packet as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := enc.NameFromStr(args[0])
			if err != nil {
				return err
			}
			return t.withStore(func(store ndn.Store) error {
				wire, err := store.Get(name, f.prefix)
				if err != nil {
					return err
				}
				if wire == nil {
					return fmt.Errorf("%w: %s", ndn.ErrNotFound, name)
				}
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(wire))
				return nil
			})
		},
	}
	get.Flags().BoolVar(&f.prefix, "prefix", false, "return the last packet under the name")
	cmd.AddCommand(get)

	rm := &cobra.Command{
		Use:   "rm NAME",
		Short: "Remove stored packets",
		Long: `Remove the packet with the given name, the whole subtree with --prefix,
or the subtrees of the children between --first and --last inclusive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := enc.NameFromStr(args[0])
			if err != nil {
				return err
			}
			return t.withStore(func(store ndn.Store) error {
				return f.remove(cmd, store, name)
			})
		},
	}
	rm.Flags().BoolVar(&f.prefix, "prefix", false, "remove the subtree under the name")
	rm.Flags().StringVar(&f.first, "first", "", "first child component of a range")
	rm.Flags().StringVar(&f.last, "last", "", "last child component of a range")
	rm.MarkFlagsRequiredTogether("first", "last")
	rm.MarkFlagsMutuallyExclusive("prefix", "first")
	cmd.AddCommand(rm)

	return cmd
}

func (f *storeFlags) remove(cmd *cobra.Command, store ndn.Store, name enc.Name) error {
	switch {
	case f.prefix:
		return store.RemovePrefix(name)
	case cmd.Flags().Changed("first"):
		first, err := enc.ComponentFromStr(f.first)
		if err != nil {
			return err
		}
		last, err := enc.ComponentFromStr(f.last)
		if err != nil {
			return err
		}
		return store.RemoveFlatRange(name, first, last)
	default:
		return store.Remove(name)
	}
}

// withStore opens the configured store for the duration of fn.
func (t *Tool) withStore(fn func(ndn.Store) error) error {
	store, err := t.config.OpenStore()
	if err != nil {
		return err
	}
	t.logger.Debug(t, "Opened store", "backend", t.config.Store.Backend, "path", t.config.Store.Path)

	if err = fn(store); err != nil {
		store.Close()
		return err
	}
	return store.Close()
}
