package cmd

import (
	"github.com/named-data/ndnb/std/utils"
	"github.com/named-data/ndnb/tools"
	"github.com/spf13/cobra"
)

const banner = `
  _   _ ____  _   _ _
 | \ | |  _ \| \ | | |__
 |  \| | | | |  \| | '_ \
 | |\  | |_| | |\  | |_) |
 |_| \_|____/|_| \_|_.__/

ccnb / ndnb packet codec
`

var CmdNDNb = &cobra.Command{
	Use:          "ndnb",
	Short:        "ccnb / ndnb packet codec",
	Long:         banner[1:],
	Version:      utils.NDNbVersion,
	SilenceUsage: true,
}

func init() {
	cobra.EnableCommandSorting = false
	CmdNDNb.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdNDNb.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdNDNb.PersistentFlags().Lookup("help").Hidden = true

	tools.New().Register(CmdNDNb)
}
