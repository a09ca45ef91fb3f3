package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/justyntemme/soyboy/pkg/soyboy"
)

func runParams(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("params", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg := soyboy.NewRegistry()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMIN\tMAX\tDEFAULT")
	for _, def := range reg.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			def.ID, def.Name,
			def.FormatValue(0), def.FormatValue(1), def.FormatValue(def.DefaultValue))
	}
	return tw.Flush()
}

func printVersion(out io.Writer) {
	info := soyboy.Plugin{}.GetInfo()
	fmt.Fprintf(out, "%s %s (%s)\n", info.Name, info.Version, info.Category)
	fmt.Fprintf(out, "vendor %s\nid     %s\nuid    %s\n", info.Vendor, info.ID, info.UIDString())
}
