// Command soyboy renders or plays the SoyBoy square-wave voice.
package main

import (
	"fmt"
	"os"
)

const usage = `Usage: soyboy <command> [options]

Commands:
  render   render a note list to a WAV file
  play     play the voice live from the terminal keyboard
  params   list the voice parameters
  version  print the plugin identity

Run "soyboy <command> -h" for the options of a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "render":
		err = runRender(args)
	case "play":
		err = runPlay(args)
	case "params":
		err = runParams(args, os.Stdout)
	case "version":
		printVersion(os.Stdout)
		return
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
