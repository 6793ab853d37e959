package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/seqkit/numparse"
	"github.com/seqkit/numparse/precise"
)

func main() {
	tolerance := pflag.Float64("tolerance", 0, "tolerance for the scaled-integer conversion (0 means the default)")
	exact := pflag.Bool("exact", false, "use the exact shortest-decimal conversion instead of the scaled-integer one")
	pflag.Parse()

	if pflag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one hexadecimal float literal is required")
		os.Exit(1)
	}

	ok := true
	for _, arg := range pflag.Args() {
		var n precise.Number
		var err error
		if *exact {
			n, err = numparse.ParseHexadecimalFloatExact(arg)
		} else {
			n, err = numparse.ParseHexadecimalFloat(arg, *tolerance)
		}
		if err != nil {
			logrus.Error(err)
			ok = false
			continue
		}
		fmt.Printf("%s = %s (unscaled %s, scale %d, fractional digits %d)\n",
			arg, n.Value, n.Value.UnscaledBig(), n.Value.Scale(), n.FractionalDigits)
	}
	if !ok {
		os.Exit(1)
	}
}
