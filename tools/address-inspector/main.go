package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/dotbridge/subcodec/packages/ss58"
)

func main() {
	addressString := flag.String("address", "", "the SS58 encoded address to inspect")
	verifyOnly := flag.BoolP("verify-only", "q", false, "suppress output and report validity via the exit code")
	flag.Parse()

	if *addressString == "" {
		flag.Usage()
		os.Exit(2)
	}

	address, err := ss58.Decode(*addressString)
	if err != nil {
		if *verifyOnly {
			os.Exit(1)
		}
		log.Fatal(err)
	}
	if *verifyOnly {
		return
	}

	fmt.Printf("format:     %d (%s)\n", address.Format(), address.Format().Network())
	fmt.Printf("account id: %s\n", hex.EncodeToString(address.AccountID()))
}
