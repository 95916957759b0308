// Command hashpw generates the bcrypt hash for the APP_PASSWORD_HASH
// environment variable from a password given as the single argument.
package main

import (
	"fmt"
	"os"

	"github.com/bjtmarts/transfer_tracker_app/internal/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}

	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashpw: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
