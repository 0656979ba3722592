// Command charclass parses, combines and inspects character classes
// written in bracket notation.
//
//	charclass union '[a-z]' '[A-Z]'          # [A-Za-z]
//	charclass diff '[a-z]' '[aeiou]'         # [b-df-hj-np-tv-z]
//	charclass --config lexer.yaml count @ident
//
// Operands starting with '@' name classes from the "classes" map of the
// config file. Viper folds config keys to lower case, so names do too.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("charclass: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
