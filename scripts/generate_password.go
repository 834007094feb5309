// scripts/generate_password.go
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Prints a bcrypt hash suitable for seeding a team user row by hand.
//
//	go run scripts/generate_password.go -cost 12 <password>
func main() {
	cost := flag.Int("cost", 12, "bcrypt cost factor")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: go run scripts/generate_password.go [-cost N] <password>")
	}
	password := flag.Arg(0)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), *cost)
	if err != nil {
		log.Fatalf("hashing failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		log.Fatalf("round-trip check failed: %v", err)
	}

	fmt.Println(string(hash))
}
