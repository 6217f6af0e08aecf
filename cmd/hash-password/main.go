// Command-line tool to produce the bcrypt hash for ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hamedazad/synurix/internal/utilities"
)

func main() {
	var password string

	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		fmt.Print("Password to hash: ")
		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		password = strings.TrimSpace(input)
	}

	if password == "" {
		log.Fatal("Password must not be empty")
	}

	hash, err := utilities.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println("Set this in the environment:")
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
}
