// Command apikey prepares bearer credentials for the server: a bcrypt
// hash for API_KEY_HASH, or an HS256 token signed with JWT_SECRET.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"digicards/internal/auth"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n  apikey hash [-key KEY] [-cost N]\n  apikey jwt -secret SECRET [-sub NAME] [-ttl 720h]\n")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "hash":
		fs := flag.NewFlagSet("hash", flag.ExitOnError)
		key := fs.String("key", "", "key to hash; a random one is generated when empty")
		cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
		_ = fs.Parse(os.Args[2:])

		if *key == "" {
			buf := make([]byte, 24)
			if _, err := rand.Read(buf); err != nil {
				fail(err)
			}
			*key = hex.EncodeToString(buf)
			fmt.Printf("API key:      %s\n", *key)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*key), *cost)
		if err != nil {
			fail(err)
		}
		fmt.Printf("API_KEY_HASH=%s\n", hash)

	case "jwt":
		fs := flag.NewFlagSet("jwt", flag.ExitOnError)
		secret := fs.String("secret", os.Getenv("JWT_SECRET"), "signing secret (default $JWT_SECRET)")
		sub := fs.String("sub", "digicards-client", "token subject")
		ttl := fs.Duration("ttl", 30*24*time.Hour, "token lifetime, 0 for no expiry")
		_ = fs.Parse(os.Args[2:])

		if *secret == "" {
			fmt.Fprintln(os.Stderr, "apikey jwt: -secret or JWT_SECRET is required")
			os.Exit(2)
		}
		token, err := auth.SignJWT([]byte(*secret), *sub, *ttl)
		if err != nil {
			fail(err)
		}
		fmt.Println(token)

	default:
		usage()
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "apikey:", err)
	os.Exit(1)
}
