// ABOUTME: Mints admin tokens signed with JWT_SECRET for manual testing
// ABOUTME: Produces a valid or an already-expired token for curl and the CLI

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/middleware"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <token-type>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Token types: valid, expired\n")
		os.Exit(1)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET must be set")
		os.Exit(1)
	}

	var ttl time.Duration
	switch os.Args[1] {
	case "valid":
		ttl = time.Hour
	case "expired":
		ttl = -time.Hour
	default:
		fmt.Fprintf(os.Stderr, "Unknown token type: %s\n", os.Args[1])
		os.Exit(1)
	}

	token, err := middleware.NewTokens(secret, ttl).Issue(middleware.AdminSubject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
