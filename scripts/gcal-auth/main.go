package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"task-management/pkg/gcalendar"
)

// Authorizes deadline sync once with an OAuth Desktop client and stores the
// token read by the API server (google_calendar.token_path).
func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth Desktop client credentials file")
	tokenPath := flag.String("token", gcalendar.DefaultTokenPath, "where to write the token")
	flag.Usage = func() {
		fmt.Println("Usage: go run scripts/gcal-auth/main.go [-credentials file] [-token file]")
		flag.PrintDefaults()
	}
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		fmt.Printf("Failed to read credentials %s: %v\n", *credsPath, err)
		os.Exit(1)
	}
	cfg, err := gcalendar.OAuthConfig(data)
	if err != nil {
		fmt.Printf("%v\nExpected an OAuth Desktop App credentials file.\n", err)
		os.Exit(1)
	}

	state := uuid.NewString()
	fmt.Println("1. Open this URL and sign in to Google:")
	fmt.Println()
	fmt.Println("  ", cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce))
	fmt.Println()
	fmt.Print("2. Paste the authorization code: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && code == "" {
		fmt.Printf("Failed to read authorization code: %v\n", err)
		os.Exit(1)
	}

	tok, err := cfg.Exchange(context.Background(), strings.TrimSpace(code))
	if err != nil {
		fmt.Printf("Failed to exchange authorization code: %v\n", err)
		os.Exit(1)
	}
	if tok.RefreshToken == "" {
		fmt.Println("Warning: no refresh token returned, the server will stop syncing when the access token expires.")
	}

	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("Token saved to %s. Set google_calendar.enabled: true and restart the API server.\n", *tokenPath)
}
