// Command gcal-auth authorizes Google Calendar access once for OAuth desktop-app
// credentials and saves the token the calendar mirror reads at startup.
//
// Usage:
//
//	go run ./cmd/gcal-auth [-credentials google-credentials.json] [-token token.json]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/oauth2"

	"task-tracker/pkg/gcalendar"
	"task-tracker/pkg/log"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop-app credentials file")
	tokenPath := flag.String("token", "token.json", "where to write the token")
	flag.Parse()

	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", *credsPath, err)
	}

	oauthConfig, err := gcalendar.OAuthConfig(data)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials: %v (is %q an OAuth desktop-app credentials file?)", err, *credsPath)
	}

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("1. Open this URL in a browser and sign in with your Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		logger.Fatalf(ctx, "%v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s. Set google_calendar.token_path to it and restart the API.\n", *tokenPath)
}
