package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/pkg/gateway"
	"github.com/aamart/storefront/pkg/token"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands: login <email>, inspect <token>")
		return
	}
	cmd := os.Args[1]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	switch cmd {
	case "login":
		if argsLen < 3 {
			fmt.Println("Usage: login <email>")
			return
		}
		email := os.Args[2]
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			color.Red("Failed to read password: %v", err)
			os.Exit(1)
		}

		client := gateway.NewAuthClient(cfg.Backend, logger)
		credential, err := client.Login(context.Background(), email, string(password))
		if err != nil {
			color.Red("Login failed: %v", err)
			os.Exit(1)
		}

		color.Green("Login successful")
		fmt.Printf("Token: %s\n", maskToken(credential))
		printExpiry(logger, credential)
	case "inspect":
		if argsLen < 3 {
			fmt.Println("Usage: inspect <token>")
			return
		}
		printExpiry(logger, os.Args[2])
	default:
		fmt.Println("Unknown command:", cmd)
	}
}

func maskToken(credential string) string {
	if len(credential) <= 16 {
		return "****"
	}
	return credential[:8] + "..." + credential[len(credential)-8:]
}

func printExpiry(logger *slog.Logger, credential string) {
	guard := token.NewGuard(logger, nil)
	switch guard.Evaluate(credential, time.Now()) {
	case token.ValidCredential:
		color.Green("Session: valid")
	case token.ExpiredCredential:
		color.Yellow("Session: expired (or credential undecodable)")
	default:
		color.Red("Session: no credential")
	}
}
