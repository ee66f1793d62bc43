package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bostrt/koala/internal/client"
)

const defaultServer = "http://localhost:8080"

func main() {
	// Whatever goes wrong, the user gets a one-line message, not a trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "Error: something went wrong, please try again")
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "register":
		cmdRegister(args)
	case "login":
		cmdLogin(args)
	case "genkey":
		cmdGenKey(args)
	case "add":
		cmdAdd(args)
	case "rm":
		cmdRemove(args)
	case "list":
		cmdList(args)
	case "read":
		cmdSetFlag(args, "read", boolPtr(true), nil)
	case "unread":
		cmdSetFlag(args, "unread", boolPtr(false), nil)
	case "favorite":
		cmdSetFlag(args, "favorite", nil, boolPtr(true))
	case "unfavorite":
		cmdSetFlag(args, "unfavorite", nil, boolPtr(false))
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`kc - koala read-it-later client

Usage: kc <command> [options]

Commands:
  register -u <user> -p <password>   Create an account and save the API key
  login -u <user> -k <key>           Save an existing username/key pair
  genkey -u <user> -p <password>     Mint a new API key and save it
  add -u <url> [-t <title>]          Bookmark a URL
  rm -a <id>                         Remove a bookmark
  list [-l <limit>] [-v]             List bookmarks
  read -a <id>                       Mark a bookmark as read
  unread -a <id>                     Mark a bookmark as unread
  favorite -a <id>                   Mark a bookmark as a favorite
  unfavorite -a <id>                 Unmark a favorite

Environment:
  KOALA_SERVER   Server base URL (default: ` + defaultServer + `)`)
}

func serverURL() string {
	if url := os.Getenv("KOALA_SERVER"); url != "" {
		return strings.TrimSuffix(url, "/")
	}
	return defaultServer
}

func boolPtr(b bool) *bool { return &b }

// ============================================================================
// LOGIN FILE
// ============================================================================

func loginFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "koala", "login"), nil
}

// writeLoginFile stores the single cached credential pair as one
// colon-delimited line. register, login and genkey all overwrite it.
func writeLoginFile(username, key string) error {
	path, err := loginFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(username+":"+key), 0600)
}

func readLoginFile() (string, string, error) {
	path, err := loginFilePath()
	if err != nil {
		return "", "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", errors.New("not logged in - run 'kc register' or 'kc login'")
	}
	line := strings.TrimSpace(string(data))
	username, key, found := strings.Cut(line, ":")
	if !found {
		return "", "", errors.New("login file is corrupt - run 'kc login' again")
	}
	return username, key, nil
}

func loadAuthenticatedClient() (*client.Client, error) {
	username, key, err := readLoginFile()
	if err != nil {
		return nil, err
	}
	c := client.New(serverURL())
	c.Username = username
	c.Key = key
	return c, nil
}

// ============================================================================
// COMMANDS
// ============================================================================

func cmdRegister(args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	var username, password string
	fs.StringVar(&username, "u", "", "Username (required)")
	fs.StringVar(&username, "username", "", "Username (required)")
	fs.StringVar(&password, "p", "", "Password (required)")
	fs.StringVar(&password, "password", "", "Password (required)")
	fs.Parse(args)

	if username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Error: -u and -p are required")
		os.Exit(1)
	}

	c := client.New(serverURL())
	key, err := c.Register(username, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeLoginFile(username, key); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving login: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("registered")
}

func cmdLogin(args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	var username, key string
	fs.StringVar(&username, "u", "", "Username (required)")
	fs.StringVar(&username, "username", "", "Username (required)")
	fs.StringVar(&key, "k", "", "API key (required)")
	fs.StringVar(&key, "key", "", "API key (required)")
	fs.Parse(args)

	if username == "" || key == "" {
		fmt.Fprintln(os.Stderr, "Error: -u and -k are required")
		os.Exit(1)
	}

	// Prove the pair works before caching it.
	c := client.New(serverURL())
	c.Username = username
	c.Key = key
	if _, err := c.ListArticles(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid username or API key")
		os.Exit(1)
	}

	if err := writeLoginFile(username, key); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving login: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Logged in as", username)
}

func cmdGenKey(args []string) {
	fs := flag.NewFlagSet("genkey", flag.ExitOnError)
	var username, password string
	fs.StringVar(&username, "u", "", "Username (required)")
	fs.StringVar(&username, "username", "", "Username (required)")
	fs.StringVar(&password, "p", "", "Password (required)")
	fs.StringVar(&password, "password", "", "Password (required)")
	fs.Parse(args)

	if username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Error: -u and -p are required")
		os.Exit(1)
	}

	c := client.New(serverURL())
	key, err := c.GenerateKey(username, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeLoginFile(username, key); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving login: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("New API Key generated and saved")
}

func cmdAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	var url, title string
	fs.StringVar(&url, "u", "", "URL to bookmark (required)")
	fs.StringVar(&url, "url", "", "URL to bookmark (required)")
	fs.StringVar(&title, "t", "", "Optional title")
	fs.StringVar(&title, "title", "", "Optional title")
	fs.Parse(args)

	if url == "" {
		fmt.Fprintln(os.Stderr, "Error: -u is required")
		os.Exit(1)
	}

	c, err := loadAuthenticatedClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := c.AddArticle(url, title); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if title != "" {
		fmt.Printf("Added %s\n", title)
	} else {
		fmt.Printf("Added %s\n", url)
	}
}

func cmdRemove(args []string) {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	var article string
	fs.StringVar(&article, "a", "", "Article id (required)")
	fs.StringVar(&article, "article", "", "Article id (required)")
	fs.Parse(args)

	id := parseArticleID(article)

	c, err := loadAuthenticatedClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := c.RemoveArticle(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Removed article", id)
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var limit int
	var verbose bool
	fs.IntVar(&limit, "l", 0, "Limit number of articles shown")
	fs.IntVar(&limit, "limit", 0, "Limit number of articles shown")
	fs.BoolVar(&verbose, "v", false, "Show added date and flags")
	fs.BoolVar(&verbose, "verbose", false, "Show added date and flags")
	fs.Parse(args)

	c, err := loadAuthenticatedClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	articles, err := c.ListArticles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if limit > 0 && limit < len(articles) {
		articles = articles[:limit]
	}

	for _, article := range articles {
		if article.Title != "" {
			fmt.Println(article.Title)
		}
		fmt.Println(article.URL)

		if verbose {
			fmt.Printf("  [%d] Added on %s\n", article.ID, article.Added)
			if article.Read {
				fmt.Println("  Read")
			} else {
				fmt.Println("  Not Read")
			}
			if article.Favorite {
				fmt.Println("  Favorite")
			}
			fmt.Println("=======================")
		}
	}
}

func cmdSetFlag(args []string, name string, read, favorite *bool) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	var article string
	fs.StringVar(&article, "a", "", "Article id (required)")
	fs.StringVar(&article, "article", "", "Article id (required)")
	fs.Parse(args)

	id := parseArticleID(article)

	c, err := loadAuthenticatedClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := c.SetFlags(id, read, favorite); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Marked article %d as %s\n", id, name)
}

func parseArticleID(raw string) uint {
	if raw == "" {
		fmt.Fprintln(os.Stderr, "Error: -a is required")
		os.Exit(1)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid article id %q\n", raw)
		os.Exit(1)
	}
	return uint(id)
}
