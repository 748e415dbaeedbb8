package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./circularmenu-mcp -config ./config.toml")
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	server := exec.Command(flag.Arg(0), flag.Args()[1:]...)

	client := mcp.NewClient(&mcp.Implementation{Name: "circularmenu-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.CommandTransport{Command: server}, nil)
	if err != nil {
		log.Fatalf("connect to %s: %v", flag.Arg(0), err)
	}
	defer session.Close()

	fmt.Println("Connected to the circularmenu server.")
	printUsage(os.Stdout)

	if err := repl(ctx, session, os.Stdin, os.Stdout); err != nil {
		log.Printf("read input: %v", err)
	}
}

// repl reads commands until /exit or end of input.
func repl(ctx context.Context, session *mcp.ClientSession, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/exit":
			return nil
		case "/tools":
			for tool, err := range session.Tools(ctx, nil) {
				if err != nil {
					fmt.Fprintf(out, "list tools: %v\n", err)
					break
				}
				fmt.Fprintf(out, "  %-14s %s\n", tool.Name, tool.Description)
			}
			continue
		}

		name, args, err := parseCommand(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
		if err != nil {
			fmt.Fprintf(out, "call %s: %v\n", name, err)
			continue
		}
		fmt.Fprint(out, formatResult(result))
	}
}

// formatResult prefers structured output and falls back to the text
// blocks.
func formatResult(result *mcp.CallToolResult) string {
	var b strings.Builder
	if result.IsError {
		b.WriteString("error: ")
	}
	if result.StructuredContent != nil && !result.IsError {
		if data, err := json.MarshalIndent(result.StructuredContent, "", "  "); err == nil {
			b.Write(data)
			b.WriteString("\n")
			return b.String()
		}
	}
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			b.WriteString(text.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}
