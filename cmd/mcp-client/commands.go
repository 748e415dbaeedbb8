package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// command is one REPL verb and the tool it drives.
type command struct {
	name  string
	usage string
	about string
	tool  string
	args  func(fields []string) (map[string]any, error)
}

func noArgs(fields []string) (map[string]any, error) {
	if len(fields) > 0 {
		return nil, fmt.Errorf("takes no arguments")
	}
	return map[string]any{}, nil
}

func intArg(name string, optional bool) func([]string) (map[string]any, error) {
	return func(fields []string) (map[string]any, error) {
		switch {
		case len(fields) == 0 && optional:
			return map[string]any{}, nil
		case len(fields) != 1:
			return nil, fmt.Errorf("expects one %s", name)
		}
		v, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", name, fields[0], err)
		}
		return map[string]any{name: v}, nil
	}
}

var commands = []command{
	{name: "/show", about: "Expand the menu", tool: "menu_show", args: noArgs},
	{name: "/hide", about: "Collapse the menu", tool: "menu_hide", args: noArgs},
	{name: "/toggle", about: "Toggle the menu", tool: "menu_toggle", args: noArgs},
	{name: "/select", usage: "<index>", about: "Select an item", tool: "menu_select", args: intArg("index", false)},
	{name: "/state", about: "Describe the menu", tool: "menu_state", args: noArgs},
	{name: "/history", usage: "[limit]", about: "Recorded transitions", tool: "menu_history", args: intArg("limit", true)},
}

// parseCommand maps a REPL line to a tool call.
func parseCommand(input string) (string, map[string]any, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("empty command")
	}
	for _, c := range commands {
		if c.name != fields[0] {
			continue
		}
		args, err := c.args(fields[1:])
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w (usage: %s %s)", c.name, err, c.name, c.usage)
		}
		return c.tool, args, nil
	}
	return "", nil, fmt.Errorf("unknown command %q", fields[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Available commands:")
	line := func(verb, about string) {
		fmt.Fprintf(w, "  %-18s %s\n", verb, about)
	}
	line("/tools", "List available tools")
	for _, c := range commands {
		line(strings.TrimSpace(c.name+" "+c.usage), c.about)
	}
	line("/exit", "Exit the client")
	fmt.Fprintln(w)
}
