package y21

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Dive! The two parts interpret the same commands differently, so there
// is no shared prep step; each part scans the raw input itself.

type command struct {
	dir string
	val int
}

func parseCommands(input string) ([]command, error) {
	var cmds []command
	sc := bufio.NewScanner(strings.NewReader(input))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		dir, raw, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("not a command: %q", line)
		}
		val, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", raw, err)
		}
		switch dir {
		case "forward", "down", "up":
		default:
			return nil, fmt.Errorf("not a command: %q", line)
		}
		cmds = append(cmds, command{dir: dir, val: val})
	}
	return cmds, sc.Err()
}

func solveD02P1(input string, _ any) (string, error) {
	cmds, err := parseCommands(input)
	if err != nil {
		return "", err
	}

	x, depth := 0, 0
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			x += c.val
		case "down":
			depth += c.val
		case "up":
			depth -= c.val
		}
	}
	return strconv.Itoa(x * depth), nil
}

func solveD02P2(input string, _ any) (string, error) {
	cmds, err := parseCommands(input)
	if err != nil {
		return "", err
	}

	x, depth, aim := 0, 0, 0
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			x += c.val
			depth += aim * c.val
		case "down":
			aim += c.val
		case "up":
			aim -= c.val
		}
	}
	return strconv.Itoa(x * depth), nil
}
