package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/luca-patrignani/spidertaire/domain/spider"
)

type commandKind int

const (
	cmdAction commandKind = iota
	cmdNew
	cmdHint
	cmdVerify
	cmdHelp
	cmdQuit
)

type command struct {
	kind   commandKind
	action spider.Action
}

var errEmptyCommand = errors.New("empty command")

const helpText = `m <col> <row> <col> <row>   move a card (and the cards below it)
s <col> <row>               move a card to its first legal destination
d                           deal a reserve set
h                           show the legal moves
n                           new game
v                           verify the move journal
q                           quit`

// parseCommand turns one input line into a command. Columns and rows are
// 0-indexed, as shown in the table header.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{}, errEmptyCommand
	}
	args := fields[1:]
	switch fields[0] {
	case "m", "move":
		nums, err := parseInts(args, 4)
		if err != nil {
			return command{}, err
		}
		return command{kind: cmdAction, action: spider.Action{
			Type: spider.ActionMove,
			From: spider.Position{Column: nums[0], Row: nums[1]},
			To:   spider.Position{Column: nums[2], Row: nums[3]},
		}}, nil
	case "s", "select":
		nums, err := parseInts(args, 2)
		if err != nil {
			return command{}, err
		}
		return command{kind: cmdAction, action: spider.Action{
			Type: spider.ActionSelect,
			From: spider.Position{Column: nums[0], Row: nums[1]},
		}}, nil
	case "d", "deal":
		return command{kind: cmdAction, action: spider.Action{Type: spider.ActionDeal}}, nil
	case "n", "new":
		return command{kind: cmdNew}, nil
	case "h", "hint":
		return command{kind: cmdHint}, nil
	case "v", "verify":
		return command{kind: cmdVerify}, nil
	case "?", "help":
		return command{kind: cmdHelp}, nil
	case "q", "quit", "exit":
		return command{kind: cmdQuit}, nil
	default:
		return command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

func parseInts(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("expected %d numbers, got %d", want, len(args))
	}
	nums := make([]int, want)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative coordinate %d", n)
		}
		nums[i] = n
	}
	return nums, nil
}
