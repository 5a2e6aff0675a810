package main

import (
	"strconv"
	"strings"

	"github.com/luca-patrignani/spidertaire/domain/spider"
	"github.com/pterm/pterm"
)

const hiddenLabel = "▓▓"

func cardLabel(c spider.Cell) string {
	if c.Visibility == spider.Hidden || c.Card == nil {
		return pterm.Gray(hiddenLabel)
	}
	if c.Card.Suit.IsRed() {
		return pterm.LightRed(c.Card.String())
	}
	return pterm.LightWhite(c.Card.String())
}

// tableauData lays the cells out as table rows: a header with the column
// numbers, then one row per tableau row with the row number first.
func tableauData(v spider.View) [][]string {
	rows := 0
	for _, h := range v.Heights {
		rows = max(rows, h)
	}
	header := []string{""}
	for c := range spider.Columns {
		header = append(header, strconv.Itoa(c))
	}
	data := [][]string{header}
	for r := range rows {
		row := make([]string, spider.Columns+1)
		row[0] = strconv.Itoa(r)
		data = append(data, row)
	}
	for _, cell := range v.Cells {
		data[cell.Position.Row+1][cell.Position.Column+1] = cardLabel(cell)
	}
	return data
}

func getTableauPanel(v spider.View) (pterm.Panel, error) {
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableauData(v)).Srender()
	if err != nil {
		return pterm.Panel{}, err
	}
	return pterm.Panel{Data: table}, nil
}

func getReservePanel(v spider.View) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	pile := "empty"
	if v.Reserve > 0 {
		pile = strings.TrimSpace(strings.Repeat(hiddenLabel+" ", v.Reserve))
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|RESERVE|")).WithTitleTopCenter().Sprintf("%s\n%d left (%s)", pile, v.Reserve, v.Difficulty)}
}

func getMovesPanel(moves []spider.Move) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	text := "no moves, deal or start a new game"
	if len(moves) > 0 {
		lines := make([]string, len(moves))
		for i, m := range moves {
			lines[i] = m.String()
		}
		text = strings.Join(lines, "\n")
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan("|MOVES|")).WithTitleTopCenter().Sprint(text)}
}

func printState(v spider.View, additionalPanel ...pterm.Panel) error {
	tableau, err := getTableauPanel(v)
	if err != nil {
		return err
	}
	dashboard := []pterm.Panel{getReservePanel(v)}
	dashboard = append(dashboard, additionalPanel...)
	return pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{tableau},
		dashboard,
	}).Render()
}
