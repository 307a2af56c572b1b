package main

import (
	"fmt"
	"strconv"

	"github.com/signadot/xidx-format/go-xidx"

	"github.com/olekukonko/tablewriter"
	"github.com/scott-cotton/cli"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(cc.Out)
	table.SetHeader([]string{"path", "kind", "type", "volume", "items"})
	table.SetAutoWrapText(false)
	for _, file := range inputs(args) {
		g, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		err = xidx.Walk(g, func(n xidx.Node) error {
			if row, ok := infoRow(n, cfg.All); ok {
				table.Append(row)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	table.Render()
	return nil
}

func infoRow(n xidx.Node, all bool) ([]string, bool) {
	p, err := xidx.Path(n)
	if err != nil {
		p = "?"
	}
	row := []string{p, xidx.Kind(n), "", "", ""}
	switch x := n.(type) {
	case xidx.Domain:
		row[2] = x.Type().String()
		row[3] = strconv.Itoa(x.Volume())
		row[4] = strconv.Itoa(len(xidx.Children(x)))
		return row, true
	case *xidx.Variable:
		row[2] = x.Center.String()
		row[4] = strconv.Itoa(len(x.Items))
		if d, err := x.ResolveDomain(); err == nil {
			row[3] = strconv.Itoa(d.Volume())
		}
		return row, true
	case *xidx.DataItem:
		if dt, err := x.DataType(); err == nil {
			row[2] = x.Format.String() + " " + dt.String()
		} else {
			row[2] = x.Format.String()
		}
		row[3] = strconv.Itoa(x.Volume())
	case *xidx.Topology:
		row[2] = x.Type.String()
	case *xidx.Geometry:
		row[2] = x.Type.String()
		row[4] = strconv.Itoa(len(x.Items))
	case *xidx.Group:
		row[4] = strconv.Itoa(len(xidx.Children(x)))
	}
	return row, all
}
