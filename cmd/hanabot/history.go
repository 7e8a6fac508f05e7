package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/lox/hanabot/internal/history"
	"github.com/lox/hanabot/internal/render"
)

// HistoryCmd groups commands over recorded games.
type HistoryCmd struct {
	Show HistoryShowCmd `cmd:"" help:"Print recorded games"`
}

// HistoryShowCmd prints one or more game records.
type HistoryShowCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Record files to show"`
	Verify bool     `help:"Replay each game and check the recorded result"`
}

func (cmd *HistoryShowCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	for _, file := range cmd.Files {
		r, err := history.ReadFile(file)
		if err != nil {
			return err
		}
		fmt.Println(showRecord(r))

		if !cmd.Verify {
			continue
		}
		if err := history.Verify(ctx, r, logger.WithPrefix("replay")); err != nil {
			fmt.Println(render.ErrorStyle.Render("Replay mismatch: " + err.Error()))
			return err
		}
		fmt.Println(render.SuccessStyle.Render("Replay matches"))
	}
	return nil
}

func showRecord(r *history.Record) string {
	var b strings.Builder
	b.WriteString(render.HeaderStyle.Render(r.ID))
	b.WriteString("\n")
	fmt.Fprintf(&b, "seed %d  agent %s  played %s\n", r.Seed, orDash(r.Agent), r.Time.Format("2006-01-02 15:04:05"))
	for i, a := range r.Actions {
		fmt.Fprintf(&b, "%3d P%d %s\n", i+1, i%2, a)
	}
	if r.Fused {
		b.WriteString(render.ErrorStyle.Render(fmt.Sprintf("Fused out after %d turns: score 0", r.Turns)))
	} else {
		b.WriteString(render.SuccessStyle.Render(fmt.Sprintf("Score %d/25 in %d turns, piles %v", r.Score, r.Turns, r.Piles)))
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
