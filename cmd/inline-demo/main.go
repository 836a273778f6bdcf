package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	inline "github.com/grindlemire/go-inline"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "inline-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	term := inline.NewStdoutTerminal()
	r := inline.NewRenderer(term)
	defer r.Dispose()

	resized := inline.WatchResize(ctx)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	log := inline.NewStatic()
	start := time.Now()
	tick := 0
	total := 120

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-resized:
			// Size is re-read inside Render; a tick only forces the redraw.
		case <-ticker.C:
			tick++
		}

		if tick > total {
			log.Append(doneLine(time.Since(start)))
			if err := r.Render(scene(log, tick, total)); err != nil {
				return err
			}
			return nil
		}
		if tick > 0 && tick%20 == 0 {
			log.Append(stepLine(tick/20, time.Since(start)))
		}
		if err := r.Render(scene(log, tick, total)); err != nil {
			return err
		}
	}
}

func scene(log *inline.Static, tick, total int) inline.Node {
	percent := tick * 100 / total
	spinner := spinnerFrames[tick%len(spinnerFrames)]

	header := inline.NewText(
		inline.WithStyle(inline.NewTextStyle().Bold().Foreground(inline.Cyan)),
		inline.WithContent("inline-demo"),
	)

	status := inline.NewBox(
		inline.WithDirection(inline.Row),
		inline.WithGap(1),
		inline.WithChildren(
			inline.NewText(
				inline.WithStyle(inline.NewTextStyle().Foreground(inline.Green)),
				inline.WithContent(spinner),
			),
			inline.NewText(inline.WithContent(fmt.Sprintf("working... %3d%%", percent))),
		),
	)

	bar := progressBar(percent, 40)

	return inline.NewBox(
		inline.WithDirection(inline.Column),
		inline.WithChildren(
			log,
			inline.NewBox(
				inline.WithDirection(inline.Column),
				inline.WithBorder(inline.BorderRound),
				inline.WithBoxStyle(inline.NewTextStyle().Foreground(inline.BrightBlack)),
				inline.WithChildren(header, status, bar),
			),
		),
	)
}

func progressBar(percent, width int) inline.Node {
	filled := width * percent / 100
	bar := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '█')
		} else {
			bar = append(bar, '░')
		}
	}
	return inline.NewText(
		inline.WithStyle(inline.NewTextStyle().Foreground(inline.Blue)),
		inline.WithContent(string(bar)),
	)
}

func stepLine(n int, elapsed time.Duration) inline.Node {
	return inline.NewText(
		inline.WithSpan(
			inline.NewText(
				inline.WithStyle(inline.NewTextStyle().Foreground(inline.Green)),
				inline.WithContent("✔"),
			),
			inline.Str(fmt.Sprintf(" step %d finished (%s)", n, elapsed.Round(time.Millisecond))),
		),
	)
}

func doneLine(elapsed time.Duration) inline.Node {
	return inline.NewText(
		inline.WithStyle(inline.NewTextStyle().Bold().Foreground(inline.Green)),
		inline.WithContent(fmt.Sprintf("✔ all steps finished in %s", elapsed.Round(time.Millisecond))),
	)
}
