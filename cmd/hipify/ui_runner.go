package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"hipify/internal/driver"
	"hipify/internal/ui"
)

type convertOutcome struct {
	result *driver.DirResult
	err    error
}

// runConvertWithUI drives a directory conversion behind a Bubble Tea
// progress view. The conversion runs in a goroutine and streams events
// through a channel sink; the UI quits when the channel closes.
func runConvertWithUI(ctx context.Context, dir string, opts driver.Options) (*driver.DirResult, error) {
	files, err := driver.ListSources(dir)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan convertOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = driver.ChannelSink{Ch: events}
		res, err := driver.ConvertDir(contextOrBackground(ctx), dir, optsCopy)
		outcomeCh <- convertOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("hipify "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
