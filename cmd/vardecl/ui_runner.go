package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vardecl/internal/driver"
	"vardecl/internal/source"
	"vardecl/internal/ui"
)

type batchOutcome struct {
	fileSet *source.FileSet
	items   []driver.BatchItem
	err     error
}

func runBatchWithUI(ctx context.Context, title, dir string, files []string, opts driver.BatchOptions) (*source.FileSet, []driver.BatchItem, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fileSet, items, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- batchOutcome{fileSet: fileSet, items: items, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// UI мог выйти раньше времени; воркеры не должны встать на полном канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.items, uiErr
	}
	return outcome.fileSet, outcome.items, outcome.err
}
