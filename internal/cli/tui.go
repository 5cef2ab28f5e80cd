// seehuhn.de/go/stringart - thread patterns from raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/stringart"
)

const progressBarWidth = 40

// batcher runs the batches of a session on behalf of the progress view.
// At most one batch is in flight at any time.
type batcher struct {
	ctx     context.Context
	session *stringart.Session
	in      *stringart.Input
	wg      sync.WaitGroup
}

// batchMsg reports the outcome of one batch.
type batchMsg struct {
	committed int
	threads   int
	state     stringart.State
	reason    string
	err       error
}

// next returns a command which runs one batch.
func (b *batcher) next() tea.Cmd {
	b.wg.Add(1)
	return func() tea.Msg {
		defer b.wg.Done()
		res, err := b.session.Solve(b.ctx, b.in)
		if err != nil {
			return batchMsg{err: err}
		}
		return batchMsg{
			committed: res.Committed,
			threads:   len(res.Lines),
			state:     res.State,
			reason:    b.session.Reason(),
		}
	}
}

// progressModel is the bubbletea model showing the progress of a run.
// Each batch result schedules the next batch until the session is
// exhausted, the user quits, or an error occurs.
type progressModel struct {
	batcher *batcher
	budget  int
	start   time.Time

	threads  int
	batches  int
	state    stringart.State
	reason   string
	err      error
	quitting bool
}

func newProgressModel(b *batcher) progressModel {
	return progressModel{
		batcher: b,
		budget:  b.in.Params.LineBudget,
		start:   time.Now(),
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.batcher.next()
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case batchMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.batches++
		m.threads = msg.threads
		m.state = msg.state
		m.reason = msg.reason
		if m.state == stringart.Exhausted || m.quitting {
			return m, tea.Quit
		}
		return m, m.batcher.next()
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("String art"))
	b.WriteString("\n\n")

	// The path has one more pin than there are threads.
	total := max(m.budget-1, 1)
	done := min(m.threads*progressBarWidth/total, progressBarWidth)
	if m.state == stringart.Exhausted {
		done = progressBarWidth
	}
	b.WriteString(styleBarDone.Render(strings.Repeat("█", done)))
	b.WriteString(styleBarTodo.Render(strings.Repeat("░", progressBarWidth-done)))
	b.WriteString(" ")
	b.WriteString(styleNumber.Render(fmt.Sprintf("%d", m.threads)))
	b.WriteString(styleDim.Render(fmt.Sprintf(" / %d threads", total)))
	b.WriteString("\n")

	elapsed := time.Since(m.start).Round(100 * time.Millisecond)
	status := m.state.String()
	if m.reason != "" {
		status = m.reason
	}
	b.WriteString(styleDim.Render(fmt.Sprintf("%d batches · %s · %s", m.batches, elapsed, status)))
	b.WriteString("\n\n")
	b.WriteString(styleDim.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

// runInteractive runs the session inside a bubbletea program. Quitting
// early keeps the threads committed so far.
func runInteractive(ctx context.Context, s *stringart.Session, in *stringart.Input) error {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	b := &batcher{ctx: ctx, session: s, in: in}
	final, err := tea.NewProgram(newProgressModel(b), tea.WithContext(ctx)).Run()
	cancel()
	b.wg.Wait()

	if perr := parent.Err(); perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	if m, ok := final.(progressModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
