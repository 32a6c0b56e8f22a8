package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/badgekeeper/internal/client/ui"
)

// terminalNotifier prints notices as single lines. Notices may arrive from
// submission goroutines, so writes are serialized.
type terminalNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func newTerminalNotifier(w io.Writer) *terminalNotifier {
	return &terminalNotifier{w: w}
}

func (n *terminalNotifier) Notify(x ui.Notice) {
	label := "info"
	if x.Kind == ui.KindDestructive {
		label = "error"
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if x.Description == "" {
		fmt.Fprintf(n.w, "[%s] %s\n", label, x.Title)
		return
	}
	fmt.Fprintf(n.w, "[%s] %s %s\n", label, x.Title, x.Description)
}
