package cli

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/badgekeeper/internal/client/ui"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	_, ok := r.take()
	assert.False(t, ok)

	r.Navigate("/signup")
	r.Navigate("/login")
	p, ok := r.take()
	assert.True(t, ok)
	assert.Equal(t, "/login", p, "last navigation wins")

	_, ok = r.take()
	assert.False(t, ok, "take clears the pending path")

	r.enter("/badges/abc")
	assert.Equal(t, "/badges/abc", r.Location())
}

func TestTerminalNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := newTerminalNotifier(&buf)

	n.Notify(ui.Notice{Kind: ui.KindDestructive, Title: "Error creating badge", Description: "Please try again."})
	n.Notify(ui.Notice{Kind: ui.KindInfo, Title: "Saved"})

	assert.Equal(t, "[error] Error creating badge Please try again.\n[info] Saved\n", buf.String())
}
