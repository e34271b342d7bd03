package lock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type refusingPinner struct {
	pins, unpins int
}

func (p *refusingPinner) Pin() error   { p.pins++; return ErrUnavailable }
func (p *refusingPinner) Unpin() error { p.unpins++; return ErrNotActive }

type grantingPinner struct {
	pinned bool
}

func (p *grantingPinner) Pin() error   { p.pinned = true; return nil }
func (p *grantingPinner) Unpin() error { p.pinned = false; return nil }

func TestLock_RefusalsAreSoft(t *testing.T) {
	var hints []string
	p := &refusingPinner{}
	l := New(p, func(msg string) { hints = append(hints, msg) })

	l.Engage()
	l.Release()

	assert.Equal(t, 1, p.pins)
	assert.Equal(t, 1, p.unpins)
	assert.Len(t, hints, 2)
	assert.Contains(t, hints[0], ErrUnavailable.Error())
	assert.Contains(t, hints[1], ErrNotActive.Error())
}

func TestLock_NilHintSwallowsRefusals(t *testing.T) {
	l := New(&refusingPinner{}, nil)
	l.Engage()
	l.Release()
}

func TestLock_NilPinner(t *testing.T) {
	l := New(nil, func(string) { t.Fatal("hint fired with no pinner") })
	l.Engage()
	l.Release()
}

func TestLock_GrantedPinIsSilent(t *testing.T) {
	p := &grantingPinner{}
	l := New(p, func(msg string) { t.Fatalf("unexpected hint: %s", msg) })

	l.Engage()
	assert.True(t, p.pinned)
	l.Release()
	assert.False(t, p.pinned)
}
