package token

import (
	"context"

	"github.com/signadot/go-datalog/debug"
)

// Pipe runs a Source in its own goroutine and delivers its tokens over a
// bounded channel in FIFO order, so a consumer of the Pipe sees exactly
// the tokens it would see pulling from the Source directly.
type Pipe struct {
	ch     chan Token
	cancel context.CancelFunc
	done   chan struct{}

	peeked *Token
	eof    Token
}

var _ Source = (*Pipe)(nil)

// NewPipe starts producing tokens from src.  size bounds the number of
// tokens buffered ahead of the consumer; values below 1 are treated as 1.
// The producer stops after TEOF, or when ctx is done or the Pipe is
// closed.
func NewPipe(ctx context.Context, src Source, size int) *Pipe {
	if size < 1 {
		size = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	p := &Pipe{
		ch:     make(chan Token, size),
		cancel: cancel,
		done:   make(chan struct{}),
		eof:    Token{Type: TEOF},
	}
	go p.produce(ctx, src)
	return p
}

func (p *Pipe) produce(ctx context.Context, src Source) {
	defer close(p.done)
	defer close(p.ch)
	n := 0
	for {
		t := src.Next()
		select {
		case p.ch <- t:
			n++
		case <-ctx.Done():
			if debug.Lex() {
				debug.Logf("pipe cancelled after %d tokens\n", n)
			}
			return
		}
		if t.Type == TEOF {
			return
		}
	}
}

func (p *Pipe) recv() Token {
	t, ok := <-p.ch
	if !ok {
		return p.eof
	}
	if t.Type == TEOF {
		p.eof = t
	}
	return t
}

func (p *Pipe) Next() Token {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t
	}
	return p.recv()
}

func (p *Pipe) Peek() Token {
	if p.peeked == nil {
		t := p.recv()
		p.peeked = &t
	}
	return *p.peeked
}

// Close stops the producer and waits for it to exit.  It is safe to call
// more than once.
func (p *Pipe) Close() {
	p.cancel()
	<-p.done
}
