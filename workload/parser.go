// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package workload

import (
	"errors"
	"fmt"
	"io"

	"github.com/ajroetker/matbench/internal/rawio"
	"github.com/ajroetker/matbench/kernel"
)

type parseState uint8

const (
	stateIdle parseState = iota
	stateNumber
)

// Parser is an incremental decimal integer scanner. It is fed arbitrary
// chunks of text and keeps its state between calls, so a number split
// across two chunks parses the same as one that is not.
//
// Digits accumulate base 10, a '-' marks the value negative, and any other
// byte ends the value in progress. A separator outside a number is
// skipped, so runs of spaces or a space before a newline never produce
// empty values. Values are stored in order into the destination matrices;
// once they are full, further values are counted in Dropped and discarded.
type Parser struct {
	targets [][]int32
	idx     int
	pos     int

	state parseState
	neg   bool
	val   int32

	values  int
	dropped int
}

// NewParser returns a parser that fills dst in order.
func NewParser(dst ...*kernel.Matrix) *Parser {
	p := &Parser{}
	for _, m := range dst {
		if len(m.Data) > 0 {
			p.targets = append(p.targets, m.Data)
		}
	}
	return p
}

// Feed consumes one chunk of input.
func (p *Parser) Feed(chunk []byte) {
	for _, ch := range chunk {
		switch {
		case ch >= '0' && ch <= '9':
			p.val = p.val*10 + int32(ch-'0')
			p.state = stateNumber
		case ch == '-':
			p.neg = true
			p.state = stateNumber
		default:
			if p.state == stateNumber {
				p.commit()
			}
		}
	}
}

// Flush commits a value still in progress at the end of input.
func (p *Parser) Flush() {
	if p.state == stateNumber {
		p.commit()
	}
}

func (p *Parser) commit() {
	v := p.val
	if p.neg {
		v = -v
	}
	p.val, p.neg, p.state = 0, false, stateIdle

	if p.idx >= len(p.targets) {
		p.dropped++
		return
	}
	p.targets[p.idx][p.pos] = v
	p.values++
	p.pos++
	if p.pos == len(p.targets[p.idx]) {
		p.idx++
		p.pos = 0
	}
}

// Values returns the number of values stored so far.
func (p *Parser) Values() int { return p.values }

// Dropped returns the number of values discarded because every
// destination was already full.
func (p *Parser) Dropped() int { return p.dropped }

// Full reports whether every destination has been filled.
func (p *Parser) Full() bool { return p.idx >= len(p.targets) }

// Parse reads r in chunks of chunkSize bytes, one Read per chunk, and
// parses the text into dst. Read errors other than io.EOF are returned.
func Parse(r io.Reader, chunkSize int, dst ...*kernel.Matrix) (Stats, error) {
	var st Stats
	if chunkSize < 1 {
		return st, fmt.Errorf("invalid chunk size %d", chunkSize)
	}
	p := NewParser(dst...)
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			p.Feed(buf[:n])
			st.Reads++
			st.BytesRead += int64(n)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, err
		}
	}
	p.Flush()
	st.Values = p.Values()
	st.Dropped = p.Dropped()
	return st, nil
}

// ReadMatrices opens path with raw unbuffered reads and parses it into dst.
func ReadMatrices(path string, chunkSize int, dst ...*kernel.Matrix) (Stats, error) {
	f, err := rawio.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("open for read: %w", err)
	}
	defer f.Close()

	st, err := Parse(f, chunkSize, dst...)
	if err != nil {
		return st, fmt.Errorf("read: %w", err)
	}
	return st, nil
}
