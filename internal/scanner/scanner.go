// Package scanner reads equipment codes. Only a mock exists: there is no
// camera or QR decoding.
package scanner

import (
	"context"
	"time"
)

// Scanner returns the raw code of the next scanned tag.
type Scanner interface {
	Scan(ctx context.Context) (string, error)
}

// MockCode is the tag on the Titan-950 Ultra Hauler.
const MockCode = "0401"

// Mock always scans Code after Delay.
type Mock struct {
	Code  string
	Delay time.Duration
}

func NewMock() *Mock {
	return &Mock{Code: MockCode}
}

func (m *Mock) Scan(ctx context.Context) (string, error) {
	if m.Delay > 0 {
		t := time.NewTimer(m.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.Code, nil
}
