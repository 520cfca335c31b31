// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package session

import "sync"

// Widgets exposes the current tool, color and stroke width. A Session
// samples them at the moment each value is needed, never caching them
// across events.
type Widgets interface {
	Tool() string
	Color() string
	LineWidth() int
}

// Palette is a Widgets implementation holding plain values. It is safe for
// concurrent use.
type Palette struct {
	mu    sync.RWMutex
	tool  string
	color string
	width int
}

var _ Widgets = (*Palette)(nil)

// NewPalette returns a palette set to a black 2px brush.
func NewPalette() *Palette {
	return &Palette{tool: ToolBrush, color: "#000000", width: 2}
}

// Tool returns the selected tool.
func (p *Palette) Tool() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tool
}

// Color returns the selected hex color.
func (p *Palette) Color() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.color
}

// LineWidth returns the selected stroke width.
func (p *Palette) LineWidth() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.width
}

// SetTool selects a tool.
func (p *Palette) SetTool(tool string) {
	p.mu.Lock()
	p.tool = tool
	p.mu.Unlock()
}

// SetColor selects a hex color.
func (p *Palette) SetColor(color string) {
	p.mu.Lock()
	p.color = color
	p.mu.Unlock()
}

// SetLineWidth selects a stroke width.
func (p *Palette) SetLineWidth(width int) {
	p.mu.Lock()
	p.width = width
	p.mu.Unlock()
}
