package dropzone

import "time"

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandItemStyle     CommandType = iota // set Opacity/Scale on ItemID
	CommandItemReturn                       // animate ItemID from From back to Position, then restore full style
	CommandItemRemoved                      // remove ItemID from its source list
	CommandZoneHighlight                    // set Highlight on ZoneID
	CommandZoneFilled                       // mark ZoneID filled with ItemID
	CommandPreviewShow                      // create a floating preview of ItemID at Position
	CommandPreviewMove                      // move the preview to Position
	CommandPreviewStyle                     // set preview Opacity/Scale (exit animation frames)
	CommandPreviewRemove                    // destroy the preview
)

var commandTypeNames = [...]string{
	"item-style", "item-return", "item-removed", "zone-highlight", "zone-filled",
	"preview-show", "preview-move", "preview-style", "preview-remove",
}

func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "unknown"
}

// RenderCommand is a declarative presentation change. The engine side never
// touches a rendering surface; a Renderer applies the commands.
type RenderCommand struct {
	Type      CommandType
	ItemID    string
	ZoneID    string
	Position  Vec2
	From      Vec2 // CommandItemReturn start position
	Opacity   float64
	Scale     float64
	Highlight bool
	Duration  time.Duration // CommandItemReturn animation length
}

// Renderer applies render commands to a presentation layer.
type Renderer interface {
	Apply(RenderCommand)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(RenderCommand)

// Apply calls f(cmd).
func (f RendererFunc) Apply(cmd RenderCommand) { f(cmd) }

// CommandBuffer is a Renderer that records commands in order. Flush replays
// them into another Renderer and clears the buffer.
type CommandBuffer struct {
	Commands []RenderCommand
}

// Apply appends cmd.
func (b *CommandBuffer) Apply(cmd RenderCommand) {
	b.Commands = append(b.Commands, cmd)
}

// Flush applies all buffered commands to r in order and empties the buffer.
func (b *CommandBuffer) Flush(r Renderer) {
	for _, cmd := range b.Commands {
		r.Apply(cmd)
	}
	b.Commands = b.Commands[:0]
}

// Types returns the command types in order, mostly for tests and logs.
func (b *CommandBuffer) Types() []CommandType {
	out := make([]CommandType, len(b.Commands))
	for i := range b.Commands {
		out[i] = b.Commands[i].Type
	}
	return out
}

type nopRenderer struct{}

func (nopRenderer) Apply(RenderCommand) {}
