package recording

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdPush         CommandType = iota // Save the graphics state
	CmdPop                             // Restore the graphics state
	CmdSetLineWidth                    // Set the stroke width
	CmdSetLineDash                     // Set the dash pattern
	CmdSetColor                        // Set the drawing color
	CmdTranslate                       // Translate the transform
	CmdRotate                          // Rotate the transform
	CmdScale                           // Scale the transform

	// Drawing commands
	CmdStroke     // Stroke a path
	CmdFill       // Fill a path
	CmdFillString // Draw a string
	CmdDrawImage  // Draw an image
)

var commandTypeNames = [...]string{
	CmdPush:         "Push",
	CmdPop:          "Pop",
	CmdSetLineWidth: "SetLineWidth",
	CmdSetLineDash:  "SetLineDash",
	CmdSetColor:     "SetColor",
	CmdTranslate:    "Translate",
	CmdRotate:       "Rotate",
	CmdScale:        "Scale",
	CmdStroke:       "Stroke",
	CmdFill:         "Fill",
	CmdFillString:   "FillString",
	CmdDrawImage:    "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// FaceRef is a reference to a font face in the resource pool.
type FaceRef uint32

// PushCommand saves the graphics state.
type PushCommand struct{}

// Type implements Command.
func (PushCommand) Type() CommandType { return CmdPush }

// PopCommand restores the previously saved graphics state.
type PopCommand struct{}

// Type implements Command.
func (PopCommand) Type() CommandType { return CmdPop }

// SetLineWidthCommand sets the width of stroked paths.
type SetLineWidthCommand struct {
	Width vg.Length
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// SetLineDashCommand sets the dash pattern and its offset.
type SetLineDashCommand struct {
	Dashes []vg.Length
	Offset vg.Length
}

// Type implements Command.
func (SetLineDashCommand) Type() CommandType { return CmdSetLineDash }

// SetColorCommand sets the color used by strokes, fills and text.
type SetColorCommand struct {
	Color color.Color
}

// Type implements Command.
func (SetColorCommand) Type() CommandType { return CmdSetColor }

// TranslateCommand translates the current transform.
type TranslateCommand struct {
	Offset vg.Point
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// RotateCommand rotates the current transform, counter-clockwise in
// radians.
type RotateCommand struct {
	Angle float64
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// ScaleCommand scales the current transform.
type ScaleCommand struct {
	X, Y float64
}

// Type implements Command.
func (ScaleCommand) Type() CommandType { return CmdScale }

// StrokeCommand strokes a path.
type StrokeCommand struct {
	Path PathRef
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// FillCommand fills a path.
type FillCommand struct {
	Path PathRef
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// FillStringCommand draws text with its baseline origin at At.
type FillStringCommand struct {
	Face FaceRef
	At   vg.Point
	Text string
}

// Type implements Command.
func (FillStringCommand) Type() CommandType { return CmdFillString }

// DrawImageCommand draws an image scaled into Rect.
type DrawImageCommand struct {
	Image ImageRef
	Rect  vg.Rectangle
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
