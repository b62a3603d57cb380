package logging

// Canonical field names shared by all components.
const (
	FieldComponent = "component"
	FieldCycle     = "cycle"
	FieldPhase     = "phase"
	FieldReason    = "reason"
	FieldDuration  = "duration"
	FieldNextBreak = "next_break"
	FieldWidth     = "width"
	FieldHeight    = "height"
	FieldFrames    = "frames"
	FieldExitCode  = "exit_code"
)
