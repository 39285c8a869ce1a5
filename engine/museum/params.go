package museum

import "github.com/Carmen-Shannon/oxy-museum/common"

// PostProcessParams are the transient display parameters a visitor can tune inside a room.
// They reset to DefaultParams whenever the tracked room changes.
type PostProcessParams struct {
	Brightness     float32
	Contrast       float32
	BlurRadius     float32
	BloomThreshold float32
	BloomIntensity float32
	CelBands       float32
}

// DefaultParams returns the parameter values every room starts with.
func DefaultParams() PostProcessParams {
	return PostProcessParams{
		Brightness:     0,
		Contrast:       1,
		BlurRadius:     2,
		BloomThreshold: 0.8,
		BloomIntensity: 1,
		CelBands:       4,
	}
}

// neutralParams leaves the image untouched.
func neutralParams() PostProcessParams {
	return PostProcessParams{Contrast: 1, BloomThreshold: 1}
}

// ForRoom keeps only the parameters showcased by the room and neutralizes the rest.
// Everything showcases all of them; Intro, Halls and Particles showcase none.
//
// Parameters:
//   - room: the room being rendered
//
// Returns:
//   - PostProcessParams: the parameters to apply
func (p PostProcessParams) ForRoom(room RoomID) PostProcessParams {
	out := neutralParams()
	switch room {
	case BrightContrast:
		out.Brightness, out.Contrast = p.Brightness, p.Contrast
	case Blur:
		out.BlurRadius = p.BlurRadius
	case CelShading:
		out.CelBands = p.CelBands
	case Bloom:
		out.BloomThreshold, out.BloomIntensity = p.BloomThreshold, p.BloomIntensity
	case Everything:
		out = p
	}
	return out
}

// Nudge adjusts the room's primary parameter by primary steps and its secondary parameter
// (if the room has one) by secondary steps, clamping each to its valid range.
//
// Parameters:
//   - room: the room whose parameters are tuned
//   - primary: steps for the primary parameter (Up/Down)
//   - secondary: steps for the secondary parameter (Right/Left)
func (p *PostProcessParams) Nudge(room RoomID, primary, secondary float32) {
	switch room {
	case BrightContrast:
		p.Brightness = common.Clamp(p.Brightness+primary*0.05, -1, 1)
		p.Contrast = common.Clamp(p.Contrast+secondary*0.1, 0, 4)
	case Blur:
		p.BlurRadius = common.Clamp(p.BlurRadius+primary, 0, 16)
	case CelShading:
		p.CelBands = common.Clamp(p.CelBands+primary, 1, 16)
	case Bloom:
		p.BloomThreshold = common.Clamp(p.BloomThreshold+primary*0.05, 0, 1)
		p.BloomIntensity = common.Clamp(p.BloomIntensity+secondary*0.1, 0, 4)
	case Everything:
		p.Brightness = common.Clamp(p.Brightness+primary*0.05, -1, 1)
		p.BloomIntensity = common.Clamp(p.BloomIntensity+secondary*0.1, 0, 4)
	}
}
