package bikerush

import (
	"fmt"

	"github.com/vovakirdan/bike-rush/internal/core"
)

// Display conversions from world units.
const (
	mphPerSpeed    = 0.6 * 5
	metersPerUnit  = 1.0 / 100
	restartMessage = "Press R to restart"
	resumeMessage  = "Press P to resume"
)

// HUD is the text the host shows while the level runs.
type HUD struct {
	Time     string
	Speed    string
	Gear     string
	Distance string
}

// Banner is the centered message shown when the level ends or is paused.
type Banner struct {
	Visible  bool
	Title    string
	Subtitle string
	Hint     string
	Color    core.Color
}

func makeHUD(b Bike, l Level) HUD {
	return HUD{
		Time:     fmt.Sprintf("Time: %.1fs", l.Remaining()/1000),
		Speed:    fmt.Sprintf("Speed: %.1f mph", b.Speed*mphPerSpeed),
		Gear:     fmt.Sprintf("Gear: %d", b.Gear),
		Distance: fmt.Sprintf("Distance: %.1f m", l.Distance*metersPerUnit),
	}
}

func makeBanner(l Level, paused bool) Banner {
	switch {
	case l.Status == StatusComplete:
		return Banner{
			Visible:  true,
			Title:    "LEVEL COMPLETE!",
			Subtitle: fmt.Sprintf("Finished in %.1fs", l.Elapsed/1000),
			Hint:     restartMessage,
			Color:    core.ColorBrightGreen,
		}
	case l.Status == StatusFailed:
		return Banner{
			Visible:  true,
			Title:    "LEVEL FAILED!",
			Subtitle: failureText(l),
			Hint:     restartMessage,
			Color:    core.ColorBrightRed,
		}
	case paused:
		return Banner{
			Visible: true,
			Title:   "PAUSED",
			Hint:    resumeMessage,
			Color:   core.ColorBrightYellow,
		}
	}
	return Banner{}
}

func failureText(l Level) string {
	switch l.Reason {
	case ReasonTimeout:
		return fmt.Sprintf("Out of time at %.1f m", l.Distance*metersPerUnit)
	case ReasonCrash:
		return fmt.Sprintf("Crashed into a %s", l.CrashedOn)
	}
	return ""
}
