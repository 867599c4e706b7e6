package game

// State is the top-level screen the loop is showing.
type State int

const (
	StateMainMenu State = iota
	StateStartMenu
	StateOptions
	StateMultiplayer
	StateCredits
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main-menu"
	case StateStartMenu:
		return "start-menu"
	case StateOptions:
		return "options"
	case StateMultiplayer:
		return "multiplayer"
	case StateCredits:
		return "credits"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}
