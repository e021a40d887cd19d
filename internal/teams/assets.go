package teams

import "fmt"

func LogoURL(teamID int) string {
	if teamID == 0 {
		return ""
	}
	return fmt.Sprintf("https://cdn.nba.com/logos/nba/%d/global/L/logo.svg", teamID)
}

func HeadshotURL(playerID int) string {
	if playerID == 0 {
		return ""
	}
	return fmt.Sprintf("https://cdn.nba.com/headshots/nba/latest/1040x760/%d.png", playerID)
}
