package match

import (
	"sort"

	"laptudirm.com/x/streak/internal/util"
)

// PlayerCount is the number of games a player played in a collection.
type PlayerCount struct {
	Name  string
	Games int
}

// Players returns every player in the given games with the number of games
// they played, most active first. Ties are broken by natural name order.
func Players(games []Game) []PlayerCount {
	counts := make(map[string]int)
	for _, game := range games {
		counts[game.White.Name]++
		if game.Black.Name != game.White.Name {
			counts[game.Black.Name]++
		}
	}

	players := make([]PlayerCount, 0, len(counts))
	for name, n := range counts {
		players = append(players, PlayerCount{Name: name, Games: n})
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].Games != players[j].Games {
			return players[i].Games > players[j].Games
		}

		return util.NaturalLess(players[i].Name, players[j].Name)
	})

	return players
}
