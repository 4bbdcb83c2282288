package game

import (
	"github.com/minaorangina/literature/deck"
	"github.com/minaorangina/literature/protocol"
)

// Snapshot builds the public view of the game, safe to send to any player.
// Hands appear only as counts.
func (g *Game) Snapshot() protocol.GameSnapshot {
	teams := []protocol.TeamSummary{}
	for _, t := range g.Teams {
		summary := protocol.TeamSummary{
			Name:    t.Name,
			Score:   t.Score,
			SetsWon: []string{},
			Players: []string{},
		}
		for _, s := range t.SetsWon {
			summary.SetsWon = append(summary.SetsWon, s.String())
		}
		for _, seat := range t.Seats {
			summary.Players = append(summary.Players, g.Players[seat].ID)
		}
		teams = append(teams, summary)
	}

	counts := map[string]int{}
	players := []protocol.PlayerInfo{}
	for _, p := range g.Players {
		counts[p.ID] = g.HandCount(p.Seat)
		players = append(players, protocol.PlayerInfo{
			PlayerID: p.ID,
			Name:     p.Name,
			IsBot:    p.IsBot,
		})
	}

	currentTurn := ""
	if g.CurrentTurn >= 0 && g.Status != Completed {
		currentTurn = g.Players[g.CurrentTurn].ID
	}

	return protocol.GameSnapshot{
		GameID:      g.ID,
		JoinCode:    g.JoinCode,
		Status:      g.Status.String(),
		CurrentTurn: currentTurn,
		Teams:       teams,
		CardCounts:  counts,
		Players:     players,
	}
}

// BuildHand builds a seat's private hand payload. Only ever sent to that seat.
func (g *Game) BuildHand(seat int) protocol.HandPayload {
	payload := protocol.HandPayload{Cards: []int{}, Names: []string{}}
	for _, c := range g.HandOf(seat) {
		payload.Cards = append(payload.Cards, int(c))
		payload.Names = append(payload.Names, c.String())
	}
	return payload
}

// BuildInference builds a seat's private view of where unresolved cards
// might be. The weights are a ranking heuristic, not odds.
func (g *Game) BuildInference(seat int) []protocol.InferenceEntry {
	entries := []protocol.InferenceEntry{}
	if g.Tracker == nil {
		return entries
	}

	view := g.Tracker.View(seat, g.HandOf(seat))
	for i, b := range view.Beliefs {
		if !b.InPlay || b.Certain {
			continue
		}

		candidates := []string{}
		for _, s := range b.Candidates.Members() {
			candidates = append(candidates, g.Players[s].ID)
		}

		entries = append(entries, protocol.InferenceEntry{
			Card:       i,
			Name:       deck.Card(i).String(),
			Weight:     b.Weight,
			Candidates: candidates,
		})
	}
	return entries
}

// RecordOf converts an executed move into its public record
func (g *Game) RecordOf(m Move) protocol.MoveRecord {
	record := protocol.MoveRecord{
		Success:     m.Succeeded(),
		Description: m.Description(),
	}

	switch v := m.(type) {
	case Ask:
		record.Type = protocol.AskMove.String()
		record.Asker = g.Players[v.Asker].ID
		record.AskedFrom = g.Players[v.AskedFrom].ID
		record.Card = int(v.Card)

	case Call:
		record.Type = protocol.CallMove.String()
		record.Caller = g.Players[v.Caller].ID
		record.Set = v.Set.String()
		record.Claimed = g.claimEntries(v.Set, v.Claimed)
		record.Actual = g.claimEntries(v.Set, v.Actual)

	case Transfer:
		record.Type = protocol.TransferMove.String()
		record.From = g.Players[v.From].ID
		record.To = g.Players[v.To].ID
	}

	return record
}

func (g *Game) claimEntries(s deck.Set, claim Claim) []protocol.ClaimEntry {
	entries := []protocol.ClaimEntry{}
	for i, c := range s.Cards() {
		holder := ""
		if claim[i] >= 0 {
			holder = g.Players[claim[i]].ID
		}
		entries = append(entries, protocol.ClaimEntry{Card: int(c), Holder: holder})
	}
	return entries
}
