// Package combat plays the two-player card game Combat and its recursive
// variant.
package combat

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Deck is a stack of cards, top card first.
type Deck []int

// Score weights each card by its position counted from the bottom of the
// deck, starting at one.
func (d Deck) Score() int {
	total := 0
	for i, c := range d {
		total += c * (len(d) - i)
	}
	return total
}

// Parse reads "Player 1:" and "Player 2:" sections with one card per line.
func Parse(text string) (Deck, Deck, error) {
	var decks [2]Deck
	cur := -1
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "Player 1:":
			cur = 0
			continue
		case "Player 2:":
			cur = 1
			continue
		}
		if cur < 0 {
			return nil, nil, fmt.Errorf("line %d: card before player header", n+1)
		}
		card, err := strconv.Atoi(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		if card <= 0 {
			return nil, nil, fmt.Errorf("line %d: card %d is not positive", n+1, card)
		}
		decks[cur] = append(decks[cur], card)
	}
	if len(decks[0]) == 0 || len(decks[1]) == 0 {
		return nil, nil, fmt.Errorf("both players need cards")
	}
	return decks[0], decks[1], nil
}

// Play runs a game of Combat on copies of the decks and returns the winning
// player (1 or 2) and their final deck.
func Play(d1, d2 Deck) (int, Deck) {
	a, b := clone(d1), clone(d2)
	for len(a) > 0 && len(b) > 0 {
		c1, c2 := a[0], b[0]
		a, b = a[1:], b[1:]
		if c1 > c2 {
			a = append(a, c1, c2)
		} else {
			b = append(b, c2, c1)
		}
	}
	if len(a) > 0 {
		return 1, a
	}
	return 2, b
}

// PlayRecursive runs a game of Recursive Combat on copies of the decks.
//
// A game ends in player 1's favour as soon as a round begins with the same
// pair of decks seen at the start of an earlier round of that game. When both
// players hold at least as many cards as the values they drew, the round is
// decided by a sub-game over that many cards from each deck.
func PlayRecursive(d1, d2 Deck) (int, Deck) {
	return recursive(clone(d1), clone(d2))
}

func recursive(a, b Deck) (int, Deck) {
	seen := map[string]struct{}{}
	for len(a) > 0 && len(b) > 0 {
		key := stateKey(a, b)
		if _, ok := seen[key]; ok {
			return 1, a
		}
		seen[key] = struct{}{}

		c1, c2 := a[0], b[0]
		a, b = a[1:], b[1:]

		var winner int
		switch {
		case c1 <= len(a) && c2 <= len(b):
			winner, _ = recursive(clone(a[:c1]), clone(b[:c2]))
		case c1 > c2:
			winner = 1
		default:
			winner = 2
		}

		if winner == 1 {
			a = append(a, c1, c2)
		} else {
			b = append(b, c2, c1)
		}
	}
	if len(a) > 0 {
		return 1, a
	}
	return 2, b
}

// stateKey encodes both decks as uvarints split by a zero byte. Cards are
// positive so the separator is unambiguous.
func stateKey(a, b Deck) string {
	buf := make([]byte, 0, 2*(len(a)+len(b))+1)
	for _, c := range a {
		buf = binary.AppendUvarint(buf, uint64(c))
	}
	buf = append(buf, 0)
	for _, c := range b {
		buf = binary.AppendUvarint(buf, uint64(c))
	}
	return string(buf)
}

func clone(d Deck) Deck {
	return append(Deck(nil), d...)
}
