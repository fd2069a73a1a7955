package days

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/types"
)

var cardLine = regexp.MustCompile(`^Card\s+(\d+):\s*(.*?)\s*\|\s*(.*)$`)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 4,
		Title:  "Scratchcards",
		Solvers: map[types.Part]puzzle.SolveFunc{
			types.PartOne: func(ctx context.Context, in puzzle.Input) (int64, error) {
				return cardPoints(in.Text)
			},
			types.PartTwo: func(ctx context.Context, in puzzle.Input) (int64, error) {
				return cardsWon(in.Text)
			},
		},
		Samples: map[types.Part]puzzle.Sample{
			types.PartOne: sample("day04.txt", 13),
			types.PartTwo: sample("day04.txt", 30),
		},
	})
}

type card struct {
	id      int64
	matches int
}

func parseCards(input string) ([]card, error) {
	var cards []card
	for _, line := range lines(input) {
		m := cardLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("malformed card %q", line)
		}
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("card id %q: %w", m[1], err)
		}
		winning, err := numbers(m[2])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", id, err)
		}
		mine, err := numbers(m[3])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", id, err)
		}

		wins := make(map[int64]bool, len(winning))
		for _, n := range winning {
			wins[n] = true
		}
		c := card{id: id}
		for _, n := range mine {
			if wins[n] {
				c.matches++
				// A number counts once even if listed twice.
				delete(wins, n)
			}
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// cardPoints scores each card 2^(matches-1) and sums the scores.
func cardPoints(input string) (int64, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, c := range cards {
		if c.matches > 0 {
			sum += 1 << (c.matches - 1)
		}
	}
	return sum, nil
}

// cardsWon counts the cards held once every card's matches have won copies
// of the cards that follow it.
func cardsWon(input string) (int64, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}

	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.matches && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}
